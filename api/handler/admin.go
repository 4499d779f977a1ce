package handler

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/api/models"
	"github.com/lingolog/lingolog/catalog"
	"github.com/lingolog/lingolog/database"
	"github.com/lingolog/lingolog/progress"
	"gorm.io/gorm"
)

// AdminHandler serves the admin panel endpoints: adding videos and setting
// targets for other users.
type AdminHandler struct {
	db       database.DB
	catalog  *catalog.Service
	progress *progress.Service
}

func NewAdmin(db database.DB, cat *catalog.Service, prog *progress.Service) *AdminHandler {
	return &AdminHandler{
		db:       db,
		catalog:  cat,
		progress: prog,
	}
}

type addVideoRequest struct {
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	Level           string   `json:"level"`
	Tags            []string `json:"tags"`
	DurationMinutes int      `json:"durationMinutes"`
}

// AddVideo adds a new video to the catalogue.
func (h *AdminHandler) AddVideo(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req addVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	level, err := database.ParseVideoLevel(req.Level)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level"})
		return
	}

	video, err := h.catalog.AddVideo(c.Request.Context(), catalog.AddVideoParams{
		Title:           req.Title,
		URL:             req.URL,
		Level:           level,
		Tags:            req.Tags,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidURL):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unrecognized video URL"})
		case errors.Is(err, catalog.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add video"})
		}
		return
	}

	log.Info("video added by admin", "admin", user.Username, "video_id", video.ID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "video": models.ToVideoItem(*video)})
}

// ListUsers returns all users with their current daily targets.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}

	items := make([]models.UserItem, 0, len(users))
	for _, u := range users {
		target, err := h.progress.DailyTarget(c.Request.Context(), u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load targets"})
			return
		}
		items = append(items, models.UserItem{
			ID:                 u.ID,
			Username:           u.Username,
			IsAdmin:            u.IsAdmin,
			DailyTargetMinutes: target,
		})
	}

	c.JSON(http.StatusOK, gin.H{"users": items})
}

// SetUserTarget sets the daily target for any user by id.
func (h *AdminHandler) SetUserTarget(c *gin.Context) {
	userID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if _, err := h.db.GetUserByID(c.Request.Context(), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}

	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.progress.SetDailyTarget(c.Request.Context(), userID, req.Minutes); err != nil {
		if errors.Is(err, progress.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Minutes must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set target"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
