// Package handler contains the page controllers. They compose the catalog
// and progress services and return the page data as JSON.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/api/models"
	"github.com/lingolog/lingolog/catalog"
	"github.com/lingolog/lingolog/database"
	"github.com/lingolog/lingolog/progress"
	"gorm.io/gorm"
)

type Handler struct {
	catalog  *catalog.Service
	progress *progress.Service
}

func New(cat *catalog.Service, prog *progress.Service) *Handler {
	return &Handler{
		catalog:  cat,
		progress: prog,
	}
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	user := auth.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
	})
}

// ListVideos serves the browse page data, filtered by level and tag.
func (h *Handler) ListVideos(c *gin.Context) {
	var level database.VideoLevel
	if levelStr := c.Query("level"); levelStr != "" && levelStr != "All" {
		parsed, err := database.ParseVideoLevel(levelStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid level filter"})
			return
		}
		level = parsed
	}

	videos, err := h.catalog.ListVideos(c.Request.Context(), level, c.Query("tag"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list videos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": models.ToVideoItems(videos)})
}

// MarkWatched logs a watch record for the authenticated user, dated today.
func (h *Handler) MarkWatched(c *gin.Context) {
	user := auth.CurrentUser(c)

	videoID, err := parseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video ID"})
		return
	}

	record, err := h.progress.LogWatch(c.Request.Context(), user.ID, videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log watch"})
		return
	}

	today, err := h.progress.DailyProgress(c.Request.Context(), user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"minutes":      record.DurationMinutes,
		"todayMinutes": today,
	})
}

func parseUintParam(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
