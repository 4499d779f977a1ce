package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/api/models"
	"github.com/lingolog/lingolog/progress"
)

// Progress serves the progress page summary: daily goal, level, projection
// and streak.
func (h *Handler) Progress(c *gin.Context) {
	user := auth.CurrentUser(c)

	summary, err := h.progress.Summarize(c.Request.Context(), user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}

	c.JSON(http.StatusOK, models.ToProgressSummary(summary))
}

// Calendar serves the monthly activity heatmap. Year and month default to
// the current month.
func (h *Handler) Calendar(c *gin.Context) {
	user := auth.CurrentUser(c)

	now := time.Now().UTC()
	year, month := now.Year(), now.Month()

	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
			return
		}
		year = parsed
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
			return
		}
		month = time.Month(parsed)
	}

	weeks, err := h.progress.MonthlyActivity(c.Request.Context(), user.ID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, models.ToCalendar(year, month, weeks))
}

type manualTimeRequest struct {
	Minutes int `json:"minutes"`
}

// LogManualTime records time spent outside the platform for today.
func (h *Handler) LogManualTime(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req manualTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := h.progress.LogManualTime(c.Request.Context(), user.ID, req.Minutes); err != nil {
		if errors.Is(err, progress.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Minutes must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log time"})
		return
	}

	today, err := h.progress.DailyProgress(c.Request.Context(), user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute progress"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "todayMinutes": today})
}

type targetRequest struct {
	Minutes int `json:"minutes"`
}

// GetTarget returns the authenticated user's current daily target.
func (h *Handler) GetTarget(c *gin.Context) {
	user := auth.CurrentUser(c)

	target, err := h.progress.DailyTarget(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load target"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"targetMinutes": target})
}

// SetTarget updates the authenticated user's daily target.
func (h *Handler) SetTarget(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req targetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.progress.SetDailyTarget(c.Request.Context(), user.ID, req.Minutes); err != nil {
		if errors.Is(err, progress.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Minutes must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set target"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "targetMinutes": req.Minutes})
}
