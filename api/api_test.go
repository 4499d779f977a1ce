package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lingolog/lingolog/api/auth"
	"github.com/lingolog/lingolog/config"
	"github.com/lingolog/lingolog/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	srv *httptest.Server
	db  database.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	cfg := &config.Config{
		Listen:             "127.0.0.1:0",
		SessionKey:         "test-session-key",
		SessionMaxAge:      3600,
		DefaultDailyTarget: 30,
		Database:           &config.DatabaseConfig{Path: ":memory:"},
	}

	server, err := New(cfg, db, false)
	require.NoError(t, err)

	srv := httptest.NewServer(server.Router())
	t.Cleanup(srv.Close)

	return &testApp{srv: srv, db: db}
}

func (a *testApp) newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// login registers (or creates) the user and logs the client in.
func (a *testApp) login(t *testing.T, client *http.Client, username, password string, isAdmin bool) {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	_, err = a.db.CreateUser(t.Context(), username, hash, isAdmin)
	require.NoError(t, err)

	resp := a.postJSON(t, client, "/auth/login", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func (a *testApp) postJSON(t *testing.T, client *http.Client, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := client.Post(a.srv.URL+path, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func (a *testApp) getJSON(t *testing.T, client *http.Client, path string, out any) int {
	t.Helper()
	resp, err := client.Get(a.srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	app := newTestApp(t)
	client := app.newClient(t)

	for _, path := range []string{"/api/videos", "/api/progress", "/api/me"} {
		assert.Equal(t, http.StatusUnauthorized, app.getJSON(t, client, path, nil), path)
	}
}

func TestAdminAddVideoAndBrowse(t *testing.T) {
	app := newTestApp(t)

	admin := app.newClient(t)
	app.login(t, admin, "boss", "adminpw", true)

	resp := app.postJSON(t, admin, "/admin/videos", gin.H{
		"title":           "Ordering Coffee",
		"url":             "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"level":           "Beginner",
		"tags":            []string{"daily life", "food"},
		"durationMinutes": 12,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	t.Run("unrecognized URL fails closed", func(t *testing.T) {
		resp := app.postJSON(t, admin, "/admin/videos", gin.H{
			"title":           "Broken",
			"url":             "https://example.com/video/42",
			"level":           "Beginner",
			"durationMinutes": 10,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	user := app.newClient(t)
	app.login(t, user, "anna", "secret", false)

	t.Run("regular user cannot add videos", func(t *testing.T) {
		resp := app.postJSON(t, user, "/admin/videos", gin.H{
			"title":           "Sneaky",
			"url":             "https://youtu.be/dQw4w9WgXcQ",
			"level":           "Beginner",
			"durationMinutes": 5,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	var browse struct {
		Videos []struct {
			ID       uint     `json:"id"`
			Title    string   `json:"title"`
			Level    string   `json:"level"`
			Tags     []string `json:"tags"`
			WatchURL string   `json:"watchUrl"`
		} `json:"videos"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/videos?level=Beginner", &browse))
	require.Len(t, browse.Videos, 1)
	assert.Equal(t, "Ordering Coffee", browse.Videos[0].Title)
	assert.Equal(t, []string{"daily life", "food"}, browse.Videos[0].Tags)
	assert.Equal(t, "https://youtube.com/watch?v=dQw4w9WgXcQ", browse.Videos[0].WatchURL)

	// the failed add must not have persisted anything
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/videos", &browse))
	assert.Len(t, browse.Videos, 1)

	t.Run("level filter excludes non-matching", func(t *testing.T) {
		require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/videos?level=Advanced", &browse))
		assert.Empty(t, browse.Videos)
	})

	t.Run("invalid level filter", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, app.getJSON(t, user, "/api/videos?level=Fluent", nil))
	})
}

func TestWatchAndProgressFlow(t *testing.T) {
	app := newTestApp(t)

	admin := app.newClient(t)
	app.login(t, admin, "boss", "adminpw", true)

	resp := app.postJSON(t, admin, "/admin/videos", gin.H{
		"title":           "Slow Story",
		"url":             "https://youtu.be/dQw4w9WgXcQ",
		"level":           "Superbeginner",
		"durationMinutes": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	user := app.newClient(t)
	app.login(t, user, "anna", "secret", false)

	var browse struct {
		Videos []struct {
			ID uint `json:"id"`
		} `json:"videos"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/videos", &browse))
	require.Len(t, browse.Videos, 1)

	resp = app.postJSON(t, user, fmt.Sprintf("/api/videos/%d/watch", browse.Videos[0].ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("unknown video id", func(t *testing.T) {
		resp := app.postJSON(t, user, "/api/videos/999/watch", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	resp = app.postJSON(t, user, "/api/progress/manual", gin.H{"minutes": 25})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		TodayMinutes int    `json:"todayMinutes"`
		TodayPercent int    `json:"todayPercent"`
		Level        int    `json:"level"`
		Target       int    `json:"dailyTargetMinutes"`
		Projected    *int   `json:"projectedDays"`
		NextLevelIn  string `json:"nextLevelIn"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/progress", &summary))
	assert.Equal(t, 35, summary.TodayMinutes)
	assert.Equal(t, 100, summary.TodayPercent) // capped, not 116
	assert.Equal(t, 1, summary.Level)
	assert.Equal(t, 30, summary.Target)
	require.NotNil(t, summary.Projected)
	assert.Equal(t, "49.4 hrs to level 2", summary.NextLevelIn)

	t.Run("negative manual entry", func(t *testing.T) {
		resp := app.postJSON(t, user, "/api/progress/manual", gin.H{"minutes": -5})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTargetRoundTrip(t *testing.T) {
	app := newTestApp(t)
	user := app.newClient(t)
	app.login(t, user, "anna", "secret", false)

	var target struct {
		TargetMinutes int `json:"targetMinutes"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/progress/target", &target))
	assert.Equal(t, 30, target.TargetMinutes) // configured default

	resp := app.postJSON(t, user, "/api/progress/target", gin.H{"minutes": 45})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/progress/target", &target))
	assert.Equal(t, 45, target.TargetMinutes)
}

func TestAdminSetUserTarget(t *testing.T) {
	app := newTestApp(t)

	user := app.newClient(t)
	app.login(t, user, "anna", "secret", false)

	annaRow, err := app.db.GetUserByUsername(t.Context(), "anna")
	require.NoError(t, err)

	admin := app.newClient(t)
	app.login(t, admin, "boss", "adminpw", true)

	resp := app.postJSON(t, admin, fmt.Sprintf("/admin/users/%d/target", annaRow.ID), gin.H{"minutes": 60})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	t.Run("unknown user", func(t *testing.T) {
		resp := app.postJSON(t, admin, "/admin/users/999/target", gin.H{"minutes": 60})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	var target struct {
		TargetMinutes int `json:"targetMinutes"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/progress/target", &target))
	assert.Equal(t, 60, target.TargetMinutes)

	t.Run("admin user list shows targets", func(t *testing.T) {
		var list struct {
			Users []struct {
				Username           string `json:"username"`
				DailyTargetMinutes int    `json:"dailyTargetMinutes"`
				IsAdmin            bool   `json:"isAdmin"`
			} `json:"users"`
		}
		require.Equal(t, http.StatusOK, app.getJSON(t, admin, "/admin/users", &list))
		require.Len(t, list.Users, 2)
		for _, u := range list.Users {
			if u.Username == "anna" {
				assert.Equal(t, 60, u.DailyTargetMinutes)
				assert.False(t, u.IsAdmin)
			}
		}
	})
}

func TestCalendarEndpoint(t *testing.T) {
	app := newTestApp(t)
	user := app.newClient(t)
	app.login(t, user, "anna", "secret", false)

	resp := app.postJSON(t, user, "/api/progress/manual", gin.H{"minutes": 20})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var calendar struct {
		Year  int `json:"year"`
		Weeks [][]struct {
			Date    string `json:"date"`
			Minutes int    `json:"minutes"`
			InMonth bool   `json:"inMonth"`
		} `json:"weeks"`
	}
	require.Equal(t, http.StatusOK, app.getJSON(t, user, "/api/progress/calendar", &calendar))
	require.NotEmpty(t, calendar.Weeks)

	var total int
	for _, week := range calendar.Weeks {
		for _, day := range week {
			total += day.Minutes
		}
	}
	assert.Equal(t, 20, total)

	t.Run("invalid month", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, app.getJSON(t, user, "/api/progress/calendar?month=13", nil))
	})
}
