// Package catalog manages the instructional video catalogue: adding videos
// from pasted URLs and listing them with level and tag filters.
package catalog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lingolog/lingolog/database"
)

// ErrInvalidURL is returned when no video ID can be extracted from a URL.
var ErrInvalidURL = errors.New("unrecognized video URL")

// ErrMissingField is returned when a required video field is empty.
var ErrMissingField = errors.New("missing required field")

// youtubeIDPattern matches the known URL shapes (watch?v=, short links,
// embed and /v/ links) and captures the 11-character video ID.
var youtubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)

// ExtractVideoID returns the canonical 11-character video ID from a pasted
// URL, or ErrInvalidURL if the URL doesn't match any known shape.
func ExtractVideoID(url string) (string, error) {
	match := youtubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return "", ErrInvalidURL
	}
	return match[1], nil
}

// Service provides video catalogue operations.
type Service struct {
	db database.DB
}

func New(db database.DB) *Service {
	return &Service{db: db}
}

// AddVideoParams holds the admin input for a new video.
type AddVideoParams struct {
	Title           string
	URL             string
	Level           database.VideoLevel
	Tags            []string
	DurationMinutes int
}

// AddVideo validates the input, extracts the video ID and persists the video.
// It fails closed on unrecognized URLs: nothing is stored.
func (s *Service) AddVideo(ctx context.Context, params AddVideoParams) (*database.Video, error) {
	if params.Title == "" || params.URL == "" || params.Level == "" {
		return nil, ErrMissingField
	}
	if params.DurationMinutes <= 0 {
		return nil, ErrMissingField
	}

	youtubeID, err := ExtractVideoID(params.URL)
	if err != nil {
		return nil, err
	}

	video := database.Video{
		Title:           params.Title,
		YoutubeID:       youtubeID,
		Level:           params.Level,
		Tags:            normalizeTags(params.Tags),
		DurationMinutes: params.DurationMinutes,
	}
	if err := s.db.CreateVideo(ctx, &video); err != nil {
		return nil, err
	}

	log.Info("video added", "title", video.Title, "youtube_id", video.YoutubeID, "level", video.Level)
	return &video, nil
}

// ListVideos returns the catalogue filtered by level (exact match) and tag
// (substring match). Empty filters match everything.
func (s *Service) ListVideos(ctx context.Context, level database.VideoLevel, tag string) ([]database.Video, error) {
	return s.db.ListVideos(ctx, level, strings.TrimSpace(tag))
}

func normalizeTags(tags []string) string {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return strings.Join(cleaned, ",")
}
