package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feedline-dev/feedline/internal/domain"
	"github.com/feedline-dev/feedline/internal/markdown"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-49 * time.Hour), "2d ago"},
		{"old post", now.Add(-30 * 24 * time.Hour), "May 16, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeTime(now, tt.at))
		})
	}
}

func TestAvatarInitial(t *testing.T) {
	assert.Equal(t, "V", avatarInitial("vicky"))
	assert.Equal(t, "M", avatarInitial("  Mia Park"))
	assert.Equal(t, "Å", avatarInitial("åse"))
	assert.Equal(t, "?", avatarInitial("   "))
}

func TestMediaURL(t *testing.T) {
	h := &Handler{MediaBaseURL: "http://media.test/Images/"}

	assert.Equal(t, "", h.mediaURL(""))
	assert.Equal(t, "http://media.test/Images/food.webp", h.mediaURL("food.webp"))
	assert.Equal(t, "https://cdn.example.com/a.png", h.mediaURL("https://cdn.example.com/a.png"))
}

func TestRenderPost_AuthorFallback(t *testing.T) {
	h := &Handler{TextProcessor: markdown.New(), MediaBaseURL: "http://media.test"}
	viewer := domain.Profile{Id: "u1", Username: "mia", FullName: "Mia Park", AvatarRef: "mia.png"}
	now := time.Now()

	remote := domain.Post{LocalKey: "k1", ServerId: "p1", Text: "hello", CreatedAt: now}
	view := h.renderPost(remote, viewer, now)
	assert.Equal(t, "Mia Park", view.AuthorName)
	assert.Equal(t, "mia", view.AuthorHandle)
	assert.Equal(t, "http://media.test/mia.png", view.AvatarURL)
	assert.True(t, view.CanDelete)

	seed := domain.Post{
		LocalKey:  "seed-1",
		Author:    &domain.Author{Name: "Vicky", Handle: "vickyfilm"},
		Text:      "seeded",
		CreatedAt: now,
	}
	view = h.renderPost(seed, viewer, now)
	assert.Equal(t, "Vicky", view.AuthorName)
	assert.Equal(t, "V", view.AvatarInitial)
	assert.False(t, view.CanDelete, "seed posts have no server identity to delete")
}
