package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/feedline-dev/feedline/internal/composer"
	"github.com/feedline-dev/feedline/internal/domain"
	internal_errors "github.com/feedline-dev/feedline/internal/errors"
	"github.com/feedline-dev/feedline/internal/logger"
	"github.com/feedline-dev/feedline/internal/utils"
)

// PostView is the feed-page view model for one post.
type PostView struct {
	Key      domain.LocalKey
	ServerId domain.ServerId

	AuthorName    string
	AuthorHandle  string
	AvatarURL     string
	AvatarInitial string

	TextHTML template.HTML
	Location string
	ImageURL string

	LikeCount    int
	Liked        bool
	CommentCount int
	CreatedAgo   string

	CanDelete bool
	PanelOpen bool
	Comments  []CommentView
	Draft     string
}

// CommentView is the panel view model for one comment.
type CommentView struct {
	Id            domain.CommentId
	AuthorName    string
	AvatarURL     string
	AvatarInitial string
	TextHTML      template.HTML
	CreatedAgo    string
	CanDelete     bool
}

// FeedPage is the data handed to the feed template.
type FeedPage struct {
	Posts    []PostView
	Empty    bool
	Composer composer.State
	Viewer   domain.Profile
	Error    string
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		utils.WriteErrorAndStatusCode(w, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("template %s not found", name), StatusCode: http.StatusInternalServerError,
		})
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, data); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

// renderPost maps a domain post onto its view model. Posts without a stored
// author (anything that came from the remote service) display as the current
// actor's.
func (h *Handler) renderPost(post domain.Post, viewer domain.Profile, now time.Time) PostView {
	view := PostView{
		Key:          post.LocalKey,
		ServerId:     post.ServerId,
		TextHTML:     template.HTML(h.TextProcessor.Render(post.Text)),
		Location:     post.Location,
		ImageURL:     h.mediaURL(post.ImageRef),
		LikeCount:    post.LikeCount,
		Liked:        post.Liked,
		CommentCount: post.CommentCount,
		CreatedAgo:   relativeTime(now, post.CreatedAt),
		CanDelete:    post.Persisted(),
	}

	if post.Author != nil {
		view.AuthorName = post.Author.Name
		view.AuthorHandle = post.Author.Handle
		view.AvatarURL = h.mediaURL(post.Author.AvatarRef)
	} else {
		view.AuthorName = viewer.DisplayName()
		view.AuthorHandle = viewer.Username
		view.AvatarURL = h.mediaURL(viewer.AvatarRef)
	}
	view.AvatarInitial = avatarInitial(view.AuthorName)
	return view
}

func (h *Handler) renderComment(comment domain.Comment, viewer domain.Profile, now time.Time) CommentView {
	return CommentView{
		Id:            comment.Id,
		AuthorName:    comment.Author.Name,
		AvatarURL:     h.mediaURL(comment.Author.AvatarRef),
		AvatarInitial: avatarInitial(comment.Author.Name),
		TextHTML:      template.HTML(h.TextProcessor.Render(comment.Text)),
		CreatedAgo:    relativeTime(now, comment.CreatedAt),
		CanDelete:     comment.Author.Id == viewer.Id,
	}
}

// mediaURL resolves an opaque image ref against the static-asset host.
// Already-absolute refs pass through untouched.
func (h *Handler) mediaURL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.Contains(ref, "://") {
		return ref
	}
	return strings.TrimRight(h.MediaBaseURL, "/") + "/" + ref
}

// avatarInitial is the fallback shown when no avatar image exists.
func avatarInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

func relativeTime(now, t time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("Jan 2, 2006")
}
