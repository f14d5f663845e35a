package handler

import (
	"net/http"
	"time"

	"github.com/feedline-dev/feedline/internal/domain"
)

// FeedGetHandler renders the feed page: the post collection in display
// order, the open comment panel (if any) with its thread, and the composer
// form state.
func (h *Handler) FeedGetHandler(w http.ResponseWriter, r *http.Request) {
	viewer, _ := h.Identity.Current()
	now := time.Now()

	activeId, panelOpen := h.Panel.Active()

	var panelComments []CommentView
	var draft string
	if panelOpen && h.Comments.LoadedFor() == activeId {
		draft = h.Comments.Draft()
		for _, comment := range h.Comments.Comments() {
			panelComments = append(panelComments, h.renderComment(comment, viewer, now))
		}
	}

	posts := h.Feed.Posts()
	page := FeedPage{
		Posts:    make([]PostView, 0, len(posts)),
		Empty:    len(posts) == 0,
		Composer: h.Composer.State(),
		Viewer:   viewer,
		Error:    errorFromQuery(r),
	}
	for _, post := range posts {
		view := h.renderPost(post, viewer, now)
		if panelOpen && post.ServerId != "" && post.ServerId == activeId {
			view.PanelOpen = true
			view.Comments = panelComments
			view.Draft = draft
		}
		page.Posts = append(page.Posts, view)
	}

	h.renderTemplate(w, "feed.html", page)
}

// activePanelId reports the open panel id, or "" when every panel is closed.
func (h *Handler) activePanelId() domain.ServerId {
	if id, ok := h.Panel.Active(); ok {
		return id
	}
	return ""
}
