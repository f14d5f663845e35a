package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedline-dev/feedline/internal/domain"
)

// CommentToggleHandler opens the comment panel for a post, closing any other
// open panel, and loads the thread. Toggling the open panel closes it.
func (h *Handler) CommentToggleHandler(w http.ResponseWriter, r *http.Request) {
	postId := domain.ServerId(chi.URLParam(r, "id"))
	h.Panel.Toggle(r.Context(), postId)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CommentCloseHandler closes the panel and refreshes the post's displayed
// comment count from server truth.
func (h *Handler) CommentCloseHandler(w http.ResponseWriter, r *http.Request) {
	postId := domain.ServerId(chi.URLParam(r, "id"))
	h.Panel.Close(r.Context(), postId)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CommentCreateHandler submits a new comment as the current actor.
func (h *Handler) CommentCreateHandler(w http.ResponseWriter, r *http.Request) {
	postId := domain.ServerId(chi.URLParam(r, "id"))
	targetURL := "/"

	actor, ok := h.Identity.Current()
	if !ok {
		redirectWithError(w, r, targetURL, "No signed-in profile, comment not sent.")
		return
	}

	if err := h.Comments.Submit(r.Context(), postId, actor.Id, r.FormValue("text")); err != nil {
		redirectWithError(w, r, targetURL, "Could not send the comment, your input was kept.")
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// CommentDeleteHandler removes a comment the current actor authored.
func (h *Handler) CommentDeleteHandler(w http.ResponseWriter, r *http.Request) {
	commentId := domain.CommentId(chi.URLParam(r, "id"))
	targetURL := "/"

	actor, ok := h.Identity.Current()
	if !ok {
		http.Redirect(w, r, targetURL, http.StatusSeeOther)
		return
	}

	if err := h.Comments.Remove(r.Context(), commentId, actor.Id); err != nil {
		redirectWithError(w, r, targetURL, "Could not delete the comment.")
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}
