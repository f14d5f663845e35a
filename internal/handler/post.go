package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feedline-dev/feedline/internal/composer"
	"github.com/feedline-dev/feedline/internal/domain"
	"github.com/feedline-dev/feedline/internal/logger"
)

// PostCreateHandler takes the composer form, stores its fields, validates an
// optional image upload and submits. A failed submit keeps the fields so the
// page re-renders them for retry.
func (h *Handler) PostCreateHandler(w http.ResponseWriter, r *http.Request) {
	targetURL := "/"

	if err := r.ParseMultipartForm(h.MaxImageBytes); err != nil {
		redirectWithError(w, r, targetURL, "Could not read the post form.")
		return
	}

	h.Composer.SetFields(r.FormValue("text"), r.FormValue("location"))

	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		if err := h.Composer.AttachImage(files[0]); err != nil {
			if errors.Is(err, composer.ErrInvalidMimeType) {
				redirectWithError(w, r, targetURL, "Only gif, jpeg, png and webp images are allowed.")
				return
			}
			logger.Log.Error("image attach failed", "error", err)
			redirectWithError(w, r, targetURL, "Could not read the uploaded image.")
			return
		}
	}

	if _, err := h.Composer.Submit(r.Context()); err != nil {
		if errors.Is(err, composer.ErrSubmissionPending) {
			redirectWithError(w, r, targetURL, "A post is already being published.")
			return
		}
		redirectWithError(w, r, targetURL, "Could not publish the post, your input was kept.")
		return
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}

// PostLikeHandler flips the like state of one post. Never networked.
func (h *Handler) PostLikeHandler(w http.ResponseWriter, r *http.Request) {
	key := domain.LocalKey(chi.URLParam(r, "key"))
	if !h.Feed.ToggleLike(key) {
		logger.Log.Warn("like toggle for unknown post", "key", key)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// PostDeleteHandler removes a post once the remote service confirms. If the
// post's comment panel was open it is closed without a count refresh, there
// is no post left to refresh.
func (h *Handler) PostDeleteHandler(w http.ResponseWriter, r *http.Request) {
	serverId := domain.ServerId(chi.URLParam(r, "id"))
	targetURL := "/"

	if err := h.Feed.DeletePost(r.Context(), serverId); err != nil {
		redirectWithError(w, r, targetURL, "Could not delete the post.")
		return
	}

	if h.activePanelId() == serverId {
		// toggling the open id closes the panel without touching the network
		h.Panel.Toggle(r.Context(), serverId)
	}

	http.Redirect(w, r, targetURL, http.StatusSeeOther)
}
