package handler

import (
	"html/template"
	"net/http"

	"github.com/feedline-dev/feedline/internal/comments"
	"github.com/feedline-dev/feedline/internal/composer"
	"github.com/feedline-dev/feedline/internal/feed"
	"github.com/feedline-dev/feedline/internal/identity"
	"github.com/feedline-dev/feedline/internal/markdown"
	"github.com/feedline-dev/feedline/internal/panel"
)

type Handler struct {
	Templates     map[string]*template.Template
	TextProcessor *markdown.TextProcessor

	Feed     *feed.Controller
	Panel    *panel.Controller
	Comments *comments.Store
	Composer *composer.Composer
	Identity *identity.Provider

	MediaBaseURL  string
	MaxImageBytes int64
}

func New(
	templates map[string]*template.Template,
	textProcessor *markdown.TextProcessor,
	feedCtrl *feed.Controller,
	panelCtrl *panel.Controller,
	commentStore *comments.Store,
	postComposer *composer.Composer,
	identityProvider *identity.Provider,
	mediaBaseURL string,
	maxImageBytes int64,
) *Handler {
	return &Handler{
		Templates:     templates,
		TextProcessor: textProcessor,
		Feed:          feedCtrl,
		Panel:         panelCtrl,
		Comments:      commentStore,
		Composer:      postComposer,
		Identity:      identityProvider,
		MediaBaseURL:  mediaBaseURL,
		MaxImageBytes: maxImageBytes,
	}
}

func FaviconHandler(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "static/favicon.ico")
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
