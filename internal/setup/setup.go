package setup

import (
	"context"
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/feedline-dev/feedline/internal/apiclient"
	"github.com/feedline-dev/feedline/internal/comments"
	"github.com/feedline-dev/feedline/internal/composer"
	"github.com/feedline-dev/feedline/internal/config"
	"github.com/feedline-dev/feedline/internal/feed"
	"github.com/feedline-dev/feedline/internal/handler"
	"github.com/feedline-dev/feedline/internal/identity"
	"github.com/feedline-dev/feedline/internal/logger"
	"github.com/feedline-dev/feedline/internal/markdown"
	"github.com/feedline-dev/feedline/internal/panel"
)

const (
	baseTemplate = "base.html"
	tmplPath     = "templates"

	startupTimeout = 10 * time.Second
)

type Dependencies struct {
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies wires the whole client: remote API client, identity,
// feed controller (with initial merge), comment store, panel, composer and
// the page handler. Remote failures during startup degrade to the seed-only
// collection instead of aborting.
func SetupDependencies(cfg *config.Config) *Dependencies {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	apiClient := apiclient.New(cfg.APIBaseURL)

	identityProvider := identity.New(apiClient)
	if err := identityProvider.Load(ctx); err != nil {
		logger.Log.Warn("actor profile unavailable, commenting disabled until restart", "error", err)
	}

	seedPosts := feed.SeedPosts(time.Now())
	if !cfg.SeedPosts {
		seedPosts = nil
	}

	feedCtrl := feed.New(apiClient, apiClient, seedPosts)
	feedCtrl.Initialize(ctx)

	commentStore := comments.New(apiClient, feedCtrl)
	panelCtrl := panel.New(commentStore)
	postComposer := composer.New(feedCtrl)

	h := handler.New(
		mustLoadTemplates(tmplPath),
		markdown.New(),
		feedCtrl,
		panelCtrl,
		commentStore,
		postComposer,
		identityProvider,
		cfg.MediaBaseURL,
		cfg.MaxImageBytes,
	)

	return &Dependencies{Handler: h, Config: cfg}
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate && f.Name() != "partials.html" {
			templates[f.Name()] = template.Must(template.New(baseTemplate).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
				path.Join(tmplPath, "partials.html"),
			))
		}
	}
	return templates
}
