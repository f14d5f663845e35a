package panel

import (
	"context"
	"sync"

	"github.com/feedline-dev/feedline/internal/domain"
	"github.com/feedline-dev/feedline/internal/logger"
)

// ThreadStore is the comment store the panel drives.
type ThreadStore interface {
	Load(ctx context.Context, postId domain.ServerId) error
	RefreshCount(ctx context.Context, postId domain.ServerId) error
}

// Controller enforces the single-open-panel rule. The active id is an
// optional reference, so more than one open panel cannot be represented.
type Controller struct {
	mu      sync.Mutex
	active  *domain.ServerId
	threads ThreadStore
}

func New(threads ThreadStore) *Controller {
	return &Controller{threads: threads}
}

// Active returns the currently expanded post id, if any.
func (c *Controller) Active() (domain.ServerId, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active == nil {
		return "", false
	}
	return *c.active, true
}

// Toggle opens the panel for postId, closing whichever panel was open.
// Toggling the already-open id closes it. An empty id is a no-op.
func (c *Controller) Toggle(ctx context.Context, postId domain.ServerId) {
	if postId == "" {
		return
	}

	c.mu.Lock()
	if c.active != nil && *c.active == postId {
		c.active = nil
		c.mu.Unlock()
		return
	}
	id := postId
	c.active = &id
	c.mu.Unlock()

	if err := c.threads.Load(ctx, postId); err != nil {
		logger.Log.Error("comment thread load failed", "postId", postId, "error", err)
	}
}

// Close deactivates the panel if postId is the open one, then refreshes the
// post's comment count from server truth. The refresh happens once per close,
// no matter how often the thread was loaded while open.
func (c *Controller) Close(ctx context.Context, postId domain.ServerId) {
	c.mu.Lock()
	if c.active != nil && *c.active == postId {
		c.active = nil
	}
	c.mu.Unlock()

	if err := c.threads.RefreshCount(ctx, postId); err != nil {
		logger.Log.Error("comment count refresh failed", "postId", postId, "error", err)
	}
}
