package feed

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/feedline-dev/feedline/internal/api"
	"github.com/feedline-dev/feedline/internal/domain"
	"github.com/feedline-dev/feedline/internal/logger"
)

// PostAPI is the slice of the remote client the controller needs for
// post-level operations.
type PostAPI interface {
	ListPosts(ctx context.Context) ([]api.PostRecord, error)
	CreatePost(ctx context.Context, text, location string, image *domain.PendingImage) (*api.PostRecord, error)
	DeletePost(ctx context.Context, serverId domain.ServerId) error
}

// CommentAPI supplies authoritative comment lists; the controller only ever
// measures their length.
type CommentAPI interface {
	ListComments(ctx context.Context, postId domain.ServerId) ([]api.CommentRecord, error)
}

// Controller owns the ordered post collection and every post-level mutation.
// All methods are safe for concurrent use; the collection is the only shared
// mutable state.
type Controller struct {
	mu    sync.Mutex
	posts []domain.Post

	seeds    []domain.Post
	api      PostAPI
	comments CommentAPI

	now    func() time.Time
	newKey func() domain.LocalKey
}

func New(postAPI PostAPI, commentAPI CommentAPI, seeds []domain.Post) *Controller {
	c := &Controller{
		seeds:    seeds,
		api:      postAPI,
		comments: commentAPI,
		now:      time.Now,
		newKey:   func() domain.LocalKey { return uuid.NewString() },
	}
	c.posts = append([]domain.Post(nil), seeds...)
	return c
}

// Initialize fetches the remote post collection and merges it in front of the
// seed posts, keeping server order. Each remote post gets its authoritative
// comment count before it is merged. A failed fetch leaves the seeds as the
// whole collection; the failure is logged, never surfaced.
func (c *Controller) Initialize(ctx context.Context) {
	records, err := c.api.ListPosts(ctx)
	if err != nil {
		logger.Log.Error("initial post fetch failed, falling back to seed posts", "error", err)
		c.mu.Lock()
		c.posts = append([]domain.Post(nil), c.seeds...)
		c.mu.Unlock()
		return
	}

	mergedAt := c.now()
	remote := make([]domain.Post, 0, len(records))
	for _, rec := range records {
		count := 0
		comments, err := c.comments.ListComments(ctx, rec.Id)
		if err != nil {
			logger.Log.Warn("comment count fetch failed, using zero", "postId", rec.Id, "error", err)
		} else {
			count = len(comments)
		}
		remote = append(remote, domain.Post{
			LocalKey:     c.newKey(),
			ServerId:     rec.Id,
			Text:         rec.Desc,
			Location:     rec.Location,
			ImageRef:     rec.PostImg,
			CommentCount: count,
			CreatedAt:    mergedAt,
		})
	}

	c.mu.Lock()
	c.posts = append(remote, c.seeds...)
	c.mu.Unlock()
}

// Posts returns a snapshot of the collection in display order.
func (c *Controller) Posts() []domain.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Post(nil), c.posts...)
}

// Post looks a post up by its local key.
func (c *Controller) Post(key domain.LocalKey) (domain.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].LocalKey == key {
			return c.posts[i], true
		}
	}
	return domain.Post{}, false
}

// ToggleLike flips the liked flag and adjusts the counter by one. Purely
// local; applying it twice restores the original state.
func (c *Controller) ToggleLike(key domain.LocalKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].LocalKey != key {
			continue
		}
		if c.posts[i].Liked {
			c.posts[i].LikeCount--
		} else {
			c.posts[i].LikeCount++
		}
		c.posts[i].Liked = !c.posts[i].Liked
		return true
	}
	return false
}

// CreatePost submits a new post and prepends it on success. An empty
// submission (blank trimmed text, no image) is a silent no-op: no request is
// made and the collection is unchanged.
func (c *Controller) CreatePost(ctx context.Context, text, location string, image *domain.PendingImage) (*domain.Post, error) {
	if strings.TrimSpace(text) == "" && image == nil {
		return nil, nil
	}

	rec, err := c.api.CreatePost(ctx, text, location, image)
	if err != nil {
		return nil, err
	}

	post := domain.Post{
		LocalKey:  c.newKey(),
		ServerId:  rec.Id,
		Text:      rec.Desc,
		Location:  rec.Location,
		ImageRef:  rec.PostImg,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.posts = append([]domain.Post{post}, c.posts...)
	c.mu.Unlock()
	return &post, nil
}

// DeletePost removes the post only after the remote service confirmed the
// deletion. On failure the collection is unchanged and the error is logged.
func (c *Controller) DeletePost(ctx context.Context, serverId domain.ServerId) error {
	if err := c.api.DeletePost(ctx, serverId); err != nil {
		logger.Log.Error("post deletion failed", "serverId", serverId, "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ServerId == serverId {
			c.posts = append(c.posts[:i], c.posts[i+1:]...)
			break
		}
	}
	return nil
}

// SetCommentCount writes an authoritative comment count back into the post
// record. This is the only path that corrects a count after merge time.
func (c *Controller) SetCommentCount(serverId domain.ServerId, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.posts {
		if c.posts[i].ServerId == serverId {
			c.posts[i].CommentCount = count
			return
		}
	}
}
