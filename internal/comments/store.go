package comments

import (
	"context"
	"strings"
	"sync"

	"github.com/feedline-dev/feedline/internal/api"
	"github.com/feedline-dev/feedline/internal/domain"
	"github.com/feedline-dev/feedline/internal/logger"
)

// CommentAPI is the slice of the remote client the store needs.
type CommentAPI interface {
	ListComments(ctx context.Context, postId domain.ServerId) ([]api.CommentRecord, error)
	CreateComment(ctx context.Context, postId domain.ServerId, userId domain.ProfileId, text string) (*api.CommentRecord, error)
	DeleteComment(ctx context.Context, commentId domain.CommentId) error
}

// CountSink receives authoritative comment counts, keyed by server id.
type CountSink interface {
	SetCommentCount(serverId domain.ServerId, count int)
}

// Store owns the comment list for whichever post is currently expanded.
// Each Load replaces the whole list; responses from loads that were
// superseded by a newer one are discarded via a generation token.
type Store struct {
	mu         sync.Mutex
	comments   []domain.Comment
	loadedFor  domain.ServerId
	generation uint64
	draft      string

	api  CommentAPI
	sink CountSink
}

func New(commentAPI CommentAPI, sink CountSink) *Store {
	return &Store{api: commentAPI, sink: sink}
}

// Comments returns a snapshot of the held list in server order.
func (s *Store) Comments() []domain.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Comment(nil), s.comments...)
}

// LoadedFor returns the post id the held list belongs to.
func (s *Store) LoadedFor() domain.ServerId {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedFor
}

// Draft returns the pending comment input, preserved across failed submits.
func (s *Store) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Load fetches the full comment list for postId and replaces the held list.
// If another Load started while this one was in flight, the response is
// stale and dropped.
func (s *Store) Load(ctx context.Context, postId domain.ServerId) error {
	s.mu.Lock()
	s.generation++
	token := s.generation
	s.mu.Unlock()

	records, err := s.api.ListComments(ctx, postId)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		logger.Log.Debug("discarding stale comment load", "postId", postId)
		return nil
	}
	if err != nil {
		return err
	}
	s.comments = commentsFromRecords(records)
	s.loadedFor = postId
	return nil
}

// Submit posts a new comment. Blank text or an unknown actor is a silent
// no-op. On success the server's author-populated record is prepended and
// the draft input cleared; on failure the draft is preserved for retry.
func (s *Store) Submit(ctx context.Context, postId domain.ServerId, actorId domain.ProfileId, text string) error {
	if strings.TrimSpace(text) == "" || actorId == "" {
		return nil
	}

	rec, err := s.api.CreateComment(ctx, postId, actorId, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.draft = text
		logger.Log.Error("comment submit failed", "postId", postId, "error", err)
		return err
	}

	s.draft = ""
	if s.loadedFor == postId {
		s.comments = append([]domain.Comment{commentFromRecord(*rec)}, s.comments...)
	}
	return nil
}

// Remove deletes a comment, but only if actorId authored it. The check is a
// UI convenience, not a security control; the server must enforce its own
// authorization.
func (s *Store) Remove(ctx context.Context, commentId domain.CommentId, actorId domain.ProfileId) error {
	s.mu.Lock()
	var target *domain.Comment
	for i := range s.comments {
		if s.comments[i].Id == commentId {
			target = &s.comments[i]
			break
		}
	}
	if target == nil || target.Author.Id != actorId {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	if err := s.api.DeleteComment(ctx, commentId); err != nil {
		logger.Log.Error("comment delete failed", "commentId", commentId, "error", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.comments {
		if s.comments[i].Id == commentId {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			break
		}
	}
	return nil
}

// RefreshCount fetches the authoritative list for postId and writes its
// length back into the post record. This is the only path that corrects a
// displayed count after the panel interaction ends.
func (s *Store) RefreshCount(ctx context.Context, postId domain.ServerId) error {
	records, err := s.api.ListComments(ctx, postId)
	if err != nil {
		return err
	}
	s.sink.SetCommentCount(postId, len(records))
	return nil
}

func commentFromRecord(r api.CommentRecord) domain.Comment {
	return domain.Comment{
		Id:     r.Id,
		PostId: r.PostId,
		Author: domain.CommentAuthor{
			Id:        r.UserId.Id,
			Name:      authorName(r.UserId),
			AvatarRef: r.UserId.ProfileImg,
		},
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
	}
}

func commentsFromRecords(records []api.CommentRecord) []domain.Comment {
	out := make([]domain.Comment, 0, len(records))
	for _, r := range records {
		out = append(out, commentFromRecord(r))
	}
	return out
}

func authorName(u api.UserRecord) string {
	if u.Fullname != "" {
		return u.Fullname
	}
	return u.Username
}
