package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/feedline-dev/feedline/internal/api"
	"github.com/feedline-dev/feedline/internal/domain"
	internal_errors "github.com/feedline-dev/feedline/internal/errors"
	"github.com/feedline-dev/feedline/internal/utils"
)

// ListComments fetches the full comment list for a post, in server order.
func (c *APIClient) ListComments(ctx context.Context, postId domain.ServerId) ([]api.CommentRecord, error) {
	resp, err := c.do(ctx, "GET", "/comments/post/{id}", "/comments/post/"+postId, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("failed to list comments for post %s", postId), StatusCode: resp.StatusCode,
		}
	}

	var listed api.CommentListResponse
	if err := utils.Decode(resp.Body, &listed); err != nil {
		return nil, fmt.Errorf("cannot decode comment list response: %w", err)
	}
	return listed.Data, nil
}

// CreateComment submits a comment and returns the author-populated record.
func (c *APIClient) CreateComment(ctx context.Context, postId domain.ServerId, userId domain.ProfileId, text string) (*api.CommentRecord, error) {
	reqBody := api.CreateCommentRequest{
		PostId: postId,
		UserId: userId,
		Text:   text,
	}
	if err := utils.ValidateStruct(reqBody); err != nil {
		return nil, err
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment request: %w", err)
	}

	resp, err := c.do(ctx, "POST", "/comments", "/comments", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("failed to create comment: %s", string(bodyBytes)), StatusCode: resp.StatusCode,
		}
	}

	var created api.CommentResponse
	if err := utils.DecodeValidate(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("cannot decode created comment response: %w", err)
	}
	if created.Data == nil {
		return nil, fmt.Errorf("created comment response has no data")
	}
	return created.Data, nil
}

// DeleteComment asks the remote service to remove a comment.
func (c *APIClient) DeleteComment(ctx context.Context, commentId domain.CommentId) error {
	resp, err := c.do(ctx, "DELETE", "/comments/{id}", "/comments/"+commentId, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("failed to delete comment: %s", string(bodyBytes)), StatusCode: resp.StatusCode,
		}
	}
	return nil
}
