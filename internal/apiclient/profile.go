package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/feedline-dev/feedline/internal/api"
	internal_errors "github.com/feedline-dev/feedline/internal/errors"
	"github.com/feedline-dev/feedline/internal/utils"
)

// ListProfiles fetches the actor profiles from the identity collaborator.
// The first record is the current actor.
func (c *APIClient) ListProfiles(ctx context.Context) ([]api.UserRecord, error) {
	resp, err := c.do(ctx, "GET", "/profile", "/profile", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: "failed to list profiles", StatusCode: resp.StatusCode,
		}
	}

	var listed api.ProfileListResponse
	if err := utils.Decode(resp.Body, &listed); err != nil {
		return nil, fmt.Errorf("cannot decode profile list response: %w", err)
	}
	return listed.Data, nil
}
