package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/feedline-dev/feedline/internal/api"
	"github.com/feedline-dev/feedline/internal/domain"
	internal_errors "github.com/feedline-dev/feedline/internal/errors"
	"github.com/feedline-dev/feedline/internal/middleware/metrics"
	"github.com/feedline-dev/feedline/internal/utils"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// ListPosts fetches the full post collection in server order.
func (c *APIClient) ListPosts(ctx context.Context) ([]api.PostRecord, error) {
	resp, err := c.do(ctx, "GET", "/post", "/post", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: "failed to list posts", StatusCode: resp.StatusCode,
		}
	}

	var listed api.PostListResponse
	if err := utils.Decode(resp.Body, &listed); err != nil {
		return nil, fmt.Errorf("cannot decode post list response: %w", err)
	}
	return listed.Data, nil
}

// postMultipartRequest sends a multipart/form-data POST request with the
// composer fields and an optional single image.
func (c *APIClient) postMultipartRequest(ctx context.Context, path, text, location string, image *domain.PendingImage) ([]byte, int, error) {
	pipeReader, pipeWriter := io.Pipe()
	writer := multipart.NewWriter(pipeWriter)

	go func() {
		defer pipeWriter.Close()
		defer writer.Close()

		if err := writer.WriteField("desc", text); err != nil {
			pipeWriter.CloseWithError(err)
			return
		}
		if err := writer.WriteField("location", location); err != nil {
			pipeWriter.CloseWithError(err)
			return
		}

		if image != nil {
			h := make(textproto.MIMEHeader)
			h.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name="postImage"; filename="%s"`,
					escapeQuotes(image.Filename)))
			if image.MimeType != "" {
				h.Set("Content-Type", image.MimeType)
			}

			part, err := writer.CreatePart(h)
			if err != nil {
				pipeWriter.CloseWithError(err)
				return
			}
			if _, err := io.Copy(part, bytes.NewReader(image.Data)); err != nil {
				pipeWriter.CloseWithError(err)
				return
			}
		}
	}()

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+path, pipeReader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveRemote("POST", path, err, 0)
		return nil, 0, fmt.Errorf("remote service unavailable: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveRemote("POST", path, nil, resp.StatusCode)

	bodyBytes, _ := io.ReadAll(resp.Body)
	return bodyBytes, resp.StatusCode, nil
}

// CreatePost submits a new post and returns the created server record.
func (c *APIClient) CreatePost(ctx context.Context, text, location string, image *domain.PendingImage) (*api.PostRecord, error) {
	bodyBytes, statusCode, err := c.postMultipartRequest(ctx, "/post", text, location, image)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("failed to create post: %s", string(bodyBytes)), StatusCode: statusCode,
		}
	}

	var created api.PostResponse
	if err := utils.DecodeValidate(io.NopCloser(bytes.NewReader(bodyBytes)), &created); err != nil {
		return nil, fmt.Errorf("cannot decode created post response: %w", err)
	}
	if created.Data == nil {
		return nil, fmt.Errorf("created post response has no data")
	}
	return created.Data, nil
}

// DeletePost asks the remote service to remove a post. Success is the only
// signal the caller gets; the post record itself is not returned.
func (c *APIClient) DeletePost(ctx context.Context, serverId domain.ServerId) error {
	resp, err := c.do(ctx, "DELETE", "/post/{id}", "/post/"+serverId, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &internal_errors.ErrorWithStatusCode{
			Message: fmt.Sprintf("failed to delete post: %s", string(bodyBytes)), StatusCode: resp.StatusCode,
		}
	}
	return nil
}
