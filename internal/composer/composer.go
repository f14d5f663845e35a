package composer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/webp"

	"github.com/feedline-dev/feedline/internal/domain"
)

// ErrInvalidMimeType is returned when an uploaded file has a disallowed MIME type
var ErrInvalidMimeType = errors.New("invalid MIME type")

// ErrSubmissionPending is returned when a submit arrives while another one
// is still in flight.
var ErrSubmissionPending = errors.New("submission already pending")

var allowedImageMimes = map[string]bool{
	"image/gif":  true,
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// PostCreator is the feed operation the composer delegates to.
type PostCreator interface {
	CreatePost(ctx context.Context, text, location string, image *domain.PendingImage) (*domain.Post, error)
}

// Composer collects the post form fields and drives submission. While a
// create call is outstanding the pending flag blocks resubmission; a failed
// call leaves every field populated so the actor can retry.
type Composer struct {
	mu       sync.Mutex
	text     string
	location string
	image    *domain.PendingImage
	pending  bool

	feed PostCreator
}

func New(feed PostCreator) *Composer {
	return &Composer{feed: feed}
}

// State is a snapshot of the form for rendering.
type State struct {
	Text      string
	Location  string
	ImageName string
	Pending   bool
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := State{Text: c.text, Location: c.location, Pending: c.pending}
	if c.image != nil {
		s.ImageName = c.image.Filename
	}
	return s
}

// SetFields stores the free-text fields from the form.
func (c *Composer) SetFields(text, location string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.location = location
}

// AttachImage validates an uploaded file and stores it as the pending image,
// replacing any previous one. gif/jpeg/png/webp are accepted.
func (c *Composer) AttachImage(fileHeader *multipart.FileHeader) error {
	mimeType, err := detectMimeType(fileHeader)
	if err != nil {
		return err
	}
	if !allowedImageMimes[mimeType] {
		return fmt.Errorf("%w: %s (file: %s)", ErrInvalidMimeType, mimeType, fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	width, height := extractImageDimensions(data)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = &domain.PendingImage{
		Filename:  fileHeader.Filename,
		MimeType:  mimeType,
		SizeBytes: fileHeader.Size,
		Width:     width,
		Height:    height,
		Data:      data,
	}
	return nil
}

// Submit delegates to the feed controller. On success the form is cleared;
// on failure (or while another submit is pending) it is left as-is.
func (c *Composer) Submit(ctx context.Context) (*domain.Post, error) {
	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return nil, ErrSubmissionPending
	}
	c.pending = true
	text, location, image := c.text, c.location, c.image
	c.mu.Unlock()

	post, err := c.feed.CreatePost(ctx, text, location, image)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	if err != nil {
		return nil, err
	}
	// an empty submission is a no-op upstream; keep the fields then too
	if post != nil {
		c.text = ""
		c.location = ""
		c.image = nil
	}
	return post, nil
}

func detectMimeType(fileHeader *multipart.FileHeader) (string, error) {
	mimeType := fileHeader.Header.Get("Content-Type")

	// If no Content-Type or it's generic, detect from extension
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(fileHeader.Filename)
		if detectedType := mime.TypeByExtension(ext); detectedType != "" {
			mimeType = detectedType
		}
	}

	if mimeType == "" {
		return "", fmt.Errorf("could not detect MIME type for file: %s", fileHeader.Filename)
	}
	return mimeType, nil
}

func extractImageDimensions(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		// not decodable is not fatal, the asset host resolves the bytes
		return 0, 0
	}
	return cfg.Width, cfg.Height
}
