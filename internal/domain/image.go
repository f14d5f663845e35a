package domain

// PendingImage is a validated composer upload waiting to be submitted.
type PendingImage struct {
	Filename  string
	MimeType  string
	SizeBytes int64
	Width     int
	Height    int
	Data      []byte
}
