package object

import (
	"context"
	"errors"
	"io"
)

// ErrForbidden is returned when a key outside the caller's namespace is opened.
var ErrForbidden = errors.New("object belongs to another session")

// Object describes a stored blob.
type Object struct {
	Key         string
	SizeBytes   int64
	ContentType string
}

// ObjectStore keeps exported files per session.
type ObjectStore interface {
	Save(ctx context.Context, sessionID, fileName, contentType string, r io.Reader) (Object, error)
	Open(ctx context.Context, sessionID, key string) (io.ReadCloser, Object, error)
}
