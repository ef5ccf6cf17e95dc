package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/util"
)

// Store implements ObjectStore on the local filesystem. Objects live under
// <baseDir>/<sha256(session)>/<random>_<name>.
type Store struct {
	baseDir string
}

// New creates a local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

var _ object.ObjectStore = (*Store)(nil)

// Save writes r under the session's namespace with a random prefix. An empty
// contentType is sniffed from the first bytes.
func (s *Store) Save(ctx context.Context, sessionID, fileName, contentType string, r io.Reader) (object.Object, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return object.Object{}, fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return object.Object{}, err
	}

	sessionKey := util.HashSessionKey(sessionID)
	dirPath := filepath.Join(s.baseDir, sessionKey)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return object.Object{}, fmt.Errorf("mkdir: %w", err)
	}

	finalName := fmt.Sprintf("%s_%s", randomID(), sanitizedName)
	f, err := os.OpenFile(filepath.Join(dirPath, finalName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return object.Object{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var sniff [512]byte
	n, readErr := io.ReadFull(r, sniff[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return object.Object{}, fmt.Errorf("read sniff: %w", readErr)
	}
	if contentType == "" {
		contentType = http.DetectContentType(sniff[:n])
	}

	size := int64(0)
	if n > 0 {
		if _, err := f.Write(sniff[:n]); err != nil {
			return object.Object{}, fmt.Errorf("write sniff: %w", err)
		}
		size += int64(n)
	}
	written, err := io.Copy(f, r)
	if err != nil {
		return object.Object{}, fmt.Errorf("write body: %w", err)
	}
	size += written

	return object.Object{
		Key:         sessionKey + "/" + finalName,
		SizeBytes:   size,
		ContentType: contentType,
	}, nil
}

// Open opens a stored object. Keys outside the session's namespace return
// object.ErrForbidden.
func (s *Store) Open(ctx context.Context, sessionID, key string) (io.ReadCloser, object.Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, object.Object{}, err
	}

	clean := filepath.ToSlash(filepath.Clean(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) || strings.HasPrefix(clean, "/") {
		return nil, object.Object{}, fmt.Errorf("invalid storage key")
	}
	dir, name, ok := strings.Cut(clean, "/")
	if !ok || strings.Contains(name, "/") {
		return nil, object.Object{}, fmt.Errorf("invalid storage key")
	}
	if dir != util.HashSessionKey(sessionID) {
		return nil, object.Object{}, object.ErrForbidden
	}

	f, err := os.Open(filepath.Join(s.baseDir, dir, name))
	if err != nil {
		return nil, object.Object{}, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, object.Object{}, err
	}
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, object.Object{Key: clean, SizeBytes: info.Size(), ContentType: contentType}, nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
