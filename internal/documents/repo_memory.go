package documents

import (
	"context"
	"sort"
	"sync"

	"resume-builder/resume/model"
)

// MemoryRepo is an in-memory DocumentsRepo. Each session keeps at most
// maxPerSession documents; the oldest is evicted first. At most maxSessions
// sessions are held; the least recently written one is dropped first.
type MemoryRepo struct {
	mu            sync.RWMutex
	maxPerSession int
	maxSessions   int
	seq           uint64
	data          map[string][]model.GeneratedDocument // sessionId -> documents, oldest first
	written       map[string]uint64                    // sessionId -> seq of last Create
}

// NewMemoryRepo constructs a MemoryRepo. Limits <= 0 mean unbounded.
func NewMemoryRepo(maxPerSession, maxSessions int) *MemoryRepo {
	return &MemoryRepo{
		maxPerSession: maxPerSession,
		maxSessions:   maxSessions,
		data:          make(map[string][]model.GeneratedDocument),
		written:       make(map[string]uint64),
	}
}

// Create appends a document to the session, evicting the oldest over the cap.
func (r *MemoryRepo) Create(ctx context.Context, sessionID string, doc model.GeneratedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessionID == "" || doc.ID == "" {
		return ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[sessionID]; !ok && r.maxSessions > 0 && len(r.data) >= r.maxSessions {
		r.evictStalestSession()
	}
	r.seq++
	r.written[sessionID] = r.seq
	docs := append(r.data[sessionID], doc)
	if r.maxPerSession > 0 && len(docs) > r.maxPerSession {
		docs = append([]model.GeneratedDocument(nil), docs[len(docs)-r.maxPerSession:]...)
	}
	r.data[sessionID] = docs
	return nil
}

func (r *MemoryRepo) evictStalestSession() {
	var (
		stalest string
		oldest  uint64
	)
	for id, seq := range r.written {
		if stalest == "" || seq < oldest {
			stalest, oldest = id, seq
		}
	}
	delete(r.data, stalest)
	delete(r.written, stalest)
}

// GetByID returns a document by ID within a session.
func (r *MemoryRepo) GetByID(ctx context.Context, sessionID, documentID string) (model.GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return model.GeneratedDocument{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.data[sessionID] {
		if doc.ID == documentID {
			return doc, nil
		}
	}
	return model.GeneratedDocument{}, ErrNotFound
}

// ListBySession returns documents for a session, newest first, honoring limit/offset.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.GeneratedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	docs := append([]model.GeneratedDocument(nil), r.data[sessionID]...)
	r.mu.RUnlock()

	if offset >= len(docs) {
		return []model.GeneratedDocument{}, nil
	}

	// Insertion order breaks CreatedAt ties.
	for i, j := 0, len(docs)-1; i < j; i, j = i+1, j-1 {
		docs[i], docs[j] = docs[j], docs[i]
	}
	sort.SliceStable(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return docs[offset:end], nil
}
