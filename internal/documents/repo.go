package documents

import (
	"context"

	"resume-builder/resume/model"
)

// DocumentsRepo keeps generated documents per session.
type DocumentsRepo interface {
	Create(ctx context.Context, sessionID string, doc model.GeneratedDocument) error
	GetByID(ctx context.Context, sessionID, documentID string) (model.GeneratedDocument, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]model.GeneratedDocument, error)
}
