package documents

import (
	"time"

	"resume-builder/resume/model"
)

type generateRequest struct {
	Kind           string                `json:"kind"`
	ResumeText     string                `json:"resumeText"`
	Fields         *model.ResumeFieldSet `json:"fields,omitempty"`
	JobDescription string                `json:"jobDescription,omitempty"`
}

// DocumentSummary is the list representation of a generated document.
type DocumentSummary struct {
	DocumentID string                   `json:"documentId"`
	Kind       model.DocumentKind       `json:"kind"`
	Title      string                   `json:"title"`
	Category   model.CategoryPrediction `json:"category"`
	Tailored   bool                     `json:"tailored"`
	CreatedAt  time.Time                `json:"createdAt"`
}

func toSummary(doc model.GeneratedDocument) DocumentSummary {
	return DocumentSummary{
		DocumentID: doc.ID,
		Kind:       doc.Kind,
		Title:      doc.Title,
		Category:   doc.Category,
		Tailored:   doc.JobDescription != "",
		CreatedAt:  doc.CreatedAt,
	}
}
