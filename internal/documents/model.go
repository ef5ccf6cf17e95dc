package documents

import (
	"resume-builder/internal/shared/storage/object"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

// GenerateInput is what a caller submits to produce a document.
type GenerateInput struct {
	Kind           model.DocumentKind
	ResumeText     string
	Fields         *model.ResumeFieldSet
	JobDescription string
}

// ExportResult is a rendered document plus the saved copy, when the export
// directory is enabled.
type ExportResult struct {
	Artifact render.Artifact
	Saved    *object.Object
}
