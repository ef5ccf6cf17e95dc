package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DocumentKind selects which document the generator produces.
type DocumentKind string

const (
	KindResume      DocumentKind = "resume"
	KindCoverLetter DocumentKind = "cover_letter"
	KindPortfolio   DocumentKind = "portfolio"
)

// ErrUnknownKind is returned by ParseKind for unrecognized values.
var ErrUnknownKind = errors.New("unknown document kind")

// ParseKind maps user input to a DocumentKind. Empty input means resume.
func ParseKind(raw string) (DocumentKind, error) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "-", "_"))) {
	case "", "resume":
		return KindResume, nil
	case "cover_letter", "coverletter", "cover":
		return KindCoverLetter, nil
	case "portfolio":
		return KindPortfolio, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Section is one (heading, body) pair. Body lines starting with "- " are bullets.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Lines splits the body into lines, keeping blank lines as paragraph breaks.
func (s Section) Lines() []string {
	if s.Body == "" {
		return nil
	}
	return strings.Split(s.Body, "\n")
}

// GeneratedDocument is the structured content handed to the exporter.
type GeneratedDocument struct {
	ID              string             `json:"id,omitempty"`
	Kind            DocumentKind       `json:"kind"`
	Title           string             `json:"title"`
	Sections        []Section          `json:"sections"`
	Category        CategoryPrediction `json:"category"`
	SourceFields    map[string]string  `json:"sourceFields"`
	JobDescription  string             `json:"jobDescription,omitempty"`
	Recommendations []Recommendation   `json:"recommendations,omitempty"`
	CreatedAt       time.Time          `json:"createdAt,omitempty"`
}

// Recommendation is a deterministic improvement tip attached to a generated document.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Order    int    `json:"order"`
}

// Headings returns the section headings in order.
func (d GeneratedDocument) Headings() []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.Heading)
	}
	return out
}

// PlainText renders the document as heading-separated plain text.
func (d GeneratedDocument) PlainText() string {
	var b strings.Builder
	if d.Title != "" {
		b.WriteString(d.Title)
		b.WriteString("\n\n")
	}
	for i, s := range d.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.ToUpper(s.Heading))
		b.WriteString("\n")
		if s.Body != "" {
			b.WriteString(s.Body)
			b.WriteString("\n")
		}
	}
	return b.String()
}
