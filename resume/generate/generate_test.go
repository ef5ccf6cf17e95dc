package generate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

func sampleFields() model.ResumeFieldSet {
	return model.ResumeFieldSet{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Skills: []string{"Excel", "Python", "Public Speaking", "SQL"},
		Experience: []model.ExperienceEntry{
			{
				Role:       "Data Analyst",
				Company:    "Acme",
				Start:      "2019",
				Highlights: []string{"Cut reporting time by 40%"},
			},
		},
		Education: []model.EducationEntry{{Degree: "B.Sc.", Field: "Statistics", Institution: "State University"}},
	}
}

var dataScience = model.CategoryPrediction{Label: "Data Science", Confidence: 0.87}

func TestGenerateResumeSections(t *testing.T) {
	doc, err := New(DefaultRankWeights(), 12).Generate(model.KindResume, sampleFields(), dataScience, "")
	require.NoError(t, err)

	assert.Equal(t, model.KindResume, doc.Kind)
	assert.Equal(t, "Jane Doe - Data Scientist", doc.Title)
	assert.Equal(t, []string{
		"Contact",
		"Professional Summary",
		"Core Skills",
		"Experience",
		"Education",
		"Additional Information",
	}, doc.Headings())
	assert.Equal(t, dataScience, doc.Category)
	assert.Equal(t, "Jane Doe", doc.SourceFields["name"])
	assert.Contains(t, doc.PlainText(), "Data Analyst at Acme (2019 - Present)")
	assert.Contains(t, doc.PlainText(), "Data Science (87% confidence)")
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := New(DefaultRankWeights(), 12)
	for _, kind := range []model.DocumentKind{model.KindResume, model.KindCoverLetter, model.KindPortfolio} {
		a, err := g.Generate(kind, sampleFields(), dataScience, "python sql machine learning")
		require.NoError(t, err)
		b, err := g.Generate(kind, sampleFields(), dataScience, "python sql machine learning")
		require.NoError(t, err)
		assert.Equal(t, a, b, kind)
	}
}

func TestGenerateMissingRequiredFields(t *testing.T) {
	fields := sampleFields()
	fields.Name = "  "
	fields.Experience = nil

	_, err := New(DefaultRankWeights(), 12).Generate(model.KindResume, fields, dataScience, "")
	var missing *model.MissingRequiredFieldError
	require.True(t, errors.As(err, &missing))
	assert.ElementsMatch(t, []string{"name", "experience"}, missing.Fields)
}

func TestGenerateWithJobDescriptionAddsAlignment(t *testing.T) {
	jd := "We need SQL and Python experience for machine learning pipelines."
	doc, err := New(DefaultRankWeights(), 12).Generate(model.KindResume, sampleFields(), dataScience, jd)
	require.NoError(t, err)

	assert.Contains(t, doc.Headings(), "Key Alignment")
	assert.Contains(t, doc.Headings(), "Professional Summary (Tailored)")
	assert.Equal(t, jd, doc.JobDescription)

	var skills string
	for _, s := range doc.Sections {
		if s.Heading == "Core Skills" {
			skills = s.Body
		}
	}
	lines := strings.Split(skills, "\n")
	require.Len(t, lines, 4)
	assert.ElementsMatch(t, []string{"- Python", "- SQL"}, lines[:2])
}

func TestGenerateCoverLetterAndPortfolio(t *testing.T) {
	g := New(DefaultRankWeights(), 12)

	letter, err := g.Generate(model.KindCoverLetter, sampleFields(), dataScience, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Salutation", "Opening", "Experience", "Alignment", "Closing", "Signature"}, letter.Headings())
	assert.Contains(t, letter.PlainText(), "Dear Hiring Manager,")
	assert.Contains(t, letter.PlainText(), "Sincerely,\nJane Doe")

	portfolio, err := g.Generate(model.KindPortfolio, sampleFields(), dataScience, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"About Me", "Technical Skills", "Projects", "Experience", "Career Objective", "Contact"}, portfolio.Headings())
}

func TestGenerateUnknownCategoryUsesGenericTemplate(t *testing.T) {
	pred := model.CategoryPrediction{Label: "Astronaut", Confidence: 0.5}
	doc, err := New(DefaultRankWeights(), 12).Generate(model.KindResume, sampleFields(), pred, "")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe - Astronaut Professional", doc.Title)
	assert.False(t, KnownCategory(pred.Label))
	assert.True(t, KnownCategory("  data   science "))
}

func TestGenerateCapsSkills(t *testing.T) {
	fields := sampleFields()
	doc, err := New(DefaultRankWeights(), 2).Generate(model.KindResume, fields, dataScience, "")
	require.NoError(t, err)
	for _, s := range doc.Sections {
		if s.Heading == "Core Skills" {
			assert.Equal(t, "- Excel\n- Python", s.Body)
		}
	}
}

func TestRecommendationsAreOrdered(t *testing.T) {
	fields := sampleFields()
	fields.Experience = append(fields.Experience, model.ExperienceEntry{Role: "Intern", Company: "Globex"})

	doc, err := New(DefaultRankWeights(), 12).Generate(model.KindResume, fields, dataScience, "statistics and pandas required")
	require.NoError(t, err)
	require.NotEmpty(t, doc.Recommendations)

	assert.Equal(t, "ATS_MISSING_JD_KEYWORDS", doc.Recommendations[0].ID)
	assert.Contains(t, doc.Recommendations[0].Action, "pandas")
	for i, r := range doc.Recommendations {
		assert.Equal(t, i+1, r.Order)
	}
	ids := make([]string, 0, len(doc.Recommendations))
	for _, r := range doc.Recommendations {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "EXPERIENCE_ADD_HIGHLIGHTS")
	assert.Contains(t, ids, "MISSING_INFO_PROFESSIONAL_SUMMARY")
}
