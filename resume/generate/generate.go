// Package generate fills category-specific templates with a candidate's
// resume fields to produce resumes, cover letters and portfolio profiles.
package generate

import (
	"fmt"
	"math"
	"strings"

	"resume-builder/resume/model"
)

const defaultMaxSkills = 12

// Generator produces documents. The zero value uses default weights.
type Generator struct {
	Weights   RankWeights
	MaxSkills int
}

// New returns a Generator with the given ranking weights and skill cap.
func New(weights RankWeights, maxSkills int) *Generator {
	return &Generator{Weights: weights, MaxSkills: maxSkills}
}

// Generate builds a document of the requested kind. Identical inputs yield
// identical documents; ID and CreatedAt are left for the caller to assign.
func (g *Generator) Generate(kind model.DocumentKind, fields model.ResumeFieldSet, prediction model.CategoryPrediction, jobDescription string) (model.GeneratedDocument, error) {
	if err := fields.Validate(); err != nil {
		return model.GeneratedDocument{}, err
	}
	fields = fields.Clean()
	jobDescription = strings.TrimSpace(jobDescription)

	c := g.compose(fields, prediction, jobDescription)
	doc := model.GeneratedDocument{
		Kind:           kind,
		Category:       prediction,
		SourceFields:   sourceFields(fields),
		JobDescription: jobDescription,
		Recommendations: recommend(recommendInput{
			fields:         fields,
			tpl:            c.tpl,
			jobDescription: jobDescription,
		}),
	}

	switch kind {
	case model.KindResume:
		doc.Title = fields.Name + " - " + c.role
		doc.Sections = c.resumeSections()
	case model.KindCoverLetter:
		doc.Title = "Cover Letter - " + fields.Name
		doc.Sections = c.coverLetterSections()
	case model.KindPortfolio:
		doc.Title = "Portfolio - " + fields.Name
		doc.Sections = c.portfolioSections()
	default:
		return model.GeneratedDocument{}, fmt.Errorf("%w: %q", model.ErrUnknownKind, kind)
	}
	return doc, nil
}

type composition struct {
	fields     model.ResumeFieldSet
	prediction model.CategoryPrediction
	tpl        Template
	role       string
	skills     []string
	matches    []string
	tailored   bool
}

func (g *Generator) compose(fields model.ResumeFieldSet, prediction model.CategoryPrediction, jd string) composition {
	tpl := TemplateFor(prediction.Label)
	c := composition{
		fields:     fields,
		prediction: prediction,
		tpl:        tpl,
		role:       tpl.Headline,
		skills:     fields.Skills,
		tailored:   jd != "",
	}
	if fields.Title != "" {
		c.role = fields.Title
	}
	if c.tailored {
		ranked := RankSkills(fields.Skills, jd, tpl, g.weights())
		c.skills = make([]string, 0, len(ranked))
		for _, r := range ranked {
			c.skills = append(c.skills, r.Name)
		}
		c.matches = MatchingKeywords(jd, fields.Skills, tpl)
	}
	if limit := g.maxSkills(); len(c.skills) > limit {
		c.skills = c.skills[:limit]
	}
	return c
}

func (g *Generator) weights() RankWeights {
	if g == nil || (g.Weights == RankWeights{}) {
		return DefaultRankWeights()
	}
	return g.Weights
}

func (g *Generator) maxSkills() int {
	if g == nil || g.MaxSkills <= 0 {
		return defaultMaxSkills
	}
	return g.MaxSkills
}

func (c composition) resumeSections() []model.Section {
	var out []model.Section
	if contact := c.contactLines(); len(contact) > 0 {
		out = append(out, model.Section{Heading: "Contact", Body: strings.Join(contact, "\n")})
	}
	summaryHeading := "Professional Summary"
	if c.tailored {
		summaryHeading = "Professional Summary (Tailored)"
	}
	out = append(out,
		model.Section{Heading: summaryHeading, Body: c.summary()},
		model.Section{Heading: "Core Skills", Body: c.skillsBody()},
	)
	if c.tailored {
		out = append(out, model.Section{Heading: "Key Alignment", Body: c.alignmentBody()})
	}
	out = append(out, model.Section{Heading: "Experience", Body: c.experienceBody()})
	if body := c.projectsBody(); body != "" {
		out = append(out, model.Section{Heading: "Projects", Body: body})
	}
	if body := c.educationBody(); body != "" {
		out = append(out, model.Section{Heading: "Education", Body: body})
	}
	if len(c.fields.Certifications) > 0 {
		out = append(out, model.Section{Heading: "Certifications", Body: bullets(c.fields.Certifications)})
	}
	out = append(out, model.Section{Heading: "Additional Information", Body: c.additionalInfo()})
	return out
}

func (c composition) coverLetterSections() []model.Section {
	recent := c.fields.Experience[0]

	experience := "Most recently I worked as " + recent.Headline()
	if p := recent.Period(); p != "" {
		experience += " (" + p + ")"
	}
	experience += "."
	if len(recent.Highlights) > 0 {
		experience += " " + sentence(recent.Highlights[0])
	}
	if len(c.skills) > 0 {
		experience += " My core skills include " + joinNatural(firstN(c.skills, 4)) + "."
	}

	alignment := "I am eager to bring my experience in " + c.tpl.Focus + " to your team."
	if c.tailored && len(c.matches) > 0 {
		alignment = "Your description emphasizes " + joinNatural(firstN(c.matches, 5)) +
			", which lines up directly with my background in " + c.tpl.Focus + "."
	}

	signature := "Sincerely,\n" + c.fields.Name
	if c.fields.Email != "" {
		signature += "\n" + c.fields.Email
	}
	if c.fields.Phone != "" {
		signature += "\n" + c.fields.Phone
	}

	return []model.Section{
		{Heading: "Salutation", Body: "Dear Hiring Manager,"},
		{Heading: "Opening", Body: "I am applying for the " + c.tpl.Headline + " position at your organization. " +
			"My background is in " + c.tpl.Focus + "."},
		{Heading: "Experience", Body: experience},
		{Heading: "Alignment", Body: alignment},
		{Heading: "Closing", Body: "Thank you for your time and consideration. " +
			"I would welcome the opportunity to discuss how I can contribute."},
		{Heading: "Signature", Body: signature},
	}
}

func (c composition) portfolioSections() []model.Section {
	projects := c.projectsBody()
	if projects == "" {
		projects = "Project details available on request."
	}
	contact := c.contactLines()
	if len(contact) == 0 {
		contact = []string{"Contact details available on request."}
	}
	return []model.Section{
		{Heading: "About Me", Body: c.summary()},
		{Heading: "Technical Skills", Body: c.skillsBody()},
		{Heading: "Projects", Body: projects},
		{Heading: "Experience", Body: c.experienceBody()},
		{Heading: "Career Objective", Body: c.tpl.Objective},
		{Heading: "Contact", Body: strings.Join(contact, "\n")},
	}
}

func (c composition) summary() string {
	s := c.fields.Summary
	if s == "" {
		s = c.role + " focused on " + c.tpl.Focus + "."
		recent := c.fields.Experience[0]
		s += " Most recent role: " + recent.Headline() + "."
	}
	if c.tailored && len(c.matches) > 0 {
		s += " Tailored to this role with emphasis on " + joinNatural(firstN(c.matches, 5)) + "."
	}
	return s
}

func (c composition) skillsBody() string {
	if len(c.skills) == 0 {
		return "Suggested focus areas: " + strings.Join(c.tpl.SuggestedSkills, ", ")
	}
	return bullets(c.skills)
}

func (c composition) alignmentBody() string {
	lines := []string{"- Target category: " + c.categoryLabel()}
	if len(c.matches) > 0 {
		lines = append(lines, "- Matching keywords: "+strings.Join(c.matches, ", "))
	} else {
		lines = append(lines, "- No direct keyword overlap with the job description")
	}
	if len(c.skills) > 0 {
		lines = append(lines, "- Most relevant skills: "+strings.Join(firstN(c.skills, 3), ", "))
	}
	return strings.Join(lines, "\n")
}

func (c composition) experienceBody() string {
	blocks := make([]string, 0, len(c.fields.Experience))
	for _, exp := range c.fields.Experience {
		head := exp.Headline()
		if p := exp.Period(); p != "" {
			head += " (" + p + ")"
		}
		if exp.Location != "" {
			head += ", " + exp.Location
		}
		block := head
		if len(exp.Highlights) > 0 {
			block += "\n" + bullets(exp.Highlights)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

func (c composition) projectsBody() string {
	blocks := make([]string, 0, len(c.fields.Projects))
	for _, p := range c.fields.Projects {
		block := p.Name
		if p.Description != "" {
			if block != "" {
				block += ": "
			}
			block += p.Description
		}
		if len(p.Highlights) > 0 {
			block += "\n" + bullets(p.Highlights)
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

func (c composition) educationBody() string {
	lines := make([]string, 0, len(c.fields.Education))
	for _, e := range c.fields.Education {
		var parts []string
		degree := e.Degree
		if e.Field != "" {
			degree = strings.TrimSpace(degree + " in " + e.Field)
		}
		if degree != "" {
			parts = append(parts, degree)
		}
		if e.Institution != "" {
			parts = append(parts, e.Institution)
		}
		line := strings.Join(parts, ", ")
		switch {
		case e.Start != "" && e.End != "":
			line += " (" + e.Start + " - " + e.End + ")"
		case e.End != "":
			line += " (" + e.End + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (c composition) additionalInfo() string {
	return "Target role: " + c.categoryLabel() + ". " + c.tpl.Objective
}

func (c composition) categoryLabel() string {
	label := c.prediction.Label.String()
	if label == "" {
		return c.tpl.Headline
	}
	return fmt.Sprintf("%s (%d%% confidence)", label, int(math.Round(c.prediction.Confidence*100)))
}

func (c composition) contactLines() []string {
	var out []string
	if c.fields.Email != "" {
		out = append(out, "Email: "+c.fields.Email)
	}
	if c.fields.Phone != "" {
		out = append(out, "Phone: "+c.fields.Phone)
	}
	if c.fields.Location != "" {
		out = append(out, "Location: "+c.fields.Location)
	}
	for _, l := range c.fields.Links {
		out = append(out, "Link: "+l)
	}
	return out
}

func sourceFields(f model.ResumeFieldSet) map[string]string {
	out := make(map[string]string)
	put := func(k, v string) {
		if v != "" {
			out[k] = v
		}
	}
	put("name", f.Name)
	put("title", f.Title)
	put("email", f.Email)
	put("phone", f.Phone)
	put("location", f.Location)
	put("summary", f.Summary)
	put("links", strings.Join(f.Links, ", "))
	put("skills", strings.Join(f.Skills, ", "))
	put("certifications", strings.Join(f.Certifications, ", "))

	exp := make([]string, 0, len(f.Experience))
	for _, e := range f.Experience {
		exp = append(exp, e.Headline())
	}
	put("experience", strings.Join(exp, "; "))

	edu := make([]string, 0, len(f.Education))
	for _, e := range f.Education {
		edu = append(edu, strings.TrimSpace(strings.Join([]string{e.Degree, e.Institution}, " ")))
	}
	put("education", strings.Join(edu, "; "))

	proj := make([]string, 0, len(f.Projects))
	for _, p := range f.Projects {
		proj = append(proj, p.Name)
	}
	put("projects", strings.Join(proj, "; "))
	return out
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "- "+it)
	}
	return strings.Join(lines, "\n")
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
