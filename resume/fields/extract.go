// Package fields pulls a structured ResumeFieldSet out of free resume text.
//
// Extraction is heuristic: it recognizes common section headings, contact
// patterns and "Role at Company" style experience lines. Anything it cannot
// place is left out rather than guessed.
package fields

import (
	"regexp"
	"strings"

	"resume-builder/resume/model"
)

type section int

const (
	sectionNone section = iota
	sectionSummary
	sectionSkills
	sectionExperience
	sectionEducation
	sectionProjects
	sectionCertifications
	sectionOther
)

var headingAliases = map[string]section{
	"summary":                 sectionSummary,
	"professional summary":    sectionSummary,
	"profile":                 sectionSummary,
	"objective":               sectionSummary,
	"career objective":        sectionSummary,
	"about me":                sectionSummary,
	"skills":                  sectionSkills,
	"technical skills":        sectionSkills,
	"core skills":             sectionSkills,
	"key skills":              sectionSkills,
	"skill details":           sectionSkills,
	"experience":              sectionExperience,
	"work experience":         sectionExperience,
	"professional experience": sectionExperience,
	"employment history":      sectionExperience,
	"work history":            sectionExperience,
	"education":               sectionEducation,
	"education details":       sectionEducation,
	"academic background":     sectionEducation,
	"projects":                sectionProjects,
	"project experience":      sectionProjects,
	"personal projects":       sectionProjects,
	"certifications":          sectionCertifications,
	"certificates":            sectionCertifications,
	"licenses":                sectionCertifications,
	"languages":               sectionOther,
	"interests":               sectionOther,
	"hobbies":                 sectionOther,
	"references":              sectionOther,
	"additional information":  sectionOther,
	"contact":                 sectionOther,
}

const monthPrefix = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+`

var (
	emailPattern  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern  = regexp.MustCompile(`\+?\d[\d\s().\-]{7,}\d`)
	linkPattern   = regexp.MustCompile(`(?i)\b(?:https?://\S+|(?:www\.)?(?:linkedin\.com|github\.com|gitlab\.com)/\S+)`)
	periodPattern = regexp.MustCompile(`(?i)((?:\b` + monthPrefix + `)?\d{4})\s*(?:-|–|—|to)\s*((?:\b` + monthPrefix + `)?\d{4}|present|current|now)`)
	inlineSkills  = regexp.MustCompile(`(?i)^(?:technical\s+|core\s+|key\s+)?skills\s*[:\-]\s*(.+)$`)
	skillSplitter = regexp.MustCompile(`\s*[,;|•·]\s*`)
)

var entrySeparators = []string{" at ", " | ", " - ", " – ", " — ", " @ "}

// Extract parses free resume text into a field set.
func Extract(text string) model.ResumeFieldSet {
	var out model.ResumeFieldSet
	lines := splitLines(text)

	out.Email = emailPattern.FindString(text)
	out.Links = findLinks(text)
	out.Phone = findPhone(text)

	current := sectionNone
	var summary []string
	var exp *model.ExperienceEntry
	var proj *model.ProjectEntry

	flushExp := func() {
		if exp != nil {
			out.Experience = append(out.Experience, *exp)
			exp = nil
		}
	}
	flushProj := func() {
		if proj != nil {
			out.Projects = append(out.Projects, *proj)
			proj = nil
		}
	}

	for _, line := range lines {
		if sec, ok := headingSection(line); ok {
			flushExp()
			flushProj()
			current = sec
			continue
		}
		if m := inlineSkills.FindStringSubmatch(line); m != nil {
			out.Skills = append(out.Skills, splitSkills(m[1])...)
			continue
		}

		if current == sectionNone {
			switch {
			case out.Name == "" && looksLikeName(line):
				out.Name = line
			case out.Name != "" && out.Title == "" && looksLikeTitle(line):
				out.Title = line
			}
			continue
		}

		bullet, isBullet := stripBullet(line)
		switch current {
		case sectionSummary:
			summary = append(summary, bullet)
		case sectionSkills:
			out.Skills = append(out.Skills, splitSkills(bullet)...)
		case sectionCertifications:
			out.Certifications = append(out.Certifications, bullet)
		case sectionEducation:
			out.Education = append(out.Education, parseEducation(bullet))
		case sectionExperience:
			if isBullet && exp != nil {
				exp.Highlights = append(exp.Highlights, bullet)
				continue
			}
			if exp != nil && !startsEntry(line) {
				exp.Highlights = append(exp.Highlights, bullet)
				continue
			}
			flushExp()
			entry := parseExperience(bullet)
			exp = &entry
		case sectionProjects:
			if isBullet && proj != nil {
				proj.Highlights = append(proj.Highlights, bullet)
				continue
			}
			flushProj()
			entry := parseProject(bullet)
			proj = &entry
		}
	}
	flushExp()
	flushProj()

	out.Summary = strings.Join(summary, " ")
	return out.Clean()
}

// Merge overlays the non-empty values of override onto base.
func Merge(base, override model.ResumeFieldSet) model.ResumeFieldSet {
	out := base
	setString := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	setString(&out.Name, override.Name)
	setString(&out.Title, override.Title)
	setString(&out.Email, override.Email)
	setString(&out.Phone, override.Phone)
	setString(&out.Location, override.Location)
	setString(&out.Summary, override.Summary)
	if len(override.Links) > 0 {
		out.Links = override.Links
	}
	if len(override.Skills) > 0 {
		out.Skills = override.Skills
	}
	if len(override.Experience) > 0 {
		out.Experience = override.Experience
	}
	if len(override.Education) > 0 {
		out.Education = override.Education
	}
	if len(override.Projects) > 0 {
		out.Projects = override.Projects
	}
	if len(override.Certifications) > 0 {
		out.Certifications = override.Certifications
	}
	return out.Clean()
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func headingSection(line string) (section, bool) {
	key := strings.ToLower(strings.TrimSpace(strings.TrimRight(line, ":")))
	sec, ok := headingAliases[key]
	return sec, ok
}

func stripBullet(line string) (string, bool) {
	for _, prefix := range []string{"- ", "* ", "• ", "· ", "– "} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return line, false
}

func looksLikeName(line string) bool {
	if strings.ContainsAny(line, "@:/0123456789") {
		return false
	}
	words := strings.Fields(line)
	return len(words) >= 1 && len(words) <= 5
}

func looksLikeTitle(line string) bool {
	if emailPattern.MatchString(line) || findPhone(line) != "" || linkPattern.MatchString(line) {
		return false
	}
	return len(strings.Fields(line)) <= 8
}

func startsEntry(line string) bool {
	if periodPattern.MatchString(line) {
		return true
	}
	for _, sep := range entrySeparators {
		if strings.Contains(line, sep) {
			return true
		}
	}
	return false
}

func splitSkills(raw string) []string {
	var out []string
	for _, s := range skillSplitter.Split(raw, -1) {
		s = strings.Trim(strings.TrimSpace(s), ".")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// findPhone skips digit runs too short to be a phone number, such as year ranges.
func findPhone(text string) string {
	for _, m := range phonePattern.FindAllString(text, -1) {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 9 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

func findLinks(text string) []string {
	var out []string
	for _, l := range linkPattern.FindAllString(text, -1) {
		l = strings.TrimRight(l, ".,;)")
		if !strings.HasPrefix(strings.ToLower(l), "http") {
			l = "https://" + l
		}
		out = append(out, l)
	}
	return out
}

func parseExperience(line string) model.ExperienceEntry {
	var entry model.ExperienceEntry
	if m := periodPattern.FindStringSubmatchIndex(line); m != nil {
		entry.Start = strings.TrimSpace(line[m[2]:m[3]])
		entry.End = strings.TrimSpace(line[m[4]:m[5]])
		line = strings.TrimSpace(line[:m[0]] + line[m[1]:])
		line = strings.Trim(line, " ,|()-–—")
	}
	left, right, ok := splitEntry(line)
	if !ok {
		entry.Role = line
		return entry
	}
	entry.Role = left
	entry.Company = right
	return entry
}

func parseEducation(line string) model.EducationEntry {
	left, right, ok := splitEntry(line)
	if !ok {
		if l, r, found := strings.Cut(line, ", "); found {
			return model.EducationEntry{Degree: strings.TrimSpace(l), Institution: strings.TrimSpace(r)}
		}
		return model.EducationEntry{Institution: line}
	}
	return model.EducationEntry{Degree: left, Institution: right}
}

func parseProject(line string) model.ProjectEntry {
	left, right, ok := splitEntry(line)
	if !ok {
		if l, r, found := strings.Cut(line, ": "); found {
			return model.ProjectEntry{Name: strings.TrimSpace(l), Description: strings.TrimSpace(r)}
		}
		return model.ProjectEntry{Name: line}
	}
	return model.ProjectEntry{Name: left, Description: right}
}

func splitEntry(line string) (string, string, bool) {
	for _, sep := range entrySeparators {
		if l, r, found := strings.Cut(line, sep); found {
			l, r = strings.TrimSpace(l), strings.TrimSpace(r)
			if l != "" && r != "" {
				return l, r, true
			}
		}
	}
	return "", "", false
}
