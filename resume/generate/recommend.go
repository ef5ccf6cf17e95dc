package generate

import (
	"sort"
	"strings"
	"unicode"

	"resume-builder/resume/model"
)

const maxRecommendations = 7

type recommendInput struct {
	fields         model.ResumeFieldSet
	tpl            Template
	jobDescription string
}

// recommend builds deterministic improvement tips for a field set.
func recommend(in recommendInput) []model.Recommendation {
	mappers := []func(recommendInput) []model.Recommendation{
		fromMissingJDKeywords,
		fromMissingInformation,
		fromExperience,
		fromSkillGaps,
	}
	candidates := make([]model.Recommendation, 0, 8)
	for _, mapper := range mappers {
		candidates = append(candidates, mapper(in)...)
	}

	deduped := dedupe(candidates)
	sortRecommendations(deduped)
	if len(deduped) > maxRecommendations {
		deduped = deduped[:maxRecommendations]
	}
	for i := range deduped {
		deduped[i].Order = i + 1
	}
	return deduped
}

func fromMissingJDKeywords(in recommendInput) []model.Recommendation {
	if strings.TrimSpace(in.jobDescription) == "" {
		return nil
	}
	keywords := MissingKeywords(in.jobDescription, in.fields.Skills, in.tpl)
	if len(keywords) == 0 {
		return nil
	}
	return []model.Recommendation{{
		ID:       "ATS_MISSING_JD_KEYWORDS",
		Category: "ATS",
		Severity: "warning",
		Title:    "Add missing job keywords",
		Why:      "Improves ATS match and helps recruiters quickly spot relevant skills.",
		Action:   "Mention these job keywords where they are true for you: " + strings.Join(keywords, ", "),
		Impact:   "high",
	}}
}

func fromMissingInformation(in recommendInput) []model.Recommendation {
	f := in.fields
	var missing []string
	if f.Email == "" && f.Phone == "" {
		missing = append(missing, "contact details")
	}
	if f.Summary == "" {
		missing = append(missing, "professional summary")
	}
	if len(f.Skills) == 0 {
		missing = append(missing, "skills")
	}
	if len(f.Education) == 0 {
		missing = append(missing, "education")
	}

	out := make([]model.Recommendation, 0, len(missing))
	for _, item := range missing {
		severity := "info"
		impact := "low"
		if item == "contact details" || item == "skills" {
			severity, impact = "warning", "medium"
		}
		out = append(out, model.Recommendation{
			ID:       "MISSING_INFO_" + slugify(item),
			Category: "STRUCTURE",
			Severity: severity,
			Title:    "Add missing information: " + item,
			Why:      "Recruiters expect this detail to evaluate fit quickly.",
			Action:   "Add your " + item + ".",
			Impact:   impact,
		})
	}
	return out
}

func fromExperience(in recommendInput) []model.Recommendation {
	var bare []string
	var quantified bool
	var highlights int
	for _, exp := range in.fields.Experience {
		if len(exp.Highlights) == 0 {
			bare = append(bare, exp.Headline())
		}
		for _, h := range exp.Highlights {
			highlights++
			if strings.IndexFunc(h, unicode.IsDigit) >= 0 {
				quantified = true
			}
		}
	}

	var out []model.Recommendation
	if len(bare) > 0 {
		out = append(out, model.Recommendation{
			ID:       "EXPERIENCE_ADD_HIGHLIGHTS",
			Category: "EXPERIENCE",
			Severity: "warning",
			Title:    "Describe what you achieved in each role",
			Why:      "Roles without highlights read as job titles only.",
			Action:   "Add two or three highlights for: " + strings.Join(bare, "; "),
			Impact:   "medium",
		})
	}
	if highlights > 0 && !quantified {
		out = append(out, model.Recommendation{
			ID:       "EXPERIENCE_QUANTIFY",
			Category: "EXPERIENCE",
			Severity: "info",
			Title:    "Quantify your impact",
			Why:      "Numbers make achievements concrete and comparable.",
			Action:   "Add metrics such as percentages, volumes or time saved to your highlights.",
			Impact:   "medium",
		})
	}
	return out
}

func fromSkillGaps(in recommendInput) []model.Recommendation {
	have := make(map[string]bool, len(in.fields.Skills))
	for _, s := range in.fields.Skills {
		have[strings.ToLower(s)] = true
	}
	var gaps []string
	for _, s := range in.tpl.SuggestedSkills {
		if !have[strings.ToLower(s)] {
			gaps = append(gaps, s)
		}
	}
	if len(gaps) == 0 || len(in.fields.Skills) >= 8 {
		return nil
	}
	return []model.Recommendation{{
		ID:       "SKILLS_CATEGORY_GAPS",
		Category: "SKILLS",
		Severity: "info",
		Title:    "Cover the core skills for " + in.tpl.Headline + " roles",
		Why:      "Hiring teams scan for the skills typical of the role.",
		Action:   "If you have them, list: " + strings.Join(gaps, ", "),
		Impact:   "low",
	}}
}

func severityRank(value string) int {
	switch value {
	case "critical":
		return 3
	case "warning":
		return 2
	default:
		return 1
	}
}

func impactRank(value string) int {
	switch value {
	case "high":
		return 3
	case "medium":
		return 2
	default:
		return 1
	}
}

func categoryRank(value string) int {
	switch value {
	case "ATS":
		return 4
	case "SKILLS":
		return 3
	case "EXPERIENCE":
		return 2
	case "STRUCTURE":
		return 1
	default:
		return 0
	}
}

func slugify(input string) string {
	var b strings.Builder
	lastSep := false
	for _, r := range strings.ToUpper(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSep = false
			continue
		}
		if !lastSep {
			b.WriteByte('_')
			lastSep = true
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		return "ITEM"
	}
	return out
}

func dedupe(items []model.Recommendation) []model.Recommendation {
	seen := make(map[string]bool, len(items))
	out := make([]model.Recommendation, 0, len(items))
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}

func sortRecommendations(items []model.Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if severityRank(a.Severity) != severityRank(b.Severity) {
			return severityRank(a.Severity) > severityRank(b.Severity)
		}
		if impactRank(a.Impact) != impactRank(b.Impact) {
			return impactRank(a.Impact) > impactRank(b.Impact)
		}
		if categoryRank(a.Category) != categoryRank(b.Category) {
			return categoryRank(a.Category) > categoryRank(b.Category)
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}
