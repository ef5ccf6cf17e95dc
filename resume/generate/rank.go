package generate

import (
	"sort"

	"resume-builder/internal/textprep"
)

// RankWeights tunes how skills are ordered against a job description.
type RankWeights struct {
	JobOverlap float64
	Category   float64
}

// DefaultRankWeights favours direct job-description overlap over category fit.
func DefaultRankWeights() RankWeights {
	return RankWeights{JobOverlap: 1.0, Category: 0.35}
}

// RankedSkill is a skill with its relevance score.
type RankedSkill struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// RankSkills scores each skill as
//
//	JobOverlap * |tokens(skill) ∩ tokens(jd)| / |tokens(skill)| + Category * [skill shares a category keyword]
//
// and returns them sorted by score, keeping input order among equal scores.
func RankSkills(skills []string, jobDescription string, tpl Template, w RankWeights) []RankedSkill {
	jd := textprep.TokenSet(jobDescription)
	keywords := make(map[string]struct{}, len(tpl.Keywords))
	for _, k := range tpl.Keywords {
		for _, t := range textprep.Tokens(k) {
			keywords[t] = struct{}{}
		}
	}

	out := make([]RankedSkill, 0, len(skills))
	for _, skill := range skills {
		out = append(out, RankedSkill{Name: skill, Score: skillScore(skill, jd, keywords, w)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func skillScore(skill string, jd, keywords map[string]struct{}, w RankWeights) float64 {
	tokens := uniqueTokens(skill)
	if len(tokens) == 0 {
		return 0
	}
	var hits int
	var categoryHit bool
	for _, t := range tokens {
		if _, ok := jd[t]; ok {
			hits++
		}
		if _, ok := keywords[t]; ok {
			categoryHit = true
		}
	}
	score := w.JobOverlap * float64(hits) / float64(len(tokens))
	if categoryHit {
		score += w.Category
	}
	return score
}

// MatchingKeywords returns the distinct job-description tokens that also
// appear in the candidate's skills or the category keywords, sorted.
func MatchingKeywords(jobDescription string, skills []string, tpl Template) []string {
	jd := textprep.TokenSet(jobDescription)
	candidate := make(map[string]struct{})
	for _, s := range skills {
		for _, t := range textprep.Tokens(s) {
			candidate[t] = struct{}{}
		}
	}
	for _, k := range tpl.Keywords {
		for _, t := range textprep.Tokens(k) {
			candidate[t] = struct{}{}
		}
	}

	var out []string
	for t := range jd {
		if _, ok := candidate[t]; ok {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}

// MissingKeywords returns category keywords the job description asks for
// that none of the candidate's skills mention, sorted.
func MissingKeywords(jobDescription string, skills []string, tpl Template) []string {
	jd := textprep.TokenSet(jobDescription)
	have := make(map[string]struct{})
	for _, s := range skills {
		for _, t := range textprep.Tokens(s) {
			have[t] = struct{}{}
		}
	}
	seen := make(map[string]struct{})
	var out []string
	for _, k := range tpl.Keywords {
		for _, t := range textprep.Tokens(k) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			_, inJD := jd[t]
			_, owned := have[t]
			if inJD && !owned {
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

func uniqueTokens(text string) []string {
	tokens := textprep.Tokens(text)
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
