package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankSkillsByOverlap(t *testing.T) {
	tpl := TemplateFor("Data Science")
	skills := []string{"Public Speaking", "Machine Learning", "SQL", "Excel"}

	ranked := RankSkills(skills, "Looking for SQL and machine learning skills", tpl, DefaultRankWeights())

	names := make([]string, 0, len(ranked))
	for _, r := range ranked {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Machine Learning", "SQL", "Public Speaking", "Excel"}, names)
	assert.InDelta(t, 1.35, ranked[0].Score, 1e-9)
	assert.Zero(t, ranked[3].Score)
}

func TestRankSkillsIsStableForTies(t *testing.T) {
	ranked := RankSkills([]string{"Cooking", "Painting", "Singing"}, "unrelated text", genericTemplate, DefaultRankWeights())
	assert.Equal(t, "Cooking", ranked[0].Name)
	assert.Equal(t, "Painting", ranked[1].Name)
	assert.Equal(t, "Singing", ranked[2].Name)
}

func TestRankSkillsWeightsAreTunable(t *testing.T) {
	tpl := TemplateFor("Data Science")
	skills := []string{"Statistics", "Negotiation"}
	jd := "negotiation"

	byJob := RankSkills(skills, jd, tpl, RankWeights{JobOverlap: 1, Category: 0.1})
	assert.Equal(t, "Negotiation", byJob[0].Name)

	byCategory := RankSkills(skills, jd, tpl, RankWeights{JobOverlap: 0.1, Category: 1})
	assert.Equal(t, "Statistics", byCategory[0].Name)
}

func TestMatchingAndMissingKeywords(t *testing.T) {
	tpl := TemplateFor("Data Science")
	jd := "Python, pandas and statistics; excellent communication"

	assert.Equal(t, []string{"pandas", "python", "statistics"}, MatchingKeywords(jd, []string{"Python"}, tpl))
	assert.Equal(t, []string{"pandas", "statistics"}, MissingKeywords(jd, []string{"Python"}, tpl))
}
