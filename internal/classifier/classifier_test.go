package classifier

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/textprep"
	"resume-builder/resume/model"
)

func trainingSamples() []Sample {
	return []Sample{
		{Label: "Data Science", Text: "Machine learning models in Python with pandas, scikit-learn and statistics."},
		{Label: "Data Science", Text: "Deep learning, regression analysis, feature engineering and data visualization."},
		{Label: "Data Science", Text: "Built predictive models and NLP pipelines, tuned neural networks."},
		{Label: "HR", Text: "Recruitment, onboarding, payroll and employee relations for a large workforce."},
		{Label: "HR", Text: "Talent acquisition, interviewing candidates and performance appraisal policies."},
		{Label: "HR", Text: "Managed employee engagement programs, payroll compliance and recruitment drives."},
		{Label: "Civil Engineer", Text: "Site supervision, structural design, concrete and AutoCAD drawings for bridges."},
		{Label: "Civil Engineer", Text: "Construction planning, surveying, estimation and structural analysis of buildings."},
		{Label: "Civil Engineer", Text: "Road construction projects, concrete quality control and site surveying."},
	}
}

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func trainedClassifier(t *testing.T) (*Classifier, Artifact) {
	t.Helper()
	opts := DefaultTrainOptions()
	opts.Now = fixedNow
	artifact, err := Train(trainingSamples(), opts)
	require.NoError(t, err)
	c, err := New(artifact)
	require.NoError(t, err)
	return c, artifact
}

func mustNormalize(t *testing.T, text string) textprep.PreprocessedText {
	t.Helper()
	p, err := textprep.Normalize(text)
	require.NoError(t, err)
	return p
}

func TestTrainProducesSortedLabelsAndVocabulary(t *testing.T) {
	_, artifact := trainedClassifier(t)

	assert.Equal(t, []string{"Civil Engineer", "Data Science", "HR"}, artifact.Labels)
	assert.IsNonDecreasing(t, artifact.Vocabulary)
	assert.Len(t, artifact.IDF, len(artifact.Vocabulary))
	assert.Equal(t, "2024-05-01T12:00:00Z", artifact.TrainedAt)
}

func TestPredictPicksMatchingCategory(t *testing.T) {
	c, _ := trainedClassifier(t)

	cases := map[string]model.Category{
		"Experienced in python machine learning and deep learning models":   "Data Science",
		"Handled payroll, recruitment and onboarding of new employees":      "HR",
		"Supervised concrete works and structural design on the bridge site": "Civil Engineer",
	}
	for text, want := range cases {
		got, err := c.Predict(mustNormalize(t, text))
		require.NoError(t, err)
		assert.Equal(t, want, got.Label, text)
		assert.Greater(t, got.Confidence, 1.0/3.0, text)
		assert.LessOrEqual(t, got.Confidence, 1.0, text)
	}
}

func TestPredictLabelAlwaysInFixedSet(t *testing.T) {
	c, _ := trainedClassifier(t)
	labels := c.Labels()

	inputs := []string{"zzz qqq unknown words only", "42", "!!!", "a the of", "Python payroll concrete"}
	for _, in := range inputs {
		got, err := c.Predict(mustNormalize(t, in))
		require.NoError(t, err)
		assert.Contains(t, labels, got.Label, in)
		assert.GreaterOrEqual(t, got.Confidence, 0.0, in)
		assert.LessOrEqual(t, got.Confidence, 1.0, in)
	}
}

func TestProbabilitiesSumToOne(t *testing.T) {
	c, _ := trainedClassifier(t)
	probs := c.Probabilities(mustNormalize(t, "recruitment and statistics"))

	var total float64
	for _, p := range probs {
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c, artifact := trainedClassifier(t)
	path := filepath.Join(t.TempDir(), "nested", "model.json")
	require.NoError(t, Save(path, artifact))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Labels(), loaded.Labels())

	text := mustNormalize(t, "talent acquisition and employee relations")
	want, err := c.Predict(text)
	require.NoError(t, err)
	got, err := loaded.Predict(text)
	require.NoError(t, err)
	assert.Equal(t, want.Label, got.Label)
	assert.InDelta(t, want.Confidence, got.Confidence, 1e-12)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrModelNotLoaded)
}

func TestLoadCorruptArtifact(t *testing.T) {
	cases := map[string]string{
		"not json":        "pickle-bytes",
		"missing labels":  `{"version":1,"vocabulary":[],"idf":[],"weights":[[]],"intercepts":[0]}`,
		"wrong version":   `{"version":2,"labels":["A"],"vocabulary":[],"idf":[],"weights":[[]],"intercepts":[0]}`,
		"shape mismatch":  `{"version":1,"labels":["A","B"],"vocabulary":["x"],"idf":[1],"weights":[[1]],"intercepts":[0,0]}`,
		"idf mismatch":    `{"version":1,"labels":["A"],"vocabulary":["x","y"],"idf":[1],"weights":[[1,2]],"intercepts":[0]}`,
		"duplicate terms": `{"version":1,"labels":["A"],"vocabulary":["x","x"],"idf":[1,1],"weights":[[1,2]],"intercepts":[0]}`,
	}
	dir := t.TempDir()
	for name, body := range cases {
		path := filepath.Join(dir, name+".json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrModelNotLoaded, name)
	}
}

func TestNilClassifierIsNotLoaded(t *testing.T) {
	var c *Classifier
	_, err := c.Predict(textprep.PreprocessedText{Tokens: []string{"python"}})
	assert.ErrorIs(t, err, ErrModelNotLoaded)
	assert.Nil(t, c.Labels())
}

func TestTrainRejectsDegenerateInput(t *testing.T) {
	_, err := Train(nil, DefaultTrainOptions())
	assert.ErrorIs(t, err, ErrInvalidTrainingData)

	_, err = Train([]Sample{{Label: "A", Text: "one"}, {Label: "A", Text: "two"}}, DefaultTrainOptions())
	assert.ErrorIs(t, err, ErrInvalidTrainingData)

	_, err = Train([]Sample{{Label: "A", Text: "123"}, {Label: "B", Text: "!!!"}}, DefaultTrainOptions())
	assert.ErrorIs(t, err, ErrInvalidTrainingData)
}

func TestBuildVocabularyHonorsLimits(t *testing.T) {
	docs := [][]string{
		{"go", "go", "rust"},
		{"go", "java"},
		{"python"},
	}
	vocab, df := buildVocabulary(docs, 1, 2)
	assert.Equal(t, []string{"go", "java"}, vocab)
	assert.Equal(t, 2, df["go"])

	vocab, _ = buildVocabulary(docs, 2, 0)
	assert.Equal(t, []string{"go"}, vocab)
}
