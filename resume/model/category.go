package model

// Category is a job-role label the classifier was trained on.
type Category string

// CategoryPrediction is the classifier output for one resume.
type CategoryPrediction struct {
	Label      Category `json:"label"`
	Confidence float64  `json:"confidence"`
}

// String returns the label text.
func (c Category) String() string {
	return string(c)
}
