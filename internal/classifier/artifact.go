package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const artifactVersion = 1

// Artifact is the serialized form of a fitted TF-IDF + linear model.
// Weights holds one row per label, each row aligned with Vocabulary.
type Artifact struct {
	Version    int         `json:"version"`
	Labels     []string    `json:"labels"`
	Vocabulary []string    `json:"vocabulary"`
	IDF        []float64   `json:"idf"`
	Weights    [][]float64 `json:"weights"`
	Intercepts []float64   `json:"intercepts"`
	TrainedAt  string      `json:"trainedAt,omitempty"`
}

const artifactSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "labels", "vocabulary", "idf", "weights", "intercepts"],
  "properties": {
    "version": {"type": "integer", "enum": [1]},
    "labels": {
      "type": "array",
      "minItems": 1,
      "uniqueItems": true,
      "items": {"type": "string", "minLength": 1}
    },
    "vocabulary": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "idf": {
      "type": "array",
      "items": {"type": "number", "minimum": 0}
    },
    "weights": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "array", "items": {"type": "number"}}
    },
    "intercepts": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "number"}
    },
    "trainedAt": {"type": "string"}
  }
}`

var artifactSchema = mustCompileSchema(artifactSchemaJSON)

func mustCompileSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("classifier: compile artifact schema: %v", err))
	}
	return schema
}

// DecodeArtifact validates raw JSON against the artifact schema and decodes it.
func DecodeArtifact(data []byte) (Artifact, error) {
	result, err := artifactSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: parse artifact: %v", ErrModelNotLoaded, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return Artifact{}, fmt.Errorf("%w: artifact schema: %s", ErrModelNotLoaded, strings.Join(msgs, "; "))
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return Artifact{}, fmt.Errorf("%w: decode artifact: %v", ErrModelNotLoaded, err)
	}
	if err := artifact.validateShape(); err != nil {
		return Artifact{}, err
	}
	return artifact, nil
}

// validateShape checks the dimensional consistency the schema cannot express.
func (a Artifact) validateShape() error {
	vocab := len(a.Vocabulary)
	if len(a.IDF) != vocab {
		return fmt.Errorf("%w: idf has %d entries, vocabulary has %d", ErrModelNotLoaded, len(a.IDF), vocab)
	}
	if len(a.Weights) != len(a.Labels) {
		return fmt.Errorf("%w: weights has %d rows, labels has %d", ErrModelNotLoaded, len(a.Weights), len(a.Labels))
	}
	if len(a.Intercepts) != len(a.Labels) {
		return fmt.Errorf("%w: intercepts has %d entries, labels has %d", ErrModelNotLoaded, len(a.Intercepts), len(a.Labels))
	}
	for i, row := range a.Weights {
		if len(row) != vocab {
			return fmt.Errorf("%w: weights row %d has %d columns, vocabulary has %d", ErrModelNotLoaded, i, len(row), vocab)
		}
	}
	seen := make(map[string]struct{}, vocab)
	for _, term := range a.Vocabulary {
		if _, ok := seen[term]; ok {
			return fmt.Errorf("%w: duplicate vocabulary term %q", ErrModelNotLoaded, term)
		}
		seen[term] = struct{}{}
	}
	return nil
}
