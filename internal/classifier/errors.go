package classifier

import "errors"

var (
	// ErrModelNotLoaded indicates the model artifact is missing, corrupt or was never loaded.
	ErrModelNotLoaded = errors.New("model not loaded")

	// ErrInvalidTrainingData indicates the training samples cannot produce a model.
	ErrInvalidTrainingData = errors.New("invalid training data")
)
