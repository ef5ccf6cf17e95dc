package classify

import "resume-builder/internal/classifier"

// ErrModelNotLoaded is re-exported so handlers need not import the classifier.
var ErrModelNotLoaded = classifier.ErrModelNotLoaded
