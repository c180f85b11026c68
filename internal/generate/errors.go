package generate

import "errors"

// ErrGenerationFailed is returned when Generate exhausts
// core.MaxGenerationAttempts without landing on the requested difficulty
// class.
var ErrGenerationFailed = errors.New("generate: exhausted attempts without reaching target difficulty")
