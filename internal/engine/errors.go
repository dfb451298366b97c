package engine

import (
	"errors"
	"fmt"
)

// Error categories surfaced to callers. A missing transcript is not among them:
// it is resolved by the description fallback and never fails a request.
var (
	ErrExtraction     = errors.New("extraction failed")
	ErrStageExecution = errors.New("stage execution failed")
	ErrConfiguration  = errors.New("invalid configuration")
)

// StageError reports which generation stage aborted the pipeline.
// It matches both ErrStageExecution and the underlying cause with errors.Is.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s stage: %v", ErrStageExecution, e.Stage, e.Err)
}

func (e *StageError) Unwrap() []error {
	return []error{ErrStageExecution, e.Err}
}

// ConfigError builds an ErrConfiguration with a descriptive message.
func ConfigError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}
