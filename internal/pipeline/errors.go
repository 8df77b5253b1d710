package pipeline

import (
	"errors"
	"fmt"
)

// ErrOutputMissing reports that neither the requested tree path nor its
// fallback appeared within the settle window.
var ErrOutputMissing = errors.New("tree output missing")

// ToolError reports a non-zero exit from an external tool. The pipeline
// treats it as fatal: no partial output is normalized.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }
