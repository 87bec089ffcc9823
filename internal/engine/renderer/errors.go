package renderer

import (
	"errors"
	"fmt"
)

// ErrDegenerateSurface matches any DegenerateSurfaceError with errors.Is.
var ErrDegenerateSurface = errors.New("degenerate rendering surface")

// DegenerateSurfaceError reports a zero or negative surface size that was
// replaced by the 1x1 minimum. The renderer has already recovered.
type DegenerateSurfaceError struct {
	Width, Height int
}

func (e *DegenerateSurfaceError) Error() string {
	return fmt.Sprintf("%v: %dx%d clamped to at least 1x1", ErrDegenerateSurface, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrDegenerateSurface) work.
func (e *DegenerateSurfaceError) Is(target error) bool {
	return target == ErrDegenerateSurface
}
