package loop

import "fmt"

// SurfaceError reports a failure to set up, draw on or tear down the render
// surface. It always ends the run.
type SurfaceError struct {
	Op  string
	Err error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("surface %s: %v", e.Op, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// InputError reports a failure of the input source. It always ends the run.
type InputError struct {
	Op  string
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %s: %v", e.Op, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
