package server

import "fmt"

// ErrUnknownCamera defines unknown camera error.
type ErrUnknownCamera struct {
	ID string
}

// Error formats output.
func (e *ErrUnknownCamera) Error() string {
	return fmt.Sprintf("camera %s is unknown", e.ID)
}

// ErrNoImage defines camera without available image.
type ErrNoImage struct {
	ID string
}

// Error formats output.
func (e *ErrNoImage) Error() string {
	return fmt.Sprintf("camera %s has no image", e.ID)
}
