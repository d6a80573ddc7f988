package neato

import "fmt"

// ErrMissingSession defines an absent vendor session.
type ErrMissingSession struct {
}

// Error formats output.
func (*ErrMissingSession) Error() string {
	return "neato session is not available"
}

// ErrCommunication defines a failure while talking to the vendor cloud.
type ErrCommunication struct {
	Err error
}

// Error formats output.
func (e *ErrCommunication) Error() string {
	if nil == e.Err {
		return "neato communication failed"
	}

	return fmt.Sprintf("neato communication failed: %s", e.Err.Error())
}

// Cause returns underlying error.
func (e *ErrCommunication) Cause() error {
	return e.Err
}

// ErrNoMap defines robot without any reported map.
type ErrNoMap struct {
	Serial string
}

// Error formats output.
func (e *ErrNoMap) Error() string {
	return fmt.Sprintf("no maps reported for robot %s", e.Serial)
}

// ErrVendorResponse defines unexpected HTTP status from vendor cloud.
type ErrVendorResponse struct {
	Status int
}

// Error formats output.
func (e *ErrVendorResponse) Error() string {
	return fmt.Sprintf("vendor responded with status %d", e.Status)
}
