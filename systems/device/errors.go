package device

// ErrNoDataFromPlugin defines an empty response from plugin error.
type ErrNoDataFromPlugin struct {
}

// Error formats output.
func (*ErrNoDataFromPlugin) Error() string {
	return "plugin didn't return any data"
}

// ErrNoToken defines missing vendor token.
type ErrNoToken struct {
	Secret string
}

// Error formats output.
func (e *ErrNoToken) Error() string {
	return "vendor token is not found in secret " + e.Secret
}
