// Package common contains shared data available for all plugins.
package common

// ISecretProvider defines secrets provider which will be passed to every plugin.
type ISecretProvider interface {
	Get(string) (string, error)
	Set(name string, data string) error
}

// ILoggerProvider defines logger provider which will be passed to every plugin.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
}
