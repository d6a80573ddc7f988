// Package providers contains system-level interfaces.
package providers

import (
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/systems"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider
	NodeID() string
	Cron() ICronProvider
	Secrets() common.ISecretProvider
	Security() ISecurityProvider
	NeatoSettings() *NeatoSettings
	ServerSettings() *ServerSettings
}

// NeatoSettings has configured data for vendor cloud.
type NeatoSettings struct {
	Endpoint    string   `yaml:"endpoint" validate:"required,url" default:"https://beehive.neatocloud.com"`
	TokenSecret string   `yaml:"tokenSecret" validate:"required" default:"neato_token"`
	Robots      []string `yaml:"robots" validate:"dive,glob"`
	TimeoutSec  int      `yaml:"timeoutSec" validate:"gte=1,lte=300" default:"30"`
}

// ServerSettings has configured data for API server.
// Users contains bcrypt password hashes.
type ServerSettings struct {
	Port  int               `yaml:"port" validate:"required,port" default:"8000"`
	Users map[string]string `yaml:"users"`
}
