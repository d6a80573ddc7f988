package settings

import (
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/systems"
	"go-home.io/x/neato/systems/logger"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger specifically for plugin provider.
func (s *settingsProvider) PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system.String(),
		Provider:     provider,
	})
}

// Secrets returns secrets store.
func (s *settingsProvider) Secrets() common.ISecretProvider {
	return s.secrets
}

// NodeID returns current instance node ID.
func (s *settingsProvider) NodeID() string {
	return s.nodeID
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Security returns a security provider.
func (s *settingsProvider) Security() providers.ISecurityProvider {
	return s.securityProvider
}

// NeatoSettings returns vendor cloud settings.
func (s *settingsProvider) NeatoSettings() *providers.NeatoSettings {
	return s.neato
}

// ServerSettings returns API server settings.
func (s *settingsProvider) ServerSettings() *providers.ServerSettings {
	return s.server
}
