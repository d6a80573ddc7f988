//+build !release

package mocks

import (
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/systems"
)

// IFakeSettings adds test helpers to the settings provider.
type IFakeSettings interface {
	SetSecurity(security providers.ISecurityProvider)
}

type fakeSettings struct {
	logger   common.ILoggerProvider
	cron     providers.ICronProvider
	secrets  common.ISecretProvider
	security providers.ISecurityProvider
	neato    *providers.NeatoSettings
	server   *providers.ServerSettings
}

func (s *fakeSettings) SystemLogger() common.ILoggerProvider {
	return s.logger
}

func (s *fakeSettings) PluginLogger(systems.SystemType, string) common.ILoggerProvider {
	return s.logger
}

func (s *fakeSettings) NodeID() string {
	return "test-node"
}

func (s *fakeSettings) Cron() providers.ICronProvider {
	return s.cron
}

func (s *fakeSettings) Secrets() common.ISecretProvider {
	return s.secrets
}

func (s *fakeSettings) Security() providers.ISecurityProvider {
	return s.security
}

func (s *fakeSettings) NeatoSettings() *providers.NeatoSettings {
	return s.neato
}

func (s *fakeSettings) ServerSettings() *providers.ServerSettings {
	return s.server
}

func (s *fakeSettings) SetSecurity(security providers.ISecurityProvider) {
	s.security = security
}

// FakeNewSettings creates fake settings provider.
// Nil neato settings are replaced with defaults.
func FakeNewSettings(logCallback func(string), cron providers.ICronProvider,
	secrets map[string]string, neato *providers.NeatoSettings) providers.ISettingsProvider {
	if nil == neato {
		neato = &providers.NeatoSettings{
			Endpoint:    "http://localhost",
			TokenSecret: "neato_token",
			TimeoutSec:  5,
		}
	}

	if nil == cron {
		cron = FakeNewCron()
	}

	return &fakeSettings{
		logger:   FakeNewLogger(logCallback),
		cron:     cron,
		secrets:  FakeNewSecretStore(secrets, true),
		security: &fakeSecurity{},
		neato:    neato,
		server:   &providers.ServerSettings{Port: 8000},
	}
}
