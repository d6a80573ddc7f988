// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"io/ioutil"
	"strings"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/pkg/errors"
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/systems"
	"go-home.io/x/neato/systems/logger"
	"go-home.io/x/neato/systems/secret"
	"go-home.io/x/neato/systems/security"
	"go-home.io/x/neato/utils"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
	// Default config file name inside configs directory.
	defaultConfigFile = "neato.yaml"
	// Validator provider name.
	validatorProvider = "validator"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	ConfigFile string `short:"c" long:"config" description:"Config file location. Defaults to configs/neato.yaml."`
	ConfigDir  string `short:"d" long:"dir" description:"Configs directory, used for secrets."`
	LogLevel   string `short:"l" long:"log" description:"Log level, overrides config value."`
}

// Raw config file.
type rawConfig struct {
	NodeID   string                    `yaml:"nodeID"`
	LogLevel string                    `yaml:"logLevel"`
	Neato    *providers.NeatoSettings  `yaml:"neato"`
	Server   *providers.ServerSettings `yaml:"server"`
}

// System settings.
type settingsProvider struct {
	logger           common.ILoggerProvider
	nodeID           string
	cron             providers.ICronProvider
	secrets          common.ISecretProvider
	securityProvider providers.ISecurityProvider

	neato  *providers.NeatoSettings
	server *providers.ServerSettings
}

// Load reads system configuration.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	if "" != options.ConfigDir {
		utils.ConfigDir = options.ConfigDir
	}

	location := options.ConfigFile
	if "" == location {
		location = utils.GetConfigFile(defaultConfigFile)
	}

	data, err := ioutil.ReadFile(location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	return parse(data, options)
}

// Parses raw config and constructs all providers.
func parse(data []byte, options *StartUpOptions) (*settingsProvider, error) {
	cfg := &rawConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	level := cfg.LogLevel
	if "" != options.LogLevel {
		level = options.LogLevel
	}

	s := &settingsProvider{
		logger: logger.NewConsoleLogger(level),
		nodeID: strings.TrimSpace(cfg.NodeID),
		neato:  cfg.Neato,
		server: cfg.Server,
	}

	validator := s.newValidator()

	if nil == s.neato {
		s.logger.Warn("Neato settings are not defined, using the default ones", common.LogSystemToken, logSystem)
		s.neato = &providers.NeatoSettings{}
	}

	if nil == s.server {
		s.logger.Warn("Server settings are not defined, using the default ones", common.LogSystemToken, logSystem)
		s.server = &providers.ServerSettings{}
	}

	if !validator.Validate(s.neato) || !validator.Validate(s.server) {
		s.logger.Warn("Config file validation failed", common.LogSystemToken, logSystem)
		return nil, &utils.ErrInvalidConfig{}
	}

	if "" == s.nodeID {
		s.nodeID = namesgenerator.GetRandomName(0)
		s.logger.Info("Node ID is not defined, generated a new one",
			common.LogSystemToken, logSystem, common.LogNodeToken, s.nodeID)
	}

	s.secrets = secret.NewSecretProvider(&secret.ConstructSecret{Logger: s.logger})
	s.securityProvider = security.NewSecurityProvider(&security.ConstructSecurityProvider{
		Logger: s.logger,
		Secret: s.secrets,
		Users:  s.server.Users,
	})
	s.cron = utils.NewCron()

	return s, nil
}

// Constructs config validator reporting under config system.
func (s *settingsProvider) newValidator() providers.IValidatorProvider {
	return utils.NewValidator(s.PluginLogger(systems.SysConfig, validatorProvider))
}
