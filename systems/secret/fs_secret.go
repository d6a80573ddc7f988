// Package secret contains file-based secrets store.
package secret

import (
	"io/ioutil"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/utils"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system representation.
	logSystem = "secret"
	// Secrets file name inside configs directory.
	secretsFile = "_secrets.yaml"
)

// ErrSecretNotFound defines missing secret error.
type ErrSecretNotFound struct {
	Name string
}

// Error formats output.
func (e *ErrSecretNotFound) Error() string {
	return "secret " + e.Name + " is not found"
}

// File-based secrets store.
type fsSecret struct {
	sync.Mutex

	location string
	logger   common.ILoggerProvider
	secrets  map[string]string
}

// ConstructSecret has data required for a new secrets provider.
type ConstructSecret struct {
	Logger   common.ILoggerProvider
	Location string
}

// NewSecretProvider constructs a new secrets store provider.
// Store reads yaml file with plain key-value pairs, missing file means empty store.
func NewSecretProvider(ctor *ConstructSecret) common.ISecretProvider {
	location := ctor.Location
	if "" == location {
		location = utils.GetConfigFile(secretsFile)
	}

	s := &fsSecret{
		location: location,
		logger:   ctor.Logger,
		secrets:  make(map[string]string),
	}

	s.load()
	return s
}

// Get returns secret value.
func (s *fsSecret) Get(name string) (string, error) {
	s.Lock()
	defer s.Unlock()

	v, ok := s.secrets[name]
	if !ok {
		s.logger.Warn("Secret not found", common.LogSystemToken, logSystem, common.LogSecretToken, name)
		return "", &ErrSecretNotFound{Name: name}
	}

	return v, nil
}

// Set updates secret and flushes the file.
func (s *fsSecret) Set(name string, data string) error {
	s.Lock()
	defer s.Unlock()

	s.secrets[name] = data
	out, err := yaml.Marshal(s.secrets)
	if err != nil {
		return errors.Wrap(err, "marshal failed")
	}

	err = ioutil.WriteFile(s.location, out, 0600)
	if err != nil {
		s.logger.Error("Failed to save secrets file", err,
			common.LogSystemToken, logSystem, common.LogFileToken, s.location)
		return errors.Wrap(err, "save failed")
	}

	return nil
}

// Loads secrets file.
func (s *fsSecret) load() {
	data, err := ioutil.ReadFile(s.location)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("Secrets file is not found", common.LogSystemToken, logSystem,
				common.LogFileToken, s.location)
		} else {
			s.logger.Error("Failed to read secrets file", err, common.LogSystemToken, logSystem,
				common.LogFileToken, s.location)
		}
		return
	}

	err = yaml.Unmarshal(data, &s.secrets)
	if err != nil {
		s.logger.Error("Failed to parse secrets file", err, common.LogSystemToken, logSystem,
			common.LogFileToken, s.location)
		s.secrets = make(map[string]string)
	}
}
