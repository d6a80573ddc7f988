// Package security contains API authentication.
package security

import (
	"encoding/base64"
	"strings"

	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/providers"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Logger system representation.
	logSystem = "security"
	// Name returned for requests when no users are configured.
	anonymousUser = "anonymous"
)

// ErrUnauthorized defines failed authentication.
type ErrUnauthorized struct {
	Reason string
}

// Error formats output.
func (e *ErrUnauthorized) Error() string {
	return "unauthorized: " + e.Reason
}

// Implements basic auth user provider.
type basicAuthProvider struct {
	logger          common.ILoggerProvider
	secret          common.ISecretProvider
	presetPasswords map[string]string
}

// ConstructSecurityProvider has data required for a new security provider.
type ConstructSecurityProvider struct {
	Logger common.ILoggerProvider
	Secret common.ISecretProvider
	Users  map[string]string
}

// NewSecurityProvider constructs basic auth provider.
// Users contain bcrypt hashes, secret store is used as a fallback.
func NewSecurityProvider(ctor *ConstructSecurityProvider) providers.ISecurityProvider {
	users := ctor.Users
	if nil == users {
		users = make(map[string]string)
	}

	if 0 == len(users) {
		ctor.Logger.Warn("No API users configured, API is open", common.LogSystemToken, logSystem)
	}

	return &basicAuthProvider{
		logger:          ctor.Logger,
		secret:          ctor.Secret,
		presetPasswords: users,
	}
}

// GetUser validates default basic auth header against known users.
// If user is not found, falls back to system's secret store.
func (b *basicAuthProvider) GetUser(headers map[string][]string) (string, error) {
	if 0 == len(b.presetPasswords) {
		return anonymousUser, nil
	}

	var auth []string
	for k, v := range headers {
		if k != "Authorization" {
			continue
		}

		if 1 != len(v) {
			continue
		}

		auth = strings.SplitN(v[0], " ", 2)
		break
	}

	if 2 != len(auth) || "Basic" != auth[0] {
		b.logger.Warn("No Basic Auth header found", common.LogSystemToken, logSystem)
		return "", &ErrUnauthorized{Reason: "header not found"}
	}

	payload, err := base64.StdEncoding.DecodeString(auth[1])
	if err != nil {
		b.logger.Warn("Failed to decode Basic Auth header", common.LogSystemToken, logSystem)
		return "", &ErrUnauthorized{Reason: "can't decode header"}
	}

	pair := strings.SplitN(string(payload), ":", 2)
	if 2 != len(pair) {
		b.logger.Warn("Corrupted Basic Auth header", common.LogSystemToken, logSystem)
		return "", &ErrUnauthorized{Reason: "wrong header"}
	}

	pwd, ok := b.presetPasswords[pair[0]]
	if ok && bcrypt.CompareHashAndPassword([]byte(pwd), []byte(pair[1])) == nil {
		b.logger.Debug("Found user in config", common.LogUserNameToken, pair[0])
		return pair[0], nil
	}

	if nil != b.secret {
		pwd, err = b.secret.Get(pair[0])
		if err == nil && pwd == pair[1] {
			b.logger.Debug("Found user in secret store", common.LogUserNameToken, pair[0])
			return pair[0], nil
		}
	}

	b.logger.Warn("User is unauthorized", common.LogUserNameToken, pair[0])
	return "", &ErrUnauthorized{Reason: "user not found"}
}
