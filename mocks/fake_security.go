//+build !release

package mocks

import "errors"

type fakeSecurity struct {
	deny bool
}

func (f *fakeSecurity) GetUser(map[string][]string) (string, error) {
	if f.deny {
		return "", errors.New("denied")
	}

	return "test", nil
}

// FakeNewSecurity creates a fake security provider.
func FakeNewSecurity(deny bool) *fakeSecurity {
	return &fakeSecurity{deny: deny}
}
