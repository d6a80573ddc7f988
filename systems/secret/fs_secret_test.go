package secret

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-home.io/x/neato/mocks"
	"go-home.io/x/neato/utils"
	"gopkg.in/yaml.v2"
)

func getProvider(t *testing.T, logCallback func(string), mockData string) (*fsSecret, func()) {
	dir, err := ioutil.TempDir("", "secrets")
	require.NoError(t, err)

	location := filepath.Join(dir, secretsFile)
	if mockData != "" {
		require.NoError(t, ioutil.WriteFile(location, []byte(mockData), 0600))
	}

	prov := NewSecretProvider(&ConstructSecret{
		Logger:   mocks.FakeNewLogger(logCallback),
		Location: location,
	})

	return prov.(*fsSecret), func() { os.RemoveAll(dir) } // nolint: errcheck
}

// Tests reading existing secrets.
func TestGet(t *testing.T) {
	prov, clean := getProvider(t, nil, "neato_token: abc\nadmin: pwd\n")
	defer clean()

	v, err := prov.Get("neato_token")
	assert.NoError(t, err)
	assert.Equal(t, "abc", v)

	_, err = prov.Get("wrong")
	assert.IsType(t, &ErrSecretNotFound{}, err)
}

// Tests proper file creation.
func TestFileCreation(t *testing.T) {
	warned := false
	prov, clean := getProvider(t, func(s string) {
		if s == "Secrets file is not found" {
			warned = true
		}
	}, "")
	defer clean()

	assert.True(t, warned)
	require.NoError(t, prov.Set("test", "data"))

	fileData, err := ioutil.ReadFile(prov.location)
	require.NoError(t, err)

	sec := make(map[string]string)
	require.NoError(t, yaml.Unmarshal(fileData, sec))
	assert.Equal(t, "data", sec["test"])
}

// Tests corrupted file.
func TestCorruptedFile(t *testing.T) {
	errored := false
	prov, clean := getProvider(t, func(s string) {
		if s == "Failed to parse secrets file" {
			errored = true
		}
	}, "- not\n- a map")
	defer clean()

	assert.True(t, errored)
	assert.Equal(t, 0, len(prov.secrets))
}

// Tests default location.
func TestDefaultLocation(t *testing.T) {
	utils.ConfigDir = "testData"
	defer func() { utils.ConfigDir = "" }()

	prov := NewSecretProvider(&ConstructSecret{Logger: mocks.FakeNewLogger(nil)})
	assert.Equal(t, "testData/_secrets.yaml", prov.(*fsSecret).location)
}
