package neato

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// Default vendor request timeout.
	defaultTimeout = 30 * time.Second
)

// IAccount defines vendor cloud account.
type IAccount interface {
	Robots() ([]*Robot, error)
	Maps(robot *Robot) (*MapData, error)
	MapImage(url string) ([]byte, error)
}

// ConstructAccount has data required for a new cloud account.
type ConstructAccount struct {
	Endpoint string
	Token    string
	Client   *http.Client
}

// HTTP-based vendor account.
type cloudAccount struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewCloudAccount constructs a new vendor cloud account.
// Token must be already issued, account never logs in.
func NewCloudAccount(ctor *ConstructAccount) IAccount {
	endpoint := strings.TrimSuffix(ctor.Endpoint, "/")
	if "" == endpoint {
		endpoint = DefaultEndpoint
	}

	client := ctor.Client
	if nil == client {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &cloudAccount{
		endpoint: endpoint,
		token:    ctor.Token,
		client:   client,
	}
}

// Robots returns robots registered in the account.
func (a *cloudAccount) Robots() ([]*Robot, error) {
	robots := make([]*Robot, 0)
	err := a.getJSON(fmt.Sprintf("%s/users/me/robots", a.endpoint), &robots)
	if err != nil {
		return nil, err
	}

	return robots, nil
}

// Maps returns maps of the robot, latest first.
func (a *cloudAccount) Maps(robot *Robot) (*MapData, error) {
	data := &MapData{}
	err := a.getJSON(fmt.Sprintf("%s/users/me/robots/%s/maps", a.endpoint, robot.Serial), data)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// MapImage downloads raw map image.
func (a *cloudAccount) MapImage(url string) ([]byte, error) {
	return a.get(url, false)
}

// Performs GET and decodes JSON response.
func (a *cloudAccount) getJSON(url string, target interface{}) error {
	body, err := a.get(url, true)
	if err != nil {
		return err
	}

	return errors.Wrap(json.Unmarshal(body, target), "failed to decode response")
}

// Performs GET request.
// Map images are served from pre-signed URLs and don't need auth header.
func (a *cloudAccount) get(url string, auth bool) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	if auth {
		req.Header.Set("Accept", "application/vnd.neato.nucleo.v1")
		req.Header.Set("Authorization", fmt.Sprintf("Token token=%s", a.token))
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}

	defer resp.Body.Close() // nolint: errcheck
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &ErrVendorResponse{Status: resp.StatusCode}
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	return body, nil
}
