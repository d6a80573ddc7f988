package server

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-home.io/x/neato/mocks"
	"go-home.io/x/neato/plugins/device"
	"go-home.io/x/neato/plugins/device/enums"
	"go-home.io/x/neato/providers"
	systemsDevice "go-home.io/x/neato/systems/device"
)

var pngImage = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00}

type fakeCamera struct {
	id    string
	image []byte
	calls int
}

func (f *fakeCamera) Init(*device.InitDataDevice) error {
	return nil
}

func (f *fakeCamera) Unload() {
}

func (f *fakeCamera) GetName() string {
	return f.id + " Cleaning Map"
}

func (f *fakeCamera) GetSpec() *device.Spec {
	return &device.Spec{}
}

func (f *fakeCamera) Load() (*device.CameraState, error) {
	return &device.CameraState{}, nil
}

func (f *fakeCamera) Update() (*device.CameraState, error) {
	return &device.CameraState{}, nil
}

func (f *fakeCamera) CameraImage() []byte {
	f.calls++
	if f.id == "panic" {
		panic("camera failure")
	}

	return f.image
}

func (f *fakeCamera) UniqueID() string {
	return f.id
}

func (f *fakeCamera) DeviceInfo() *device.DeviceInfo {
	return &device.DeviceInfo{Identifiers: []*device.DeviceIdentifier{{Domain: "neato", ID: f.id}}}
}

type fakeWrapper struct {
	camera   *fakeCamera
	unloaded bool
}

func (f *fakeWrapper) GetID() string {
	return "neato.camera." + f.camera.id
}

func (f *fakeWrapper) Unload() {
	f.unloaded = true
}

func (f *fakeWrapper) GetUpdateMessage() *systemsDevice.UpdateMessage {
	return &systemsDevice.UpdateMessage{
		DeviceType: enums.DevCamera,
		DeviceID:   f.GetID(),
		Name:       f.camera.GetName(),
		State:      map[string]interface{}{enums.PropPictureURL.String(): "http://x/" + f.camera.id},
		LastSeen:   100,
	}
}

func (f *fakeWrapper) Camera() device.ICamera {
	return f.camera
}

func getServer(t *testing.T, security providers.ISecurityProvider,
	wrappers ...systemsDevice.IDeviceWrapperProvider) (*CameraServer, *httptest.Server) {
	settings := mocks.FakeNewSettings(nil, nil, nil, nil)
	if nil != security {
		settings.(mocks.IFakeSettings).SetSecurity(security)
	}

	s, err := NewServer(&ConstructServer{Settings: settings, Cameras: wrappers})
	require.NoError(t, err)

	return s, httptest.NewServer(s.handler())
}

// Tests ping endpoint.
func TestPing(t *testing.T) {
	_, ts := getServer(t, mocks.FakeNewSecurity(true))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/pub/ping")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint: errcheck

	body, _ := ioutil.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"OK"}`, string(body))
}

// Tests cameras list.
func TestGetCameras(t *testing.T) {
	_, ts := getServer(t, nil,
		&fakeWrapper{camera: &fakeCamera{id: "S1"}},
		&fakeWrapper{camera: &fakeCamera{id: "S2"}},
		&fakeWrapper{camera: &fakeCamera{id: "S1"}})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/camera")
	require.NoError(t, err)
	defer resp.Body.Close() // nolint: errcheck

	require.Equal(t, http.StatusOK, resp.StatusCode)
	cameras := make([]*knownCamera, 0)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cameras))
	require.Equal(t, 2, len(cameras), "duplicates were not skipped")

	assert.Equal(t, "S1", cameras[0].ID)
	assert.Equal(t, "neato.camera.S1", cameras[0].DeviceID)
	assert.Equal(t, "S1 Cleaning Map", cameras[0].Name)
	assert.Equal(t, "http://x/S1", cameras[0].PictureURL)
	assert.Equal(t, int64(100), cameras[0].LastSeen)
	require.Equal(t, 1, len(cameras[1].DeviceInfo.Identifiers))
	assert.Equal(t, "S2", cameras[1].DeviceInfo.Identifiers[0].ID)
}

// Tests camera image endpoint.
func TestGetCameraImage(t *testing.T) {
	withImage := &fakeCamera{id: "S1", image: pngImage}
	noImage := &fakeCamera{id: "S2"}
	_, ts := getServer(t, nil, &fakeWrapper{camera: withImage}, &fakeWrapper{camera: noImage})
	defer ts.Close()

	data := []struct {
		id     string
		status int
		body   []byte
	}{
		{id: "S1", status: http.StatusOK, body: pngImage},
		{id: "S2", status: http.StatusNoContent, body: []byte{}},
		{id: "S3", status: http.StatusNotFound},
	}

	for _, v := range data {
		resp, err := http.Get(ts.URL + "/api/v1/camera/" + v.id + "/image")
		require.NoError(t, err, v.id)
		body, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close() // nolint: errcheck

		assert.Equal(t, v.status, resp.StatusCode, v.id)
		if nil != v.body {
			assert.Equal(t, v.body, body, v.id)
		}
	}

	assert.Equal(t, 1, withImage.calls)
	assert.Equal(t, 1, noImage.calls)
}

// Tests that image content type is detected from the image.
func TestImageContentType(t *testing.T) {
	_, ts := getServer(t, nil,
		&fakeWrapper{camera: &fakeCamera{id: "S1", image: pngImage}},
		&fakeWrapper{camera: &fakeCamera{id: "S2", image: []byte{0xff, 0xd8, 0xff, 0xe0, 0x00}}})
	defer ts.Close()

	data := map[string]string{
		"S1": "image/png",
		"S2": "image/jpeg",
	}

	for id, contentType := range data {
		resp, err := http.Get(ts.URL + "/api/v1/camera/" + id + "/image")
		require.NoError(t, err, id)
		resp.Body.Close() // nolint: errcheck

		assert.Equal(t, contentType, resp.Header.Get("Content-Type"), id)
	}
}

// Tests that API routes require authentication.
func TestUnauthorized(t *testing.T) {
	_, ts := getServer(t, mocks.FakeNewSecurity(true), &fakeWrapper{camera: &fakeCamera{id: "S1"}})
	defer ts.Close()

	for _, v := range []string{"/api/v1/camera", "/api/v1/camera/S1/image"} {
		resp, err := http.Get(ts.URL + v)
		require.NoError(t, err, v)
		resp.Body.Close() // nolint: errcheck

		assert.Equal(t, http.StatusForbidden, resp.StatusCode, v)
	}
}

// Tests that panic in a handler is recovered.
func TestRecovery(t *testing.T) {
	_, ts := getServer(t, nil, &fakeWrapper{camera: &fakeCamera{id: "panic"}})
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v1/camera/panic/image")
	require.NoError(t, err)
	resp.Body.Close() // nolint: errcheck

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

// Tests that stop unloads cameras.
func TestStop(t *testing.T) {
	w := &fakeWrapper{camera: &fakeCamera{id: "S1"}}
	s, ts := getServer(t, nil, w)
	ts.Close()

	s.Stop()
	assert.True(t, w.unloaded)
}

// Tests status updates consumer.
func TestStatusCycle(t *testing.T) {
	received := make(chan string, 1)
	settings := mocks.FakeNewSettings(func(msg string) {
		if msg == "Received device update" {
			received <- msg
		}
	}, nil, nil, nil)
	ch := make(chan *systemsDevice.UpdateEvent, 1)

	s, err := NewServer(&ConstructServer{Settings: settings, StatusUpdatesChan: ch})
	require.NoError(t, err)

	go s.statusCycle()
	ch <- &systemsDevice.UpdateEvent{ID: "neato.camera.S1"}
	assert.Equal(t, "Received device update", <-received)
	close(ch)
}
