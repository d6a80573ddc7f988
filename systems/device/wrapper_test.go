package device

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-home.io/x/neato/mocks"
	"go-home.io/x/neato/plugins/device"
	"go-home.io/x/neato/plugins/device/enums"
	"go-home.io/x/neato/providers"
)

type fakeCamera struct {
	initError   error
	loadError   error
	updateError error
	state       *device.CameraState
	spec        *device.Spec
	name        string

	updateInvoked int
	unloadInvoked int
	logger        interface{}
}

func (f *fakeCamera) Init(d *device.InitDataDevice) error {
	f.logger = d.Logger
	return f.initError
}

func (f *fakeCamera) Unload() {
	f.unloadInvoked++
}

func (f *fakeCamera) GetName() string {
	return f.name
}

func (f *fakeCamera) GetSpec() *device.Spec {
	return f.spec
}

func (f *fakeCamera) Load() (*device.CameraState, error) {
	return f.state, f.loadError
}

func (f *fakeCamera) Update() (*device.CameraState, error) {
	f.updateInvoked++
	return f.state, f.updateError
}

func (f *fakeCamera) CameraImage() []byte {
	return []byte(f.state.Picture)
}

func (f *fakeCamera) UniqueID() string {
	return "serial"
}

func (f *fakeCamera) DeviceInfo() *device.DeviceInfo {
	return &device.DeviceInfo{}
}

func getSpec(period time.Duration) *device.Spec {
	return &device.Spec{
		UpdatePeriod:        period,
		SupportedProperties: []enums.Property{enums.PropPicture, enums.PropPictureURL},
	}
}

func getWrapper(camera *fakeCamera, cron providers.ICronProvider, updates chan *UpdateEvent) *deviceWrapper {
	ctor := &wrapperConstruct{
		DeviceType:        enums.DevCamera,
		DeviceConfigName:  "test 1",
		Camera:            camera,
		DeviceState:       camera.state,
		Logger:            mocks.FakeNewLogger(nil),
		WorkerID:          "test",
		Cron:              cron,
		StatusUpdatesChan: updates,
	}

	return NewDeviceWrapper(ctor).(*deviceWrapper)
}

// Tests device generated name.
func TestName(t *testing.T) {
	c := &fakeCamera{name: "Kitchen Cleaning Map"}

	p := getWrapper(c, mocks.FakeNewCron(), nil)
	assert.Equal(t, "test_1.camera.kitchen_cleaning_map", p.GetID(), "ID is wrong")
	assert.Equal(t, c, p.Camera())
}

// Tests that nil spec disables polling.
func TestNilSpec(t *testing.T) {
	cron := mocks.FakeNewCron()
	c := &fakeCamera{name: "test"}

	p := getWrapper(c, cron, nil)
	assert.False(t, p.isPolling)
	assert.Equal(t, 0, cron.Jobs())

	p.pullUpdate()
	assert.Equal(t, 0, c.updateInvoked)
}

// Tests polling interval.
func TestPollingInterval(t *testing.T) {
	data := map[time.Duration]string{
		time.Second:     "@every 10s",
		time.Minute:     "@every 60s",
		5 * time.Minute: "@every 300s",
	}

	for k, v := range data {
		cron := mocks.FakeNewCron()
		getWrapper(&fakeCamera{name: "test", spec: getSpec(k)}, cron, nil)
		assert.Equal(t, []string{v}, cron.Specs(), v)
	}
}

// Tests initial state filtering.
func TestInitialState(t *testing.T) {
	c := &fakeCamera{
		name:  "test",
		spec:  &device.Spec{SupportedProperties: []enums.Property{enums.PropPictureURL}},
		state: &device.CameraState{Picture: "cGlj", PictureURL: "http://x/1.png"},
	}

	p := getWrapper(c, mocks.FakeNewCron(), nil)
	msg := p.GetUpdateMessage()
	assert.Equal(t, map[string]interface{}{"picture_url": "http://x/1.png"}, msg.State)
	assert.Equal(t, "test", msg.WorkerID)
	assert.Equal(t, enums.DevCamera, msg.DeviceType)
}

// Tests scheduled update.
func TestScheduledUpdate(t *testing.T) {
	cron := mocks.FakeNewCron()
	updates := make(chan *UpdateEvent, 5)
	c := &fakeCamera{
		name:  "test",
		spec:  getSpec(time.Minute),
		state: &device.CameraState{},
	}

	p := getWrapper(c, cron, updates)
	assert.Equal(t, 0, len(p.GetUpdateMessage().State))

	c.state = &device.CameraState{Picture: "cGlj", PictureURL: "http://x/1.png"}
	cron.Fire()

	assert.Equal(t, 1, c.updateInvoked)
	require.Equal(t, 1, len(updates))
	assert.Equal(t, p.GetID(), (<-updates).ID)

	msg := p.GetUpdateMessage()
	assert.Equal(t, "cGlj", msg.State["picture"])
	assert.Equal(t, "http://x/1.png", msg.State["picture_url"])
	assert.True(t, msg.LastSeen > 0)
}

// Tests that failed update clears state.
func TestFailedUpdate(t *testing.T) {
	cron := mocks.FakeNewCron()
	logged := false
	c := &fakeCamera{
		name:  "test",
		spec:  getSpec(time.Minute),
		state: &device.CameraState{Picture: "cGlj", PictureURL: "http://x/1.png"},
	}

	p := getWrapper(c, cron, nil)
	p.Ctor.Logger = mocks.FakeNewLogger(func(s string) {
		if s == "Failed to fetch device updates" {
			logged = true
		}
	})

	c.state = &device.CameraState{}
	c.updateError = errors.New("offline")
	cron.Fire()

	assert.True(t, logged)
	assert.Equal(t, 0, len(p.GetUpdateMessage().State))
	assert.Equal(t, int64(0), p.GetUpdateMessage().LastSeen)
}

// Tests full updates channel.
func TestFullUpdatesChannel(t *testing.T) {
	cron := mocks.FakeNewCron()
	updates := make(chan *UpdateEvent, 1)
	c := &fakeCamera{name: "test", spec: getSpec(time.Minute), state: &device.CameraState{}}

	getWrapper(c, cron, updates)
	cron.Fire()
	cron.Fire()

	assert.Equal(t, 2, c.updateInvoked)
	assert.Equal(t, 1, len(updates))
}

// Tests unload.
func TestUnload(t *testing.T) {
	cron := mocks.FakeNewCron()
	c := &fakeCamera{name: "test", spec: getSpec(time.Minute)}

	p := getWrapper(c, cron, nil)
	assert.Equal(t, 1, cron.Jobs())

	p.Unload()
	p.Unload()
	assert.Equal(t, 0, cron.Jobs())
	assert.Equal(t, 2, c.unloadInvoked)
}
