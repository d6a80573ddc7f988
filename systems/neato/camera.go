package neato

import (
	"encoding/base64"
	"fmt"
	"sync"

	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/plugins/device"
	"go-home.io/x/neato/plugins/device/enums"
)

// ConstructCleaningMap has data required for a new cleaning map camera.
// Session is optional.
type ConstructCleaningMap struct {
	Robot   *Robot
	Session ISession
	Store   IMapStore
	Logger  common.ILoggerProvider
}

// CleaningMap exposes the last cleaning map of a robot as a camera.
type CleaningMap struct {
	sync.Mutex

	session ISession
	store   IMapStore
	logger  common.ILoggerProvider

	name   string
	serial string

	imageURL string
	image    []byte
}

// NewCleaningMap constructs a new cleaning map camera.
func NewCleaningMap(ctor *ConstructCleaningMap) *CleaningMap {
	return &CleaningMap{
		session: ctor.Session,
		store:   ctor.Store,
		logger:  ctor.Logger,
		name:    fmt.Sprintf("%s %s", ctor.Robot.Name, cameraNameSuffix),
		serial:  ctor.Robot.Serial,
	}
}

// Init replaces logger with the one provided by the platform.
func (c *CleaningMap) Init(data *device.InitDataDevice) error {
	if data != nil && data.Logger != nil {
		c.logger = data.Logger
	}

	return nil
}

// Unload has nothing to release.
func (c *CleaningMap) Unload() {
}

// GetName returns camera name.
func (c *CleaningMap) GetName() string {
	return c.name
}

// UniqueID returns robot serial.
func (c *CleaningMap) UniqueID() string {
	return c.serial
}

// DeviceInfo links camera to the robot.
func (c *CleaningMap) DeviceInfo() *device.DeviceInfo {
	return &device.DeviceInfo{
		Identifiers: []*device.DeviceIdentifier{{Domain: Domain, ID: c.serial}},
	}
}

// GetSpec returns camera specification.
func (c *CleaningMap) GetSpec() *device.Spec {
	return &device.Spec{
		UpdatePeriod:        ScanInterval(),
		SupportedProperties: []enums.Property{enums.PropPicture, enums.PropPictureURL},
	}
}

// Load performs initial refresh so the camera is registered with its map.
// Refresh errors are already logged and don't prevent loading.
func (c *CleaningMap) Load() (*device.CameraState, error) {
	c.Lock()
	defer c.Unlock()

	if err := c.refresh(); err != nil {
		c.clear()
	}

	return c.state(), nil
}

// Update checks the contents of the map list and downloads
// a new image if the reference has changed.
// Any failure drops cached image.
func (c *CleaningMap) Update() (*device.CameraState, error) {
	c.Lock()
	defer c.Unlock()

	err := c.refresh()
	if err != nil {
		c.clear()
	}

	return c.state(), err
}

// CameraImage refreshes camera and returns image bytes.
// Returns nil if image is not available.
func (c *CleaningMap) CameraImage() []byte {
	_, err := c.Update()
	if err != nil {
		c.logger.Debug("Returning empty cleaning map", common.LogDeviceNameToken, c.name)
	}

	c.Lock()
	defer c.Unlock()
	return c.image
}

// Performs actual refresh, must be called under lock.
func (c *CleaningMap) refresh() error {
	if nil == c.session {
		err := &ErrMissingSession{}
		c.logger.Error("Error while updating camera", err,
			common.LogDeviceNameToken, c.name, common.LogDeviceSerialToken, c.serial)
		return err
	}

	c.logger.Debug("Running camera update", common.LogDeviceNameToken, c.name)

	if err := c.session.UpdateRobots(); err != nil {
		return c.communicationError(err)
	}

	data, _ := c.store.Get(c.serial)
	latest := data.Latest()
	if nil == latest || "" == latest.URL {
		return c.communicationError(&ErrNoMap{Serial: c.serial})
	}

	if latest.URL == c.imageURL {
		c.logger.Debug("The map image_url is the same as old", common.LogDeviceNameToken, c.name)
		return nil
	}

	image, err := c.session.DownloadMap(latest.URL)
	if err != nil {
		return c.communicationError(err)
	}

	c.image = image
	c.imageURL = latest.URL
	c.logger.Debug("Downloaded a new cleaning map", common.LogDeviceNameToken, c.name,
		common.LogURLToken, latest.URL)
	return nil
}

// Drops cached map, must be called under lock.
func (c *CleaningMap) clear() {
	c.image = nil
	c.imageURL = ""
}

// Wraps and logs vendor failure.
func (c *CleaningMap) communicationError(cause error) error {
	err := &ErrCommunication{Err: cause}
	c.logger.Error("Neato camera connection error", err,
		common.LogDeviceNameToken, c.name, common.LogDeviceSerialToken, c.serial)
	return err
}

// Builds platform state out of cached data.
func (c *CleaningMap) state() *device.CameraState {
	st := &device.CameraState{PictureURL: c.imageURL}
	if nil != c.image {
		st.Picture = base64.StdEncoding.EncodeToString(c.image)
	}

	return st
}
