package device

import "reflect"

// ICamera defines camera plugin interface.
type ICamera interface {
	IDevice
	Load() (*CameraState, error)
	Update() (*CameraState, error)
	CameraImage() []byte
	UniqueID() string
	DeviceInfo() *DeviceInfo
}

// CameraState contains information about current camera's state.
type CameraState struct {
	Picture    string `json:"picture"`
	PictureURL string `json:"picture_url"`
}

// TypeCamera is a syntax sugar around ICamera type.
var TypeCamera = reflect.TypeOf((*ICamera)(nil)).Elem()
