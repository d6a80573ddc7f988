package device

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/plugins/device"
	"go-home.io/x/neato/plugins/device/enums"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/utils"
)

const (
	// Minimal polling interval in seconds.
	minPollingInterval = 10
)

// IDeviceWrapperProvider interface for any loaded devices.
type IDeviceWrapperProvider interface {
	GetID() string
	Unload()
	GetUpdateMessage() *UpdateMessage
	Camera() device.ICamera
}

// UpdateEvent is a type used for updates sent by a device.
type UpdateEvent struct {
	ID string
}

// UpdateMessage describes current device state.
type UpdateMessage struct {
	DeviceType enums.DeviceType       `json:"type"`
	DeviceID   string                 `json:"id"`
	Name       string                 `json:"name"`
	WorkerID   string                 `json:"worker"`
	State      map[string]interface{} `json:"state"`
	LastSeen   int64                  `json:"last_seen"`
}

// Data required for a new wrapper.
type wrapperConstruct struct {
	DeviceType       enums.DeviceType
	DeviceConfigName string
	Camera           device.ICamera
	DeviceState      *device.CameraState
	Logger           common.ILoggerProvider
	WorkerID         string
	Cron             providers.ICronProvider

	StatusUpdatesChan chan *UpdateEvent
}

// Device wrapper implementation.
type deviceWrapper struct {
	sync.Mutex

	Ctor *wrapperConstruct

	ID       string
	State    map[string]interface{}
	Spec     *device.Spec
	LastSeen int64

	jobID     int
	isPolling bool
}

// NewDeviceWrapper constructs a new device wrapper.
func NewDeviceWrapper(ctor *wrapperConstruct) IDeviceWrapperProvider {
	w := &deviceWrapper{
		Ctor:      ctor,
		isPolling: false,
		State:     make(map[string]interface{}),
	}

	w.Spec = ctor.Camera.GetSpec()
	if nil == w.Spec {
		w.Spec = &device.Spec{
			SupportedProperties: make([]enums.Property, 0),
			UpdatePeriod:        0,
		}
	}

	w.GetID()

	if !w.setState(ctor.DeviceState) {
		ctor.Logger.Debug("Device didn't provide initial state",
			common.LogDeviceTypeToken, ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
	}

	interval := int(w.Spec.UpdatePeriod / time.Second)
	if interval > 0 {
		w.isPolling = true
		if interval < minPollingInterval {
			interval = minPollingInterval
		}

		var err error
		w.jobID, err = ctor.Cron.AddFunc(fmt.Sprintf("@every %ds", interval), w.pullUpdate)
		if err != nil {
			ctor.Logger.Error("Failed to schedule device updates", err,
				common.LogDeviceTypeToken, ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
		}

		ctor.Logger.Debug(fmt.Sprintf("Polling rate for the device is %d seconds", interval),
			common.LogDeviceTypeToken, ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
	}

	return w
}

// GetID returns unique device ID.
// ID is normalized and contains config name, device type and name returned from actual device.
func (w *deviceWrapper) GetID() string {
	if w.ID == "" {
		w.ID = fmt.Sprintf("%s.%s.%s", utils.NormalizeDeviceName(w.Ctor.DeviceConfigName),
			utils.NormalizeDeviceName(w.Ctor.DeviceType.String()),
			utils.NormalizeDeviceName(w.Ctor.Camera.GetName()))
	}
	return w.ID
}

// Camera returns wrapped camera.
func (w *deviceWrapper) Camera() device.ICamera {
	return w.Ctor.Camera
}

// Unload stops all background activities.
func (w *deviceWrapper) Unload() {
	w.Ctor.Camera.Unload()
	if 0 != w.jobID {
		w.Ctor.Cron.RemoveFunc(w.jobID)
		w.jobID = 0
	}
}

// GetUpdateMessage constructs device update message.
func (w *deviceWrapper) GetUpdateMessage() *UpdateMessage {
	w.Lock()
	defer w.Unlock()

	state := make(map[string]interface{}, len(w.State))
	for k, v := range w.State {
		state[k] = v
	}

	return &UpdateMessage{
		DeviceType: w.Ctor.DeviceType,
		DeviceID:   w.ID,
		Name:       w.Ctor.Camera.GetName(),
		WorkerID:   w.Ctor.WorkerID,
		State:      state,
		LastSeen:   w.LastSeen,
	}
}

// Updates internal device state which is stored in wrapper.
// Only supported and allowed properties are kept, empty values are dropped.
func (w *deviceWrapper) setState(deviceState *device.CameraState) bool {
	if nil == deviceState {
		return false
	}

	allowedProps, ok := enums.AllowedProperties[w.Ctor.DeviceType]
	if !ok {
		w.Ctor.Logger.Warn("Received unknown device type",
			common.LogDeviceTypeToken, w.Ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
		return false
	}

	data, err := json.Marshal(deviceState)
	if err != nil {
		w.Ctor.Logger.Error("Failed to serialize device state", err,
			common.LogDeviceTypeToken, w.Ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
		return false
	}

	raw := make(map[string]interface{})
	if err := json.Unmarshal(data, &raw); err != nil {
		return false
	}

	state := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		prop, err := enums.PropertyString(k)
		if err != nil {
			w.Ctor.Logger.Warn("Received unknown device property", common.LogDevicePropertyToken, k,
				common.LogDeviceTypeToken, w.Ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
			continue
		}

		if !enums.SliceContainsProperty(w.Spec.SupportedProperties, prop) ||
			!enums.SliceContainsProperty(allowedProps, prop) {
			continue
		}

		if s, ok := v.(string); ok && "" == s {
			continue
		}

		state[k] = v
	}

	w.Lock()
	w.State = state
	w.Unlock()
	return true
}

// Performs data pull from device provider plugin.
func (w *deviceWrapper) pullUpdate() {
	if !w.isPolling {
		return
	}

	w.Ctor.Logger.Debug("Fetching update for the device", common.LogDeviceTypeToken,
		w.Ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)

	state, err := w.Ctor.Camera.Update()
	if err != nil {
		w.Ctor.Logger.Error("Failed to fetch device updates", err,
			common.LogDeviceTypeToken, w.Ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
	} else {
		w.Lock()
		w.LastSeen = time.Now().UTC().Unix()
		w.Unlock()
	}

	w.processUpdate(state)
}

// Processing update message from provider plugin.
// Failed updates still carry emptied state.
func (w *deviceWrapper) processUpdate(state *device.CameraState) {
	w.setState(state)

	if nil == w.Ctor.StatusUpdatesChan {
		return
	}

	select {
	case w.Ctor.StatusUpdatesChan <- &UpdateEvent{ID: w.ID}:
	default:
		w.Ctor.Logger.Warn("Status updates channel is full, dropping event",
			common.LogDeviceTypeToken, w.Ctor.DeviceType.String(), common.LogDeviceNameToken, w.ID)
	}
}
