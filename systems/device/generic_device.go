// Package device contains devices loading and polling logic.
package device

import (
	"github.com/pkg/errors"
	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/plugins/device"
	"go-home.io/x/neato/plugins/device/enums"
	"go-home.io/x/neato/providers"
	"go-home.io/x/neato/systems"
	"go-home.io/x/neato/systems/logger"
)

// ConstructDevice has data required for a new device loader.
type ConstructDevice struct {
	Camera     device.ICamera
	ConfigName string
	Provider   string
	Settings   providers.ISettingsProvider

	StatusUpdatesChan chan *UpdateEvent
}

// LoadDevice initializes camera and wraps it into a polling wrapper.
func LoadDevice(ctor *ConstructDevice) (IDeviceWrapperProvider, error) {
	log := logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: ctor.Settings.SystemLogger(),
		Provider:     ctor.Provider,
		System:       systems.SysDevice.String(),
		ExtraFields: map[string]string{
			common.LogDeviceTypeToken: enums.DevCamera.String(),
			common.LogDeviceNameToken: ctor.Camera.GetName(),
		},
	})

	err := ctor.Camera.Init(&device.InitDataDevice{
		Logger: log,
		Secret: ctor.Settings.Secrets(),
	})
	if err != nil {
		log.Error("Failed to init device plugin", err)
		return nil, errors.Wrap(err, "plugin init failed")
	}

	state, err := ctor.Camera.Load()
	if err != nil {
		log.Error("Failed to load device plugin", err)
		return nil, errors.Wrap(err, "plugin load failed")
	}

	if nil == state {
		noData := &ErrNoDataFromPlugin{}
		log.Error("Failed to load device plugin", noData)
		return nil, noData
	}

	deviceCtor := &wrapperConstruct{
		DeviceType:        enums.DevCamera,
		DeviceConfigName:  ctor.ConfigName,
		Camera:            ctor.Camera,
		DeviceState:       state,
		Logger:            log,
		WorkerID:          ctor.Settings.NodeID(),
		Cron:              ctor.Settings.Cron(),
		StatusUpdatesChan: ctor.StatusUpdatesChan,
	}

	return NewDeviceWrapper(deviceCtor), nil
}
