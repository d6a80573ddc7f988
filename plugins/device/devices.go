// Package device contains devices plugin definitions.
package device

import (
	"time"

	"go-home.io/x/neato/plugins/common"
	"go-home.io/x/neato/plugins/device/enums"
)

// IDevice defines generic device plugin interface.
type IDevice interface {
	Init(*InitDataDevice) error
	Unload()
	GetName() string
	GetSpec() *Spec
}

// Spec contains information about the device.
type Spec struct {
	UpdatePeriod        time.Duration
	SupportedProperties []enums.Property
}

// DeviceIdentifier links device to the integration domain.
type DeviceIdentifier struct {
	Domain string `json:"domain"`
	ID     string `json:"id"`
}

// DeviceInfo describes physical device the entity belongs to.
type DeviceInfo struct {
	Identifiers []*DeviceIdentifier `json:"identifiers"`
}

// InitDataDevice has data required for initializing a new device.
type InitDataDevice struct {
	Logger common.ILoggerProvider
	Secret common.ISecretProvider
}
