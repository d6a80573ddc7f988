// Package enums contains various enumerations and rules for device plugins.
package enums

import (
	"fmt"
	"strings"
)

// DeviceType describes enum with known device types.
type DeviceType int

const (
	// DevUnknown describes unknown device type.
	DevUnknown DeviceType = iota
	// DevCamera describes camera device type.
	DevCamera
)

var deviceTypeNames = map[DeviceType]string{
	DevUnknown: "unknown",
	DevCamera:  "camera",
}

// String returns kebab-cased device type name.
func (i DeviceType) String() string {
	name, ok := deviceTypeNames[i]
	if !ok {
		return fmt.Sprintf("DeviceType(%d)", i)
	}

	return name
}

// MarshalText implements the encoding.TextMarshaler interface.
func (i DeviceType) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// DeviceTypeString parses device type from its name.
func DeviceTypeString(s string) (DeviceType, error) {
	s = strings.ToLower(s)
	for k, v := range deviceTypeNames {
		if v == s {
			return k, nil
		}
	}

	return DevUnknown, fmt.Errorf("%s does not belong to DeviceType values", s)
}
