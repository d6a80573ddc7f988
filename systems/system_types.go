// Package systems contains go-home systems implementations.
package systems

import "fmt"

// SystemType is an enum describing known system types.
type SystemType int

const (
	// SysGoHome describes server system.
	SysGoHome SystemType = iota
	// SysDevice describes device system.
	SysDevice
	// SysSecret describes secret store system.
	SysSecret
	// SysConfig describes config provider system.
	SysConfig
	// SysSecurity describes security provider system.
	SysSecurity
)

var systemTypeNames = []string{"go-home", "device", "secret", "config", "security"}

// String returns kebab-cased system name.
func (i SystemType) String() string {
	if i < 0 || int(i) >= len(systemTypeNames) {
		return fmt.Sprintf("SystemType(%d)", i)
	}

	return systemTypeNames[i]
}
