// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package backend

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glstate"
)

// Device name constants.
const (
	// DeviceRecording is the name of the recording device.
	DeviceRecording = "recording"
	// DeviceNull is the name of the discarding device.
	DeviceNull = "null"
)

// ErrDeviceNotAvailable is returned when a requested device is not registered.
var ErrDeviceNotAvailable = errors.New("backend: device not available")

// DeviceFactory creates a new device instance.
type DeviceFactory func() glstate.Device

// devices holds registered device factories. Registered names outside the
// priority list rank after it.
var devices = gpucontext.NewRegistry[glstate.Device](
	gpucontext.WithPriority(DeviceRecording, DeviceNull),
)

// Register registers a device factory with the given name. This is
// typically called from init(). A device with the same name is replaced.
// A nil factory panics.
func Register(name string, factory DeviceFactory) {
	if factory == nil {
		panic("backend: Register factory is nil")
	}
	devices.Register(name, factory)
}

// Unregister removes a device from the registry. This is useful for testing.
func Unregister(name string) {
	devices.Unregister(name)
}

// IsRegistered checks if a device with the given name is registered.
func IsRegistered(name string) bool {
	return devices.Has(name)
}

// Available returns the registered device names in sorted order.
func Available() []string {
	names := devices.Available()
	slices.Sort(names)
	return names
}

// Get returns a new device by name, or nil if it is not registered.
func Get(name string) glstate.Device {
	return devices.Get(name)
}

// Open returns a new device by name. The error wraps
// ErrDeviceNotAvailable and hints at a forgotten import.
func Open(name string) (glstate.Device, error) {
	dev := devices.Get(name)
	if dev == nil {
		return nil, fmt.Errorf("%w: %q (forgotten import?)", ErrDeviceNotAvailable, name)
	}
	glstate.Logger().Info("backend: device opened", "name", name)
	return dev, nil
}

// Default returns the highest-priority registered device, or nil if none
// is registered.
func Default() glstate.Device {
	return devices.Best()
}

// MustDefault returns the default device or panics.
func MustDefault() glstate.Device {
	d := Default()
	if d == nil {
		panic("backend: no device available")
	}
	return d
}
