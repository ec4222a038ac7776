package blockcss

import "strings"

// Device is the preview device that selects which responsive tier applies.
type Device int

// Responsive tiers, from widest to narrowest.
const (
	DeviceDesktop Device = iota
	DeviceTablet
	DeviceMobile
)

// Devices lists every tier in cascade order.
var Devices = []Device{DeviceDesktop, DeviceTablet, DeviceMobile}

// ParseDevice maps an editor device name ("Desktop", "Tablet", "Mobile") to a Device.
// Matching ignores case; anything unrecognized is the desktop tier.
func ParseDevice(name string) Device {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tablet":
		return DeviceTablet
	case "mobile":
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// String returns the editor spelling of the device.
func (d Device) String() string {
	switch d {
	case DeviceTablet:
		return "Tablet"
	case DeviceMobile:
		return "Mobile"
	default:
		return "Desktop"
	}
}

// Resolve picks the effective value for device: starting at the requested
// tier it walks toward desktop and stops at the first non-empty value.
func Resolve[T any](device Device, desktop, tablet, mobile T) T {
	if device == DeviceMobile && !IsEmpty(mobile) {
		return mobile
	}
	if (device == DeviceMobile || device == DeviceTablet) && !IsEmpty(tablet) {
		return tablet
	}
	return desktop
}

// Responsive holds one value per device tier.
type Responsive[T any] struct {
	Desktop T
	Tablet  T
	Mobile  T
}

// Resolve returns the effective value for device.
func (r Responsive[T]) Resolve(device Device) T {
	return Resolve(device, r.Desktop, r.Tablet, r.Mobile)
}

// Only returns a Responsive with just the desktop tier set.
func Only[T any](desktop T) Responsive[T] {
	return Responsive[T]{Desktop: desktop}
}
