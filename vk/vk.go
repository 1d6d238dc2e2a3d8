// Package vk bootstraps a Vulkan instance and logical device for a single
// window: instance creation, an optional validation messenger, physical
// device selection and one graphics queue. Nothing is rendered.
//
// The graphics API and the windowing platform are reached through the Loader
// and Platform interfaces; see packages vk/native and window for the
// implementations used by cmd/hellovk.
package vk

import (
	"fmt"
	"unsafe"
)

// MakeVersion packs a version number as VK_MAKE_VERSION does.
func MakeVersion(major, minor, patch uint32) uint32 {
	return (major << 22) | (minor << 12) | patch
}

// APIVersion10 is VK_API_VERSION_1_0.
var APIVersion10 = MakeVersion(1, 0, 0)

// VersionString formats a packed version as major.minor.patch.
func VersionString(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", v>>22&0x7f, v>>12&0x3ff, v&0xfff)
}

// QueueFlags mirrors VkQueueFlags.
type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// QueueFamily describes one queue family of a physical device.
type QueueFamily struct {
	QueueCount uint32
	Flags      QueueFlags
}

// DeviceType mirrors VkPhysicalDeviceType.
type DeviceType int

const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated"
	case DeviceTypeDiscreteGPU:
		return "discrete"
	case DeviceTypeVirtualGPU:
		return "virtual"
	case DeviceTypeCPU:
		return "cpu"
	}
	return "other"
}

// Limits holds the subset of VkPhysicalDeviceLimits used for scoring.
type Limits struct {
	MaxImageDimension1D   uint32
	MaxImageDimension2D   uint32
	MaxImageDimension3D   uint32
	MaxImageDimensionCube uint32
}

// DeviceProperties holds the capability data of a physical device.
type DeviceProperties struct {
	Name          string
	Type          DeviceType
	APIVersion    uint32
	DriverVersion uint32
	VendorID      uint32
	DeviceID      uint32
	Limits        Limits
}

// InstanceInfo is the input to Loader.CreateInstance.
type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32

	Extensions []string
	Layers     []string
}

// DeviceInfo is the input to PhysicalDevice.CreateDevice.
// Exactly one queue is requested from QueueFamily.
type DeviceInfo struct {
	QueueFamily   uint32
	QueuePriority float32
	Layers        []string
	Extensions    []string
}

// Loader is the entry point into a Vulkan implementation.
type Loader interface {
	// Init bootstraps the loader from the platform's
	// vkGetInstanceProcAddr.
	Init(getInstanceProcAddr unsafe.Pointer) error

	InstanceExtensions() ([]string, error)
	InstanceLayers() ([]string, error)
	CreateInstance(info *InstanceInfo) (Instance, error)
}

// Instance is a created VkInstance.
type Instance interface {
	PhysicalDevices() ([]PhysicalDevice, error)

	// DebugProcs resolves the debug extension entry points by name.
	DebugProcs() DebugProcs

	Destroy()
}

// PhysicalDevice is a borrowed VkPhysicalDevice; it is never destroyed.
type PhysicalDevice interface {
	Properties() DeviceProperties
	QueueFamilies() []QueueFamily
	CreateDevice(info *DeviceInfo) (Device, error)
}

// Device is a created VkDevice.
type Device interface {
	Queue(family, index uint32) Queue
	Destroy()
}

// Queue is an opaque VkQueue handle.
type Queue any

// Messenger is an opaque debug messenger handle.
type Messenger any

// Platform is the windowing system.
type Platform interface {
	Init() error
	CreateWindow(width, height int, title string) (Window, error)

	// InstanceProcAddr returns vkGetInstanceProcAddr as found by the platform.
	InstanceProcAddr() unsafe.Pointer

	PollEvents()
	Terminate()
}

// Window is a platform window with no client API attached.
type Window interface {
	RequiredInstanceExtensions() []string
	ShouldClose() bool
	Destroy()
}
