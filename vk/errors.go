package vk

import "github.com/pkg/errors"

// Fatal startup conditions. Each is returned wrapped with context;
// match with errors.Is.
var (
	ErrWindow           = errors.New("vk: failed to create window")
	ErrLoader           = errors.New("vk: failed to initialize loader")
	ErrLayerNotPresent  = errors.New("vk: validation layers requested, but not available")
	ErrCreateInstance   = errors.New("vk: failed to create instance")
	ErrDebugMessenger   = errors.New("vk: failed to set up debug messenger")
	ErrNoDevice         = errors.New("vk: failed to find GPUs with Vulkan support")
	ErrNoSuitableDevice = errors.New("vk: failed to find a suitable GPU")
	ErrCreateDevice     = errors.New("vk: failed to create logical device")
)

// ErrExtensionNotPresent is returned by a loader when an extension entry
// point cannot be resolved.
var ErrExtensionNotPresent = errors.New("vk: extension not present")
