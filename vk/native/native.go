// Package native implements vk.Loader with github.com/vulkan-go/vulkan.
package native

import (
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/vulkan-go/vulkan"

	"dasa.cc/hellovk/vk"
)

var (
	_ vk.Loader         = (*Loader)(nil)
	_ vk.Instance       = (*Instance)(nil)
	_ vk.PhysicalDevice = (*PhysicalDevice)(nil)
	_ vk.Device         = (*Device)(nil)
)

// Loader implements vk.Loader.
type Loader struct{}

func New() *Loader { return &Loader{} }

// Init bootstraps vulkan-go from the platform's vkGetInstanceProcAddr.
func (l *Loader) Init(getInstanceProcAddr unsafe.Pointer) error {
	if getInstanceProcAddr == nil {
		return errors.New("vkGetInstanceProcAddr not found")
	}
	vulkan.SetGetInstanceProcAddr(getInstanceProcAddr)
	return errors.Wrap(vulkan.Init(), "vulkan.Init")
}

// InstanceExtensions gets a list of instance extensions available on the platform.
func (l *Loader) InstanceExtensions() (names []string, err error) {
	var count uint32
	if err := vulkan.Error(vulkan.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, err
	}
	list := make([]vulkan.ExtensionProperties, count)
	if err := vulkan.Error(vulkan.EnumerateInstanceExtensionProperties("", &count, list)); err != nil {
		return nil, err
	}
	for _, ext := range list[:count] {
		ext.Deref()
		names = append(names, vulkan.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// InstanceLayers gets a list of layers available on the platform.
func (l *Loader) InstanceLayers() (names []string, err error) {
	var count uint32
	if err := vulkan.Error(vulkan.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, err
	}
	list := make([]vulkan.LayerProperties, count)
	if err := vulkan.Error(vulkan.EnumerateInstanceLayerProperties(&count, list)); err != nil {
		return nil, err
	}
	for _, layer := range list[:count] {
		layer.Deref()
		names = append(names, vulkan.ToString(layer.LayerName[:]))
	}
	return names, nil
}

func (l *Loader) CreateInstance(info *vk.InstanceInfo) (vk.Instance, error) {
	appInfo := &vulkan.ApplicationInfo{
		SType:              vulkan.StructureTypeApplicationInfo,
		PApplicationName:   safeString(info.ApplicationName),
		ApplicationVersion: info.ApplicationVersion,
		PEngineName:        safeString(info.EngineName),
		EngineVersion:      info.EngineVersion,
		ApiVersion:         info.APIVersion,
	}
	createInfo := vulkan.InstanceCreateInfo{
		SType:                   vulkan.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		EnabledLayerCount:       uint32(len(info.Layers)),
		PpEnabledLayerNames:     safeStrings(info.Layers),
	}
	var inst vulkan.Instance
	if err := vulkan.Error(vulkan.CreateInstance(&createInfo, nil, &inst)); err != nil {
		return nil, err
	}
	if err := vulkan.InitInstance(inst); err != nil {
		vulkan.DestroyInstance(inst, nil)
		return nil, errors.Wrap(err, "vulkan.InitInstance")
	}
	return &Instance{inst: inst}, nil
}

// safeString returns s terminated by a NUL byte, as vulkan-go expects for
// strings handed to the driver.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func safeStrings(xs []string) []string {
	if len(xs) == 0 {
		return nil
	}
	out := make([]string, len(xs))
	for i, s := range xs {
		out[i] = safeString(s)
	}
	return out
}
