package native

import (
	"github.com/pkg/errors"
	"github.com/vulkan-go/vulkan"

	"dasa.cc/hellovk/vk"
)

// PhysicalDevice implements vk.PhysicalDevice.
type PhysicalDevice struct {
	pd vulkan.PhysicalDevice
}

func (d *PhysicalDevice) Properties() vk.DeviceProperties {
	var props vulkan.PhysicalDeviceProperties
	vulkan.GetPhysicalDeviceProperties(d.pd, &props)
	props.Deref()
	props.Limits.Deref()

	return vk.DeviceProperties{
		Name:          vulkan.ToString(props.DeviceName[:]),
		Type:          deviceType(props.DeviceType),
		APIVersion:    props.ApiVersion,
		DriverVersion: props.DriverVersion,
		VendorID:      props.VendorID,
		DeviceID:      props.DeviceID,
		Limits: vk.Limits{
			MaxImageDimension1D:   props.Limits.MaxImageDimension1D,
			MaxImageDimension2D:   props.Limits.MaxImageDimension2D,
			MaxImageDimension3D:   props.Limits.MaxImageDimension3D,
			MaxImageDimensionCube: props.Limits.MaxImageDimensionCube,
		},
	}
}

func (d *PhysicalDevice) QueueFamilies() []vk.QueueFamily {
	var count uint32
	vulkan.GetPhysicalDeviceQueueFamilyProperties(d.pd, &count, nil)
	list := make([]vulkan.QueueFamilyProperties, count)
	vulkan.GetPhysicalDeviceQueueFamilyProperties(d.pd, &count, list)

	families := make([]vk.QueueFamily, count)
	for i, fam := range list[:count] {
		fam.Deref()
		families[i] = vk.QueueFamily{
			QueueCount: fam.QueueCount,
			Flags:      vk.QueueFlags(fam.QueueFlags),
		}
	}
	return families
}

// CreateDevice creates a logical device with one queue and no features
// enabled.
func (d *PhysicalDevice) CreateDevice(info *vk.DeviceInfo) (vk.Device, error) {
	createInfo := vulkan.DeviceCreateInfo{
		SType:                vulkan.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: 1,
		PQueueCreateInfos: []vulkan.DeviceQueueCreateInfo{{
			SType:            vulkan.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: info.QueueFamily,
			QueueCount:       1,
			PQueuePriorities: []float32{info.QueuePriority},
		}},
		PEnabledFeatures:        []vulkan.PhysicalDeviceFeatures{{}},
		EnabledExtensionCount:   uint32(len(info.Extensions)),
		PpEnabledExtensionNames: safeStrings(info.Extensions),
		// device layers are ignored by up to date drivers
		EnabledLayerCount:   uint32(len(info.Layers)),
		PpEnabledLayerNames: safeStrings(info.Layers),
	}
	var dev vulkan.Device
	if err := vulkan.Error(vulkan.CreateDevice(d.pd, &createInfo, nil, &dev)); err != nil {
		return nil, errors.Wrap(err, "vkCreateDevice")
	}
	return &Device{dev: dev}, nil
}

// Device implements vk.Device.
type Device struct {
	dev vulkan.Device
}

func (d *Device) Queue(family, index uint32) vk.Queue {
	var q vulkan.Queue
	vulkan.GetDeviceQueue(d.dev, family, index, &q)
	return q
}

func (d *Device) Destroy() {
	vulkan.DestroyDevice(d.dev, nil)
}

func deviceType(t vulkan.PhysicalDeviceType) vk.DeviceType {
	switch t {
	case vulkan.PhysicalDeviceTypeIntegratedGpu:
		return vk.DeviceTypeIntegratedGPU
	case vulkan.PhysicalDeviceTypeDiscreteGpu:
		return vk.DeviceTypeDiscreteGPU
	case vulkan.PhysicalDeviceTypeVirtualGpu:
		return vk.DeviceTypeVirtualGPU
	case vulkan.PhysicalDeviceTypeCpu:
		return vk.DeviceTypeCPU
	}
	return vk.DeviceTypeOther
}
