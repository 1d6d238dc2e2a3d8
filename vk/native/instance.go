package native

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/vulkan-go/vulkan"

	"dasa.cc/hellovk/vk"
)

// Instance implements vk.Instance.
type Instance struct {
	inst vulkan.Instance
}

func (inst *Instance) PhysicalDevices() ([]vk.PhysicalDevice, error) {
	var count uint32
	if err := vulkan.Error(vulkan.EnumeratePhysicalDevices(inst.inst, &count, nil)); err != nil {
		return nil, errors.Wrap(err, "vkEnumeratePhysicalDevices")
	}
	if count == 0 {
		return nil, nil
	}
	list := make([]vulkan.PhysicalDevice, count)
	if err := vulkan.Error(vulkan.EnumeratePhysicalDevices(inst.inst, &count, list)); err != nil {
		return nil, errors.Wrap(err, "vkEnumeratePhysicalDevices")
	}
	devs := make([]vk.PhysicalDevice, count)
	for i, pd := range list[:count] {
		devs[i] = &PhysicalDevice{pd: pd}
	}
	return devs, nil
}

// DebugProcs returns the VK_EXT_debug_report entry points. vulkan-go
// resolves them when the instance is initialized: a missing create entry
// point makes the call return NotReady, and a missing destroy entry point
// makes the call a no-op.
func (inst *Instance) DebugProcs() vk.DebugProcs {
	return vk.DebugProcs{
		Create:  inst.createDebugReport,
		Destroy: inst.destroyDebugReport,
	}
}

func (inst *Instance) createDebugReport(info *vk.MessengerInfo) (vk.Messenger, error) {
	callback := info.Callback
	createInfo := vulkan.DebugReportCallbackCreateInfo{
		SType: vulkan.StructureTypeDebugReportCallbackCreateInfo,
		Flags: reportFlags(info.Severity, info.Types),
		PfnCallback: func(flags vulkan.DebugReportFlags, objectType vulkan.DebugReportObjectType,
			object uint64, location uint, messageCode int32, pLayerPrefix string,
			pMessage string, pUserData unsafe.Pointer) vulkan.Bool32 {

			severity, kind := classify(flags)
			if callback(severity, kind, pMessage) {
				return vulkan.Bool32(vulkan.True)
			}
			return vulkan.Bool32(vulkan.False)
		},
	}
	var cb vulkan.DebugReportCallback
	if err := debugReportError(vulkan.CreateDebugReportCallback(inst.inst, &createInfo, nil, &cb)); err != nil {
		return nil, err
	}
	return cb, nil
}

// debugReportError converts the result of vkCreateDebugReportCallbackEXT.
// NotReady is what vulkan-go returns when the entry point was not found.
func debugReportError(ret vulkan.Result) error {
	if ret == vulkan.NotReady {
		return errors.WithStack(vk.ErrExtensionNotPresent)
	}
	return errors.Wrap(vulkan.Error(ret), "vkCreateDebugReportCallbackEXT")
}

func (inst *Instance) destroyDebugReport(m vk.Messenger) {
	cb, ok := m.(vulkan.DebugReportCallback)
	if !ok {
		return
	}
	vulkan.DestroyDebugReportCallback(inst.inst, cb, nil)
}

func (inst *Instance) Destroy() {
	vulkan.DestroyInstance(inst.inst, nil)
}

// reportFlags maps messenger severities and types onto debug report flags.
func reportFlags(severity vk.DebugSeverity, types vk.DebugType) vulkan.DebugReportFlags {
	var bits vulkan.DebugReportFlagBits
	if severity&vk.SeverityVerbose != 0 {
		bits |= vulkan.DebugReportInformationBit | vulkan.DebugReportDebugBit
	}
	if severity&vk.SeverityInfo != 0 {
		bits |= vulkan.DebugReportInformationBit
	}
	if severity&vk.SeverityWarning != 0 {
		bits |= vulkan.DebugReportWarningBit
		if types&vk.TypePerformance != 0 {
			bits |= vulkan.DebugReportPerformanceWarningBit
		}
	}
	if severity&vk.SeverityError != 0 {
		bits |= vulkan.DebugReportErrorBit
	}
	return vulkan.DebugReportFlags(bits)
}

// classify maps debug report flags back onto a severity and type.
func classify(flags vulkan.DebugReportFlags) (vk.DebugSeverity, vk.DebugType) {
	has := func(bit vulkan.DebugReportFlagBits) bool { return flags&vulkan.DebugReportFlags(bit) != 0 }
	switch {
	case has(vulkan.DebugReportErrorBit):
		return vk.SeverityError, vk.TypeValidation
	case has(vulkan.DebugReportWarningBit):
		return vk.SeverityWarning, vk.TypeValidation
	case has(vulkan.DebugReportPerformanceWarningBit):
		return vk.SeverityWarning, vk.TypePerformance
	}
	return vk.SeverityVerbose, vk.TypeGeneral
}
