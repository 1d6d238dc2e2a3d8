package vk

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"dasa.cc/hellovk/set"
)

// requiredExtensions lists the instance extensions the window needs, plus
// the debug extension when validation is enabled.
func (a *App) requiredExtensions() []string {
	exts := slices.Clone(a.window.RequiredInstanceExtensions())
	if a.EnableValidation {
		exts = append(exts, a.DebugExtension)
	}
	return exts
}

// validationLayers returns the layers to enable, if any.
func (a *App) validationLayers() []string {
	if !a.EnableValidation {
		return nil
	}
	return slices.Clone(a.ValidationLayers)
}

func (a *App) createInstance() error {
	log := a.logger()

	available, err := a.loader.InstanceExtensions()
	if err != nil {
		return errors.Wrapf(ErrCreateInstance, "vkEnumerateInstanceExtensionProperties: %v", err)
	}
	for _, name := range available {
		log.Info("available extension", "name", name)
	}

	// Availability is informational; the requested names are passed to
	// vkCreateInstance as is.
	have := set.Of(available...)
	required := a.requiredExtensions()
	for _, name := range required {
		log.Info("requested extension", "name", name, "present", have.Has(name))
	}

	if a.EnableValidation {
		if err := a.checkValidationLayerSupport(); err != nil {
			return err
		}
	}

	info := &InstanceInfo{
		ApplicationName:    a.ApplicationName,
		ApplicationVersion: a.ApplicationVersion,
		EngineName:         a.EngineName,
		EngineVersion:      a.EngineVersion,
		APIVersion:         a.APIVersion,
		Extensions:         required,
		Layers:             a.validationLayers(),
	}
	inst, err := a.loader.CreateInstance(info)
	if err != nil {
		return errors.Wrapf(ErrCreateInstance, "vkCreateInstance: %v", err)
	}
	a.instance = inst
	a.release.push("instance", func() {
		a.instance.Destroy()
		a.instance = nil
	})
	log.Info("instance created", "application", a.ApplicationName, "api", VersionString(a.APIVersion))
	return nil
}

func (a *App) checkValidationLayerSupport() error {
	available, err := a.loader.InstanceLayers()
	if err != nil {
		return errors.Wrapf(ErrLayerNotPresent, "vkEnumerateInstanceLayerProperties: %v", err)
	}
	have := set.Of(available...)
	for _, name := range a.ValidationLayers {
		a.logger().Info("requested validation layer", "name", name, "present", have.Has(name))
	}
	if missing := have.Missing(a.ValidationLayers); len(missing) > 0 {
		return errors.Wrapf(ErrLayerNotPresent, "missing %s", strings.Join(missing, ", "))
	}
	return nil
}
