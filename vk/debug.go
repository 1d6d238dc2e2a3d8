package vk

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// DebugSeverity mirrors VkDebugUtilsMessageSeverityFlagsEXT.
type DebugSeverity uint32

const (
	SeverityVerbose DebugSeverity = 0x0001
	SeverityInfo    DebugSeverity = 0x0010
	SeverityWarning DebugSeverity = 0x0100
	SeverityError   DebugSeverity = 0x1000
)

// DebugType mirrors VkDebugUtilsMessageTypeFlagsEXT.
type DebugType uint32

const (
	TypeGeneral DebugType = 1 << iota
	TypeValidation
	TypePerformance
)

// DebugCallback receives validation messages. Returning false lets the
// triggering call proceed.
type DebugCallback func(severity DebugSeverity, kind DebugType, message string) bool

// MessengerInfo is the input to DebugProcs.Create.
type MessengerInfo struct {
	Severity DebugSeverity
	Types    DebugType
	Callback DebugCallback
}

// DebugProcs holds the debug extension entry points of an instance.
// A nil field means the entry point could not be resolved.
type DebugProcs struct {
	Create  func(info *MessengerInfo) (Messenger, error)
	Destroy func(m Messenger)
}

// messengerInfo listens to verbose, warning and error messages of every type.
func messengerInfo(w io.Writer) *MessengerInfo {
	return &MessengerInfo{
		Severity: SeverityVerbose | SeverityWarning | SeverityError,
		Types:    TypeGeneral | TypeValidation | TypePerformance,
		Callback: func(_ DebugSeverity, _ DebugType, message string) bool {
			fmt.Fprintf(w, "validation layer: %s\n", message)
			return false
		},
	}
}

// setupDebugMessenger registers the validation callback with the instance.
// It is a no-op unless validation is enabled.
func (a *App) setupDebugMessenger() error {
	if !a.EnableValidation {
		return nil
	}
	procs := a.instance.DebugProcs()
	if procs.Create == nil {
		return errors.Wrap(ErrDebugMessenger, ErrExtensionNotPresent.Error())
	}
	m, err := procs.Create(messengerInfo(a.Stderr))
	if err != nil {
		return errors.Wrap(ErrDebugMessenger, err.Error())
	}
	a.messenger = m
	a.logger().Info("debug messenger created")
	return nil
}

// destroyDebugMessenger resolves the destroy entry point at release time;
// when it is absent the step is skipped.
func (a *App) destroyDebugMessenger() {
	if a.messenger == nil {
		return
	}
	procs := a.instance.DebugProcs()
	if procs.Destroy == nil {
		return
	}
	procs.Destroy(a.messenger)
	a.messenger = nil
}
