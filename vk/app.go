package vk

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Process exit codes returned by Main.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// App owns every object created during the bootstrap.
type App struct {
	Config

	platform Platform
	loader   Loader

	window         Window
	instance       Instance
	messenger      Messenger
	physicalDevice PhysicalDevice
	graphicsFamily uint32
	device         Device
	graphicsQueue  Queue

	release releaser
	closing atomic.Bool
	done    chan struct{}
}

// New returns an App that will open its window on platform and reach
// Vulkan through loader.
func New(cfg Config, platform Platform, loader Loader) *App {
	return &App{
		Config:   cfg,
		platform: platform,
		loader:   loader,
		done:     make(chan struct{}),
	}
}

// Main runs the app, writes any error to Stderr and returns the exit code.
func (a *App) Main() int {
	if err := a.Run(); err != nil {
		if a.Stderr != nil {
			fmt.Fprintln(a.Stderr, err)
		}
		return ExitFailure
	}
	return ExitOK
}

// Run initializes the window and Vulkan, polls events until the window
// should close, then releases everything in reverse order. Resources
// acquired before a failing step are released as well.
func (a *App) Run() error {
	defer close(a.done)
	defer func() {
		a.logger().Info("teardown", "order", a.release.pending())
		a.release.unwind(a.logger())
	}()

	if err := a.initWindow(); err != nil {
		return err
	}
	if err := a.initVulkan(); err != nil {
		return err
	}
	a.mainLoop()
	return nil
}

// RequestClose asks the event loop to stop. It may be called from any
// goroutine.
func (a *App) RequestClose() { a.closing.Store(true) }

// Done is closed once Run has returned and everything was released.
func (a *App) Done() <-chan struct{} { return a.done }

func (a *App) initWindow() error {
	if err := a.platform.Init(); err != nil {
		return errors.Wrap(ErrWindow, err.Error())
	}
	a.release.push("platform", a.platform.Terminate)

	w, err := a.platform.CreateWindow(a.Width, a.Height, a.Title)
	if err != nil {
		return errors.Wrap(ErrWindow, err.Error())
	}
	a.window = w
	a.release.push("window", func() {
		a.window.Destroy()
		a.window = nil
	})
	return nil
}

func (a *App) initVulkan() error {
	if err := a.loader.Init(a.platform.InstanceProcAddr()); err != nil {
		return errors.Wrap(ErrLoader, err.Error())
	}
	if err := a.createInstance(); err != nil {
		return err
	}
	if err := a.setupDebugMessenger(); err != nil {
		return err
	}
	a.release.push("messenger", a.destroyDebugMessenger)

	if err := a.pickPhysicalDevice(); err != nil {
		return err
	}
	return a.createLogicalDevice()
}

func (a *App) mainLoop() {
	a.logger().Info("main loop")
	for !a.window.ShouldClose() && !a.closing.Load() {
		a.platform.PollEvents()
	}
}

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return nopLogger
	}
	return a.Logger
}
