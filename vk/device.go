package vk

import (
	"github.com/pkg/errors"
)

// InvalidScore is the score of a device that cannot be used.
const InvalidScore int64 = -1

// GraphicsFamily returns the index of the first queue family with at least
// one queue and graphics support. found is false if there is none.
func GraphicsFamily(families []QueueFamily) (index uint32, found bool) {
	for i, f := range families {
		if f.QueueCount > 0 && f.Flags&QueueGraphics != 0 {
			return uint32(i), true
		}
	}
	return 0, false
}

// Score rates a device by the sum of its maximum 2D and 3D image
// dimensions, or InvalidScore if it has no graphics queue family.
func Score(props DeviceProperties, families []QueueFamily) int64 {
	if _, ok := GraphicsFamily(families); !ok {
		return InvalidScore
	}
	return imageScore(props.Limits)
}

func imageScore(l Limits) int64 {
	return int64(l.MaxImageDimension2D) + int64(l.MaxImageDimension3D)
}

// Candidate is a scored physical device. Family is the graphics queue
// family found while scoring; it is meaningful only if Valid.
type Candidate struct {
	Device     PhysicalDevice
	Properties DeviceProperties
	Families   []QueueFamily
	Family     uint32
	Score      int64
}

// Valid reports whether the candidate may be selected.
func (c Candidate) Valid() bool { return c.Score > InvalidScore }

// Candidates queries and scores each device.
func Candidates(devices []PhysicalDevice) []Candidate {
	cands := make([]Candidate, len(devices))
	for i, dev := range devices {
		c := Candidate{
			Device:     dev,
			Properties: dev.Properties(),
			Families:   dev.QueueFamilies(),
		}
		family, ok := GraphicsFamily(c.Families)
		c.Score = InvalidScore
		if ok {
			c.Family = family
			c.Score = imageScore(c.Properties.Limits)
		}
		cands[i] = c
	}
	return cands
}

// Select returns the valid candidate with the highest score. On ties the
// first one wins.
func Select(cands []Candidate) (Candidate, error) {
	best := -1
	for i, c := range cands {
		if !c.Valid() {
			continue
		}
		if best == -1 || c.Score > cands[best].Score {
			best = i
		}
	}
	if best == -1 {
		return Candidate{}, errors.WithStack(ErrNoSuitableDevice)
	}
	return cands[best], nil
}

func (a *App) pickPhysicalDevice() error {
	devices, err := a.instance.PhysicalDevices()
	if err != nil {
		return errors.Wrapf(ErrNoDevice, "vkEnumeratePhysicalDevices: %v", err)
	}
	if len(devices) == 0 {
		return errors.WithStack(ErrNoDevice)
	}

	cands := Candidates(devices)
	for _, c := range cands {
		a.logger().Info("device",
			"name", c.Properties.Name,
			"type", c.Properties.Type,
			"api", VersionString(c.Properties.APIVersion),
			"score", c.Score)
	}
	c, err := Select(cands)
	if err != nil {
		return err
	}

	a.physicalDevice = c.Device
	a.graphicsFamily = c.Family
	limits := c.Properties.Limits
	a.logger().Info("using GPU",
		"name", c.Properties.Name,
		"queueFamily", c.Family,
		"maxImageDimension1D", limits.MaxImageDimension1D,
		"maxImageDimension2D", limits.MaxImageDimension2D,
		"maxImageDimension3D", limits.MaxImageDimension3D,
		"maxImageDimensionCube", limits.MaxImageDimensionCube)
	return nil
}

func (a *App) createLogicalDevice() error {
	info := &DeviceInfo{
		QueueFamily:   a.graphicsFamily,
		QueuePriority: 1.0,
		Layers:        a.validationLayers(),
	}
	dev, err := a.physicalDevice.CreateDevice(info)
	if err != nil {
		return errors.Wrapf(ErrCreateDevice, "vkCreateDevice: %v", err)
	}
	a.device = dev
	a.release.push("device", func() {
		a.device.Destroy()
		a.device = nil
		a.graphicsQueue = nil
	})
	a.graphicsQueue = dev.Queue(a.graphicsFamily, 0)
	a.logger().Info("logical device created", "queueFamily", a.graphicsFamily)
	return nil
}
