package vk

import "log/slog"

type release struct {
	name string
	fn   func()
}

// releaser records a release step for each acquired resource and runs them
// in reverse acquisition order.
type releaser struct {
	steps []release
}

// push must be called immediately after the resource is acquired.
func (r *releaser) push(name string, fn func()) {
	r.steps = append(r.steps, release{name, fn})
}

// unwind runs every recorded step, last acquired first. It is safe to call
// more than once.
func (r *releaser) unwind(log *slog.Logger) {
	for i := len(r.steps) - 1; i >= 0; i-- {
		step := r.steps[i]
		log.Debug("release", "step", step.name)
		step.fn()
	}
	r.steps = nil
}

// pending names the recorded steps in the order they would run.
func (r *releaser) pending() []string {
	names := make([]string, len(r.steps))
	for i, step := range r.steps {
		names[len(r.steps)-1-i] = step.name
	}
	return names
}
