package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Engine is the minimal contract the frame driver needs from a simulation:
// advance state by one generation, or produce a complete textual snapshot
// of the current state. Render must not mutate state and must return the
// same output for repeated calls with no intervening Step.
type Engine interface {
	Step() error
	Render() (string, error)
}

// Sim extends Engine with what the factory registry and the GUI painter need.
type Sim interface {
	Engine
	Name() string
	Size() Size
	Reset(seed int64)
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
