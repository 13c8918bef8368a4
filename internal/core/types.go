package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Machine is the automaton-agnostic surface the UI layer drives. Every
// Supervisor instantiation satisfies it regardless of its cell state type.
type Machine interface {
	Name() string
	Size() Size
	Generation() int
	Step()
	Toggle(x, y int)
	Randomize(seed int64)
	ResetZoom(viewportW, viewportH int)
	SetScaleFromDelta(anchor Point, delta float64)
	Pan(dx, dy float64)
	ToScreen(p Point) Point
	FromScreen(p Point) Point
	Scale() Scale
	Draw(c Canvas)
}

// Factory constructs a Machine from an optional configuration map and the
// presentation settings chosen at startup.
type Factory func(cfg map[string]string, set Settings) (Machine, error)

var machines = map[string]Factory{}

// Register adds a machine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	machines[name] = f
}

// Machines exposes the registry of available machine factories.
func Machines() map[string]Factory {
	return machines
}
