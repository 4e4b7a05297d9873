package components

import (
	"github.com/automoto/pawprint/shared/sim"
	"github.com/yohamta/donburi"
)

// SimulationData owns the simulation state for the scene. The ECS entities
// only mirror it for drawing.
type SimulationData struct {
	State *sim.State
	Input sim.Input

	// Events holds what the last Step reported, for systems that react to it.
	Events []sim.Event

	// MirroredLevel tracks which level the entities were
	// built for; -1 forces a rebuild.
	MirroredLevel int
}

var Simulation = donburi.NewComponentType[SimulationData]()
