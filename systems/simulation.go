package systems

import (
	"github.com/automoto/pawprint/components"
	cfg "github.com/automoto/pawprint/config"
	"github.com/automoto/pawprint/shared/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation is the frame driver: it latches the held input, fires the
// jump on its press edge and advances the simulation by exactly one step.
func UpdateSimulation(ecs *ecs.ECS) {
	s, ok := GetSimulation(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)

	s.Input = sim.Input{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Up:    GetAction(input, cfg.ActionMoveUp).Pressed,
	}
	if GetAction(input, cfg.ActionJump).JustPressed || GetAction(input, cfg.ActionMoveUp).JustPressed {
		if sim.Jump(s.State) {
			QueueSFX(ecs, cfg.SoundJump)
		}
	}

	s.Events = sim.Step(s.State, s.Input)
}

// GetSimulation returns the singleton simulation component.
func GetSimulation(ecs *ecs.ECS) (*components.SimulationData, bool) {
	entry, ok := components.Simulation.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Simulation.Get(entry), true
}

// frameEvents returns the events of the last step. Pausing clears them, so
// systems that still run while paused see nothing after the toggle.
func frameEvents(ecs *ecs.ECS) []sim.Event {
	s, ok := GetSimulation(ecs)
	if !ok {
		return nil
	}
	return s.Events
}

func hasEvent(events []sim.Event, kind sim.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
