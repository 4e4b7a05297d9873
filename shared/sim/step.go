package sim

// Step advances the simulation by one frame using the held input and returns
// what happened. The order is fixed: horizontal move and side hits, gravity
// and landing, pickups and animation, the door, out-of-bounds recovery, and
// finally the side-wall clamp.
func Step(s *State, in Input) []Event {
	var events []Event

	s.moveHorizontal(in)
	prevBottom := s.moveVertical()
	s.land(prevBottom)
	s.checkPassThrough()

	events = s.collect(events)
	s.animateCollectibles()

	events = s.useDoor(events)
	events = s.recoverOutOfBounds(events)
	s.clampToWorld()

	s.Frame++
	return events
}
