package sim

import "github.com/automoto/pawprint/shared/gamemath"

// useDoor advances to the next level, or wraps to the first one after the
// last, when the door is open and the player stands in it.
func (s *State) useDoor(events []Event) []Event {
	if !s.DoorActive() || !gamemath.Overlaps(s.Player.Rect, s.Door.Rect) {
		return events
	}

	next := s.LevelIndex + 1
	completed := next >= len(s.Levels)
	if completed {
		next = 0
	}

	// next is always in range here.
	_ = s.LoadLevel(next)

	events = append(events, Event{Kind: EventLevelLoaded, Level: next})
	if completed {
		events = append(events, Event{Kind: EventGameCompleted, Level: next})
	}
	return events
}
