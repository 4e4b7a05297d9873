package sim

import "fmt"

// EventKind identifies something a Step did that a frontend may react to.
type EventKind int

const (
	EventCollected EventKind = iota + 1
	EventDoorOpened
	EventLevelLoaded
	EventGameCompleted
	EventRecovered
)

var eventNames = map[EventKind]string{
	EventCollected:     "collected",
	EventDoorOpened:    "door_opened",
	EventLevelLoaded:   "level_loaded",
	EventGameCompleted: "game_completed",
	EventRecovered:     "recovered",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	for kind, name := range eventNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// Event is one occurrence within a Step. Level is the level index the event
// belongs to; Index is the collectible index for EventCollected.
type Event struct {
	Kind  EventKind `json:"kind"`
	Level int       `json:"level"`
	Index int       `json:"index,omitempty"`
}
