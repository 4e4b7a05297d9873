package sim

// Input is the held movement intent, written by whatever reads the keyboard
// and read once per Step. The latest write before a Step wins.
type Input struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
	Up    bool `json:"up"`
}

// Jump applies the jump impulse at once, as the key-down handler would, if
// the player is standing on something. It reports whether the impulse fired.
// Holding Up does nothing further: the impulse is edge-triggered.
func Jump(s *State) bool {
	if !s.Player.Grounded {
		return false
	}
	s.Player.VY = s.Config.Physics.JumpStrength
	s.Player.Grounded = false
	return true
}
