package sim

import "github.com/automoto/pawprint/shared/gamemath"

// moveHorizontal applies horizontal intent and resolves side hits. Platforms
// are checked in sequence order; a hit zeroes vx, so only the first overlap in
// a frame moves the player and later ones just stop it.
func (s *State) moveHorizontal(in Input) {
	p := &s.Player
	speed := s.Config.Physics.MoveSpeed

	p.VX = 0
	if in.Left {
		p.VX = -speed
	}
	if in.Right {
		p.VX = speed
	}
	switch {
	case p.VX < 0:
		p.Facing = FacingLeft
	case p.VX > 0:
		p.Facing = FacingRight
	}

	p.X += p.VX

	// Only a body that reaches more than the tolerance into the platform's
	// height is blocked, so standing on a top edge never snags.
	body := p.Rect.Inset(0, s.Config.Collision.SideTolerance)
	for _, platform := range s.Platforms {
		if !gamemath.OverlapsY(body, platform.Rect) || !gamemath.OverlapsX(p.Rect, platform.Rect) {
			continue
		}
		switch {
		case p.VX > 0:
			p.X = platform.X - p.W
		case p.VX < 0:
			p.X = platform.Right()
		}
		p.VX = 0
		body.X = p.X
	}
}

// moveVertical integrates gravity and returns the player's bottom edge as it
// was before the displacement.
func (s *State) moveVertical() (prevBottom float64) {
	p := &s.Player

	p.VY += s.Config.Physics.Gravity
	prevBottom = p.Bottom()
	p.Y += p.VY
	p.Grounded = false
	return prevBottom
}

// land snaps the player onto the first qualifying platform in sequence order.
func (s *State) land(prevBottom float64) {
	p := &s.Player
	if p.VY < 0 {
		return
	}

	col := s.Config.Collision
	feet := p.Rect.Inset(col.LandingInset, 0)
	bottom := p.Bottom()
	fastFall := p.VY > col.FastFallSpeed

	for _, platform := range s.Platforms {
		if bottom < platform.Y || bottom > platform.Bottom() {
			continue
		}
		if !gamemath.OverlapsX(feet, platform.Rect) {
			continue
		}
		if prevBottom > platform.Y+col.LandingTolerance && !fastFall {
			continue
		}

		p.Y = platform.Y - p.H
		p.VY = 0
		p.Grounded = true
		return
	}
}

// checkPassThrough evaluates the head-bump geometry. Rising players are never
// stopped by a platform's underside; the result is only reported.
func (s *State) checkPassThrough() {
	p := &s.Player
	p.PassingThrough = false
	if p.VY >= 0 {
		return
	}
	for _, platform := range s.Platforms {
		if gamemath.Overlaps(p.Rect, platform.Rect) && p.Bottom() > platform.Bottom() {
			p.PassingThrough = true
			return
		}
	}
}

// clampToWorld keeps the player between the canvas side walls. Velocity is
// left alone.
func (s *State) clampToWorld() {
	p := &s.Player
	p.X = gamemath.ClampFloat(p.X, 0, s.Config.Canvas.Width-p.W)
}
