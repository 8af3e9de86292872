package rabduction

// ResolveCollisions bounces a descending player off the first overlapping
// platform. It returns the platform landed on and whether a bounce happened.
//
// Only a strictly negative velocity is checked, so a rising or momentarily
// still player never re-triggers. The loop stops at the first hit: the
// velocity is positive from then on and further matches must not apply.
func ResolveCollisions(p *Player, platforms []Platform, bounceVelocity float64) (Platform, bool) {
	if !p.Alive() || p.Velocity >= 0 {
		return Platform{}, false
	}

	box := p.Box()
	for _, pl := range platforms {
		if box.Overlaps(pl.Box()) {
			p.Velocity = bounceVelocity
			return pl, true
		}
	}
	return Platform{}, false
}
