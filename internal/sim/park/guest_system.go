package park

// updateGuests runs the per-tick visitor state machine over every guest in
// insertion order, then compacts out the ones that left.
func (w *World) updateGuests() {
	for i := 0; i < len(w.guests); i++ {
		w.updateGuest(w.guests[i])
	}

	keep := w.guests[:0]
	for _, g := range w.guests {
		if !g.gone {
			keep = append(keep, g)
		}
	}
	for i := len(keep); i < len(w.guests); i++ {
		w.guests[i] = nil
	}
	w.guests = keep
}

func (w *World) updateGuest(g *Guest) {
	g.TicksInPark++
	w.tickNeeds(g)

	switch g.State {
	case GuestQueuing:
		g.ActivityTimer--
		if g.ActivityTimer <= 0 {
			g.State = GuestRiding
			g.ActivityTimer = 10 + w.rng.Float64()*20
			g.Happiness = clamp(g.Happiness+8, 0, 100)
		}
		return
	case GuestRiding:
		g.ActivityTimer--
		if g.ActivityTimer <= 0 {
			g.Nausea = clamp(g.Nausea+5+w.rng.Float64()*5, 0, 100)
			g.State = GuestWalking
			g.clearRoute()
		}
		return
	case GuestEating:
		g.ActivityTimer--
		if g.ActivityTimer <= 0 {
			g.Hunger = clamp(g.Hunger-60, 0, 100)
			g.Thirst = clamp(g.Thirst-40, 0, 100)
			g.Happiness = clamp(g.Happiness+6, 0, 100)
			g.State = GuestWalking
			g.clearRoute()
		}
		return
	case GuestShopping:
		g.ActivityTimer--
		if g.ActivityTimer <= 0 {
			g.Happiness = clamp(g.Happiness+4, 0, 100)
			g.State = GuestWalking
			g.clearRoute()
		}
		return
	case GuestLeaving:
		if g.PathIdx >= len(g.Path) {
			g.gone = true
			return
		}
		w.advanceAlongPath(g)
		if g.PathIdx >= len(g.Path) {
			g.gone = true
		}
		return
	}

	// Entering or Walking.
	if g.PathIdx >= len(g.Path) {
		if g.State == GuestEntering {
			g.State = GuestWalking
		}
		if g.DecisionCooldown <= 0 {
			w.decide(g)
			if g.gone {
				return
			}
		}
		if g.PathIdx >= len(g.Path) {
			w.wander(g)
		}
	}

	if g.PathIdx < len(g.Path) {
		if arrived := w.advanceAlongPath(g); arrived {
			w.arrive(g)
		}
	}
}

// tickNeeds ages the guest's needs, applies discomfort penalties, and runs
// down the decision cooldown. The cooldown drains every tick no matter what
// the guest is doing.
func (w *World) tickNeeds(g *Guest) {
	g.Hunger = clamp(g.Hunger+0.01, 0, 100)
	g.Thirst = clamp(g.Thirst+0.015, 0, 100)
	g.Energy = clamp(g.Energy-0.005, 0, 100)
	g.Nausea = clamp(g.Nausea-0.02, 0, 100)
	g.DecisionCooldown--
	if g.DecisionCooldown < 0 {
		g.DecisionCooldown = 0
	}

	if g.Hunger > 70 {
		g.Happiness -= 0.1
	}
	if g.Thirst > 70 {
		g.Happiness -= 0.15
	}
	if g.Nausea > 50 {
		g.Happiness -= 0.1
	}
	g.Happiness = clamp(g.Happiness, 0, 100)
}

// advanceAlongPath moves the guest toward the next waypoint and reports
// whether it just consumed the final one.
func (w *World) advanceAlongPath(g *Guest) (arrived bool) {
	g.Progress += w.cfg.WalkSpeed
	if g.Progress < 1.0 {
		return false
	}
	g.Progress = 0

	next := g.Path[g.PathIdx]
	dx, dy := next.X-g.X, next.Y-g.Y
	switch {
	case dx > 0:
		g.Dir = DirSouth
	case dx < 0:
		g.Dir = DirNorth
	case dy > 0:
		g.Dir = DirWest
	default:
		g.Dir = DirEast
	}
	g.X, g.Y = next.X, next.Y
	g.PathIdx++
	return g.PathIdx >= len(g.Path)
}

// decide picks what the guest does next: leave the park, head for a
// structure, or fall through to wandering.
func (w *World) decide(g *Guest) {
	if w.shouldLeave(g) {
		w.beginLeaving(g)
		return
	}

	var want func(BuildingType) bool
	hungry := g.Hunger > 50 || g.Thirst > 50
	if hungry {
		if w.rng.Float64() < 0.7 {
			want = BuildingType.IsFood
		} else {
			want = BuildingType.IsShop
		}
	} else {
		switch r := w.rng.Float64(); {
		case r < 0.4:
			want = BuildingType.IsShop
		case r < 0.8:
			want = BuildingType.IsRide
		default:
			want = BuildingType.IsFood
		}
	}

	candidates := w.grid.BuildingTiles(want)
	if len(candidates) > 0 {
		dest := candidates[w.rng.IntN(len(candidates))]
		if p := FindPathToBuilding(w.grid, Coord{g.X, g.Y}, dest, w.cfg.PathfindMaxSteps); p != nil {
			w.assignRoute(g, p)
			g.TargetBuilding = dest
			g.HasDestination = true
		}
	}
	g.DecisionCooldown = 60 + w.rng.Float64()*90
}

// shouldLeave is the guest termination policy: out of money with no pressing
// needs, or simply in the park long enough.
func (w *World) shouldLeave(g *Guest) bool {
	if w.cfg.LeaveAfterTicks > 0 && g.TicksInPark > w.cfg.LeaveAfterTicks {
		return true
	}
	minFee := w.cfg.ShopFee
	if w.cfg.FoodFee < minFee {
		minFee = w.cfg.FoodFee
	}
	if w.cfg.RideFee < minFee {
		minFee = w.cfg.RideFee
	}
	return g.Cash < minFee && g.Hunger <= 50 && g.Thirst <= 50
}

// beginLeaving routes the guest to the nearest reachable entrance. A guest
// with no way out is removed on the spot.
func (w *World) beginLeaving(g *Guest) {
	g.State = GuestLeaving
	g.HasDestination = false

	entrances := w.grid.EntranceTiles()
	var best []Coord
	bestDist := -1
	from := Coord{g.X, g.Y}
	for _, e := range entrances {
		d := from.Manhattan(e)
		if bestDist >= 0 && d >= bestDist {
			continue
		}
		if p := FindPath(w.grid, from, e, w.cfg.PathfindMaxSteps); p != nil {
			best, bestDist = p, d
		}
	}
	if best == nil {
		g.gone = true
		return
	}
	w.assignRoute(g, best)
}

// assignRoute installs a path, skipping the leading waypoint when it is the
// tile the guest already stands on.
func (w *World) assignRoute(g *Guest, path []Coord) {
	g.Path = path
	g.PathIdx = 0
	g.Progress = 0
	if len(path) > 0 && path[0] == (Coord{g.X, g.Y}) {
		g.PathIdx = 1
	}
	if g.PathIdx >= len(g.Path) {
		g.clearRoute()
	}
}

// wander takes a single random step onto an adjacent walkable tile.
func (w *World) wander(g *Guest) {
	var opts []Coord
	for _, d := range stepDirs {
		n := Coord{g.X + d.X, g.Y + d.Y}
		if t := w.grid.TileAt(n.X, n.Y); t.Walkable() {
			opts = append(opts, n)
		}
	}
	if len(opts) == 0 {
		return
	}
	g.Path = []Coord{opts[w.rng.IntN(len(opts))]}
	g.PathIdx = 0
	g.Progress = 0
}

// arrive resolves the end of a route: pay and start the chosen activity, or
// back off when the guest cannot afford it.
func (w *World) arrive(g *Guest) {
	if g.State == GuestEntering {
		g.State = GuestWalking
	}
	if !g.HasDestination {
		return
	}
	g.HasDestination = false

	t := w.grid.TileAt(g.TargetBuilding.X, g.TargetBuilding.Y)
	if t == nil || t.Building == BuildingNone {
		g.clearRoute()
		return
	}

	var fee float64
	var next GuestState
	var timer float64
	switch t.Building.Kind() {
	case KindRide:
		fee, next = w.cfg.RideFee, GuestQueuing
		timer = 30 + w.rng.Float64()*60
	case KindFood:
		fee, next = w.cfg.FoodFee, GuestEating
		timer = 8 + w.rng.Float64()*12
	case KindShop:
		fee, next = w.cfg.ShopFee, GuestShopping
		timer = 6 + w.rng.Float64()*10
	default:
		g.clearRoute()
		return
	}

	if g.Cash < fee {
		g.clearRoute()
		g.DecisionCooldown = 30
		return
	}
	g.Cash -= fee
	g.TotalSpent += fee
	w.cash += fee
	g.State = next
	g.ActivityTimer = timer
	g.clearRoute()
}

// spawnGuests rolls the per-tick arrival chance during opening hours and
// admits one guest at a random entrance when it hits. A candidate that
// cannot cover the entry fee is discarded without side effects on the park.
func (w *World) spawnGuests() {
	hour := w.clock.Hour
	if hour < 9 || hour > 21 {
		return
	}
	if len(w.guests) >= w.cfg.MaxGuests {
		return
	}

	chance := w.cfg.SpawnBase + (w.rating/1000)*w.cfg.SpawnRatingWeight
	if hour >= 11 && hour <= 15 {
		chance += w.cfg.SpawnLunchBonus
	}
	if w.rng.Float64() >= chance {
		return
	}

	entrances := w.grid.EntranceTiles()
	if len(entrances) == 0 {
		return
	}
	e := entrances[w.rng.IntN(len(entrances))]

	g := NewGuest(w.nextGuestID, e, w.grid.Size, w.rng)
	w.nextGuestID++
	if g.Cash < w.cfg.EntryFee {
		return
	}
	g.Cash -= w.cfg.EntryFee
	g.TotalSpent += w.cfg.EntryFee
	w.cash += w.cfg.EntryFee
	w.guests = append(w.guests, g)
}

// updateRating recomputes the park rating from mean guest happiness. With no
// guests the previous rating holds.
func (w *World) updateRating() {
	if len(w.guests) == 0 {
		return
	}
	var sum float64
	for _, g := range w.guests {
		sum += g.Happiness
	}
	r := sum / float64(len(w.guests)) * 10
	if r > 1000 {
		r = 1000
	}
	w.rating = r
}
