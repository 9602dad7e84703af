package park

import "testing"

func TestGuests_NeedsAgingAndClamps(t *testing.T) {
	w := newTestWorld(t, nil)
	g := &Guest{State: GuestWalking, Hunger: 99.999, Thirst: 100, Energy: 0.001, Nausea: 0.01, Happiness: 50}
	w.tickNeeds(g)

	if g.Hunger != 100 {
		t.Fatalf("hunger %v, want clamped to 100", g.Hunger)
	}
	if g.Thirst != 100 {
		t.Fatalf("thirst %v, want clamped to 100", g.Thirst)
	}
	if g.Energy != 0 {
		t.Fatalf("energy %v, want floored at 0", g.Energy)
	}
	if g.Nausea != 0 {
		t.Fatalf("nausea %v, want decayed to 0", g.Nausea)
	}
	// Hunger and thirst discomfort both bite: -0.1 and -0.15.
	if !almostEqual(g.Happiness, 49.75) {
		t.Fatalf("happiness %v, want 49.75", g.Happiness)
	}
}

func TestGuests_HappinessFloorsAtZero(t *testing.T) {
	w := newTestWorld(t, nil)
	g := &Guest{State: GuestWalking, Hunger: 100, Thirst: 100, Nausea: 100, Happiness: 0.1}
	for i := 0; i < 10; i++ {
		w.tickNeeds(g)
	}
	if g.Happiness != 0 {
		t.Fatalf("happiness %v, want 0", g.Happiness)
	}
}

func TestGuests_CooldownDrainsWhileBusy(t *testing.T) {
	w := newTestWorld(t, nil)
	layPath(w, Coord{1, 1}, Coord{2, 1}, Coord{3, 1}, Coord{4, 1})

	g := &Guest{
		ID: 1, X: 1, Y: 1, State: GuestWalking, Cash: 50,
		Path:             []Coord{{2, 1}, {3, 1}, {4, 1}},
		DecisionCooldown: 40,
	}
	w.updateGuest(g)
	if g.DecisionCooldown != 39 {
		t.Fatalf("cooldown %v after a walking tick, want 39", g.DecisionCooldown)
	}

	q := &Guest{ID: 2, State: GuestQueuing, ActivityTimer: 50, DecisionCooldown: 40}
	w.updateGuest(q)
	if q.DecisionCooldown != 39 {
		t.Fatalf("cooldown %v after a queuing tick, want 39", q.DecisionCooldown)
	}

	z := &Guest{ID: 3, State: GuestRiding, ActivityTimer: 50, DecisionCooldown: 0.5}
	w.updateGuest(z)
	if z.DecisionCooldown != 0 {
		t.Fatalf("cooldown %v, want floored at 0", z.DecisionCooldown)
	}
}

func TestGuests_EatingRestoresNeeds(t *testing.T) {
	w := newTestWorld(t, nil)
	g := &Guest{State: GuestEating, ActivityTimer: 1, Hunger: 80, Thirst: 50, Happiness: 50}
	w.updateGuest(g)

	if g.State != GuestWalking {
		t.Fatalf("state %v, want walking", g.State)
	}
	if g.Hunger > 25 {
		t.Fatalf("hunger %v, want restored", g.Hunger)
	}
	if g.Thirst > 15 {
		t.Fatalf("thirst %v, want restored", g.Thirst)
	}
	if g.Happiness <= 50 {
		t.Fatalf("happiness %v, want a meal bonus", g.Happiness)
	}
}

func TestGuests_QueueToRideToWalk(t *testing.T) {
	w := newTestWorld(t, nil)
	g := &Guest{State: GuestQueuing, ActivityTimer: 1, Happiness: 50}
	w.updateGuest(g)

	if g.State != GuestRiding {
		t.Fatalf("state %v, want riding", g.State)
	}
	if g.ActivityTimer < 10 || g.ActivityTimer > 30 {
		t.Fatalf("ride timer %v out of range", g.ActivityTimer)
	}
	if g.Happiness < 57 {
		t.Fatalf("happiness %v, want boarding bonus", g.Happiness)
	}

	g.ActivityTimer = 1
	w.updateGuest(g)
	if g.State != GuestWalking {
		t.Fatalf("state %v, want walking after ride", g.State)
	}
	if g.Nausea < 5 {
		t.Fatalf("nausea %v, want post-ride queasiness", g.Nausea)
	}
}

func TestGuests_ShoppingCompletion(t *testing.T) {
	w := newTestWorld(t, nil)
	g := &Guest{State: GuestShopping, ActivityTimer: 1, Happiness: 50}
	w.updateGuest(g)
	if g.State != GuestWalking || g.Happiness < 53 {
		t.Fatalf("state %v happiness %v after shopping", g.State, g.Happiness)
	}
}

func TestGuests_ArrivalChargesFee(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.WalkSpeed = 1.0 })
	layPath(w, Coord{1, 1}, Coord{2, 1})
	w.grid.TileAt(3, 1).Building = BuildingFoodStand

	g := &Guest{
		ID: 1, X: 1, Y: 1, State: GuestWalking, Cash: 50, Happiness: 50,
		Path: []Coord{{2, 1}}, HasDestination: true, TargetBuilding: Coord{3, 1},
		DecisionCooldown: 100,
	}
	parkCashBefore := w.cash
	w.updateGuest(g)

	if g.State != GuestEating {
		t.Fatalf("state %v, want eating", g.State)
	}
	if !almostEqual(g.Cash, 50-w.cfg.FoodFee) {
		t.Fatalf("guest cash %v", g.Cash)
	}
	if !almostEqual(g.TotalSpent, w.cfg.FoodFee) {
		t.Fatalf("lifetime spend %v, want %v", g.TotalSpent, w.cfg.FoodFee)
	}
	if !almostEqual(w.cash, parkCashBefore+w.cfg.FoodFee) {
		t.Fatalf("park cash %v, want fee credited", w.cash)
	}
	if g.ActivityTimer < 8 || g.ActivityTimer > 20 {
		t.Fatalf("meal timer %v out of range", g.ActivityTimer)
	}
}

func TestGuests_InsufficientCashBacksOff(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.WalkSpeed = 1.0 })
	layPath(w, Coord{1, 1}, Coord{2, 1})
	w.grid.TileAt(3, 1).Building = BuildingCarousel

	g := &Guest{
		ID: 1, X: 1, Y: 1, State: GuestWalking, Cash: 5, Happiness: 50,
		Path: []Coord{{2, 1}}, HasDestination: true, TargetBuilding: Coord{3, 1},
		DecisionCooldown: 100,
	}
	parkCashBefore := w.cash
	w.updateGuest(g)

	if g.State != GuestWalking {
		t.Fatalf("state %v, want walking", g.State)
	}
	if g.Cash != 5 {
		t.Fatalf("guest cash %v, must not go negative", g.Cash)
	}
	if g.TotalSpent != 0 {
		t.Fatalf("lifetime spend %v after a refused purchase", g.TotalSpent)
	}
	if w.cash != parkCashBefore {
		t.Fatalf("park cash %v, must be unchanged", w.cash)
	}
	if g.DecisionCooldown != 30 {
		t.Fatalf("cooldown %v, want the back-off", g.DecisionCooldown)
	}
	if g.HasDestination {
		t.Fatal("destination should be dropped")
	}
}

func TestGuests_TileStepResetsProgress(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.WalkSpeed = 0.6 })
	layPath(w, Coord{1, 1}, Coord{2, 1}, Coord{3, 1})

	g := &Guest{
		ID: 1, X: 1, Y: 1, State: GuestWalking, Cash: 50,
		Path:             []Coord{{2, 1}, {3, 1}},
		DecisionCooldown: 100,
	}
	w.updateGuest(g)
	if g.X != 1 || g.Progress != 0.6 {
		t.Fatalf("at (%d,%d) progress %v, want still mid-step", g.X, g.Y, g.Progress)
	}
	// The fraction zeroes on arrival instead of carrying the overshoot.
	w.updateGuest(g)
	if g.X != 2 || g.Y != 1 {
		t.Fatalf("at (%d,%d), want (2,1)", g.X, g.Y)
	}
	if g.Progress != 0 {
		t.Fatalf("progress %v after a tile step, want exactly 0", g.Progress)
	}
}

func TestGuests_WanderStaysOnWalkway(t *testing.T) {
	w := newTestWorld(t, nil)
	layPath(w, Coord{5, 5}, Coord{6, 5}, Coord{5, 6})

	g := &Guest{ID: 1, X: 5, Y: 5, State: GuestWalking, Cash: 50}
	w.guests = append(w.guests, g)
	w.updateGuest(g)

	if len(g.Path) == 0 {
		t.Fatal("idle guest should wander")
	}
	next := g.Path[g.PathIdx]
	if !w.grid.TileAt(next.X, next.Y).Walkable() {
		t.Fatalf("wander target %v is not walkable", next)
	}
	if (Coord{g.X, g.Y}).Manhattan(next) != 1 {
		t.Fatalf("wander target %v is not adjacent", next)
	}
}

func TestGuests_BrokeGuestLeavesViaEntrance(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.WalkSpeed = 1.0 })
	layPath(w, Coord{0, 5}, Coord{1, 5}, Coord{2, 5})

	g := &Guest{ID: 1, X: 2, Y: 5, State: GuestWalking, Cash: 0, Hunger: 20, Thirst: 20}
	w.guests = append(w.guests, g)

	w.updateGuests()
	if g.State != GuestLeaving {
		t.Fatalf("state %v, want leaving", g.State)
	}

	for i := 0; i < 10 && len(w.guests) > 0; i++ {
		w.updateGuests()
	}
	if len(w.guests) != 0 {
		t.Fatalf("guest never left, state %v at (%d,%d)", g.State, g.X, g.Y)
	}
}

func TestGuests_TrappedGuestIsRemoved(t *testing.T) {
	w := newTestWorld(t, nil)
	layPath(w, Coord{5, 5}) // no entrance anywhere

	g := &Guest{ID: 1, X: 5, Y: 5, State: GuestWalking, Cash: 0, Hunger: 20, Thirst: 20}
	w.guests = append(w.guests, g)
	w.updateGuests()

	if len(w.guests) != 0 {
		t.Fatal("guest with no exit should be removed")
	}
}

func TestGuests_LongStayGuestLeaves(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.LeaveAfterTicks = 10 })
	layPath(w, Coord{0, 5}, Coord{1, 5})

	g := &Guest{ID: 1, X: 1, Y: 5, State: GuestWalking, Cash: 100, TicksInPark: 10}
	w.guests = append(w.guests, g)
	w.updateGuests()

	if g.State != GuestLeaving {
		t.Fatalf("state %v, want leaving after residence limit", g.State)
	}
}

func TestGuests_EnteringBecomesWalking(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.WalkSpeed = 1.0 })
	layPath(w, Coord{5, 0}, Coord{5, 1})

	g := NewGuest(1, Coord{5, 0}, w.grid.Size, w.rng)
	if g.State != GuestEntering {
		t.Fatalf("fresh guest state %v", g.State)
	}
	w.updateGuest(g)
	if g.State != GuestWalking || g.X != 5 || g.Y != 1 {
		t.Fatalf("state %v at (%d,%d), want walking at (5,1)", g.State, g.X, g.Y)
	}
}

func TestGuests_SpawnStatsWithinBounds(t *testing.T) {
	w := newTestWorld(t, nil)
	for i := 0; i < 50; i++ {
		g := NewGuest(i, Coord{5, 0}, w.grid.Size, w.rng)
		if g.Hunger < 20 || g.Hunger > 50 {
			t.Fatalf("hunger %v out of spawn range", g.Hunger)
		}
		if g.Energy > 100 || g.Energy < 80 {
			t.Fatalf("energy %v out of spawn range", g.Energy)
		}
		if g.Happiness > 100 || g.Happiness < 70 {
			t.Fatalf("happiness %v out of spawn range", g.Happiness)
		}
		if g.Cash < 30 || g.Cash > 100 {
			t.Fatalf("cash %v out of spawn range", g.Cash)
		}
		if g.Nausea != 0 {
			t.Fatalf("nausea %v, want 0 at spawn", g.Nausea)
		}
	}
}
