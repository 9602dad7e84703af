package park

import "math"

// GuestState is the visitor state machine.
type GuestState uint8

const (
	GuestEntering GuestState = iota
	GuestWalking
	GuestQueuing
	GuestRiding
	GuestEating
	GuestShopping
	GuestExitingBuilding // reserved, never driven
	GuestLeaving
)

func (s GuestState) String() string {
	switch s {
	case GuestEntering:
		return "entering"
	case GuestWalking:
		return "walking"
	case GuestQueuing:
		return "queuing"
	case GuestRiding:
		return "riding"
	case GuestEating:
		return "eating"
	case GuestShopping:
		return "shopping"
	case GuestExitingBuilding:
		return "exiting_building"
	case GuestLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

type Direction uint8

const (
	DirNorth Direction = iota
	DirEast
	DirSouth
	DirWest
)

func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	default:
		return "unknown"
	}
}

// Guest is one park visitor. All needs run on a 0..100 scale.
type Guest struct {
	ID int

	X, Y     int
	Path     []Coord
	PathIdx  int
	Progress float64
	Dir      Direction

	State         GuestState
	ActivityTimer float64

	// Target structure while walking toward one.
	TargetBuilding Coord
	HasDestination bool

	Hunger    float64
	Thirst    float64
	Bathroom  float64
	Energy    float64
	Happiness float64
	Nausea    float64

	Cash             float64
	TotalSpent       float64
	DecisionCooldown float64
	TicksInPark      uint64

	// Cosmetics, fixed at spawn.
	HasHat     bool
	WalkOffset float64
	ShirtColor int
	PantsColor int

	gone bool
}

const guestPaletteSize = 8

// NewGuest creates a visitor standing on an entrance tile, already walking
// one step into the park. The inward step and facing depend on which edge
// the entrance sits on.
func NewGuest(id int, entrance Coord, gridSize int, rng *RNG) *Guest {
	g := &Guest{
		ID:    id,
		X:     entrance.X,
		Y:     entrance.Y,
		State: GuestEntering,
	}

	inward := Coord{entrance.X, entrance.Y + 1}
	g.Dir = DirSouth
	switch {
	case entrance.X == 0:
		inward = Coord{entrance.X + 1, entrance.Y}
		g.Dir = DirSouth
	case entrance.X == gridSize-1:
		inward = Coord{entrance.X - 1, entrance.Y}
		g.Dir = DirNorth
	case entrance.Y == 0:
		inward = Coord{entrance.X, entrance.Y + 1}
		g.Dir = DirWest
	case entrance.Y == gridSize-1:
		inward = Coord{entrance.X, entrance.Y - 1}
		g.Dir = DirEast
	}
	g.Path = []Coord{inward}

	g.Hunger = 20 + rng.Float64()*30
	g.Thirst = 20 + rng.Float64()*30
	g.Bathroom = 10 + rng.Float64()*20
	g.Energy = math.Min(100, 80+rng.Float64()*20)
	g.Happiness = math.Min(100, 70+rng.Float64()*30)
	g.Nausea = 0
	g.Cash = 30 + rng.Float64()*70
	g.DecisionCooldown = 20 + rng.Float64()*40
	g.HasHat = rng.Float64() > 0.7
	g.WalkOffset = rng.Float64() * 2 * math.Pi
	g.ShirtColor = rng.IntN(guestPaletteSize)
	g.PantsColor = rng.IntN(guestPaletteSize)
	return g
}

func (g *Guest) clearRoute() {
	g.Path = nil
	g.PathIdx = 0
	g.Progress = 0
	g.HasDestination = false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
