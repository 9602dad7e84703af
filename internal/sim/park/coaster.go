package park

import "math"

// TrackPieceType identifies the geometry of one coaster track segment.
type TrackPieceType uint8

const (
	TrackFlat TrackPieceType = iota
	TrackStation
	TrackLiftHill
	TrackSlopeUpSmall
	TrackSlopeUpMedium
	TrackSlopeDownSmall
	TrackSlopeDownMedium
	TrackTurnLeft
	TrackTurnRight
	TrackLoopVertical
	TrackCorkscrew
	TrackBrakes
)

var trackPieceNames = map[TrackPieceType]string{
	TrackFlat:            "flat",
	TrackStation:         "station",
	TrackLiftHill:        "lift_hill",
	TrackSlopeUpSmall:    "slope_up_small",
	TrackSlopeUpMedium:   "slope_up_medium",
	TrackSlopeDownSmall:  "slope_down_small",
	TrackSlopeDownMedium: "slope_down_medium",
	TrackTurnLeft:        "turn_left",
	TrackTurnRight:       "turn_right",
	TrackLoopVertical:    "loop_vertical",
	TrackCorkscrew:       "corkscrew",
	TrackBrakes:          "brakes",
}

func (t TrackPieceType) String() string { return trackPieceNames[t] }

// TrackPieceTypeByName resolves a wire-format name, TrackFlat if unknown.
func TrackPieceTypeByName(name string) TrackPieceType {
	for tp, n := range trackPieceNames {
		if n == name {
			return tp
		}
	}
	return TrackFlat
}

// heightDelta is how many elevation units a piece climbs or drops.
func (t TrackPieceType) heightDelta() int {
	switch t {
	case TrackSlopeUpSmall, TrackLiftHill:
		return 1
	case TrackSlopeUpMedium:
		return 2
	case TrackSlopeDownSmall:
		return -1
	case TrackSlopeDownMedium:
		return -2
	default:
		return 0
	}
}

// StrutStyle is how a segment's supports are built.
type StrutStyle uint8

const (
	StrutMetal StrutStyle = iota
	StrutWood
)

func (s StrutStyle) String() string {
	if s == StrutWood {
		return "wood"
	}
	return "metal"
}

// CoasterStyle is the ride's vehicle style. It fixes the strut style and the
// default color scheme.
type CoasterStyle uint8

const (
	CoasterSteelSitDown CoasterStyle = iota
	CoasterWoodenClassic
	CoasterWoodenTwister
	CoasterSteelInverted
	CoasterSteelFloorless
	CoasterSteelWing
	CoasterSteelFlying
	CoasterMineTrain
	CoasterWaterCoaster
	CoasterLaunchCoaster
	CoasterHyperCoaster
	CoasterGigaCoaster
)

var coasterStyleNames = map[CoasterStyle]string{
	CoasterSteelSitDown:   "steel_sit_down",
	CoasterWoodenClassic:  "wooden_classic",
	CoasterWoodenTwister:  "wooden_twister",
	CoasterSteelInverted:  "steel_inverted",
	CoasterSteelFloorless: "steel_floorless",
	CoasterSteelWing:      "steel_wing",
	CoasterSteelFlying:    "steel_flying",
	CoasterMineTrain:      "mine_train",
	CoasterWaterCoaster:   "water_coaster",
	CoasterLaunchCoaster:  "launch_coaster",
	CoasterHyperCoaster:   "hyper_coaster",
	CoasterGigaCoaster:    "giga_coaster",
}

func (s CoasterStyle) String() string { return coasterStyleNames[s] }

// StrutStyle gives wooden rides wooden supports, everything else metal.
func (s CoasterStyle) StrutStyle() StrutStyle {
	if s == CoasterWoodenClassic || s == CoasterWoodenTwister {
		return StrutWood
	}
	return StrutMetal
}

// CoasterColor is the ride's paint scheme: track rails, ties, supports.
type CoasterColor struct {
	Primary   string
	Secondary string
	Supports  string
}

var coasterStyleColors = map[CoasterStyle]CoasterColor{
	CoasterWoodenClassic:  {"#8B4513", "#D2691E", "#5C3317"},
	CoasterWoodenTwister:  {"#A0522D", "#CD853F", "#654321"},
	CoasterSteelSitDown:   {"#dc2626", "#fbbf24", "#374151"},
	CoasterSteelInverted:  {"#2563eb", "#60a5fa", "#1e3a8a"},
	CoasterSteelFloorless: {"#059669", "#34d399", "#064e3b"},
	CoasterSteelWing:      {"#ea580c", "#fb923c", "#7c2d12"},
	CoasterSteelFlying:    {"#0891b2", "#22d3ee", "#164e63"},
	CoasterMineTrain:      {"#92400e", "#fcd34d", "#451a03"},
	CoasterWaterCoaster:   {"#0ea5e9", "#38bdf8", "#0c4a6e"},
	CoasterLaunchCoaster:  {"#e11d48", "#fda4af", "#9f1239"},
	CoasterHyperCoaster:   {"#0d9488", "#5eead4", "#134e4a"},
	CoasterGigaCoaster:    {"#4f46e5", "#a5b4fc", "#312e81"},
}

// DefaultColor is the paint scheme a fresh ride of this style gets.
func (s CoasterStyle) DefaultColor() CoasterColor { return coasterStyleColors[s] }

// TrackPiece is one segment of a coaster circuit. Elevation chains from the
// previous piece: StartHeight is where the last segment ended.
type TrackPiece struct {
	Type        TrackPieceType
	Dir         Direction
	StartHeight int
	EndHeight   int
	ChainLift   bool
	Strut       StrutStyle
}

func NewTrackPiece(t TrackPieceType, dir Direction, prevHeight int, strut StrutStyle) TrackPiece {
	return TrackPiece{
		Type:        t,
		Dir:         dir,
		StartHeight: prevHeight,
		EndHeight:   prevHeight + t.heightDelta(),
		ChainLift:   t == TrackLiftHill,
		Strut:       strut,
	}
}

// CarSpacing is the fixed gap between consecutive cars in track-index units.
const CarSpacing = 0.18

type TrainState uint8

const (
	TrainLoading TrainState = iota
	TrainDispatching
	TrainRunning
	TrainBraking
)

func (s TrainState) String() string {
	switch s {
	case TrainLoading:
		return "loading"
	case TrainDispatching:
		return "dispatching"
	case TrainRunning:
		return "running"
	case TrainBraking:
		return "braking"
	default:
		return "unknown"
	}
}

// TrainCar tracks a single car's position along the circuit. Only the lead
// car integrates velocity; the rest are derived at a fixed spacing behind it.
type TrainCar struct {
	TrackProgress float64
	Velocity      float64
}

type Train struct {
	ID    int
	Cars  []TrainCar
	State TrainState
	Timer float64
}

func NewTrain(id int, start float64, carCount, trackLen int) *Train {
	t := &Train{ID: id, State: TrainLoading, Timer: loadingDwell}
	for i := 0; i < carCount; i++ {
		t.Cars = append(t.Cars, TrainCar{
			TrackProgress: wrapProgress(start-float64(i)*CarSpacing, trackLen),
		})
	}
	return t
}

func wrapProgress(p float64, trackLen int) float64 {
	if trackLen <= 0 {
		return 0
	}
	n := float64(trackLen)
	p = math.Mod(p, n)
	if p < 0 {
		p += n
	}
	return p
}

// Coaster is a tracked ride: a cyclic list of track tiles with one train or
// more circulating over it.
type Coaster struct {
	ID          int
	Name        string
	Style       CoasterStyle
	Color       CoasterColor
	TrackTiles  []Coord
	TrackPieces []TrackPiece
	StationTile Coord
	Trains      []*Train
	Operating   bool

	Excitement float64
	Intensity  float64
	Nausea     float64
}

// NewCoaster creates an empty ride painted in the style's default scheme.
func NewCoaster(id int, name string, style CoasterStyle) *Coaster {
	return &Coaster{ID: id, Name: name, Style: style, Color: style.DefaultColor()}
}

// IsComplete reports whether the track forms a closed circuit: at least four
// tiles, every consecutive pair orthogonally adjacent, last wrapping to first.
func (c *Coaster) IsComplete() bool {
	n := len(c.TrackTiles)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a := c.TrackTiles[i]
		b := c.TrackTiles[(i+1)%n]
		if a.Manhattan(b) != 1 {
			return false
		}
	}
	return true
}

// AppendPiece extends the track by one tile, chaining elevation from the
// previous piece and facing the segment along the direction of travel.
func (c *Coaster) AppendPiece(pos Coord, t TrackPieceType) {
	prev := 0
	dir := DirNorth
	if n := len(c.TrackPieces); n > 0 {
		prev = c.TrackPieces[n-1].EndHeight
		dir = headingBetween(c.TrackTiles[n-1], pos)
	}
	c.TrackTiles = append(c.TrackTiles, pos)
	c.TrackPieces = append(c.TrackPieces, NewTrackPiece(t, dir, prev, c.Style.StrutStyle()))
	if t == TrackStation {
		c.StationTile = pos
	}
}

// headingBetween maps a tile step onto the isometric facing used everywhere
// else on the grid.
func headingBetween(from, to Coord) Direction {
	switch {
	case to.X > from.X:
		return DirSouth
	case to.X < from.X:
		return DirNorth
	case to.Y > from.Y:
		return DirWest
	default:
		return DirEast
	}
}

// AddTrains places n trains evenly spaced around the circuit, lead cars at
// the spacing points.
func (c *Coaster) AddTrains(n, carsPerTrain int) {
	if n <= 0 || len(c.TrackTiles) == 0 {
		return
	}
	trackLen := len(c.TrackTiles)
	gap := float64(trackLen) / float64(n)
	station := c.stationIndex()
	for i := 0; i < n; i++ {
		start := wrapProgress(float64(station)+float64(i)*gap, trackLen)
		c.Trains = append(c.Trains, NewTrain(i, start, carsPerTrain, trackLen))
	}
}

// stationIndex is the track index of the station tile, 0 if none is set.
func (c *Coaster) stationIndex() int {
	for i, t := range c.TrackTiles {
		if t == c.StationTile {
			return i
		}
	}
	return 0
}

// pieceAt returns the track piece under a progress value.
func (c *Coaster) pieceAt(progress float64) TrackPiece {
	n := len(c.TrackPieces)
	if n == 0 {
		return TrackPiece{}
	}
	i := int(progress) % n
	if i < 0 {
		i += n
	}
	return c.TrackPieces[i]
}
