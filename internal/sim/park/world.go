package park

import (
	"fmt"
	"sync/atomic"

	"github.com/amilich/isometric-city/internal/protocol"
)

type WorldConfig struct {
	ID         string
	TickRateHz int
	GridSize   int
	Seed       uint64

	MaxGuests    int
	StartingCash float64

	EntryFee float64
	RideFee  float64
	FoodFee  float64
	ShopFee  float64

	SpawnBase         float64
	SpawnRatingWeight float64
	SpawnLunchBonus   float64

	WalkSpeed        float64
	PathfindMaxSteps int
	LeaveAfterTicks  uint64
}

// CommandEnvelope is one control-socket command queued for the next tick.
type CommandEnvelope struct {
	Source string
	Cmd    protocol.CommandMsg
}

// TickLogEntry records the inputs applied on one tick plus the resulting
// state digest, enough to replay a run from the same seed.
type TickLogEntry struct {
	Tick     uint64                `json:"tick"`
	Commands []protocol.CommandMsg `json:"commands,omitempty"`
	Digest   string                `json:"digest"`
}

type TickLogger interface {
	WriteTick(TickLogEntry) error
}

type observerJoinReq struct {
	out  chan []byte
	resp chan int
}

type bootstrapReq struct {
	resp chan protocol.BootstrapMsg
}

// World is a single-threaded authoritative park simulation. All mutable
// state is owned by the goroutine running Run; everything else talks to it
// through channels or reads the atomic metrics snapshot.
type World struct {
	cfg  WorldConfig
	tick atomic.Uint64

	grid  *Grid
	rng   *RNG
	clock Clock

	speed  int // 0 paused, 1..4 index into speedBoosts
	cash   float64
	rating float64

	guests        []*Guest
	nextGuestID   int
	coasters      []*Coaster
	nextCoasterID int

	inbox         chan CommandEnvelope
	observerJoin  chan observerJoinReq
	observerLeave chan int
	bootstrap     chan bootstrapReq
	stop          chan struct{}

	observers      map[int]chan []byte
	nextObserverID int

	tickLogger TickLogger
	metrics    atomic.Pointer[WorldMetrics]
}

func New(cfg WorldConfig) (*World, error) {
	if cfg.GridSize < 8 {
		return nil, fmt.Errorf("grid size %d too small", cfg.GridSize)
	}
	if cfg.TickRateHz <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", cfg.TickRateHz)
	}

	w := &World{
		cfg:           cfg,
		grid:          NewGrid(cfg.GridSize),
		rng:           NewRNG(cfg.Seed),
		clock:         NewClock(),
		speed:         1,
		cash:          cfg.StartingCash,
		rating:        500,
		inbox:         make(chan CommandEnvelope, 256),
		observerJoin:  make(chan observerJoinReq),
		observerLeave: make(chan int),
		bootstrap:     make(chan bootstrapReq),
		stop:          make(chan struct{}),
		observers:     make(map[int]chan []byte),
	}
	w.generateTerrain()
	w.metrics.Store(&WorldMetrics{})
	return w, nil
}

// generateTerrain scatters a few lakes and rock patches. Runs off the world
// RNG before any gameplay draws, so terrain is part of the seed contract.
func (w *World) generateTerrain() {
	size := w.grid.Size
	lakes := 2 + w.rng.IntN(3)
	for i := 0; i < lakes; i++ {
		cx := 2 + w.rng.IntN(size-4)
		cy := 2 + w.rng.IntN(size-4)
		radius := 2 + w.rng.IntN(3)
		for y := cy - radius - 1; y <= cy+radius+1; y++ {
			for x := cx - radius - 1; x <= cx+radius+1; x++ {
				t := w.grid.TileAt(x, y)
				if t == nil || w.grid.isEdge(x, y) {
					continue
				}
				d := abs(x-cx) + abs(y-cy)
				switch {
				case d <= radius:
					t.Terrain = TerrainWater
				case d == radius+1 && t.Terrain == TerrainGrass:
					t.Terrain = TerrainSand
				}
			}
		}
	}
	rocks := 3 + w.rng.IntN(4)
	for i := 0; i < rocks; i++ {
		x := w.rng.IntN(size)
		y := w.rng.IntN(size)
		if t := w.grid.TileAt(x, y); t != nil && t.Terrain == TerrainGrass {
			t.Terrain = TerrainRock
		}
	}
}

func (w *World) ID() string {
	if w == nil {
		return ""
	}
	return w.cfg.ID
}

func (w *World) TickRateHz() int {
	if w == nil {
		return 0
	}
	return w.cfg.TickRateHz
}

func (w *World) CurrentTick() uint64 { return w.tick.Load() }

func (w *World) Params() protocol.WorldParams {
	return protocol.WorldParams{
		TickRateHz: w.cfg.TickRateHz,
		GridSize:   w.cfg.GridSize,
		Seed:       w.cfg.Seed,
		MaxGuests:  w.cfg.MaxGuests,
		EntryFee:   w.cfg.EntryFee,
	}
}

func (w *World) Inbox() chan<- CommandEnvelope { return w.inbox }

// SetTickLogger must be called before Run.
func (w *World) SetTickLogger(l TickLogger) { w.tickLogger = l }

// ObserverJoin registers a frame stream and returns its id. Called from
// transport goroutines; the world loop services the request.
func (w *World) ObserverJoin(out chan []byte) int {
	resp := make(chan int, 1)
	w.observerJoin <- observerJoinReq{out: out, resp: resp}
	return <-resp
}

func (w *World) ObserverLeave(id int) { w.observerLeave <- id }

// Bootstrap returns the static world geometry for a renderer joining late.
func (w *World) Bootstrap() protocol.BootstrapMsg {
	resp := make(chan protocol.BootstrapMsg, 1)
	w.bootstrap <- bootstrapReq{resp: resp}
	return <-resp
}
