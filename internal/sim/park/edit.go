package park

import (
	"errors"
	"fmt"
)

// Walkway and track placement costs; structures carry their own.
const (
	pathCost  = 10.0
	queueCost = 10.0
	trackCost = 25.0
)

var (
	ErrOutOfBounds       = errors.New("tile out of bounds")
	ErrOccupied          = errors.New("tile occupied")
	ErrUnderwater        = errors.New("cannot build on water")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNoSuchCoaster     = errors.New("no such coaster")
)

// Tool is one editing action applied to the grid at a tick boundary.
type Tool struct {
	Kind      ToolKind
	Building  BuildingType
	Piece     TrackPieceType
	CoasterID int // 0 on a track tool starts a new coaster
	Operating bool
}

type ToolKind uint8

const (
	ToolBulldoze ToolKind = iota
	ToolPath
	ToolQueue
	ToolBuilding
	ToolTrack
	ToolOperate
)

// ApplyTool mutates the grid and debits park cash. Callers outside the world
// loop must route through the command inbox instead.
func (w *World) ApplyTool(tool Tool, x, y int) error {
	t := w.grid.TileAt(x, y)
	if t == nil {
		return fmt.Errorf("apply tool at (%d,%d): %w", x, y, ErrOutOfBounds)
	}

	switch tool.Kind {
	case ToolBulldoze:
		return w.bulldoze(t)
	case ToolPath:
		return w.placeWalkway(t, pathCost, false)
	case ToolQueue:
		return w.placeWalkway(t, queueCost, true)
	case ToolBuilding:
		return w.placeBuilding(t, tool.Building)
	case ToolTrack:
		return w.placeTrack(t, tool.Piece, tool.CoasterID)
	case ToolOperate:
		return w.setOperating(tool.CoasterID, tool.Operating)
	default:
		return fmt.Errorf("unknown tool kind %d", tool.Kind)
	}
}

func (w *World) bulldoze(t *Tile) error {
	if t.Track && t.TrackRide >= 0 {
		w.removeTrackTile(t)
	}
	t.Building = BuildingNone
	t.Path = false
	t.Queue = false
	t.QueueRide = -1
	t.Track = false
	t.TrackRide = -1
	t.Elevation = 0
	return nil
}

func (w *World) placeWalkway(t *Tile, cost float64, queue bool) error {
	if !t.Buildable() {
		if t.Terrain == TerrainWater {
			return ErrUnderwater
		}
		return ErrOccupied
	}
	if w.cash < cost {
		return ErrInsufficientFunds
	}
	w.cash -= cost
	if queue {
		t.Queue = true
	} else {
		t.Path = true
	}
	return nil
}

func (w *World) placeBuilding(t *Tile, b BuildingType) error {
	if b == BuildingNone {
		return fmt.Errorf("place building: no type given")
	}
	if !t.Buildable() {
		if t.Terrain == TerrainWater {
			return ErrUnderwater
		}
		return ErrOccupied
	}
	cost := b.Cost()
	if w.cash < cost {
		return ErrInsufficientFunds
	}
	w.cash -= cost
	t.Building = b
	return nil
}

func (w *World) placeTrack(t *Tile, piece TrackPieceType, coasterID int) error {
	if !t.Buildable() {
		if t.Terrain == TerrainWater {
			return ErrUnderwater
		}
		return ErrOccupied
	}
	if w.cash < trackCost {
		return ErrInsufficientFunds
	}

	var c *Coaster
	if coasterID == 0 {
		w.nextCoasterID++
		c = NewCoaster(w.nextCoasterID, fmt.Sprintf("Coaster %d", w.nextCoasterID), CoasterSteelSitDown)
		w.coasters = append(w.coasters, c)
	} else {
		c = w.coasterByID(coasterID)
		if c == nil {
			return fmt.Errorf("coaster %d: %w", coasterID, ErrNoSuchCoaster)
		}
	}

	w.cash -= trackCost
	c.AppendPiece(Coord{t.X, t.Y}, piece)
	t.Track = true
	t.TrackRide = c.ID
	t.Elevation = c.TrackPieces[len(c.TrackPieces)-1].EndHeight
	return nil
}

// setOperating opens or closes a coaster. Opening a closed circuit with no
// trains yet gives it one three-car train.
func (w *World) setOperating(coasterID int, operating bool) error {
	c := w.coasterByID(coasterID)
	if c == nil {
		return fmt.Errorf("coaster %d: %w", coasterID, ErrNoSuchCoaster)
	}
	if operating && !c.IsComplete() {
		return fmt.Errorf("coaster %d: circuit not complete", coasterID)
	}
	if operating && len(c.Trains) == 0 {
		c.AddTrains(1, 3)
	}
	c.Operating = operating
	return nil
}

func (w *World) coasterByID(id int) *Coaster {
	for _, c := range w.coasters {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// removeTrackTile drops a tile from its coaster's circuit and closes the
// ride, since the loop is broken.
func (w *World) removeTrackTile(t *Tile) {
	c := w.coasterByID(t.TrackRide)
	if c == nil {
		return
	}
	pos := Coord{t.X, t.Y}
	for i, tt := range c.TrackTiles {
		if tt == pos {
			c.TrackTiles = append(c.TrackTiles[:i], c.TrackTiles[i+1:]...)
			c.TrackPieces = append(c.TrackPieces[:i], c.TrackPieces[i+1:]...)
			break
		}
	}
	c.Operating = false
	c.Trains = nil
}
