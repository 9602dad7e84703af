package park

// Terrain is the base surface of a tile.
type Terrain uint8

const (
	TerrainGrass Terrain = iota
	TerrainWater
	TerrainSand
	TerrainRock
)

func (t Terrain) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainWater:
		return "water"
	case TerrainSand:
		return "sand"
	case TerrainRock:
		return "rock"
	default:
		return "unknown"
	}
}

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Manhattan(o Coord) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Tile is one cell of the park grid. A tile holds at most one of:
// a structure, a walkway (path or queue), or a coaster track segment.
type Tile struct {
	X, Y      int
	Terrain   Terrain
	Building  BuildingType
	Path      bool
	Queue     bool
	QueueRide int // coaster id a queue tile feeds, -1 if none
	Track     bool
	TrackRide int // coaster id owning the track segment, -1 if none
	Elevation int
}

// Walkable reports whether guests may stand on the tile.
func (t *Tile) Walkable() bool {
	return t != nil && (t.Path || t.Queue)
}

// Empty reports whether the tile carries no structure, walkway or track.
func (t *Tile) Empty() bool {
	return t.Building == BuildingNone && !t.Path && !t.Queue && !t.Track
}

// Buildable reports whether a structure or walkway may be placed here.
func (t *Tile) Buildable() bool {
	return t != nil && t.Terrain != TerrainWater && t.Empty()
}

// Grid is the square tile matrix the whole simulation runs on.
type Grid struct {
	Size  int
	tiles []Tile
}

func NewGrid(size int) *Grid {
	g := &Grid{Size: size, tiles: make([]Tile, size*size)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			t := &g.tiles[y*size+x]
			t.X, t.Y = x, y
			t.QueueRide = -1
			t.TrackRide = -1
		}
	}
	return g
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// TileAt returns the tile at (x, y), or nil when out of bounds.
func (g *Grid) TileAt(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.tiles[y*g.Size+x]
}

func (g *Grid) isEdge(x, y int) bool {
	return x == 0 || y == 0 || x == g.Size-1 || y == g.Size-1
}

// EntranceTiles returns every walkable path tile on the grid boundary,
// scanning the edges in a fixed order so callers index deterministically.
func (g *Grid) EntranceTiles() []Coord {
	var out []Coord
	for x := 0; x < g.Size; x++ {
		if g.TileAt(x, 0).Path {
			out = append(out, Coord{x, 0})
		}
	}
	for x := 0; x < g.Size; x++ {
		if g.TileAt(x, g.Size-1).Path {
			out = append(out, Coord{x, g.Size - 1})
		}
	}
	for y := 1; y < g.Size-1; y++ {
		if g.TileAt(0, y).Path {
			out = append(out, Coord{0, y})
		}
	}
	for y := 1; y < g.Size-1; y++ {
		if g.TileAt(g.Size-1, y).Path {
			out = append(out, Coord{g.Size - 1, y})
		}
	}
	return out
}

// BuildingTiles returns the coordinates of every structure matching pred,
// in row-major order.
func (g *Grid) BuildingTiles(pred func(BuildingType) bool) []Coord {
	var out []Coord
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if b := g.tiles[y*g.Size+x].Building; b != BuildingNone && pred(b) {
				out = append(out, Coord{x, y})
			}
		}
	}
	return out
}
