package park

// Neighbor expansion order is fixed so equal-length routes resolve the same
// way on every run.
var stepDirs = [4]Coord{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// FindPath runs a breadth-first search over walkable tiles and returns the
// route from start to target inclusive, or nil when target is unreachable
// within maxSteps hops.
func FindPath(g *Grid, start, target Coord, maxSteps int) []Coord {
	if !g.InBounds(start.X, start.Y) || !g.InBounds(target.X, target.Y) {
		return nil
	}
	if start == target {
		return []Coord{target}
	}

	visited := map[Coord]bool{start: true}
	parent := map[Coord]Coord{}
	queue := []Coord{start}
	depth := []int{0}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if depth[head] >= maxSteps {
			continue
		}
		if cur == target {
			return reconstruct(parent, start, target)
		}
		for _, d := range stepDirs {
			next := Coord{cur.X + d.X, cur.Y + d.Y}
			if visited[next] {
				continue
			}
			t := g.TileAt(next.X, next.Y)
			if t == nil || !t.Walkable() {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
			depth = append(depth, depth[head]+1)
		}
	}
	return nil
}

func reconstruct(parent map[Coord]Coord, start, target Coord) []Coord {
	rev := []Coord{target}
	for cur := target; cur != start; {
		cur = parent[cur]
		rev = append(rev, cur)
	}
	out := make([]Coord, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// FindPathToBuilding routes to the first orthogonal neighbor of a structure
// tile that is reachable, probing neighbors in the same fixed order as the
// search itself.
func FindPathToBuilding(g *Grid, start, building Coord, maxSteps int) []Coord {
	for _, d := range stepDirs {
		adj := Coord{building.X + d.X, building.Y + d.Y}
		t := g.TileAt(adj.X, adj.Y)
		if t == nil || !t.Walkable() {
			continue
		}
		if p := FindPath(g, start, adj, maxSteps); p != nil {
			return p
		}
	}
	return nil
}

// FindNearest scans outward from a coordinate for the closest tile matching
// pred, by Manhattan distance with row-major tie-breaking.
func FindNearest(g *Grid, from Coord, pred func(*Tile) bool) (Coord, bool) {
	best := Coord{}
	bestDist := -1
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			t := g.TileAt(x, y)
			if !pred(t) {
				continue
			}
			d := from.Manhattan(Coord{x, y})
			if bestDist < 0 || d < bestDist {
				best, bestDist = Coord{x, y}, d
			}
		}
	}
	return best, bestDist >= 0
}
