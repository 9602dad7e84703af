package park

import "github.com/amilich/isometric-city/internal/protocol"

// buildFrame assembles the per-tick render payload. Runs on the world
// goroutine, so it may read state freely.
func (w *World) buildFrame(nowTick uint64, digest string) protocol.FrameMsg {
	frame := protocol.FrameMsg{
		Type:            protocol.TypeFrame,
		ProtocolVersion: protocol.Version,
		Tick:            nowTick,
		Speed:           w.speed,
		Clock: protocol.ClockView{
			Year:   w.clock.Year,
			Month:  w.clock.Month,
			Day:    w.clock.Day,
			Hour:   w.clock.Hour,
			Minute: w.clock.Minute,
			Text:   w.clock.String(),
		},
		Cash:   w.cash,
		Rating: w.rating,
		Digest: digest,
	}

	frame.Guests = make([]protocol.GuestView, 0, len(w.guests))
	for _, g := range w.guests {
		frame.Guests = append(frame.Guests, protocol.GuestView{
			ID:        g.ID,
			X:         g.X,
			Y:         g.Y,
			Progress:  g.Progress,
			Dir:       g.Dir.String(),
			State:     g.State.String(),
			Happiness: g.Happiness,
			HasHat:    g.HasHat,
			Shirt:     g.ShirtColor,
			Pants:     g.PantsColor,
		})
	}

	frame.Coasters = make([]protocol.CoasterView, 0, len(w.coasters))
	for _, c := range w.coasters {
		cv := protocol.CoasterView{
			ID:        c.ID,
			Operating: c.Operating,
			Trains:    make([]protocol.TrainView, 0, len(c.Trains)),
		}
		for _, t := range c.Trains {
			tv := protocol.TrainView{State: t.State.String(), Cars: make([]float64, 0, len(t.Cars))}
			for _, car := range t.Cars {
				tv.Cars = append(tv.Cars, car.TrackProgress)
			}
			cv.Trains = append(cv.Trains, tv)
		}
		frame.Coasters = append(frame.Coasters, cv)
	}
	return frame
}

// buildBootstrap captures the static geometry a renderer needs once at
// connect time: non-empty tiles and coaster circuits.
func (w *World) buildBootstrap() protocol.BootstrapMsg {
	msg := protocol.BootstrapMsg{
		WorldID:  w.cfg.ID,
		Tick:     w.tick.Load(),
		GridSize: w.grid.Size,
	}
	for y := 0; y < w.grid.Size; y++ {
		for x := 0; x < w.grid.Size; x++ {
			t := w.grid.TileAt(x, y)
			if t.Terrain == TerrainGrass && t.Empty() {
				continue
			}
			tv := protocol.TileView{
				X:         x,
				Y:         y,
				Terrain:   t.Terrain.String(),
				Path:      t.Path,
				Queue:     t.Queue,
				Track:     t.Track,
				Elevation: t.Elevation,
			}
			if t.Building != BuildingNone {
				tv.Building = t.Building.String()
			}
			if t.Track {
				tv.CoasterID = t.TrackRide
			}
			msg.Tiles = append(msg.Tiles, tv)
		}
	}
	for _, c := range w.coasters {
		bt := protocol.BootstrapTrack{
			ID:    c.ID,
			Name:  c.Name,
			Style: c.Style.String(),
			Color: protocol.CoasterColors{
				Primary:   c.Color.Primary,
				Secondary: c.Color.Secondary,
				Supports:  c.Color.Supports,
			},
			Station: [2]int{c.StationTile.X, c.StationTile.Y},
		}
		for i, t := range c.TrackTiles {
			p := c.TrackPieces[i]
			bt.Tiles = append(bt.Tiles, [2]int{t.X, t.Y})
			bt.Pieces = append(bt.Pieces, p.Type.String())
			bt.Dirs = append(bt.Dirs, p.Dir.String())
			bt.Heights = append(bt.Heights, p.EndHeight)
			bt.ChainLift = append(bt.ChainLift, p.ChainLift)
			bt.Struts = append(bt.Struts, p.Strut.String())
		}
		msg.Coasters = append(msg.Coasters, bt)
	}
	return msg
}
