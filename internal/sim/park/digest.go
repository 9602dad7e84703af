package park

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
)

// stateDigest folds every piece of simulation state into a hash. Two worlds
// built from the same seed and fed the same command stream must produce the
// same digest on every tick.
func (w *World) stateDigest(nowTick uint64) string {
	h := sha256.New()
	var tmp [8]byte

	digestU64(h, &tmp, nowTick)
	digestU64(h, &tmp, w.rng.State())
	digestU64(h, &tmp, uint64(w.speed))
	digestF64(h, &tmp, w.cash)
	digestF64(h, &tmp, w.rating)

	digestF64(h, &tmp, w.clock.Minute)
	digestU64(h, &tmp, uint64(w.clock.Hour))
	digestU64(h, &tmp, uint64(w.clock.Day))
	digestU64(h, &tmp, uint64(w.clock.Month))
	digestU64(h, &tmp, uint64(w.clock.Year))

	w.digestGrid(h, &tmp)
	w.digestGuests(h, &tmp)
	w.digestCoasters(h, &tmp)

	return hex.EncodeToString(h.Sum(nil))
}

func (w *World) digestGrid(h hash.Hash, tmp *[8]byte) {
	for y := 0; y < w.grid.Size; y++ {
		for x := 0; x < w.grid.Size; x++ {
			t := w.grid.TileAt(x, y)
			h.Write([]byte{
				byte(t.Terrain),
				byte(t.Building),
				boolByte(t.Path),
				boolByte(t.Queue),
				boolByte(t.Track),
			})
			digestU64(h, tmp, uint64(int64(t.QueueRide)))
			digestU64(h, tmp, uint64(int64(t.TrackRide)))
			digestU64(h, tmp, uint64(int64(t.Elevation)))
		}
	}
}

func (w *World) digestGuests(h hash.Hash, tmp *[8]byte) {
	digestU64(h, tmp, uint64(len(w.guests)))
	for _, g := range w.guests {
		digestU64(h, tmp, uint64(g.ID))
		digestU64(h, tmp, uint64(int64(g.X)))
		digestU64(h, tmp, uint64(int64(g.Y)))
		h.Write([]byte{byte(g.State), byte(g.Dir), boolByte(g.HasDestination)})
		digestF64(h, tmp, g.Progress)
		digestU64(h, tmp, uint64(g.PathIdx))
		digestU64(h, tmp, uint64(len(g.Path)))
		digestF64(h, tmp, g.Hunger)
		digestF64(h, tmp, g.Thirst)
		digestF64(h, tmp, g.Bathroom)
		digestF64(h, tmp, g.Energy)
		digestF64(h, tmp, g.Happiness)
		digestF64(h, tmp, g.Nausea)
		digestF64(h, tmp, g.Cash)
		digestF64(h, tmp, g.TotalSpent)
		digestF64(h, tmp, g.ActivityTimer)
		digestF64(h, tmp, g.DecisionCooldown)
		digestU64(h, tmp, g.TicksInPark)
	}
}

func (w *World) digestCoasters(h hash.Hash, tmp *[8]byte) {
	digestU64(h, tmp, uint64(len(w.coasters)))
	for _, c := range w.coasters {
		digestU64(h, tmp, uint64(c.ID))
		h.Write([]byte{byte(c.Style), boolByte(c.Operating)})
		digestU64(h, tmp, uint64(len(c.TrackTiles)))
		for i, t := range c.TrackTiles {
			digestU64(h, tmp, uint64(int64(t.X)))
			digestU64(h, tmp, uint64(int64(t.Y)))
			p := c.TrackPieces[i]
			h.Write([]byte{byte(p.Type), byte(p.Dir), boolByte(p.ChainLift), byte(p.Strut)})
			digestU64(h, tmp, uint64(int64(p.StartHeight)))
			digestU64(h, tmp, uint64(int64(p.EndHeight)))
		}
		digestU64(h, tmp, uint64(len(c.Trains)))
		for _, tr := range c.Trains {
			h.Write([]byte{byte(tr.State)})
			digestF64(h, tmp, tr.Timer)
			for _, car := range tr.Cars {
				digestF64(h, tmp, car.TrackProgress)
				digestF64(h, tmp, car.Velocity)
			}
		}
	}
}

func digestU64(h hash.Hash, tmp *[8]byte, v uint64) {
	binary.LittleEndian.PutUint64(tmp[:], v)
	h.Write(tmp[:])
}

func digestF64(h hash.Hash, tmp *[8]byte, v float64) {
	digestU64(h, tmp, math.Float64bits(v))
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
