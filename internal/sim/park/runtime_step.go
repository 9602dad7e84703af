package park

import (
	"encoding/json"
	"time"

	"github.com/amilich/isometric-city/internal/protocol"
)

// stepInternal is the whole tick. Commands apply first in receive order,
// even while paused, so SET_SPEED can unpause a stopped park. The system
// pass runs in a fixed order: calendar, guests, arrivals, trains, rating.
func (w *World) stepInternal(cmds []CommandEnvelope) {
	nowTick := w.tick.Load()
	started := time.Now()

	applied := make([]protocol.CommandMsg, 0, len(cmds))
	for _, env := range cmds {
		if err := w.applyCommand(env.Cmd); err == nil {
			applied = append(applied, env.Cmd)
		}
	}

	if w.speed != 0 {
		w.clock.Advance()
		w.updateGuests()
		w.spawnGuests()
		w.updateTrains()
		w.updateRating()
	}

	digest := w.stateDigest(nowTick)

	frame := w.buildFrame(nowTick, digest)
	if b, err := json.Marshal(frame); err == nil {
		for _, out := range w.observers {
			sendLatest(out, b)
		}
	}

	if w.tickLogger != nil {
		_ = w.tickLogger.WriteTick(TickLogEntry{
			Tick:     nowTick,
			Commands: applied,
			Digest:   digest,
		})
	}

	w.metrics.Store(&WorldMetrics{
		Tick:       nowTick,
		Guests:     len(w.guests),
		Coasters:   len(w.coasters),
		Cash:       w.cash,
		Rating:     w.rating,
		Speed:      w.speed,
		StepMillis: float64(time.Since(started).Microseconds()) / 1000.0,
	})

	w.tick.Store(nowTick + 1)
}

func (w *World) applyCommand(cmd protocol.CommandMsg) error {
	switch cmd.Cmd {
	case protocol.CmdSetSpeed:
		if cmd.Speed == nil {
			return errMissingField("speed")
		}
		w.setSpeed(*cmd.Speed)
		return nil
	case protocol.CmdApplyTool:
		if cmd.Tool == nil {
			return errMissingField("tool")
		}
		tool, err := toolFromReq(cmd.Tool)
		if err != nil {
			return err
		}
		return w.ApplyTool(tool, cmd.Tool.X, cmd.Tool.Y)
	default:
		return errUnknownCommand(cmd.Cmd)
	}
}

func (w *World) setSpeed(s int) {
	if s < 0 {
		s = 0
	}
	if s > 4 {
		s = 4
	}
	w.speed = s
}

func toolFromReq(req *protocol.ToolReq) (Tool, error) {
	switch req.Kind {
	case "bulldoze":
		return Tool{Kind: ToolBulldoze}, nil
	case "path":
		return Tool{Kind: ToolPath}, nil
	case "queue":
		return Tool{Kind: ToolQueue}, nil
	case "building":
		b := BuildingTypeByName(req.Building)
		if b == BuildingNone {
			return Tool{}, errUnknownBuilding(req.Building)
		}
		return Tool{Kind: ToolBuilding, Building: b}, nil
	case "track":
		return Tool{Kind: ToolTrack, Piece: TrackPieceTypeByName(req.Piece), CoasterID: req.CoasterID}, nil
	case "operate":
		op := true
		if req.Operating != nil {
			op = *req.Operating
		}
		return Tool{Kind: ToolOperate, CoasterID: req.CoasterID, Operating: op}, nil
	default:
		return Tool{}, errUnknownTool(req.Kind)
	}
}
