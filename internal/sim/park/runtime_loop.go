package park

import (
	"context"
	"time"
)

func (w *World) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(w.cfg.TickRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var pending []CommandEnvelope

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stop:
			return nil
		case env := <-w.inbox:
			pending = append(pending, env)
		case req := <-w.observerJoin:
			w.handleObserverJoin(req)
		case id := <-w.observerLeave:
			if ch, ok := w.observers[id]; ok {
				delete(w.observers, id)
				close(ch)
			}
		case req := <-w.bootstrap:
			req.resp <- w.buildBootstrap()
		case <-ticker.C:
			w.stepInternal(pending)
			pending = pending[:0]
		}
	}
}

func (w *World) Stop() { close(w.stop) }

func (w *World) handleObserverJoin(req observerJoinReq) {
	w.nextObserverID++
	w.observers[w.nextObserverID] = req.out
	req.resp <- w.nextObserverID
}

// StepOnce advances the world by a single tick with the same ordering
// semantics as the server loop. Intended for deterministic replays and tests.
func (w *World) StepOnce(cmds []CommandEnvelope) (tick uint64, digest string) {
	tick = w.tick.Load()
	w.stepInternal(cmds)
	return tick, w.stateDigest(tick)
}

func sendLatest(ch chan []byte, b []byte) {
	select {
	case ch <- b:
		return
	default:
	}
	// Drop one.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- b:
	default:
	}
}
