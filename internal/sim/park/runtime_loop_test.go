package park

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/amilich/isometric-city/internal/protocol"
)

func TestRun_ServesObserversAndCommands(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.TickRateHz = 100 })
	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()

	out := make(chan []byte, 4)
	id := w.ObserverJoin(out)

	speed := 3
	w.Inbox() <- CommandEnvelope{Source: "test", Cmd: protocol.CommandMsg{
		Type:            protocol.TypeCommand,
		ProtocolVersion: protocol.Version,
		Cmd:             protocol.CmdSetSpeed,
		Speed:           &speed,
	}}

	deadline := time.After(5 * time.Second)
	sawSpeed := false
	for !sawSpeed {
		select {
		case b := <-out:
			var f protocol.FrameMsg
			if err := json.Unmarshal(b, &f); err != nil {
				t.Fatalf("frame: %v", err)
			}
			if f.Speed == 3 {
				sawSpeed = true
			}
		case <-deadline:
			t.Fatal("speed command never reflected in a frame")
		}
	}

	w.ObserverLeave(id)
	w.Stop()
	if err := <-done; err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestBootstrap_ServedWhileRunning(t *testing.T) {
	w := newTestWorld(t, func(c *WorldConfig) { c.TickRateHz = 100 })
	layPath(w, Coord{5, 0})
	go func() { _ = w.Run(context.Background()) }()
	defer w.Stop()

	msg := w.Bootstrap()
	if msg.GridSize != 16 {
		t.Fatalf("grid size %d", msg.GridSize)
	}
	found := false
	for _, tv := range msg.Tiles {
		if tv.X == 5 && tv.Y == 0 && tv.Path {
			found = true
		}
	}
	if !found {
		t.Fatal("bootstrap missing the placed path tile")
	}
}
