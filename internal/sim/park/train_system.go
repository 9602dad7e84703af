package park

// Train pacing constants, in track-index units per tick.
const (
	loadingDwell      = 5.0
	dispatchDuration  = 2.0
	dispatchBaseVel   = 0.02
	dispatchRampVel   = 0.04
	runningVel        = 0.08
	brakingVel        = 0.03
	brakeWindowNear   = 0.5
	brakeWindowFar    = 3.0
	loopSpeedFraction = 0.5
)

// speedBoosts maps the world speed setting to a velocity multiplier.
// Index 0 is paused and never reached: a paused tick skips the systems.
var speedBoosts = [5]float64{0, 1.0, 1.5, 2.0, 2.5}

// updateTrains advances every operating coaster's trains one tick. Only the
// lead car integrates velocity; trailing cars are pinned a fixed spacing
// behind it so the consist can never drift apart.
func (w *World) updateTrains() {
	boost := speedBoosts[w.speed]
	for _, c := range w.coasters {
		if !c.Operating || len(c.Trains) == 0 || len(c.TrackTiles) == 0 {
			continue
		}
		trackLen := len(c.TrackTiles)
		station := float64(c.stationIndex())
		for _, t := range c.Trains {
			w.updateTrain(c, t, station, trackLen, boost)
		}
	}
}

func (w *World) updateTrain(c *Coaster, t *Train, station float64, trackLen int, boost float64) {
	if len(t.Cars) == 0 {
		return
	}
	lead := &t.Cars[0]

	t.Timer--

	var vel float64
	switch t.State {
	case TrainLoading:
		lead.TrackProgress = wrapProgress(station, trackLen)
		vel = 0
		if t.Timer <= 0 {
			t.State = TrainDispatching
			t.Timer = dispatchDuration
		}
	case TrainDispatching:
		vel = (dispatchBaseVel + (1.0-t.Timer/dispatchDuration)*dispatchRampVel) * boost
		if t.Timer <= 0 {
			t.State = TrainRunning
		}
	case TrainRunning:
		vel = runningVel * boost
		dist := wrapProgress(station-lead.TrackProgress, trackLen)
		if dist > brakeWindowNear && dist < brakeWindowFar {
			t.State = TrainBraking
		}
	case TrainBraking:
		vel = brakingVel * boost
		dist := wrapProgress(station-lead.TrackProgress, trackLen)
		if dist <= brakeWindowNear || dist > float64(trackLen)-1.0 {
			t.State = TrainLoading
			t.Timer = loadingDwell + float64(c.ID%3)
			vel = 0
			lead.TrackProgress = wrapProgress(station, trackLen)
		}
	}

	if c.pieceAt(lead.TrackProgress).Type == TrackLoopVertical {
		vel *= loopSpeedFraction
	}

	lead.Velocity = vel
	lead.TrackProgress = wrapProgress(lead.TrackProgress+vel, trackLen)

	for i := 1; i < len(t.Cars); i++ {
		t.Cars[i].TrackProgress = wrapProgress(lead.TrackProgress-float64(i)*CarSpacing, trackLen)
		t.Cars[i].Velocity = vel
	}
}
