// Package tuning loads the simulation knobs from YAML.
package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	Server struct {
		Addr       string `yaml:"addr"`
		TickRateHz int    `yaml:"tick_rate_hz"`
		DataDir    string `yaml:"data_dir"`
	} `yaml:"server"`

	World struct {
		ID              string  `yaml:"id"`
		GridSize        int     `yaml:"grid_size"`
		Seed            uint64  `yaml:"seed"`
		MaxGuests       int     `yaml:"max_guests"`
		StartingCash    float64 `yaml:"starting_cash"`
		LeaveAfterTicks uint64  `yaml:"leave_after_ticks"`
	} `yaml:"world"`

	Fees struct {
		Entry float64 `yaml:"entry"`
		Ride  float64 `yaml:"ride"`
		Food  float64 `yaml:"food"`
		Shop  float64 `yaml:"shop"`
	} `yaml:"fees"`

	Spawn struct {
		Base         float64 `yaml:"base"`
		RatingWeight float64 `yaml:"rating_weight"`
		LunchBonus   float64 `yaml:"lunch_bonus"`
	} `yaml:"spawn"`

	Guests struct {
		WalkSpeed        float64 `yaml:"walk_speed"`
		PathfindMaxSteps int     `yaml:"pathfind_max_steps"`
	} `yaml:"guests"`
}

func Defaults() Tuning {
	var t Tuning
	t.Server.Addr = ":8080"
	t.Server.TickRateHz = 10
	t.Server.DataDir = "./data"
	t.World.ID = "park1"
	t.World.GridSize = 64
	t.World.Seed = 12345
	t.World.MaxGuests = 500
	t.World.StartingCash = 50000
	t.World.LeaveAfterTicks = 20000
	t.Fees.Entry = 20
	t.Fees.Ride = 15
	t.Fees.Food = 12
	t.Fees.Shop = 10
	t.Spawn.Base = 0.02
	t.Spawn.RatingWeight = 0.03
	t.Spawn.LunchBonus = 0.02
	t.Guests.WalkSpeed = 0.02
	t.Guests.PathfindMaxSteps = 200
	return t
}

// Load reads a YAML file over the defaults, so partial files are fine.
func Load(path string) (Tuning, error) {
	t := Defaults()
	b, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	return t, nil
}
