package tuning

import (
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	if d.Server.TickRateHz != 10 {
		t.Fatalf("tick rate %d", d.Server.TickRateHz)
	}
	if d.World.GridSize != 64 || d.World.MaxGuests != 500 {
		t.Fatalf("world defaults %+v", d.World)
	}
	if d.Fees.Entry != 20 || d.Fees.Ride != 15 || d.Fees.Food != 12 || d.Fees.Shop != 10 {
		t.Fatalf("fee defaults %+v", d.Fees)
	}
	if d.Guests.WalkSpeed != 0.02 || d.Guests.PathfindMaxSteps != 200 {
		t.Fatalf("guest defaults %+v", d.Guests)
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	got, err := Load(filepath.Join("..", "..", "..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.World.Seed != 12345 {
		t.Fatalf("seed %d", got.World.Seed)
	}
	if got.Spawn.Base != 0.02 || got.Spawn.LunchBonus != 0.02 {
		t.Fatalf("spawn %+v", got.Spawn)
	}
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	got, err := Load("does-not-exist.yaml")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if got.World.GridSize != Defaults().World.GridSize {
		t.Fatal("missing file should fall back to defaults")
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	writeFile(t, path, "fees:\n  entry: 35\n")

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Fees.Entry != 35 {
		t.Fatalf("entry fee %v, want override", got.Fees.Entry)
	}
	if got.Fees.Ride != 15 {
		t.Fatalf("ride fee %v, want default preserved", got.Fees.Ride)
	}
}
