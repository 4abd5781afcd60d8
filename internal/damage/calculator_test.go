package damage

import (
	"path/filepath"
	"strings"
	"testing"

	"boxscout/internal/battle"
	"boxscout/internal/dex"
)

func testCalculator(t *testing.T) *Calculator {
	t.Helper()
	d, err := dex.Open(filepath.Join(t.TempDir(), "dex.db"))
	if err != nil {
		t.Fatalf("dex.Open failed: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return New(d)
}

func fullIVs() battle.Stats {
	return battle.Stats{HP: 31, Atk: 31, Def: 31, SpAtk: 31, SpDef: 31, Speed: 31}
}

func config(species string, level int, nature string, moves ...string) battle.Config {
	return battle.Config{
		Species: species,
		Level:   level,
		Ability: "Static",
		Nature:  nature,
		Moves:   moves,
		IVs:     fullIVs(),
	}
}

func TestBuildResolvesStats(t *testing.T) {
	c := testCalculator(t)

	pika, err := c.Build(config("Pikachu", 50, "Hardy", "Thunder Shock"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := battle.Stats{HP: 110, Atk: 75, Def: 60, SpAtk: 70, SpDef: 70, Speed: 110}
	if pika.Stats != want {
		t.Errorf("Pikachu stats = %+v, want %+v", pika.Stats, want)
	}
	if len(pika.Types) != 1 || pika.Types[0] != "Electric" {
		t.Errorf("Pikachu types = %v, want [Electric]", pika.Types)
	}
}

func TestBuildAppliesNature(t *testing.T) {
	c := testCalculator(t)

	adamant, err := c.Build(config("Pikachu", 50, "Adamant", "Quick Attack"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if adamant.Stats.Atk != 82 {
		t.Errorf("Adamant Atk = %d, want 82", adamant.Stats.Atk)
	}
	if adamant.Stats.SpAtk != 63 {
		t.Errorf("Adamant SpAtk = %d, want 63", adamant.Stats.SpAtk)
	}
}

func TestBuildValidation(t *testing.T) {
	c := testCalculator(t)

	tests := []struct {
		name    string
		mutate  func(*battle.Config)
		wantErr string
	}{
		{"unknown species", func(c *battle.Config) { c.Species = "Missingno" }, "unknown species"},
		{"level too low", func(c *battle.Config) { c.Level = 0 }, "level"},
		{"level too high", func(c *battle.Config) { c.Level = 101 }, "level"},
		{"missing ability", func(c *battle.Config) { c.Ability = "" }, "missing ability"},
		{"no moves", func(c *battle.Config) { c.Moves = nil }, "no moves"},
		{"duplicate move", func(c *battle.Config) { c.Moves = []string{"Tackle", "Tackle"} }, "duplicate"},
		{"unknown nature", func(c *battle.Config) { c.Nature = "Spicy" }, "unknown nature"},
		{"IV out of range", func(c *battle.Config) { c.IVs.Atk = 32 }, "IV"},
		{"EV per stat", func(c *battle.Config) { c.EVs.HP = 300 }, "EV"},
		{"EV total", func(c *battle.Config) {
			c.EVs = battle.Stats{HP: 252, Atk: 252, Def: 252}
		}, "EV total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config("Pikachu", 50, "Hardy", "Tackle")
			tt.mutate(&cfg)
			_, err := c.Build(cfg)
			if err == nil {
				t.Fatal("Build should have failed")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestDistributionRolls(t *testing.T) {
	c := testCalculator(t)

	pika, err := c.Build(config("Pikachu", 50, "Hardy", "Thunder Shock"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	pidgey, err := c.Build(config("Pidgey", 50, "Hardy", "Tackle"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	dist, err := c.Distribution(pika, pidgey, "Thunder Shock")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	if len(dist) != 16 {
		t.Fatalf("got %d rolls, want 16", len(dist))
	}
	// STAB Electric hit, double effective against Normal/Flying:
	// base 24, low roll 20*1.5*2=60, max roll 24*1.5*2=72.
	if dist[0] != 60 {
		t.Errorf("low roll = %d, want 60", dist[0])
	}
	if dist[len(dist)-1] != 72 {
		t.Errorf("max roll = %d, want 72", dist[len(dist)-1])
	}
	for i := 1; i < len(dist); i++ {
		if dist[i] < dist[i-1] {
			t.Errorf("rolls not monotonic at %d: %v", i, dist)
		}
	}
}

func TestDistributionImmunity(t *testing.T) {
	c := testCalculator(t)

	pika, _ := c.Build(config("Pikachu", 50, "Hardy", "Thunder Shock"))
	diglett, _ := c.Build(config("Diglett", 50, "Hardy", "Dig"))
	if _, err := c.Distribution(pika, diglett, "Thunder Shock"); err == nil {
		t.Error("Electric move against Ground type should error")
	}

	rattata, _ := c.Build(config("Rattata", 50, "Hardy", "Tackle"))
	gastly, _ := c.Build(config("Gastly", 50, "Hardy", "Lick"))
	if _, err := c.Distribution(rattata, gastly, "Tackle"); err == nil {
		t.Error("Normal move against Ghost type should error")
	}
}

func TestDistributionStatusMove(t *testing.T) {
	c := testCalculator(t)
	pika, _ := c.Build(config("Pikachu", 50, "Hardy", "Thunder Shock"))
	pidgey, _ := c.Build(config("Pidgey", 50, "Hardy", "Tackle"))
	if _, err := c.Distribution(pika, pidgey, "Growl"); err == nil {
		t.Error("status move should error")
	}
}

func TestDistributionSturdyClipsLethalRolls(t *testing.T) {
	c := testCalculator(t)

	gyarados, err := c.Build(config("Gyarados", 50, "Hardy", "Waterfall"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	onix := battle.Config{
		Species: "Onix",
		Level:   50,
		Ability: "Sturdy",
		Nature:  "Hardy",
		Moves:   []string{"Rock Throw"},
	}
	sturdy, err := c.Build(onix)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	dist, err := c.Distribution(gyarados, sturdy, "Waterfall")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	for _, d := range dist {
		if d >= sturdy.Stats.HP {
			t.Errorf("roll %d not clipped below max HP %d", d, sturdy.Stats.HP)
		}
	}
	// Every roll of a quad-effective STAB hit would KO outright, so all
	// must land exactly at HP-1.
	if dist[0] != sturdy.Stats.HP-1 {
		t.Errorf("clipped roll = %d, want %d", dist[0], sturdy.Stats.HP-1)
	}
}

func TestDistributionFocusSashClips(t *testing.T) {
	c := testCalculator(t)

	gyarados, _ := c.Build(config("Gyarados", 50, "Hardy", "Waterfall"))
	cfg := config("Geodude", 50, "Hardy", "Tackle")
	cfg.Item = "Focus Sash"
	geodude, err := c.Build(cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	dist, err := c.Distribution(gyarados, geodude, "Waterfall")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	for _, d := range dist {
		if d >= geodude.Stats.HP {
			t.Errorf("roll %d not clipped below max HP %d", d, geodude.Stats.HP)
		}
	}
}

func TestDistributionMinimumOneDamage(t *testing.T) {
	c := testCalculator(t)

	karp := battle.Config{
		Species: "Magikarp", Level: 5, Ability: "Swift Swim",
		Nature: "Hardy", Moves: []string{"Tackle"},
	}
	weak, err := c.Build(karp)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	onix, _ := c.Build(config("Onix", 50, "Hardy", "Rock Throw"))

	dist, err := c.Distribution(weak, onix, "Tackle")
	if err != nil {
		t.Fatalf("Distribution failed: %v", err)
	}
	for _, d := range dist {
		if d < 1 {
			t.Errorf("roll %d below minimum 1", d)
		}
	}
}

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		name     string
		attack   string
		defender []string
		want     float64
	}{
		{"neutral", "Normal", []string{"Normal"}, 1},
		{"super effective", "Water", []string{"Fire"}, 2},
		{"quad effective", "Water", []string{"Rock", "Ground"}, 4},
		{"resisted", "Normal", []string{"Rock"}, 0.5},
		{"quad resisted", "Grass", []string{"Fire", "Flying"}, 0.25},
		{"immune", "Ground", []string{"Flying"}, 0},
		{"immunity dominates", "Electric", []string{"Water", "Ground"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Effectiveness(tt.attack, tt.defender); got != tt.want {
				t.Errorf("Effectiveness(%s, %v) = %v, want %v", tt.attack, tt.defender, got, tt.want)
			}
		})
	}
}
