// Package damage resolves combatant configs into battle-ready stats and
// produces the discrete damage-roll distribution one move use can deal
// against a specific defender.
package damage

import (
	"fmt"

	"boxscout/internal/battle"
	"boxscout/internal/dex"
)

// rollMin..rollMax are the discrete damage roll multipliers, in percent.
const (
	rollMin = 85
	rollMax = 100
)

// EV legality bounds.
const (
	maxEVPerStat = 252
	maxEVTotal   = 510
	maxIV        = 31
)

// Calculator backs the battle engine with dex data. It implements both
// battle.Movedex and battle.DamageProvider.
type Calculator struct {
	dex *dex.Dex
}

// New creates a calculator over the given dex.
func New(d *dex.Dex) *Calculator {
	return &Calculator{dex: d}
}

// Move returns the engine-facing metadata for a move.
func (c *Calculator) Move(name string) (battle.MoveInfo, error) {
	m, err := c.dex.Move(name)
	if err != nil {
		return battle.MoveInfo{}, err
	}
	return battle.MoveInfo{
		Name:     m.Name,
		Priority: m.Priority,
		Category: category(m.Category),
	}, nil
}

func category(s string) battle.Category {
	switch s {
	case "physical":
		return battle.CategoryPhysical
	case "special":
		return battle.CategorySpecial
	default:
		return battle.CategoryStatus
	}
}

// Build validates a config and resolves it into a combatant with
// battle-ready stats. Validation failures are descriptive and
// per-config; nothing is silently defaulted.
func (c *Calculator) Build(cfg battle.Config) (*battle.Combatant, error) {
	if cfg.Species == "" {
		return nil, fmt.Errorf("missing species")
	}
	if cfg.Level < 1 || cfg.Level > 100 {
		return nil, fmt.Errorf("%s: level %d out of range 1-100", cfg.Species, cfg.Level)
	}
	if cfg.Ability == "" {
		return nil, fmt.Errorf("%s: missing ability", cfg.Species)
	}
	if len(cfg.Moves) == 0 {
		return nil, fmt.Errorf("%s: no moves", cfg.Species)
	}
	seen := map[string]bool{}
	for _, mv := range cfg.Moves {
		if seen[mv] {
			return nil, fmt.Errorf("%s: duplicate move %q", cfg.Species, mv)
		}
		seen[mv] = true
	}
	if err := checkSpread("IV", cfg.IVs, maxIV, 0); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Species, err)
	}
	if err := checkSpread("EV", cfg.EVs, maxEVPerStat, maxEVTotal); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Species, err)
	}

	info, err := c.dex.Species(cfg.Species)
	if err != nil {
		return nil, err
	}
	nature, err := c.dex.Nature(cfg.Nature)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Species, err)
	}

	types := []string{info.Type1}
	if info.Type2 != "" {
		types = append(types, info.Type2)
	}
	return &battle.Combatant{
		Config: cfg,
		Stats:  resolveStats(info.Base, cfg, nature),
		Types:  types,
	}, nil
}

// checkSpread validates one six-value spread. totalCap 0 disables the
// sum check.
func checkSpread(kind string, s battle.Stats, perStatCap, totalCap int) error {
	values := []int{s.HP, s.Atk, s.Def, s.SpAtk, s.SpDef, s.Speed}
	total := 0
	for _, v := range values {
		if v < 0 || v > perStatCap {
			return fmt.Errorf("%s value %d out of range 0-%d", kind, v, perStatCap)
		}
		total += v
	}
	if totalCap > 0 && total > totalCap {
		return fmt.Errorf("%s total %d exceeds %d", kind, total, totalCap)
	}
	return nil
}

// resolveStats applies the standard stat formulas.
func resolveStats(base dex.BaseStats, cfg battle.Config, nature *dex.NatureMod) battle.Stats {
	level := cfg.Level
	stat := func(b, iv, ev int, name string) int {
		v := (2*b+iv+ev/4)*level/100 + 5
		switch name {
		case nature.Up:
			v = v * 110 / 100
		case nature.Down:
			v = v * 90 / 100
		}
		return v
	}
	return battle.Stats{
		HP:    (2*base.HP+cfg.IVs.HP+cfg.EVs.HP/4)*level/100 + level + 10,
		Atk:   stat(base.Atk, cfg.IVs.Atk, cfg.EVs.Atk, "atk"),
		Def:   stat(base.Def, cfg.IVs.Def, cfg.EVs.Def, "def"),
		SpAtk: stat(base.SpAtk, cfg.IVs.SpAtk, cfg.EVs.SpAtk, "spatk"),
		SpDef: stat(base.SpDef, cfg.IVs.SpDef, cfg.EVs.SpDef, "spdef"),
		Speed: stat(base.Speed, cfg.IVs.Speed, cfg.EVs.Speed, "speed"),
	}
}

// Distribution returns the 16 discrete damage rolls for one use of the
// move, with STAB, type effectiveness, and defensive clipping applied.
// It is a pure function of its arguments.
func (c *Calculator) Distribution(attacker, defender *battle.Combatant, move string) ([]int, error) {
	m, err := c.dex.Move(move)
	if err != nil {
		return nil, err
	}
	if m.Category == "status" || m.Power <= 0 {
		return nil, fmt.Errorf("%s deals no direct damage", m.Name)
	}

	atk, def := attacker.Stats.Atk, defender.Stats.Def
	if m.Category == "special" {
		atk, def = attacker.Stats.SpAtk, defender.Stats.SpDef
	}
	if def < 1 {
		def = 1
	}

	eff := Effectiveness(m.Type, defender.Types)
	if eff == 0 {
		return nil, fmt.Errorf("%s does not affect %s", m.Name, defender.Config.Species)
	}
	stab := 1.0
	for _, t := range attacker.Types {
		if t == m.Type {
			stab = 1.5
			break
		}
	}

	base := (2*attacker.Config.Level/5+2)*m.Power*atk/def/50 + 2

	dist := make([]int, 0, rollMax-rollMin+1)
	for roll := rollMin; roll <= rollMax; roll++ {
		d := base * roll / 100
		d = int(float64(d) * stab)
		d = int(float64(d) * eff)
		if d < 1 {
			d = 1
		}
		if clipsLethal(defender) && d >= defender.Stats.HP {
			d = defender.Stats.HP - 1
		}
		dist = append(dist, d)
	}
	return dist, nil
}

// clipsLethal reports whether the defender survives any single hit from
// full HP (Sturdy ability or a held Focus Sash).
func clipsLethal(defender *battle.Combatant) bool {
	return defender.Config.Ability == "Sturdy" || defender.Config.Item == "Focus Sash"
}
