package battle

import "fmt"

// stubDex serves move metadata from a map.
type stubDex map[string]MoveInfo

func (d stubDex) Move(name string) (MoveInfo, error) {
	info, ok := d[name]
	if !ok {
		return MoveInfo{}, fmt.Errorf("unknown move %q", name)
	}
	return info, nil
}

// stubDamage keys distributions by move name, ignoring the pairing.
type stubDamage map[string][]int

func (s stubDamage) Distribution(attacker, defender *Combatant, move string) ([]int, error) {
	dist, ok := s[move]
	if !ok {
		return nil, fmt.Errorf("no distribution for %q", move)
	}
	return dist, nil
}

func testCombatant(species string, hp, speed int, moves ...string) *Combatant {
	return &Combatant{
		Config: Config{
			Species: species,
			Level:   50,
			Ability: "Run Away",
			Nature:  "Hardy",
			Moves:   moves,
		},
		Stats: Stats{HP: hp, Atk: 100, Def: 100, SpAtk: 100, SpDef: 100, Speed: speed},
		Types: []string{"Normal"},
	}
}
