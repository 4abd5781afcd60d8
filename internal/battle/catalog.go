package battle

import (
	"fmt"
	"sort"
)

// firstTurnOnly moves are only legal on turn 1 of the whole matchup.
var firstTurnOnly = map[string]bool{
	"Fake Out":         true,
	"First Impression": true,
}

// riskBlacklist lists moves never suggested for the side being advised:
// self-destructing or otherwise ruinous moves an opponent may freely use
// against us, but which we would not recommend to a player.
var riskBlacklist = map[string]bool{
	"Explosion":       true,
	"Self-Destruct":   true,
	"Misty Explosion": true,
	"Final Gambit":    true,
	"Steel Beam":      true,
}

// EligibleMoves filters a combatant's move list down to moves usable on
// the given turn. Status moves are dropped, first-turn-only moves are
// dropped after turn 1, and for the protected (advised) side the risk
// blacklist applies. An empty result is valid and forces a loss for that
// side. Unknown moves are skipped.
func EligibleMoves(dex Movedex, moves []string, turn int, protected bool) []MoveInfo {
	var out []MoveInfo
	for _, name := range moves {
		info, err := dex.Move(name)
		if err != nil {
			fmt.Printf("[Battle] Skipping unknown move %q: %v\n", name, err)
			continue
		}
		if info.Category == CategoryStatus {
			continue
		}
		if firstTurnOnly[info.Name] && turn != 1 {
			continue
		}
		if protected && riskBlacklist[info.Name] {
			continue
		}
		out = append(out, info)
	}
	return out
}

// moveOptions resolves the damage distribution for every eligible move.
// A move whose distribution cannot be computed is dropped here, so it
// contributes nothing to selection or KO analysis.
func (e *Engine) moveOptions(attacker, defender *Combatant, turn int, protected bool) []MoveOption {
	eligible := EligibleMoves(e.dex, attacker.Config.Moves, turn, protected)
	options := make([]MoveOption, 0, len(eligible))
	for _, info := range eligible {
		dist, err := e.damage.Distribution(attacker, defender, info.Name)
		if err != nil {
			if e.verbose {
				fmt.Printf("[Battle] No distribution for %s vs %s with %s: %v\n",
					attacker.Config.Species, defender.Config.Species, info.Name, err)
			}
			continue
		}
		if len(dist) == 0 {
			continue
		}
		options = append(options, MoveOption{
			Name:         info.Name,
			Priority:     info.Priority,
			Category:     info.Category,
			Distribution: dist,
			Median:       medianDamage(dist),
		})
	}
	return options
}

// medianDamage returns the representative damage value for a
// distribution: the middle element of the sorted rolls.
func medianDamage(dist []int) int {
	sorted := make([]int, len(dist))
	copy(sorted, dist)
	sort.Ints(sorted)
	return sorted[len(sorted)/2]
}
