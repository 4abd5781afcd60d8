package battle

import (
	"fmt"
	"math"
)

// analyzeKO recomputes the exact KO probability of the committed move
// sequence against the defender's max HP. Distributions are fetched
// fresh for every record; if any single fetch fails the whole sequence
// degrades to a 0% analysis instead of aborting the matchup.
func (e *Engine) analyzeKO(attacker, defender *Combatant, targetHP int, committed []MoveRecord) KOAnalysis {
	dists := make([][]int, 0, len(committed))
	for _, rec := range committed {
		dist, err := e.damage.Distribution(attacker, defender, rec.Move)
		if err != nil || len(dist) == 0 {
			fmt.Printf("[Battle] KO analysis degraded, no distribution for %s: %v\n", rec.Move, err)
			return KOAnalysis{
				Hits:    len(committed),
				Summary: fmt.Sprintf("damage unavailable for %s", rec.Move),
			}
		}
		dists = append(dists, dist)
	}
	return AnalyzeSequence(dists, targetHP)
}

// AnalyzeSequence computes the exact probability that one damage value
// drawn from each distribution sums to at least targetHP. The count is
// exact over the full Cartesian product; cumulative sums are clamped at
// targetHP, which only merges states that already meet the target.
func AnalyzeSequence(dists [][]int, targetHP int) KOAnalysis {
	hits := len(dists)
	if hits == 0 {
		return KOAnalysis{Summary: "no hits committed"}
	}
	if targetHP <= 0 {
		return KOAnalysis{Chance: 100, Guaranteed: true, Possible: true, Hits: hits,
			Summary: fmt.Sprintf("guaranteed %dHKO", hits)}
	}

	acc := map[int]uint64{0: 1}
	total := uint64(1)
	for _, dist := range dists {
		next := make(map[int]uint64, len(acc))
		for sum, n := range acc {
			for _, d := range dist {
				s := sum + d
				if s > targetHP {
					s = targetHP
				}
				next[s] += n
			}
		}
		acc = next
		total *= uint64(len(dist))
	}
	favorable := acc[targetHP]

	chance := math.Round(float64(favorable)/float64(total)*1000) / 10
	out := KOAnalysis{
		Chance:     chance,
		Guaranteed: favorable == total,
		Possible:   favorable > 0,
		Hits:       hits,
	}
	switch {
	case out.Guaranteed:
		out.Chance = 100
		out.Summary = fmt.Sprintf("guaranteed %dHKO", hits)
	case favorable == 0:
		out.Chance = 0
		out.Summary = fmt.Sprintf("cannot KO in %d hits", hits)
	case out.Chance == 0:
		out.Summary = fmt.Sprintf("<0.1%% chance to %dHKO", hits)
	default:
		out.Summary = fmt.Sprintf("%.1f%% chance to %dHKO", out.Chance, hits)
	}
	return out
}
