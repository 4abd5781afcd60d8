package battle

import "fmt"

// chooseMove picks the attacker's move for this turn, modeling a player
// who secures the fastest guaranteed KO, then maximizes KO chance, then
// falls back to raw damage. Each option is judged by appending it to the
// moves already committed this matchup; HP is never decremented, the
// analysis always targets full max HP. Returns nil when no option is
// available.
func (e *Engine) chooseMove(attacker, defender *Combatant, targetHP int, options []MoveOption, committed []MoveRecord) *MoveOption {
	if len(options) == 0 {
		return nil
	}

	prior, priorOK := e.committedDists(attacker, defender, committed)
	analyses := make([]KOAnalysis, len(options))
	for i := range options {
		if !priorOK {
			analyses[i] = KOAnalysis{Hits: len(committed) + 1}
			continue
		}
		seq := make([][]int, 0, len(prior)+1)
		seq = append(seq, prior...)
		seq = append(seq, options[i].Distribution)
		analyses[i] = AnalyzeSequence(seq, targetHP)
	}

	// Guaranteed KO with a priority move ends the matchup before the
	// defender can act at all.
	best := -1
	for i := range options {
		if options[i].Priority <= 0 || !analyses[i].Guaranteed {
			continue
		}
		if best < 0 || betterFinisher(&options[i], &options[best]) {
			best = i
		}
	}
	if best >= 0 {
		return &options[best]
	}

	// Any guaranteed KO, preferring higher priority then higher damage.
	for i := range options {
		if !analyses[i].Guaranteed {
			continue
		}
		if best < 0 || betterFinisher(&options[i], &options[best]) {
			best = i
		}
	}
	if best >= 0 {
		return &options[best]
	}

	// Highest non-zero KO chance.
	for i := range options {
		if !analyses[i].Possible {
			continue
		}
		if best < 0 || analyses[i].Chance > analyses[best].Chance ||
			(analyses[i].Chance == analyses[best].Chance && options[i].Median > options[best].Median) {
			best = i
		}
	}
	if best >= 0 {
		return &options[best]
	}

	// No KO in sight yet: highest representative damage.
	best = 0
	for i := 1; i < len(options); i++ {
		if options[i].Median > options[best].Median {
			best = i
		}
	}
	return &options[best]
}

// betterFinisher orders guaranteed-KO options: higher priority tier
// first, then higher representative damage.
func betterFinisher(a, b *MoveOption) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.Median > b.Median
}

// committedDists resolves the distribution of every already-committed
// move. A failed fetch poisons the whole prefix: selection then falls
// back to raw damage, mirroring how analyzeKO degrades such a sequence
// to 0%.
func (e *Engine) committedDists(attacker, defender *Combatant, committed []MoveRecord) ([][]int, bool) {
	dists := make([][]int, 0, len(committed))
	for _, rec := range committed {
		dist, err := e.damage.Distribution(attacker, defender, rec.Move)
		if err != nil || len(dist) == 0 {
			if e.verbose {
				fmt.Printf("[Battle] Committed move %s has no distribution: %v\n", rec.Move, err)
			}
			return nil, false
		}
		dists = append(dists, dist)
	}
	return dists, true
}
