package battle

import "fmt"

// duelOutcome is the raw result of driving one matchup to termination.
type duelOutcome struct {
	winner       Side
	turns        int
	undetermined bool
	candKO       KOAnalysis
	oppKO        KOAnalysis
	candSeq      []MoveRecord
	oppSeq       []MoveRecord
}

// simulate runs the turn loop for one candidate/opponent pair until a
// side's committed sequence carries a positive KO probability, a side
// runs out of moves, or the turn cap is hit.
//
// Turns are never played out with committed HP loss: distributions are
// never sampled, so each turn only asks whether the best sequence so far
// can possibly KO the full-HP target. When the first attacker's sequence
// becomes able to KO, the second attacker is assumed down before it can
// retaliate and does not act that turn.
func (e *Engine) simulate(cand, opp *Combatant) duelOutcome {
	var out duelOutcome
	candHP := cand.Stats.HP
	oppHP := opp.Stats.HP

	for turn := 1; turn <= e.turnCap; turn++ {
		candOpts := e.moveOptions(cand, opp, turn, true)
		oppOpts := e.moveOptions(opp, cand, turn, false)

		candMove := e.chooseMove(cand, opp, oppHP, candOpts, out.candSeq)
		oppMove := e.chooseMove(opp, cand, candHP, oppOpts, out.oppSeq)

		// A side with nothing to attack with loses on the spot; the
		// turn it could not act on is not attributed to it.
		if candMove == nil {
			out.winner = SideOpponent
			out.turns = turn - 1
			return out
		}
		if oppMove == nil {
			out.winner = SideCandidate
			out.turns = turn - 1
			return out
		}

		candFirst := candidateActsFirst(candMove, oppMove, cand.Stats.Speed, opp.Stats.Speed)
		if candFirst {
			out.candSeq = append(out.candSeq, MoveRecord{Move: candMove.Name, Turn: turn, Damage: candMove.Median, TargetMaxHP: oppHP})
			out.candKO = e.analyzeKO(cand, opp, oppHP, out.candSeq)
			if !out.candKO.Possible {
				out.oppSeq = append(out.oppSeq, MoveRecord{Move: oppMove.Name, Turn: turn, Damage: oppMove.Median, TargetMaxHP: candHP})
				out.oppKO = e.analyzeKO(opp, cand, candHP, out.oppSeq)
			}
		} else {
			out.oppSeq = append(out.oppSeq, MoveRecord{Move: oppMove.Name, Turn: turn, Damage: oppMove.Median, TargetMaxHP: candHP})
			out.oppKO = e.analyzeKO(opp, cand, candHP, out.oppSeq)
			if !out.oppKO.Possible {
				out.candSeq = append(out.candSeq, MoveRecord{Move: candMove.Name, Turn: turn, Damage: candMove.Median, TargetMaxHP: oppHP})
				out.candKO = e.analyzeKO(cand, opp, oppHP, out.candSeq)
			}
		}

		if e.verbose {
			fmt.Printf("[Battle] Turn %d: %s %s (%s) vs %s %s (%s)\n",
				turn, cand.Config.Species, candMove.Name, out.candKO.Summary,
				opp.Config.Species, oppMove.Name, out.oppKO.Summary)
		}

		if out.candKO.Possible || out.oppKO.Possible {
			out.turns = turn
			switch {
			case out.candKO.Possible && out.oppKO.Possible:
				// Both sequences can KO on the same turn: whoever
				// struck first this turn carries the KO.
				if candFirst {
					out.winner = SideCandidate
				} else {
					out.winner = SideOpponent
				}
			case out.candKO.Possible:
				out.winner = SideCandidate
			default:
				out.winner = SideOpponent
			}
			return out
		}
	}

	out.turns = e.turnCap
	out.undetermined = true
	return out
}
