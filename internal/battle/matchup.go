package battle

// Evaluate simulates one candidate/opponent matchup and packages the
// outcome. It is a pure function of the two combatants: no state is
// shared between matchups, so calls may run concurrently.
func (e *Engine) Evaluate(cand, opp *Combatant) MatchupResult {
	out := e.simulate(cand, opp)

	result := MatchupResult{
		Candidate:      cand.Config.Species,
		Opponent:       opp.Config.Species,
		Winner:         out.winner,
		WinnerName:     out.winner.String(),
		Turns:          out.turns,
		Undetermined:   out.undetermined,
		CandidateKO:    out.candKO,
		OpponentKO:     out.oppKO,
		CandidateMoves: out.candSeq,
		OpponentMoves:  out.oppSeq,
		CandidateMaxHP: cand.Stats.HP,
		OpponentMaxHP:  opp.Stats.HP,
	}
	result.RemainingHP = remainingFraction(&result)
	return result
}

// remainingFraction estimates how much of the winner's max HP survives
// the loser's committed moves, using each move's representative damage.
// A heuristic confidence signal, not a guarantee.
func remainingFraction(r *MatchupResult) float64 {
	var maxHP int
	var loserMoves []MoveRecord
	switch r.Winner {
	case SideCandidate:
		maxHP = r.CandidateMaxHP
		loserMoves = r.OpponentMoves
	case SideOpponent:
		maxHP = r.OpponentMaxHP
		loserMoves = r.CandidateMoves
	default:
		return 0
	}
	if maxHP <= 0 {
		return 0
	}
	taken := 0
	for _, rec := range loserMoves {
		taken += rec.Damage
	}
	remaining := maxHP - taken
	if remaining < 0 {
		remaining = 0
	}
	return float64(remaining) / float64(maxHP)
}
