package battle

import (
	"reflect"
	"sync/atomic"
	"testing"
)

func TestScoreCandidateAggregation(t *testing.T) {
	matchups := []MatchupResult{
		{Opponent: "Onix", Winner: SideCandidate, RemainingHP: 1.0},
		{Opponent: "Geodude", Winner: SideCandidate, RemainingHP: 0.5},
		{Opponent: "Graveler", Winner: SideOpponent, RemainingHP: 0.8},
	}

	rec := scoreCandidate("Squirtle", matchups)

	if rec.Score != 1.5 {
		t.Errorf("Score = %v, want 1.5", rec.Score)
	}
	if rec.Wins != 2 || rec.Losses != 1 {
		t.Errorf("Wins/Losses = %d/%d, want 2/1", rec.Wins, rec.Losses)
	}
}

func TestScoreCandidateUndeterminedCountsAsLoss(t *testing.T) {
	matchups := []MatchupResult{
		{Opponent: "Onix", Winner: SideNone, Undetermined: true, RemainingHP: 0},
		{Opponent: "Geodude", Winner: SideCandidate, RemainingHP: 0.25},
	}

	rec := scoreCandidate("Squirtle", matchups)
	if rec.Wins != 1 || rec.Losses != 1 {
		t.Errorf("Wins/Losses = %d/%d, want 1/1", rec.Wins, rec.Losses)
	}
	if rec.Score != 0.25 {
		t.Errorf("Score = %v, want 0.25", rec.Score)
	}
}

func rankFixture() (*Engine, []*Combatant, []*Combatant) {
	dex := stubDex{
		"Hydro Pump": {Name: "Hydro Pump", Category: CategorySpecial},
		"Vine Whip":  {Name: "Vine Whip", Category: CategoryPhysical},
		"Peck":       {Name: "Peck", Category: CategoryPhysical},
		"Tackle":     {Name: "Tackle", Category: CategoryPhysical},
	}
	damage := stubDamage{
		"Hydro Pump": {80, 85, 90},
		"Vine Whip":  {25, 28},
		"Peck":       {12, 13},
		"Tackle":     {10, 11},
	}
	engine := NewEngine(dex, damage)

	candidates := []*Combatant{
		testCombatant("Blastoise", 150, 100, "Hydro Pump"),
		testCombatant("Bulbasaur", 90, 45, "Vine Whip"),
	}
	opponents := []*Combatant{
		testCombatant("Pidgey", 60, 40, "Peck"),
		testCombatant("Rattata", 55, 50, "Tackle"),
		testCombatant("Spearow", 58, 48, "Peck"),
	}
	return engine, candidates, opponents
}

func TestRankOrdersByScore(t *testing.T) {
	engine, candidates, opponents := rankFixture()

	recs := engine.Rank(candidates, opponents, 4, nil)
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Candidate != "Blastoise" {
		t.Errorf("top candidate = %s, want Blastoise", recs[0].Candidate)
	}
	// Blastoise one-shots everything before any opponent acts.
	if recs[0].Wins != 3 || recs[0].Score != 3.0 {
		t.Errorf("Blastoise Wins/Score = %d/%v, want 3/3.0", recs[0].Wins, recs[0].Score)
	}
	for _, rec := range recs {
		if len(rec.Matchups) != len(opponents) {
			t.Errorf("%s has %d matchups, want %d", rec.Candidate, len(rec.Matchups), len(opponents))
		}
	}
}

func TestRankDeterministicAcrossWorkerCounts(t *testing.T) {
	engine, candidates, opponents := rankFixture()

	serial := engine.Rank(candidates, opponents, 1, nil)
	parallel := engine.Rank(candidates, opponents, 8, nil)

	if !reflect.DeepEqual(serial, parallel) {
		t.Errorf("worker count changed the ranking:\nserial:   %+v\nparallel: %+v", serial, parallel)
	}
}

func TestRankProgressCallback(t *testing.T) {
	engine, candidates, opponents := rankFixture()

	var calls int64
	engine.Rank(candidates, opponents, 4, func(MatchupResult) {
		atomic.AddInt64(&calls, 1)
	})

	want := int64(len(candidates) * len(opponents))
	if calls != want {
		t.Errorf("progress called %d times, want %d", calls, want)
	}
}

func TestRankTieBreaks(t *testing.T) {
	recs := []Recommendation{
		{Candidate: "B", Score: 1.0, Wins: 1},
		{Candidate: "A", Score: 1.0, Wins: 2},
		{Candidate: "C", Score: 2.0, Wins: 1},
		{Candidate: "D", Score: 1.0, Wins: 2},
	}
	sortRecommendations(recs)
	gotOrder := []string{recs[0].Candidate, recs[1].Candidate, recs[2].Candidate, recs[3].Candidate}
	wantOrder := []string{"C", "A", "D", "B"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("order = %v, want %v", gotOrder, wantOrder)
	}
}
