package battle

import (
	"fmt"
	"sort"
	"sync"
)

// DefaultWorkerCount bounds the matchup worker pool.
const DefaultWorkerCount = 8

// Progress is called once per completed matchup, from a single
// goroutine, in completion order.
type Progress func(MatchupResult)

type matchupJob struct {
	ci, oi int
}

// Rank evaluates every candidate against every opponent and returns
// candidates sorted best first. Matchups fan out over a worker pool and
// fan in before scoring, so the ranking is byte-identical regardless of
// worker count. A panicking matchup is captured as an error-flagged
// result worth zero rather than taking down the batch.
func (e *Engine) Rank(candidates, opponents []*Combatant, workers int, progress Progress) []Recommendation {
	if workers <= 0 {
		workers = DefaultWorkerCount
	}

	grid := make([][]MatchupResult, len(candidates))
	for i := range grid {
		grid[i] = make([]MatchupResult, len(opponents))
	}

	jobs := make(chan matchupJob, workers)
	results := make(chan MatchupResult, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				// Each worker owns a disjoint grid cell, no lock needed.
				grid[job.ci][job.oi] = e.safeEvaluate(candidates[job.ci], opponents[job.oi])
				results <- grid[job.ci][job.oi]
			}
		}()
	}

	go func() {
		for ci := range candidates {
			for oi := range opponents {
				jobs <- matchupJob{ci: ci, oi: oi}
			}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for r := range results {
		if progress != nil {
			progress(r)
		}
	}

	recs := make([]Recommendation, 0, len(candidates))
	for ci, cand := range candidates {
		recs = append(recs, scoreCandidate(cand.Config.Species, grid[ci]))
	}
	sortRecommendations(recs)
	return recs
}

// sortRecommendations orders candidates best first: score desc, then
// wins desc, then name asc so equal candidates rank deterministically.
func sortRecommendations(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].Wins != recs[j].Wins {
			return recs[i].Wins > recs[j].Wins
		}
		return recs[i].Candidate < recs[j].Candidate
	})
}

// safeEvaluate isolates a single matchup failure.
func (e *Engine) safeEvaluate(cand, opp *Combatant) (result MatchupResult) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Printf("[Battle] Matchup %s vs %s failed: %v\n",
				cand.Config.Species, opp.Config.Species, rec)
			result = MatchupResult{
				Candidate:      cand.Config.Species,
				Opponent:       opp.Config.Species,
				Winner:         SideNone,
				WinnerName:     SideNone.String(),
				CandidateMaxHP: cand.Stats.HP,
				OpponentMaxHP:  opp.Stats.HP,
				Error:          fmt.Sprintf("matchup failed: %v", rec),
			}
		}
	}()
	return e.Evaluate(cand, opp)
}

// scoreCandidate reduces one candidate's matchups to a single score: the
// sum of remaining-HP fractions over won matchups. Winning comfortably
// scores higher than scraping by; losses and undetermined matchups add
// nothing.
func scoreCandidate(name string, matchups []MatchupResult) Recommendation {
	rec := Recommendation{
		Candidate: name,
		Matchups:  matchups,
	}
	for _, m := range matchups {
		if m.Winner == SideCandidate {
			rec.Wins++
			rec.Score += m.RemainingHP
		} else {
			rec.Losses++
		}
	}
	return rec
}
