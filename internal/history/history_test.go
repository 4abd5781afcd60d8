package history

import (
	"context"
	"os"
	"testing"
	"time"

	"boxscout/internal/battle"
)

func TestFingerprintStable(t *testing.T) {
	type request struct {
		Candidates []string `json:"candidates"`
		Opponents  []string `json:"opponents"`
	}
	a := request{Candidates: []string{"Pikachu", "Snorlax"}, Opponents: []string{"Onix"}}
	b := request{Candidates: []string{"Pikachu", "Snorlax"}, Opponents: []string{"Onix"}}

	fa := Fingerprint(a)
	fb := Fingerprint(b)
	if fa == "" {
		t.Fatal("expected non-empty fingerprint")
	}
	if fa != fb {
		t.Errorf("identical payloads produced different fingerprints: %s vs %s", fa, fb)
	}

	c := request{Candidates: []string{"Pikachu"}, Opponents: []string{"Onix"}}
	if Fingerprint(c) == fa {
		t.Error("different payloads produced the same fingerprint")
	}
}

func TestFingerprintLength(t *testing.T) {
	f := Fingerprint(map[string]int{"turns": 5})
	if len(f) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(f))
	}
}

// Integration test. Requires a reachable Postgres instance.
func TestArchiveRecordAndRecent(t *testing.T) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	archive, err := New(ctx, databaseURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer archive.Close()

	recs := []battle.Recommendation{
		{Candidate: "Blastoise", Wins: 3, Losses: 0, Score: 2.4},
		{Candidate: "Bulbasaur", Wins: 1, Losses: 2, Score: 0.8},
	}
	fp := Fingerprint(recs)

	if err := archive.Record(ctx, fp, "api", recs); err != nil {
		t.Fatalf("failed to record run: %v", err)
	}
	// Duplicate fingerprints are swallowed, not errored.
	if err := archive.Record(ctx, fp, "api", recs); err != nil {
		t.Fatalf("duplicate record returned error: %v", err)
	}

	runs, err := archive.RecentRuns(ctx, 5)
	if err != nil {
		t.Fatalf("failed to fetch recent runs: %v", err)
	}
	found := false
	for _, run := range runs {
		if run.Fingerprint == fp {
			found = true
			if len(run.Summaries) != 2 {
				t.Errorf("expected 2 summaries, got %d", len(run.Summaries))
			}
		}
	}
	if !found {
		t.Errorf("recorded run %s not found in recent runs", fp[:12])
	}
}

func TestRecordEmptyFingerprint(t *testing.T) {
	a := &Archive{}
	if err := a.Record(context.Background(), "", "cli", nil); err == nil {
		t.Error("expected error for empty fingerprint")
	}
}
