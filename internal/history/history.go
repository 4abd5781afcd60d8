// Package history archives completed ranking runs in Postgres so past
// recommendations can be reviewed and aggregated later. The archive is
// optional: the engine never depends on it.
package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"boxscout/internal/battle"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run is one archived ranking run.
type Run struct {
	Fingerprint string    `json:"fingerprint"`
	Mode        string    `json:"mode"`
	Summaries   []Summary `json:"summaries"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is the per-candidate row stored for one run.
type Summary struct {
	Candidate string  `json:"candidate"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Score     float64 `json:"score"`
}

// Archive stores ranking runs. A bloom filter remembers request
// fingerprints already recorded this process, so re-uploading the same
// save repeatedly archives one row instead of hundreds.
type Archive struct {
	pool *pgxpool.Pool

	seenMu sync.Mutex
	seen   *bloom.BloomFilter
}

// New connects to Postgres and ensures the schema exists.
func New(ctx context.Context, databaseURL string) (*Archive, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	a := &Archive{
		pool: pool,
		seen: bloom.NewWithEstimates(100000, 0.001),
	}
	if err := a.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) init(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ranking_runs (
			id BIGSERIAL PRIMARY KEY,
			fingerprint TEXT NOT NULL,
			mode TEXT NOT NULL,
			results JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create ranking_runs: %w", err)
	}
	return nil
}

// Fingerprint derives a stable identifier for a request payload.
func Fingerprint(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Record archives one completed run. A fingerprint already seen by this
// process is skipped; false positives only cost an archive row, never
// correctness.
func (a *Archive) Record(ctx context.Context, fingerprint, mode string, recs []battle.Recommendation) error {
	if fingerprint == "" {
		return fmt.Errorf("empty fingerprint")
	}

	a.seenMu.Lock()
	dup := a.seen.TestOrAddString(fingerprint)
	a.seenMu.Unlock()
	if dup {
		fmt.Printf("[History] Skipping duplicate run %s\n", fingerprint[:12])
		return nil
	}

	summaries := make([]Summary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, Summary{
			Candidate: rec.Candidate,
			Wins:      rec.Wins,
			Losses:    rec.Losses,
			Score:     rec.Score,
		})
	}
	results, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("failed to marshal summaries: %w", err)
	}

	_, err = a.pool.Exec(ctx, `
		INSERT INTO ranking_runs (fingerprint, mode, results) VALUES ($1, $2, $3)
	`, fingerprint, mode, results)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// RecentRuns returns the newest archived runs.
func (a *Archive) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := a.pool.Query(ctx, `
		SELECT fingerprint, mode, results, created_at
		FROM ranking_runs ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var results []byte
		if err := rows.Scan(&r.Fingerprint, &r.Mode, &results, &r.CreatedAt); err != nil {
			continue
		}
		if err := json.Unmarshal(results, &r.Summaries); err != nil {
			continue
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Close releases the connection pool.
func (a *Archive) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}
