package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"boxscout/internal/battle"
	"boxscout/internal/damage"
	"boxscout/internal/dex"
	"boxscout/internal/history"

	"github.com/joho/godotenv"
)

var (
	engine     *battle.Engine
	calculator *damage.Calculator
	archive    *history.Archive
	hub        *Hub
)

func main() {
	// Load .env file - try multiple locations
	envPaths := []string{".env", "../.env", "../../.env"}
	envLoaded := false
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			fmt.Printf("Loaded .env from: %s\n", path)
			envLoaded = true
			break
		}
	}
	if !envLoaded {
		log.Println("No .env file found, using environment variables")
	}

	dexPath := os.Getenv("DEX_PATH")
	if dexPath == "" {
		dexPath = dex.DefaultPath()
	}
	d, err := dex.Open(dexPath)
	if err != nil {
		log.Fatalf("Failed to open dex: %v", err)
	}
	defer d.Close()
	fmt.Printf("[Server] Dex ready at %s\n", dexPath)

	calculator = damage.New(d)
	engine = battle.NewEngine(calculator, calculator)

	// Postgres archive is optional. The server runs fine without it.
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		archive, err = history.New(context.Background(), databaseURL)
		if err != nil {
			log.Printf("History archive unavailable: %v", err)
			archive = nil
		} else {
			defer archive.Close()
			fmt.Println("[Server] History archive connected")
		}
	}

	hub = NewHub()

	http.HandleFunc("/api/recommend", handleRecommend)
	http.HandleFunc("/api/health", handleHealth)
	http.HandleFunc("/api/history", handleHistory)
	http.HandleFunc("/ws", hub.HandleWS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}

// RecommendRequest carries the player's box and the opposing team.
type RecommendRequest struct {
	Candidates []battle.Config `json:"candidates"`
	Opponents  []battle.Config `json:"opponents"`
	// Mode labels the fight (gym, rival, boss). Passed through to the
	// response and the archive, never read by the engine.
	Mode    string `json:"mode,omitempty"`
	Workers int    `json:"workers,omitempty"`
}

// InvalidConfig reports a config that failed validation and was
// excluded from the ranking.
type InvalidConfig struct {
	Species string `json:"species"`
	Side    string `json:"side"`
	Reason  string `json:"reason"`
}

// RecommendResponse is the ranked result.
type RecommendResponse struct {
	Mode            string                  `json:"mode,omitempty"`
	Recommendations []battle.Recommendation `json:"recommendations"`
	Invalid         []InvalidConfig         `json:"invalid,omitempty"`
}

func handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Candidates) == 0 || len(req.Opponents) == 0 {
		http.Error(w, "candidates and opponents are both required", http.StatusBadRequest)
		return
	}

	var invalid []InvalidConfig
	candidates := buildAll(req.Candidates, "candidate", &invalid)
	opponents := buildAll(req.Opponents, "opponent", &invalid)
	if len(candidates) == 0 || len(opponents) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(RecommendResponse{Invalid: invalid})
		return
	}

	fmt.Printf("[Server] Ranking %d candidates against %d opponents\n", len(candidates), len(opponents))

	recs := engine.Rank(candidates, opponents, req.Workers, func(m battle.MatchupResult) {
		hub.Broadcast(ProgressMessage{
			Type:      "matchup",
			Candidate: m.Candidate,
			Opponent:  m.Opponent,
			Winner:    m.WinnerName,
			Turns:     m.Turns,
			Remaining: m.RemainingHP,
		})
	})
	hub.Broadcast(ProgressMessage{Type: "done"})

	if archive != nil {
		fp := history.Fingerprint(req)
		mode := req.Mode
		if mode == "" {
			mode = "api"
		}
		if err := archive.Record(r.Context(), fp, mode, recs); err != nil {
			log.Printf("Failed to archive run: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RecommendResponse{
		Mode:            req.Mode,
		Recommendations: recs,
		Invalid:         invalid,
	})
}

// buildAll resolves configs into combatants, collecting failures
// instead of aborting the whole request.
func buildAll(configs []battle.Config, side string, invalid *[]InvalidConfig) []*battle.Combatant {
	var out []*battle.Combatant
	for _, cfg := range configs {
		c, err := calculator.Build(cfg)
		if err != nil {
			*invalid = append(*invalid, InvalidConfig{
				Species: cfg.Species,
				Side:    side,
				Reason:  err.Error(),
			})
			continue
		}
		out = append(out, c)
	}
	return out
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"archive": archive != nil,
	})
}

func handleHistory(w http.ResponseWriter, r *http.Request) {
	if archive == nil {
		http.Error(w, "history archive not configured", http.StatusNotFound)
		return
	}

	limit := 20
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	runs, err := archive.RecentRuns(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}
