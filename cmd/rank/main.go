package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"boxscout/internal/battle"
	"boxscout/internal/damage"
	"boxscout/internal/dex"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FightFile describes one matchup run: the player's box and the
// opposing team, both as creature configs.
type FightFile struct {
	Candidates []battle.Config `yaml:"candidates"`
	Opponents  []battle.Config `yaml:"opponents"`
}

// BoxFile is a standalone candidate list, merged into the fight file's
// candidates when both are given.
type BoxFile struct {
	Candidates []battle.Config `yaml:"candidates"`
}

func main() {
	fightPath := flag.String("fight", "", "YAML file with candidates and opponents")
	boxPath := flag.String("box", "", "YAML file with extra candidates to merge in")
	dexPath := flag.String("dex", "", "path to the dex database (defaults to the user config dir)")
	learnset := flag.Bool("learnset", false, "expand empty candidate movesets from the learnset at their level")
	verbose := flag.Bool("v", false, "log each simulated turn")
	workers := flag.Int("workers", battle.DefaultWorkerCount, "matchup worker count")
	flag.Parse()

	if *fightPath == "" {
		fmt.Println("Usage: rank -fight fight.yaml [-box box.yaml] [-learnset] [-v]")
		os.Exit(1)
	}

	// .env is optional for the CLI; DEX_PATH may live there.
	for _, path := range []string{".env", "../.env"} {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}

	var fight FightFile
	if err := loadYAML(*fightPath, &fight); err != nil {
		log.Fatalf("Failed to load fight file: %v", err)
	}
	if *boxPath != "" {
		var box BoxFile
		if err := loadYAML(*boxPath, &box); err != nil {
			log.Fatalf("Failed to load box file: %v", err)
		}
		fight.Candidates = append(fight.Candidates, box.Candidates...)
	}
	if len(fight.Candidates) == 0 || len(fight.Opponents) == 0 {
		log.Fatal("fight file needs at least one candidate and one opponent")
	}

	path := *dexPath
	if path == "" {
		path = os.Getenv("DEX_PATH")
	}
	if path == "" {
		path = dex.DefaultPath()
	}
	d, err := dex.Open(path)
	if err != nil {
		log.Fatalf("Failed to open dex: %v", err)
	}
	defer d.Close()

	calc := damage.New(d)
	engine := battle.NewEngine(calc, calc)
	engine.SetVerbose(*verbose)

	candidates := buildSide(calc, d, fight.Candidates, "candidate", *learnset)
	opponents := buildSide(calc, d, fight.Opponents, "opponent", false)
	if len(candidates) == 0 || len(opponents) == 0 {
		log.Fatal("no valid combatants after validation")
	}

	fmt.Printf("[Rank] %d candidates vs %d opponents\n", len(candidates), len(opponents))

	recs := engine.Rank(candidates, opponents, *workers, nil)
	printTable(recs)
}

func loadYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// buildSide resolves configs, logging and skipping invalid ones. With
// expand set, a config with no moves gets its full learnset instead.
func buildSide(calc *damage.Calculator, d *dex.Dex, configs []battle.Config, side string, expand bool) []*battle.Combatant {
	var out []*battle.Combatant
	for _, cfg := range configs {
		if expand && len(cfg.Moves) == 0 {
			moves, err := d.LearnableMoves(cfg.Species, cfg.Level)
			if err != nil {
				fmt.Printf("[Rank] Skipping %s %s: %v\n", side, cfg.Species, err)
				continue
			}
			cfg.Moves = moves
		}
		c, err := calc.Build(cfg)
		if err != nil {
			fmt.Printf("[Rank] Skipping %s %s: %v\n", side, cfg.Species, err)
			continue
		}
		out = append(out, c)
	}
	return out
}

func printTable(recs []battle.Recommendation) {
	fmt.Printf("\n%-4s %-14s %6s %6s %8s\n", "#", "Candidate", "Wins", "Losses", "Score")
	for i, rec := range recs {
		fmt.Printf("%-4d %-14s %6d %6d %8.2f\n", i+1, rec.Candidate, rec.Wins, rec.Losses, rec.Score)
	}
	if len(recs) > 0 {
		top := recs[0]
		fmt.Printf("\nBest pick: %s\n", top.Candidate)
		for _, m := range top.Matchups {
			outcome := m.WinnerName
			if m.Undetermined {
				outcome = "undetermined"
			}
			fmt.Printf("  vs %-14s %-12s (%d turns", m.Opponent, outcome, m.Turns)
			if m.Winner == battle.SideCandidate {
				fmt.Printf(", %.0f%% HP left", m.RemainingHP*100)
			}
			fmt.Println(")")
		}
	}
}
