// Package battle simulates bounded 1v1 matchups between a battle-ready
// candidate and each member of an opposing team, and ranks candidates by
// how comfortably they win. All probabilities are computed exactly from
// discrete damage-roll distributions; nothing is ever sampled.
package battle

// Side identifies one of the two combatants in a matchup.
type Side int

const (
	SideNone Side = iota
	SideCandidate
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SideCandidate:
		return "candidate"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Category classifies a move's damage kind.
type Category int

const (
	CategoryStatus Category = iota
	CategoryPhysical
	CategorySpecial
)

func (c Category) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	default:
		return "status"
	}
}

// Stats holds one value per stat, either raw IVs/EVs or resolved
// battle stats depending on context.
type Stats struct {
	HP    int `json:"hp" yaml:"hp"`
	Atk   int `json:"atk" yaml:"atk"`
	Def   int `json:"def" yaml:"def"`
	SpAtk int `json:"spAtk" yaml:"spatk"`
	SpDef int `json:"spDef" yaml:"spdef"`
	Speed int `json:"speed" yaml:"speed"`
}

// Config is the caller-supplied description of a combatant. It is
// immutable once constructed and never persisted.
type Config struct {
	Species string   `json:"species" yaml:"species"`
	Level   int      `json:"level" yaml:"level"`
	Ability string   `json:"ability" yaml:"ability"`
	Nature  string   `json:"nature" yaml:"nature"`
	Item    string   `json:"item,omitempty" yaml:"item,omitempty"`
	Moves   []string `json:"moves" yaml:"moves"`
	IVs     Stats    `json:"ivs" yaml:"ivs"`
	EVs     Stats    `json:"evs" yaml:"evs"`
}

// Combatant is a config plus its resolved battle stats and typing.
// Resolution (base stats, IVs, EVs, nature) happens in the provider
// layer; the engine only reads the resolved values.
type Combatant struct {
	Config Config
	Stats  Stats
	Types  []string
}

// MoveInfo is the metadata the engine needs about a move.
type MoveInfo struct {
	Name     string
	Priority int
	Category Category
}

// MoveOption is one usable move for a specific attacker/defender pair on
// a specific turn, with its damage distribution already resolved.
// Distributions are derived fresh each turn because defensive abilities
// can clip them based on the defender's notional HP.
type MoveOption struct {
	Name         string
	Priority     int
	Category     Category
	Distribution []int
	Median       int
}

// MoveRecord is one committed move in a matchup's append-only log.
type MoveRecord struct {
	Move        string `json:"move"`
	Turn        int    `json:"turn"`
	Damage      int    `json:"damage"`
	TargetMaxHP int    `json:"targetMaxHp"`
}

// KOAnalysis is the exact probability that a committed move sequence's
// cumulative damage meets or exceeds the target's max HP.
type KOAnalysis struct {
	Chance     float64 `json:"chance"`
	Guaranteed bool    `json:"guaranteed"`
	// Possible is true when at least one damage combination reaches the
	// target, even if Chance rounds down to 0.0.
	Possible bool   `json:"possible"`
	Summary  string `json:"summary"`
	Hits     int    `json:"hits"`
}

// MatchupResult is the structured outcome of one candidate-vs-opponent
// simulation.
type MatchupResult struct {
	Candidate      string       `json:"candidate"`
	Opponent       string       `json:"opponent"`
	Winner         Side         `json:"-"`
	WinnerName     string       `json:"winner"`
	Turns          int          `json:"turns"`
	Undetermined   bool         `json:"undetermined"`
	CandidateKO    KOAnalysis   `json:"candidateKo"`
	OpponentKO     KOAnalysis   `json:"opponentKo"`
	CandidateMoves []MoveRecord `json:"candidateMoves"`
	OpponentMoves  []MoveRecord `json:"opponentMoves"`
	CandidateMaxHP int          `json:"candidateMaxHp"`
	OpponentMaxHP  int          `json:"opponentMaxHp"`
	RemainingHP    float64      `json:"remainingHp"`
	Error          string       `json:"error,omitempty"`
}

// Recommendation aggregates all of one candidate's matchups into a
// ranked score.
type Recommendation struct {
	Candidate string          `json:"candidate"`
	Matchups  []MatchupResult `json:"matchups"`
	Wins      int             `json:"wins"`
	Losses    int             `json:"losses"`
	Score     float64         `json:"score"`
}

// Movedex supplies move metadata.
type Movedex interface {
	Move(name string) (MoveInfo, error)
}

// DamageProvider returns the discrete damage-roll distribution for one
// use of a move by attacker against defender. The result is an ordered,
// non-empty multiset of non-negative integers; it must be a pure
// function of its arguments.
type DamageProvider interface {
	Distribution(attacker, defender *Combatant, move string) ([]int, error)
}

// DefaultTurnCap bounds every matchup. Exceeding it resolves the matchup
// as undetermined rather than looping.
const DefaultTurnCap = 5

// Engine runs matchup simulations. It holds no per-matchup state, so a
// single Engine is safe for concurrent use across matchups.
type Engine struct {
	dex     Movedex
	damage  DamageProvider
	turnCap int
	verbose bool
}

// NewEngine creates an engine with the default turn cap.
func NewEngine(dex Movedex, damage DamageProvider) *Engine {
	return &Engine{
		dex:     dex,
		damage:  damage,
		turnCap: DefaultTurnCap,
	}
}

// SetTurnCap overrides the per-matchup turn cap. Values below 1 are
// ignored.
func (e *Engine) SetTurnCap(cap int) {
	if cap >= 1 {
		e.turnCap = cap
	}
}

// SetVerbose enables per-turn logging during simulation.
func (e *Engine) SetVerbose(v bool) {
	e.verbose = v
}
