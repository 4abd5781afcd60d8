package dex

import "fmt"

type learnEntry struct {
	Species string
	Move    string
	Level   int
}

// populate inserts the seed data inside one transaction.
func (d *Dex) populate() error {
	species := []SpeciesInfo{
		{"Bulbasaur", "Grass", "Poison", BaseStats{45, 49, 49, 65, 65, 45}},
		{"Ivysaur", "Grass", "Poison", BaseStats{60, 62, 63, 80, 80, 60}},
		{"Venusaur", "Grass", "Poison", BaseStats{80, 82, 83, 100, 100, 80}},
		{"Charmander", "Fire", "", BaseStats{39, 52, 43, 60, 50, 65}},
		{"Charmeleon", "Fire", "", BaseStats{58, 64, 58, 80, 65, 80}},
		{"Charizard", "Fire", "Flying", BaseStats{78, 84, 78, 109, 85, 100}},
		{"Squirtle", "Water", "", BaseStats{44, 48, 65, 50, 64, 43}},
		{"Wartortle", "Water", "", BaseStats{59, 63, 80, 65, 80, 58}},
		{"Blastoise", "Water", "", BaseStats{79, 83, 100, 85, 105, 78}},
		{"Pidgey", "Normal", "Flying", BaseStats{40, 45, 40, 35, 35, 56}},
		{"Rattata", "Normal", "", BaseStats{30, 56, 35, 25, 35, 72}},
		{"Spearow", "Normal", "Flying", BaseStats{40, 60, 30, 31, 31, 70}},
		{"Ekans", "Poison", "", BaseStats{35, 60, 44, 40, 54, 55}},
		{"Pikachu", "Electric", "", BaseStats{35, 55, 40, 50, 50, 90}},
		{"Raichu", "Electric", "", BaseStats{60, 90, 55, 90, 80, 110}},
		{"Diglett", "Ground", "", BaseStats{10, 55, 25, 35, 45, 95}},
		{"Abra", "Psychic", "", BaseStats{25, 20, 15, 105, 55, 90}},
		{"Machop", "Fighting", "", BaseStats{70, 80, 50, 35, 35, 35}},
		{"Geodude", "Rock", "Ground", BaseStats{40, 80, 100, 30, 30, 20}},
		{"Graveler", "Rock", "Ground", BaseStats{55, 95, 115, 45, 45, 35}},
		{"Onix", "Rock", "Ground", BaseStats{35, 45, 160, 30, 45, 70}},
		{"Gastly", "Ghost", "Poison", BaseStats{30, 35, 30, 100, 35, 80}},
		{"Magikarp", "Water", "", BaseStats{20, 10, 55, 15, 20, 80}},
		{"Gyarados", "Water", "Flying", BaseStats{95, 125, 79, 60, 100, 81}},
		{"Snorlax", "Normal", "", BaseStats{160, 110, 65, 65, 110, 30}},
		{"Electrode", "Electric", "", BaseStats{60, 50, 70, 80, 80, 150}},
	}

	moves := []MoveData{
		{"Tackle", "Normal", "physical", 40, 0},
		{"Scratch", "Normal", "physical", 40, 0},
		{"Quick Attack", "Normal", "physical", 40, 1},
		{"Extreme Speed", "Normal", "physical", 80, 2},
		{"Fake Out", "Normal", "physical", 40, 3},
		{"Body Slam", "Normal", "physical", 85, 0},
		{"Double-Edge", "Normal", "physical", 120, 0},
		{"Hyper Beam", "Normal", "special", 150, 0},
		{"Explosion", "Normal", "physical", 250, 0},
		{"Self-Destruct", "Normal", "physical", 200, 0},
		{"Ember", "Fire", "special", 40, 0},
		{"Flamethrower", "Fire", "special", 90, 0},
		{"Fire Blast", "Fire", "special", 110, 0},
		{"Water Gun", "Water", "special", 40, 0},
		{"Surf", "Water", "special", 90, 0},
		{"Hydro Pump", "Water", "special", 110, 0},
		{"Aqua Jet", "Water", "physical", 40, 1},
		{"Waterfall", "Water", "physical", 80, 0},
		{"Vine Whip", "Grass", "physical", 45, 0},
		{"Razor Leaf", "Grass", "physical", 55, 0},
		{"Solar Beam", "Grass", "special", 120, 0},
		{"Thunder Shock", "Electric", "special", 40, 0},
		{"Thunderbolt", "Electric", "special", 90, 0},
		{"Thunder", "Electric", "special", 110, 0},
		{"Rock Throw", "Rock", "physical", 50, 0},
		{"Rock Slide", "Rock", "physical", 75, 0},
		{"Earthquake", "Ground", "physical", 100, 0},
		{"Dig", "Ground", "physical", 80, 0},
		{"Karate Chop", "Fighting", "physical", 50, 0},
		{"Low Kick", "Fighting", "physical", 65, 0},
		{"Mach Punch", "Fighting", "physical", 40, 1},
		{"Final Gambit", "Fighting", "physical", 1, 0},
		{"Gust", "Flying", "special", 40, 0},
		{"Wing Attack", "Flying", "physical", 60, 0},
		{"Peck", "Flying", "physical", 35, 0},
		{"Lick", "Ghost", "physical", 30, 0},
		{"Shadow Ball", "Ghost", "special", 80, 0},
		{"Confusion", "Psychic", "special", 50, 0},
		{"Psychic", "Psychic", "special", 90, 0},
		{"Bite", "Dark", "physical", 60, 0},
		{"Crunch", "Dark", "physical", 80, 0},
		{"Poison Sting", "Poison", "physical", 15, 0},
		{"Sludge Bomb", "Poison", "special", 90, 0},
		{"Ice Beam", "Ice", "special", 90, 0},
		{"First Impression", "Bug", "physical", 90, 2},
		{"Steel Beam", "Steel", "special", 140, 0},
		{"Growl", "Normal", "status", 0, 0},
		{"Tail Whip", "Normal", "status", 0, 0},
		{"Leer", "Normal", "status", 0, 0},
		{"Splash", "Normal", "status", 0, 0},
	}

	learnsets := []learnEntry{
		{"Bulbasaur", "Tackle", 1},
		{"Bulbasaur", "Vine Whip", 7},
		{"Bulbasaur", "Razor Leaf", 20},
		{"Venusaur", "Tackle", 1},
		{"Venusaur", "Vine Whip", 1},
		{"Venusaur", "Razor Leaf", 20},
		{"Venusaur", "Solar Beam", 53},
		{"Charmander", "Scratch", 1},
		{"Charmander", "Ember", 9},
		{"Charmander", "Flamethrower", 38},
		{"Charizard", "Scratch", 1},
		{"Charizard", "Ember", 1},
		{"Charizard", "Wing Attack", 36},
		{"Charizard", "Flamethrower", 38},
		{"Charizard", "Fire Blast", 55},
		{"Squirtle", "Tackle", 1},
		{"Squirtle", "Water Gun", 8},
		{"Squirtle", "Bite", 18},
		{"Blastoise", "Tackle", 1},
		{"Blastoise", "Water Gun", 8},
		{"Blastoise", "Bite", 18},
		{"Blastoise", "Surf", 35},
		{"Blastoise", "Hydro Pump", 52},
		{"Pidgey", "Tackle", 1},
		{"Pidgey", "Gust", 9},
		{"Pidgey", "Quick Attack", 13},
		{"Pidgey", "Wing Attack", 19},
		{"Rattata", "Tackle", 1},
		{"Rattata", "Quick Attack", 7},
		{"Rattata", "Bite", 14},
		{"Rattata", "Double-Edge", 34},
		{"Spearow", "Peck", 1},
		{"Spearow", "Quick Attack", 9},
		{"Spearow", "Wing Attack", 22},
		{"Ekans", "Poison Sting", 1},
		{"Ekans", "Bite", 10},
		{"Pikachu", "Thunder Shock", 1},
		{"Pikachu", "Quick Attack", 11},
		{"Pikachu", "Thunderbolt", 26},
		{"Pikachu", "Thunder", 50},
		{"Raichu", "Thunder Shock", 1},
		{"Raichu", "Quick Attack", 1},
		{"Raichu", "Thunderbolt", 26},
		{"Diglett", "Scratch", 1},
		{"Diglett", "Dig", 19},
		{"Diglett", "Earthquake", 41},
		{"Abra", "Confusion", 1},
		{"Machop", "Karate Chop", 1},
		{"Machop", "Low Kick", 13},
		{"Geodude", "Tackle", 1},
		{"Geodude", "Rock Throw", 11},
		{"Geodude", "Self-Destruct", 21},
		{"Geodude", "Rock Slide", 31},
		{"Geodude", "Explosion", 36},
		{"Graveler", "Tackle", 1},
		{"Graveler", "Rock Throw", 11},
		{"Graveler", "Rock Slide", 31},
		{"Graveler", "Earthquake", 41},
		{"Onix", "Tackle", 1},
		{"Onix", "Rock Throw", 13},
		{"Onix", "Rock Slide", 33},
		{"Gastly", "Lick", 1},
		{"Gastly", "Shadow Ball", 29},
		{"Magikarp", "Splash", 1},
		{"Magikarp", "Tackle", 15},
		{"Gyarados", "Tackle", 1},
		{"Gyarados", "Bite", 20},
		{"Gyarados", "Waterfall", 25},
		{"Gyarados", "Hydro Pump", 46},
		{"Snorlax", "Tackle", 1},
		{"Snorlax", "Body Slam", 17},
		{"Snorlax", "Crunch", 28},
		{"Snorlax", "Hyper Beam", 50},
		{"Electrode", "Tackle", 1},
		{"Electrode", "Thunder Shock", 1},
		{"Electrode", "Self-Destruct", 22},
		{"Electrode", "Thunderbolt", 26},
		{"Electrode", "Explosion", 41},
	}

	natures := []NatureMod{
		{"Hardy", "", ""},
		{"Lonely", "atk", "def"},
		{"Brave", "atk", "speed"},
		{"Adamant", "atk", "spatk"},
		{"Naughty", "atk", "spdef"},
		{"Bold", "def", "atk"},
		{"Docile", "", ""},
		{"Relaxed", "def", "speed"},
		{"Impish", "def", "spatk"},
		{"Lax", "def", "spdef"},
		{"Timid", "speed", "atk"},
		{"Hasty", "speed", "def"},
		{"Serious", "", ""},
		{"Jolly", "speed", "spatk"},
		{"Naive", "speed", "spdef"},
		{"Modest", "spatk", "atk"},
		{"Mild", "spatk", "def"},
		{"Quiet", "spatk", "speed"},
		{"Bashful", "", ""},
		{"Rash", "spatk", "spdef"},
		{"Calm", "spdef", "atk"},
		{"Gentle", "spdef", "def"},
		{"Sassy", "spdef", "speed"},
		{"Careful", "spdef", "spatk"},
		{"Quirky", "", ""},
	}

	tx, err := d.db.Begin()
	if err != nil {
		return err
	}

	speciesStmt, err := tx.Prepare(`INSERT OR REPLACE INTO species
		(name, type1, type2, hp, atk, def, spatk, spdef, speed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer speciesStmt.Close()
	for _, s := range species {
		if _, err := speciesStmt.Exec(s.Name, s.Type1, s.Type2,
			s.Base.HP, s.Base.Atk, s.Base.Def, s.Base.SpAtk, s.Base.SpDef, s.Base.Speed); err != nil {
			tx.Rollback()
			return err
		}
	}

	moveStmt, err := tx.Prepare(`INSERT OR REPLACE INTO moves
		(name, type, category, power, priority) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer moveStmt.Close()
	for _, m := range moves {
		if _, err := moveStmt.Exec(m.Name, m.Type, m.Category, m.Power, m.Priority); err != nil {
			tx.Rollback()
			return err
		}
	}

	learnStmt, err := tx.Prepare(`INSERT OR REPLACE INTO learnsets
		(species, move, level) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer learnStmt.Close()
	for _, l := range learnsets {
		if _, err := learnStmt.Exec(l.Species, l.Move, l.Level); err != nil {
			tx.Rollback()
			return err
		}
	}

	natureStmt, err := tx.Prepare(`INSERT OR REPLACE INTO natures
		(name, up, down) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer natureStmt.Close()
	for _, n := range natures {
		if _, err := natureStmt.Exec(n.Name, n.Up, n.Down); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("[Dex] Seeded %d species, %d moves, %d natures\n",
		len(species), len(moves), len(natures))
	return nil
}
