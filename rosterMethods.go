package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"

	"MonsterHuntSimulator/combat"
)

const (
	_rosterLibraryFilepath = "./library/"

	// _defaultRosterName may be missing from the library; the built-in
	// roster stands in for it.
	_defaultRosterName = "witcher.yaml"
)

// Roster is the setup of one match as stored in the library.
type Roster struct {
	Source   string       `yaml:"-"`
	Hero     EntityData   `yaml:"hero"`
	Monsters []EntityData `yaml:"monsters"`
	Names    []string     `yaml:"names,omitempty"`
}

type EntityData struct {
	Name      string `yaml:"name,omitempty"`
	Attack    int    `yaml:"attack"`
	Defense   int    `yaml:"defense"`
	MaxHealth int    `yaml:"maxHealth"`
	Damage    string `yaml:"damage"`
}

// defaultRoster is used when the default library file does not exist.
func defaultRoster() Roster {
	return Roster{
		Hero: EntityData{Name: "Geralt of Rivia", Attack: 30, Defense: 20, MaxHealth: 100, Damage: "6-10"},
		Monsters: []EntityData{
			{Attack: 10, Defense: 10, MaxHealth: 30, Damage: "4-8"},
			{Attack: 25, Defense: 21, MaxHealth: 90, Damage: "10-20"},
		},
		Names: combat.DefaultMonsterNames,
	}
}

func loadRoster(name string) (Roster, error) {
	return loadRosterFrom(_rosterLibraryFilepath, name)
}

// loadRosterFrom reads name from dir. Only a missing default roster falls
// back to the built-in one; any other missing file is an error.
func loadRosterFrom(dir, name string) (Roster, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) && name == _defaultRosterName {
		return defaultRoster(), nil
	}
	if err != nil {
		return Roster{}, fmt.Errorf("reading roster %s: %w", name, err)
	}
	roster := Roster{}
	if err = yaml.UnmarshalStrict(data, &roster); err != nil {
		return Roster{}, fmt.Errorf("parsing roster %s: %w", name, err)
	}
	roster.Source = name
	return roster, nil
}

func (d EntityData) stats() (combat.Stats, error) {
	damage, err := parseDamageRange(d.Damage)
	if err != nil {
		return combat.Stats{}, err
	}
	return combat.Stats{
		Attack:    d.Attack,
		Defense:   d.Defense,
		MaxHealth: d.MaxHealth,
		Damage:    damage,
	}, nil
}

// Build creates fresh, full-health entities for a new match. Every invalid
// entry is reported, not only the first. Unnamed monsters get a random name
// from the roster's name list.
func (r *Roster) Build(rng combat.Source) (*combat.Hero, []*combat.Monster, error) {
	var errs error

	hero, err := r.buildHero()
	errs = multierr.Append(errs, err)

	monsters := make([]*combat.Monster, 0, len(r.Monsters))
	for i, data := range r.Monsters {
		stats, err := data.stats()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("monster %d: %w", i, err))
			continue
		}
		name := data.Name
		if name == "" {
			name = combat.RandomName(rng, r.Names)
		}
		monster, err := combat.NewMonster(name, stats)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("monster %d: %w", i, err))
			continue
		}
		monsters = append(monsters, monster)
	}
	if errs != nil {
		return nil, nil, fmt.Errorf("roster %s: %w", r.Source, errs)
	}
	return hero, monsters, nil
}

func (r *Roster) buildHero() (*combat.Hero, error) {
	stats, err := r.Hero.stats()
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	hero, err := combat.NewHero(r.Hero.Name, stats)
	if err != nil {
		return nil, fmt.Errorf("hero: %w", err)
	}
	return hero, nil
}

func (r *Roster) PrintInfo() {
	fmt.Printf("Hero: %s | Attack: %d | Defense: %d | Health: %d | Damage: %s\n",
		r.Hero.Name, r.Hero.Attack, r.Hero.Defense, r.Hero.MaxHealth, r.Hero.Damage)
	for i, m := range r.Monsters {
		name := m.Name
		if name == "" {
			name = "(random)"
		}
		fmt.Printf("Monster %d: %s | Attack: %d | Defense: %d | Health: %d | Damage: %s\n",
			i+1, name, m.Attack, m.Defense, m.MaxHealth, m.Damage)
	}
}
