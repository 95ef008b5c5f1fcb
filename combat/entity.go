// Package combat resolves turn-based fights between a hero and a roster of
// monsters using dice checks and bounded damage rolls.
package combat

import (
	"fmt"

	"go.uber.org/multierr"
)

const (
	minAttackDefense = 1
	maxAttackDefense = 30
)

// Kind tags the variant an Entity belongs to.
type Kind int

const (
	// KindHero tags the controlled protagonist.
	KindHero Kind = iota
	// KindMonster tags a hostile entity.
	KindMonster
)

func (k Kind) String() string {
	switch k {
	case KindHero:
		return "hero"
	case KindMonster:
		return "monster"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DamageRange is the inclusive interval damage is drawn from on a hit.
type DamageRange struct {
	Low  int
	High int
}

func (d DamageRange) String() string {
	return fmt.Sprintf("%d-%d", d.Low, d.High)
}

// Stats are the fixed numbers an entity is built from.
type Stats struct {
	Attack    int
	Defense   int
	MaxHealth int
	Damage    DamageRange
}

// Validate reports every out-of-range field. Each reported error wraps
// ErrInvalidEntityConfig.
func (s Stats) Validate() error {
	var err error
	if s.Attack < minAttackDefense || s.Attack > maxAttackDefense {
		err = multierr.Append(err, fmt.Errorf("%w: attack %d outside [%d,%d]",
			ErrInvalidEntityConfig, s.Attack, minAttackDefense, maxAttackDefense))
	}
	if s.Defense < minAttackDefense || s.Defense > maxAttackDefense {
		err = multierr.Append(err, fmt.Errorf("%w: defense %d outside [%d,%d]",
			ErrInvalidEntityConfig, s.Defense, minAttackDefense, maxAttackDefense))
	}
	if s.MaxHealth <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max health %d must be positive",
			ErrInvalidEntityConfig, s.MaxHealth))
	}
	if s.Damage.Low < 0 || s.Damage.High < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: damage range %s has a negative bound",
			ErrInvalidEntityConfig, s.Damage))
	} else if s.Damage.Low >= s.Damage.High {
		err = multierr.Append(err, fmt.Errorf("%w: damage range %s needs low < high",
			ErrInvalidEntityConfig, s.Damage))
	}
	return err
}

// Entity is the state shared by every combat participant. Health and the
// alive flag are only changed by the Resolver, Hero.Heal and Die.
type Entity struct {
	name          string
	kind          Kind
	stats         Stats
	currentHealth int
	alive         bool
}

func newEntity(kind Kind, name string, stats Stats) (*Entity, error) {
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, err)
	}
	return &Entity{
		name:          name,
		kind:          kind,
		stats:         stats,
		currentHealth: stats.MaxHealth,
		alive:         true,
	}, nil
}

func (e *Entity) Name() string { return e.name }
func (e *Entity) Kind() Kind { return e.kind }
func (e *Entity) Stats() Stats { return e.stats }
func (e *Entity) Attack() int { return e.stats.Attack }
func (e *Entity) Defense() int { return e.stats.Defense }
func (e *Entity) MaxHealth() int { return e.stats.MaxHealth }
func (e *Entity) Damage() DamageRange { return e.stats.Damage }
func (e *Entity) CurrentHealth() int { return e.currentHealth }
func (e *Entity) Alive() bool { return e.alive }

// Die marks the entity dead and emits the variant's death event. Calls after
// the first are no-ops.
func (e *Entity) Die(sink EventSink) {
	if !e.alive {
		return
	}
	e.alive = false
	ev := Event{Kind: EventMonsterSlain, Target: e.name, Remaining: e.currentHealth}
	if e.kind == KindHero {
		ev.Kind = EventHeroDied
	}
	emit(sink, ev)
}

func (e *Entity) status() EntityStatus {
	return EntityStatus{
		Name:          e.name,
		Kind:          e.kind,
		CurrentHealth: e.currentHealth,
		MaxHealth:     e.stats.MaxHealth,
	}
}
