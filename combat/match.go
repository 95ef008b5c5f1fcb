package combat

import "fmt"

// Outcome is the state of a match.
type Outcome int

const (
	// Ongoing means neither side has been eliminated yet.
	Ongoing Outcome = iota
	// HeroVictory means every monster is dead.
	HeroVictory
	// MonstersVictory means the hero is dead or at 0 health or below.
	MonstersVictory
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case HeroVictory:
		return "hero victory"
	case MonstersVictory:
		return "monsters victory"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Pacer gates the start of the next round. Next is called after every round
// that leaves the match ongoing; an error stops Match.Run.
type Pacer interface {
	Next(completedRound int) error
}

// PacerFunc adapts a function to a Pacer.
type PacerFunc func(completedRound int) error

func (f PacerFunc) Next(completedRound int) error { return f(completedRound) }

// Match owns one hero and a fixed-order roster of monsters and drives them
// round by round to a terminal Outcome.
type Match struct {
	hero     *Hero
	monsters []*Monster
	alive    []*Monster

	resolver *Resolver
	rng      Source
	sink     EventSink

	round   int
	outcome Outcome
}

// NewMatch sets up a match at round 1. A hero that is already dead ends it
// at once with MonstersVictory.
func NewMatch(hero *Hero, monsters []*Monster, rng Source, sink EventSink) (*Match, error) {
	if hero == nil {
		return nil, fmt.Errorf("%w: no hero", ErrInvalidMatch)
	}
	if len(monsters) == 0 {
		return nil, fmt.Errorf("%w: no monsters", ErrInvalidMatch)
	}
	for i, m := range monsters {
		if m == nil {
			return nil, fmt.Errorf("%w: monster %d is nil", ErrInvalidMatch, i)
		}
	}
	if sink == nil {
		sink = Discard
	}
	m := &Match{
		hero:     hero,
		monsters: append([]*Monster(nil), monsters...),
		resolver: NewResolver(rng, sink),
		rng:      rng,
		sink:     sink,
		round:    1,
	}
	m.updateAliveMonsters()
	m.checkStatus()
	return m, nil
}

func (m *Match) Hero() *Hero { return m.hero }
func (m *Match) Monsters() []*Monster { return m.monsters }
func (m *Match) Round() int { return m.round }
func (m *Match) Outcome() Outcome { return m.outcome }

// AliveMonsters returns the monsters still standing, in roster order.
func (m *Match) AliveMonsters() []*Monster {
	return append([]*Monster(nil), m.alive...)
}

// Run plays rounds until the match ends or pacer returns an error. A nil
// pacer runs unattended.
func (m *Match) Run(pacer Pacer) (Outcome, error) {
	m.sink.Emit(Event{Kind: EventMatchStart, Round: m.round, Actor: m.hero.name})
	for m.outcome == Ongoing {
		completed := m.round
		if err := m.PlayRound(); err != nil {
			return m.outcome, err
		}
		if m.outcome != Ongoing || pacer == nil {
			continue
		}
		if err := pacer.Next(completed); err != nil {
			return m.outcome, err
		}
	}
	return m.outcome, nil
}

// PlayRound plays the hero half-turn and, if the match is still on, one
// monster half-turn. A round that leaves the match ongoing ends with a
// snapshot and advances the round counter.
func (m *Match) PlayRound() error {
	if m.outcome != Ongoing {
		return nil
	}
	m.sink.Emit(Event{Kind: EventRoundStart, Round: m.round})

	if err := m.heroTurn(); err != nil {
		return err
	}
	m.updateAliveMonsters()
	if m.checkStatus() {
		return nil
	}

	if err := m.monstersTurn(); err != nil {
		return err
	}
	m.updateAliveMonsters()
	if m.checkStatus() {
		return nil
	}

	snap := m.Snapshot()
	m.sink.Emit(Event{Kind: EventSnapshot, Round: m.round, Snapshot: &snap})
	m.round++
	return nil
}

// Snapshot reports the hero and every living monster.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{Round: m.round, Hero: m.hero.status()}
	for _, monster := range m.alive {
		s.Monsters = append(s.Monsters, monster.status())
	}
	return s
}

func (m *Match) heroTurn() error {
	m.sink.Emit(Event{Kind: EventHeroTurn, Round: m.round, Actor: m.hero.name})
	if m.hero.LowHealth() {
		m.hero.Heal(m.sink)
	}
	target, err := m.randomAliveMonster()
	if err != nil {
		return err
	}
	return m.resolver.ResolveAttack(m.hero.Entity, target.Entity)
}

func (m *Match) monstersTurn() error {
	m.sink.Emit(Event{Kind: EventMonstersTurn, Round: m.round})
	attacker, err := m.randomAliveMonster()
	if err != nil {
		return err
	}
	return m.resolver.ResolveAttack(attacker.Entity, m.hero.Entity)
}

func (m *Match) randomAliveMonster() (*Monster, error) {
	if len(m.alive) == 0 {
		return nil, fmt.Errorf("%w: round %d", ErrNoValidTarget, m.round)
	}
	return m.alive[m.rng.Intn(len(m.alive))], nil
}

func (m *Match) updateAliveMonsters() {
	alive := make([]*Monster, 0, len(m.monsters))
	for _, monster := range m.monsters {
		if monster.alive {
			alive = append(alive, monster)
		}
	}
	m.alive = alive
}

// checkStatus moves the match to a terminal outcome when the hero is down
// or no monster is left. Hero death is checked first. A hero killed through
// Die keeps its health, so the alive flag is checked too.
func (m *Match) checkStatus() bool {
	switch {
	case m.outcome != Ongoing:
	case !m.hero.alive || m.hero.currentHealth <= 0:
		m.outcome = MonstersVictory
		m.sink.Emit(Event{Kind: EventMonstersVictory, Round: m.round, Target: m.hero.name})
	case len(m.alive) == 0:
		m.outcome = HeroVictory
		m.sink.Emit(Event{Kind: EventHeroVictory, Round: m.round, Actor: m.hero.name})
	}
	return m.outcome != Ongoing
}
