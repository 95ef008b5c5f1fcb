package combat

import "fmt"

// Resolver settles attacks between entities. It is not safe for concurrent
// use; a match drives it from a single goroutine.
type Resolver struct {
	rng  Source
	sink EventSink
}

// NewResolver returns a Resolver rolling with rng. A nil sink discards events.
func NewResolver(rng Source, sink EventSink) *Resolver {
	if sink == nil {
		sink = Discard
	}
	return &Resolver{rng: rng, sink: sink}
}

// ResolveAttack rolls attacker against defender:
//  1. attack modifier = attacker attack - defender defense + 1
//  2. roll max(modifier, 1) dice; any 5 or 6 is a hit
//  3. on a hit subtract a damage roll from the defender, killing it at <= 0
//
// Attacks involving a dead participant are ignored.
func (r *Resolver) ResolveAttack(attacker, defender *Entity) error {
	if defender == nil {
		return fmt.Errorf("%w: attack has no defender", ErrInvalidTarget)
	}
	if attacker == nil {
		return fmt.Errorf("%w: attack has no attacker", ErrInvalidTarget)
	}
	if !attacker.alive || !defender.alive {
		return nil
	}

	modifier := attacker.stats.Attack - defender.stats.Defense + 1
	rolls := RollDice(r.rng, modifier)
	if !IsAttackSuccessful(rolls) {
		r.sink.Emit(Event{Kind: EventMiss, Actor: attacker.name, Target: defender.name, Rolls: rolls})
		return nil
	}

	damage := RollDamage(r.rng, attacker.stats.Damage)
	defender.currentHealth -= damage
	r.sink.Emit(Event{
		Kind:      EventHit,
		Actor:     attacker.name,
		Target:    defender.name,
		Rolls:     rolls,
		Damage:    damage,
		Remaining: defender.currentHealth,
	})
	if defender.currentHealth <= 0 {
		defender.Die(r.sink)
	}
	return nil
}
