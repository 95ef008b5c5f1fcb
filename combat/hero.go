package combat

import "math"

const (
	// MaxHealCharges is how many times a hero can heal per match.
	MaxHealCharges = 4
	// heal restores healPercent% of max health
	healPercent = 30
	// the hero heals before attacking at or below this share of max health
	lowHealthPercent = 40
)

// Hero is the controlled protagonist: an Entity with a limited number of
// self-heals.
type Hero struct {
	*Entity
	healCharges int
}

// NewHero validates stats and returns a full-health hero with MaxHealCharges.
func NewHero(name string, stats Stats) (*Hero, error) {
	e, err := newEntity(KindHero, name, stats)
	if err != nil {
		return nil, err
	}
	return &Hero{Entity: e, healCharges: MaxHealCharges}, nil
}

func (h *Hero) HealCharges() int { return h.healCharges }

// LowHealth reports whether current health is at or below 40% of max.
func (h *Hero) LowHealth() bool {
	return h.currentHealth <= percentOf(h.stats.MaxHealth, lowHealthPercent)
}

// Heal spends a charge to restore 30% of max health, rounded down. Health is
// not capped at max, so a heal near full health goes above it; it only
// saturates at math.MaxInt. With no charges left it only emits
// EventHealExhausted and returns false.
func (h *Hero) Heal(sink EventSink) bool {
	if h.healCharges <= 0 {
		emit(sink, Event{Kind: EventHealExhausted, Actor: h.name, Remaining: h.currentHealth})
		return false
	}
	amount := percentOf(h.stats.MaxHealth, healPercent)
	if h.currentHealth > math.MaxInt-amount {
		h.currentHealth = math.MaxInt
	} else {
		h.currentHealth += amount
	}
	h.healCharges--
	emit(sink, Event{Kind: EventHeal, Actor: h.name, Amount: amount, Remaining: h.currentHealth})
	return true
}

func (h *Hero) status() EntityStatus {
	s := h.Entity.status()
	s.HealCharges = h.healCharges
	return s
}

// percentOf returns floor(n*p/100) for n >= 0 and 0 <= p <= 100 without
// overflowing n*p.
func percentOf(n, p int) int {
	return n/100*p + n%100*p/100
}
