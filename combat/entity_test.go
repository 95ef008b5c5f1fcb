package combat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// scriptedSource replays values in order, wrapping around, reduced mod n.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

// sixes answers 5 mod n: every die is a 6 and a damage range of width 5
// rolls its low end.
func sixes() *scriptedSource { return &scriptedSource{values: []int{5}} }

func geraltStats() Stats {
	return Stats{Attack: 30, Defense: 20, MaxHealth: 100, Damage: DamageRange{Low: 6, High: 10}}
}

func ghoulStats() Stats {
	return Stats{Attack: 10, Defense: 10, MaxHealth: 30, Damage: DamageRange{Low: 4, High: 8}}
}

func TestNewMonster_StartsAliveAtFullHealth(t *testing.T) {
	m, err := NewMonster("Ghoul", ghoulStats())
	require.NoError(t, err)

	assert.Equal(t, "Ghoul", m.Name())
	assert.Equal(t, KindMonster, m.Kind())
	assert.Equal(t, 30, m.MaxHealth())
	assert.Equal(t, m.MaxHealth(), m.CurrentHealth())
	assert.True(t, m.Alive())
}

func TestNewHero_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Stats)
	}{
		{"attack zero", func(s *Stats) { s.Attack = 0 }},
		{"attack above 30", func(s *Stats) { s.Attack = 31 }},
		{"defense zero", func(s *Stats) { s.Defense = 0 }},
		{"defense above 30", func(s *Stats) { s.Defense = 31 }},
		{"max health zero", func(s *Stats) { s.MaxHealth = 0 }},
		{"max health negative", func(s *Stats) { s.MaxHealth = -10 }},
		{"empty damage range", func(s *Stats) { s.Damage = DamageRange{Low: 5, High: 5} }},
		{"inverted damage range", func(s *Stats) { s.Damage = DamageRange{Low: 8, High: 2} }},
		{"negative damage bound", func(s *Stats) { s.Damage = DamageRange{Low: -1, High: 3} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := geraltStats()
			tt.modify(&stats)
			h, err := NewHero("Geralt", stats)
			assert.Nil(t, h)
			assert.True(t, errors.Is(err, ErrInvalidEntityConfig), "got %v", err)
		})
	}
}

func TestStatsValidate_ReportsEveryField(t *testing.T) {
	err := Stats{Attack: 0, Defense: 40, MaxHealth: 0, Damage: DamageRange{Low: 3, High: 1}}.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 4)
	for _, e := range errs {
		assert.ErrorIs(t, e, ErrInvalidEntityConfig)
	}
}

func TestStatsValidate_BoundsAccepted(t *testing.T) {
	assert.NoError(t, Stats{Attack: 1, Defense: 30, MaxHealth: 1, Damage: DamageRange{Low: 0, High: 1}}.Validate())
}

func TestDie_IsMonotonicAndEmitsOnce(t *testing.T) {
	log := &EventLog{}
	m, err := NewMonster("Drowner", ghoulStats())
	require.NoError(t, err)

	m.Die(log)
	m.Die(log)

	assert.False(t, m.Alive())
	assert.Equal(t, []EventKind{EventMonsterSlain}, log.Kinds())
}

func TestDie_HeroEmitsHeroDied(t *testing.T) {
	log := &EventLog{}
	h, err := NewHero("Geralt", geraltStats())
	require.NoError(t, err)

	h.Die(log)

	assert.False(t, h.Alive())
	require.Len(t, log.Events, 1)
	assert.Equal(t, EventHeroDied, log.Events[0].Kind)
	assert.Equal(t, "Geralt", log.Events[0].Target)
}
