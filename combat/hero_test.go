package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeal_FourChargesThenExhausted(t *testing.T) {
	h, err := NewHero("Geralt", geraltStats())
	require.NoError(t, err)
	h.currentHealth = 10
	log := &EventLog{}

	for i := 0; i < MaxHealCharges; i++ {
		assert.True(t, h.Heal(log))
	}
	assert.Equal(t, 0, h.HealCharges())
	assert.Equal(t, 130, h.CurrentHealth())

	assert.False(t, h.Heal(log))
	assert.Equal(t, 0, h.HealCharges())
	assert.Equal(t, 130, h.CurrentHealth())

	assert.Equal(t, 4, log.Count(EventHeal))
	assert.Equal(t, 1, log.Count(EventHealExhausted))
	assert.Equal(t, 30, log.Events[0].Amount)
}

func TestHeal_OverflowsMaxHealth(t *testing.T) {
	h, err := NewHero("Geralt", geraltStats())
	require.NoError(t, err)

	h.Heal(Discard)

	assert.Equal(t, 130, h.CurrentHealth())
	assert.Equal(t, 100, h.MaxHealth())
}

func TestHeal_RoundsDown(t *testing.T) {
	stats := geraltStats()
	stats.MaxHealth = 17
	h, err := NewHero("Ciri", stats)
	require.NoError(t, err)

	h.Heal(Discard)

	assert.Equal(t, 17+5, h.CurrentHealth())
}

func TestLowHealth(t *testing.T) {
	h, err := NewHero("Geralt", geraltStats())
	require.NoError(t, err)

	assert.False(t, h.LowHealth())
	h.currentHealth = 41
	assert.False(t, h.LowHealth())
	h.currentHealth = 40
	assert.True(t, h.LowHealth())
	h.currentHealth = -3
	assert.True(t, h.LowHealth())
}

func TestHero_HugeMaxHealth(t *testing.T) {
	stats := geraltStats()
	stats.MaxHealth = 10 * (math.MaxInt / 100)
	h, err := NewHero("Vesemir", stats)
	require.NoError(t, err)

	assert.False(t, h.LowHealth())
	h.currentHealth = 4 * (math.MaxInt / 100)
	assert.True(t, h.LowHealth())
	h.currentHealth++
	assert.False(t, h.LowHealth())

	h.currentHealth = 0
	log := &EventLog{}
	require.True(t, h.Heal(log))
	assert.Equal(t, 3*(math.MaxInt/100), log.Events[0].Amount)
	assert.Equal(t, 3*(math.MaxInt/100), h.CurrentHealth())
}

func TestHeal_SaturatesAtMaxInt(t *testing.T) {
	stats := geraltStats()
	stats.MaxHealth = math.MaxInt
	h, err := NewHero("Vesemir", stats)
	require.NoError(t, err)

	for h.HealCharges() > 0 {
		h.Heal(Discard)
	}

	assert.Equal(t, math.MaxInt, h.CurrentHealth())
	assert.False(t, h.LowHealth())
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 30, percentOf(100, 30))
	assert.Equal(t, 5, percentOf(17, 30))
	assert.Equal(t, 40, percentOf(100, 40))
	assert.Equal(t, 6, percentOf(17, 40))
	assert.Equal(t, 0, percentOf(0, 30))
}
