package main

import (
	"fmt"
	"regexp"
	"strconv"

	"MonsterHuntSimulator/combat"
)

var damageRangePattern = regexp.MustCompile(`^\s*(\d+)\s*-\s*(\d+)\s*$`)

// parseDamageRange reads a "low-high" damage string such as "6-10". Whether
// the bounds make sense is left to combat.Stats.Validate.
func parseDamageRange(input string) (combat.DamageRange, error) {
	matches := damageRangePattern.FindStringSubmatch(input)
	if len(matches) == 0 {
		return combat.DamageRange{}, fmt.Errorf("%w: damage %q is not of the form low-high",
			combat.ErrInvalidEntityConfig, input)
	}
	low, err := strconv.Atoi(matches[1])
	if err != nil {
		return combat.DamageRange{}, fmt.Errorf("%w: damage %q: %v", combat.ErrInvalidEntityConfig, input, err)
	}
	high, err := strconv.Atoi(matches[2])
	if err != nil {
		return combat.DamageRange{}, fmt.Errorf("%w: damage %q: %v", combat.ErrInvalidEntityConfig, input, err)
	}
	return combat.DamageRange{Low: low, High: high}, nil
}

// percentileValue picks from an ascending slice the value that a share p of
// the samples reach or exceed.
func percentileValue(sorted []int, p float64) int {
	if len(sorted) == 0 {
		return 0
	}
	index := int((1 - p) * float64(len(sorted)))
	if index >= len(sorted) {
		index = len(sorted) - 1
	}
	return sorted[index]
}
