package combat

// DefaultMonsterNames is the pool random monster names are drawn from.
var DefaultMonsterNames = []string{
	"Ghoul", "Bruxa", "Wyvern", "Basilisk", "Drowner", "Kikimore", "Alghoul", "Werewolf",
}

// Monster is a hostile Entity.
type Monster struct {
	*Entity
}

// NewMonster validates stats and returns a full-health monster.
func NewMonster(name string, stats Stats) (*Monster, error) {
	e, err := newEntity(KindMonster, name, stats)
	if err != nil {
		return nil, err
	}
	return &Monster{Entity: e}, nil
}

// NewRandomMonster names the monster with a uniform pick from names, falling
// back to DefaultMonsterNames when names is empty.
func NewRandomMonster(rng Source, names []string, stats Stats) (*Monster, error) {
	return NewMonster(RandomName(rng, names), stats)
}

// RandomName picks a name uniformly from names, or from DefaultMonsterNames
// when names is empty.
func RandomName(rng Source, names []string) string {
	if len(names) == 0 {
		names = DefaultMonsterNames
	}
	return names[rng.Intn(len(names))]
}
