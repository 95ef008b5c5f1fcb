package combat

// EventKind identifies what happened.
type EventKind int

const (
	EventMatchStart EventKind = iota
	EventRoundStart
	EventHeroTurn
	EventMonstersTurn
	EventHit
	EventMiss
	EventHeal
	EventHealExhausted
	EventHeroDied
	EventMonsterSlain
	EventSnapshot
	EventHeroVictory
	EventMonstersVictory
)

var eventKindNames = [...]string{
	EventMatchStart:      "match_start",
	EventRoundStart:      "round_start",
	EventHeroTurn:        "hero_turn",
	EventMonstersTurn:    "monsters_turn",
	EventHit:             "hit",
	EventMiss:            "miss",
	EventHeal:            "heal",
	EventHealExhausted:   "heal_exhausted",
	EventHeroDied:        "hero_died",
	EventMonsterSlain:    "monster_slain",
	EventSnapshot:        "snapshot",
	EventHeroVictory:     "hero_victory",
	EventMonstersVictory: "monsters_victory",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

// EntityStatus is a read-only view of one participant.
type EntityStatus struct {
	Name          string
	Kind          Kind
	CurrentHealth int
	MaxHealth     int
	HealCharges   int
}

// Snapshot is the state of the match at the end of a round.
type Snapshot struct {
	Round    int
	Hero     EntityStatus
	Monsters []EntityStatus
}

// Event is what the engine reports to its presentation layer. Only the
// fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Round     int
	Actor     string
	Target    string
	Rolls     []int
	Damage    int
	Amount    int
	Remaining int
	Snapshot  *Snapshot
}

// EventSink consumes engine events.
type EventSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to an EventSink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard EventSink = SinkFunc(func(Event) {})

// EventLog records events in order.
type EventLog struct {
	Events []Event
}

func (l *EventLog) Emit(ev Event) {
	l.Events = append(l.Events, ev)
}

// Kinds returns the recorded event kinds in order.
func (l *EventLog) Kinds() []EventKind {
	kinds := make([]EventKind, len(l.Events))
	for i, ev := range l.Events {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Count returns how many events of kind were recorded.
func (l *EventLog) Count(kind EventKind) int {
	n := 0
	for _, ev := range l.Events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// MultiSink fans every event out to each sink in order.
type MultiSink []EventSink

func (m MultiSink) Emit(ev Event) {
	for _, s := range m {
		emit(s, ev)
	}
}

func emit(sink EventSink, ev Event) {
	if sink != nil {
		sink.Emit(ev)
	}
}
