package main

import (
	"fmt"
	"io"

	"MonsterHuntSimulator/combat"
)

const (
	colorReset  = "\u001B[0m"
	colorGreen  = "\u001B[32m"
	colorRed    = "\u001B[31m"
	colorYellow = "\033[0;33m"
)

// consoleRenderer prints combat events for a human at the terminal.
type consoleRenderer struct {
	out io.Writer
}

func (r consoleRenderer) Emit(ev combat.Event) {
	switch ev.Kind {
	case combat.EventMatchStart:
		fmt.Fprintf(r.out, "%sThe hunt begins!\nPress ENTER to start each new round.%s\n\n", colorGreen, colorReset)
	case combat.EventRoundStart:
		fmt.Fprintf(r.out, "%sROUND %d%s\n", colorGreen, ev.Round, colorReset)
	case combat.EventHeroTurn:
		fmt.Fprintf(r.out, "\n%s's turn:\n", ev.Actor)
	case combat.EventMonstersTurn:
		fmt.Fprintln(r.out, "\nMonsters' turn:")
	case combat.EventHit:
		fmt.Fprintf(r.out, "%s takes %d damage. Health: %d.\n", ev.Target, ev.Damage, ev.Remaining)
	case combat.EventMiss:
		fmt.Fprintf(r.out, "The blow misses. %s takes no damage.\n", ev.Target)
	case combat.EventHeal:
		fmt.Fprintf(r.out, "%s heals %d health.\n", ev.Actor, ev.Amount)
	case combat.EventHealExhausted:
		fmt.Fprintf(r.out, "%s cannot heal any more.\n", ev.Actor)
	case combat.EventHeroDied:
		fmt.Fprintf(r.out, "%s has fallen bravely.\n\n", ev.Target)
	case combat.EventMonsterSlain:
		fmt.Fprintf(r.out, "The %s is slain.\n\n", ev.Target)
	case combat.EventSnapshot:
		r.snapshot(ev.Snapshot)
	case combat.EventHeroVictory:
		fmt.Fprintf(r.out, "%sCongratulations! %s has defeated all the monsters!%s\n", colorYellow, ev.Actor, colorReset)
	case combat.EventMonstersVictory:
		fmt.Fprintf(r.out, "%sGame over. The monsters win!%s\n", colorRed, colorReset)
	}
}

func (r consoleRenderer) snapshot(snap *combat.Snapshot) {
	if snap == nil {
		return
	}
	fmt.Fprintf(r.out, "%s\nState of the hunt%s\n\n", colorGreen, colorReset)
	fmt.Fprintf(r.out, "Hero: %s\nHealth: %d/%d\nHeals left: %d\n\n",
		snap.Hero.Name, snap.Hero.CurrentHealth, snap.Hero.MaxHealth, snap.Hero.HealCharges)
	fmt.Fprintln(r.out, "Monsters:")
	for _, m := range snap.Monsters {
		fmt.Fprintf(r.out, "%s\nHealth: %d/%d\n", m.Name, m.CurrentHealth, m.MaxHealth)
	}
}
