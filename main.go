package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"MonsterHuntSimulator/combat"
)

type simResult struct {
	Matches  int
	HeroWins int
	Rounds68 int
	Rounds95 int
}

func main() {
	rosterName := flag.String("roster", _defaultRosterName, "roster file under "+_rosterLibraryFilepath)
	seed := flag.Int64("seed", 0, "random seed, 0 uses the clock")
	nSim := flag.Int("sim", 0, "play this many unattended matches and print statistics")
	auto := flag.Bool("auto", false, "do not wait for ENTER between rounds")
	logPath := flag.String("log", "combat.log", "combat log file, empty disables logging")
	flag.Parse()

	if err := run(*rosterName, *seed, *nSim, *auto, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(rosterName string, seed int64, nSim int, auto bool, logPath string) error {
	if err := initLogger(logPath); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLogger()

	rng := combat.NewSource(seed)
	roster, err := loadRoster(rosterName)
	if err != nil {
		return err
	}
	roster.PrintInfo()
	fmt.Printf("\n")

	if nSim > 0 {
		result, err := matchSim(roster, nSim, rng)
		if err != nil {
			return err
		}
		fmt.Printf("Hero won %d of %d matches (%.1f%%)\n",
			result.HeroWins, result.Matches, 100*float64(result.HeroWins)/float64(result.Matches))
		fmt.Printf("Rounds: 68th: %v, 95th: %v\n", result.Rounds68, result.Rounds95)
		return nil
	}

	hero, monsters, err := roster.Build(rng)
	if err != nil {
		return err
	}
	sink := combat.MultiSink{consoleRenderer{out: os.Stdout}, newZapSink(combatLogger)}
	match, err := combat.NewMatch(hero, monsters, rng, sink)
	if err != nil {
		return err
	}
	var pacer combat.Pacer
	if !auto {
		pacer = enterPacer{in: bufio.NewReader(os.Stdin), out: os.Stdout}
	}
	_, err = match.Run(pacer)
	return err
}

// enterPacer blocks until the player presses ENTER.
type enterPacer struct {
	in  *bufio.Reader
	out io.Writer
}

func (p enterPacer) Next(completedRound int) error {
	fmt.Fprintf(p.out, "\nPress ENTER to play round %d.\n\n", completedRound+1)
	if _, err := p.in.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("input closed after round %d", completedRound)
		}
		return err
	}
	return nil
}

// matchSim plays n unattended matches of roster. Only the first match is
// written to the combat log.
func matchSim(roster Roster, n int, rng combat.Source) (simResult, error) {
	if n <= 0 {
		return simResult{}, fmt.Errorf("simulation needs at least one match, got %d", n)
	}
	result := simResult{Matches: n}
	rounds := make([]int, 0, n)

	for i := 0; i < n; i++ {
		sink := combat.Discard
		if i == 0 {
			sink = newZapSink(combatLogger)
		}
		hero, monsters, err := roster.Build(rng)
		if err != nil {
			return simResult{}, err
		}
		match, err := combat.NewMatch(hero, monsters, rng, sink)
		if err != nil {
			return simResult{}, err
		}
		outcome, err := match.Run(nil)
		if err != nil {
			return simResult{}, fmt.Errorf("match %d: %w", i, err)
		}
		if outcome == combat.HeroVictory {
			result.HeroWins++
		}
		rounds = append(rounds, match.Round())
	}

	sort.Ints(rounds)
	result.Rounds68 = percentileValue(rounds, 0.68)
	result.Rounds95 = percentileValue(rounds, 0.95)
	return result, nil
}
