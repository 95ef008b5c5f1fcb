package main

import (
	"go.uber.org/zap"

	"MonsterHuntSimulator/combat"
)

var combatLogger *zap.Logger

// initLogger points combatLogger at path. An empty path disables logging.
func initLogger(path string) error {
	if path == "" {
		combatLogger = zap.NewNop()
		return nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.Sampling = nil
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	combatLogger = logger
	return nil
}

func closeLogger() {
	if combatLogger != nil {
		_ = combatLogger.Sync()
	}
}

// zapSink writes every combat event as one structured log line.
type zapSink struct {
	logger *zap.Logger
}

func newZapSink(logger *zap.Logger) zapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return zapSink{logger: logger}
}

func (s zapSink) Emit(ev combat.Event) {
	fields := []zap.Field{zap.Stringer("kind", ev.Kind), zap.Int("round", ev.Round)}
	if ev.Actor != "" {
		fields = append(fields, zap.String("actor", ev.Actor))
	}
	if ev.Target != "" {
		fields = append(fields, zap.String("target", ev.Target))
	}
	switch ev.Kind {
	case combat.EventHit:
		fields = append(fields, zap.Ints("rolls", ev.Rolls), zap.Int("damage", ev.Damage), zap.Int("remaining", ev.Remaining))
	case combat.EventMiss:
		fields = append(fields, zap.Ints("rolls", ev.Rolls))
	case combat.EventHeal:
		fields = append(fields, zap.Int("amount", ev.Amount), zap.Int("remaining", ev.Remaining))
	case combat.EventSnapshot:
		if snap := ev.Snapshot; snap != nil {
			fields = append(fields,
				zap.Int("heroHealth", snap.Hero.CurrentHealth),
				zap.Int("healCharges", snap.Hero.HealCharges),
				zap.Int("monstersAlive", len(snap.Monsters)))
		}
	}
	s.logger.Info("combat event", fields...)
}
