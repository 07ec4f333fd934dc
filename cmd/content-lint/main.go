// Command content-lint loads every configured content directory,
// validates all definitions, resolves template references, and checks
// effect hook scripts, failing with a non-zero exit on the first
// problem. Run it in CI to keep authored content consistent.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/emberworks/rpgkit/ability"
	"github.com/emberworks/rpgkit/content"
	"github.com/emberworks/rpgkit/effect"
	"github.com/emberworks/rpgkit/internal/config"
	"github.com/emberworks/rpgkit/internal/observability"
	"github.com/emberworks/rpgkit/item"
	"github.com/emberworks/rpgkit/scripting"
)

func main() {
	configPath := flag.String("config", "rpgkit.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("content lint failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("content lint passed")
}

// run validates every configured content directory. Missing directories
// are skipped with a warning so projects can adopt content kinds
// incrementally.
func run(cfg config.Config, logger *zap.Logger) error {
	runner := scripting.NewRunner(logger)

	if err := lintEffects(cfg.Content.EffectsDir, runner, logger); err != nil {
		return err
	}

	items, err := lintItems(cfg.Content.ItemsDir, logger)
	if err != nil {
		return err
	}

	abilities, err := lintAbilities(cfg.Content.AbilitiesDir, runner, logger)
	if err != nil {
		return err
	}

	if err := lintEnemies(cfg.Content.EnemiesDir, abilities, items, logger); err != nil {
		return err
	}
	return lintShops(cfg.Content.ShopsDir, items, logger)
}

// skipMissing logs and reports whether dir does not exist.
func skipMissing(dir, kind string, logger *zap.Logger) bool {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		logger.Warn("content directory missing, skipping",
			zap.String("kind", kind),
			zap.String("dir", dir),
		)
		return true
	}
	return false
}

func lintEffects(dir string, runner *scripting.Runner, logger *zap.Logger) error {
	if skipMissing(dir, "effects", logger) {
		return nil
	}
	defs, err := effect.LoadDefs(dir)
	if err != nil {
		return err
	}
	for _, def := range defs {
		for hook, script := range map[string]string{
			"lua_on_apply":  def.LuaOnApply,
			"lua_on_tick":   def.LuaOnTick,
			"lua_on_expire": def.LuaOnExpire,
		} {
			if script == "" {
				continue
			}
			if err := runner.CheckScript(script); err != nil {
				return fmt.Errorf("effect %q %s: %w", def.ID, hook, err)
			}
		}
	}
	logger.Info("effects ok", zap.Int("count", len(defs)))
	return nil
}

func lintItems(dir string, logger *zap.Logger) (*item.Registry, error) {
	if skipMissing(dir, "items", logger) {
		return item.NewRegistry(), nil
	}
	reg, err := item.LoadItems(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("items ok", zap.Int("count", len(reg.All())))
	return reg, nil
}

func lintAbilities(dir string, runner *scripting.Runner, logger *zap.Logger) (*ability.Registry, error) {
	if skipMissing(dir, "abilities", logger) {
		return ability.NewRegistry(), nil
	}
	reg, err := ability.LoadDefs(dir)
	if err != nil {
		return nil, err
	}
	for _, id := range reg.IDs() {
		ab, _ := reg.Build(id)
		if ab.Effect == nil {
			continue
		}
		for hook, script := range map[string]string{
			"lua_on_apply":  ab.Effect.LuaOnApply,
			"lua_on_tick":   ab.Effect.LuaOnTick,
			"lua_on_expire": ab.Effect.LuaOnExpire,
		} {
			if script == "" {
				continue
			}
			if err := runner.CheckScript(script); err != nil {
				return nil, fmt.Errorf("ability %q effect %s: %w", id, hook, err)
			}
		}
	}
	logger.Info("abilities ok", zap.Int("count", len(reg.IDs())))
	return reg, nil
}

// lookupAbility resolves IDs against the YAML-loaded registry first,
// falling back to the built-in ability set.
func lookupAbility(reg *ability.Registry) content.AbilityLookup {
	return func(id string) (*ability.Ability, bool) {
		if ab, ok := reg.Build(id); ok {
			return ab, true
		}
		return content.BuildAbility(id)
	}
}

func lintEnemies(dir string, abilities *ability.Registry, items *item.Registry, logger *zap.Logger) error {
	if skipMissing(dir, "enemies", logger) {
		return nil
	}
	templates, err := content.LoadEnemyTemplates(dir)
	if err != nil {
		return err
	}
	lookup := lookupAbility(abilities)
	for _, tmpl := range templates {
		if _, err := tmpl.Build(lookup, items); err != nil {
			return err
		}
	}
	logger.Info("enemies ok", zap.Int("count", len(templates)))
	return nil
}

func lintShops(dir string, items *item.Registry, logger *zap.Logger) error {
	if skipMissing(dir, "shops", logger) {
		return nil
	}
	templates, err := content.LoadShopTemplates(dir)
	if err != nil {
		return err
	}
	for _, tmpl := range templates {
		if _, err := tmpl.Build(items); err != nil {
			return err
		}
	}
	logger.Info("shops ok", zap.Int("count", len(templates)))
	return nil
}
