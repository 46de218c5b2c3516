package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/steward/internal/config"
	"github.com/JaimeStill/steward/internal/engine"
	"github.com/JaimeStill/steward/internal/infrastructure"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "steward",
	Short: "Adaptive file placement engine",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the steward version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("steward %s\n", version)
	},
}

// engineContext bundles the engine with the infrastructure backing it.
type engineContext struct {
	cfg    *config.Config
	infra  *infrastructure.Infrastructure
	engine *engine.Engine
}

// newEngineContext loads config and assembles the engine. operation
// identifies the CLI command being run (e.g. "PlanBatch", "RecordMount").
// The caller must defer Close, which drains the lifecycle shutdown hooks.
func newEngineContext(operation string) (*engineContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing infrastructure: %w", err)
	}

	if err := infra.Start(); err != nil {
		return nil, fmt.Errorf("starting infrastructure: %w", err)
	}
	infra.Lifecycle.WaitForStartup()

	infra.Logger.Debug("engine ready", "operation", operation, "version", cfg.Version)

	return &engineContext{
		cfg:    cfg,
		infra:  infra,
		engine: engine.New(engine.NewRuntime(cfg, infra)),
	}, nil
}

func (ec *engineContext) Close() {
	if err := ec.infra.Lifecycle.Shutdown(ec.cfg.ShutdownTimeoutDuration()); err != nil {
		ec.infra.Logger.Error("shutdown incomplete", "error", err)
	}
}

// userFlag parses the required --user flag.
func userFlag(cmd *cobra.Command) (uuid.UUID, error) {
	user, _ := cmd.Flags().GetString("user")
	userID, err := uuid.Parse(user)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --user: %w", err)
	}
	return userID, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
