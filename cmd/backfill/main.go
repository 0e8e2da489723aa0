// Command backfill reescribe en forma canónica los registros guardados con
// nombres heredados y permite auditarlos sin modificar nada.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"farm-records/internal/adapters/storage"
	"farm-records/internal/config"
	"farm-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// opener abre el store; los tests lo reemplazan por uno in-memory.
type opener func(ctx context.Context) (storage.Store, func(), error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config", map[string]any{"err": err})
		os.Exit(1)
	}
	log := logger.New(cfg.LoggerOptions()).With(map[string]any{"component": "backfill"})
	defer func() { _ = log.Sync() }()

	open := func(ctx context.Context) (storage.Store, func(), error) {
		return storage.Open(ctx, cfg.Store)
	}
	if err := newRootCmd(open, log).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(open opener, log logger.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:          "backfill",
		Short:        "Backfill canonical fields on stored clients, feeds and livestock",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(open, log), newVerifyCmd(open))
	return root
}
