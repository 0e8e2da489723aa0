package main

import (
	"context"
	"fmt"

	"farm-records/internal/adapters/storage"
	"farm-records/internal/domain/clients"
	"farm-records/internal/domain/errs"
	"farm-records/internal/domain/feeds"
	"farm-records/internal/domain/livestock"
	"farm-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// Totals resume una corrida por entidad.
type Totals struct {
	Scanned   int
	Changed   int
	Conflicts int
}

type runResult struct {
	Clients   Totals
	Feeds     Totals
	Livestock Totals
}

func newRunCmd(open opener, log logger.Logger) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite records whose canonical shape differs from what is stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, closeFn, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			res, err := backfill(cmd.Context(), store, log, dryRun)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			mode := "applied"
			if dryRun {
				mode = "dry-run"
			}
			fmt.Fprintf(out, "backfill %s\n", mode)
			fmt.Fprintf(out, "clients:   scanned=%d changed=%d conflicts=%d\n", res.Clients.Scanned, res.Clients.Changed, res.Clients.Conflicts)
			fmt.Fprintf(out, "feeds:     scanned=%d changed=%d conflicts=%d\n", res.Feeds.Scanned, res.Feeds.Changed, res.Feeds.Conflicts)
			fmt.Fprintf(out, "livestock: scanned=%d changed=%d conflicts=%d\n", res.Livestock.Scanned, res.Livestock.Changed, res.Livestock.Conflicts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing")
	return cmd
}

func backfill(ctx context.Context, store storage.Store, log logger.Logger, dryRun bool) (runResult, error) {
	var res runResult

	cs, err := store.Clients().List(ctx)
	if err != nil {
		return res, fmt.Errorf("list clients: %w", err)
	}
	for _, c := range cs {
		res.Clients.Scanned++
		next := clients.Reconcile(c)
		if next == c {
			continue
		}
		if err := write(ctx, log, dryRun, &res.Clients, "client", c.ID, func() error {
			return store.Clients().Update(ctx, next)
		}); err != nil {
			return res, err
		}
	}

	fs, err := store.Feeds().List(ctx)
	if err != nil {
		return res, fmt.Errorf("list feeds: %w", err)
	}
	for _, f := range fs {
		res.Feeds.Scanned++
		next := feeds.PrepareWrite(f)
		if next == f {
			continue
		}
		if err := write(ctx, log, dryRun, &res.Feeds, "feed", f.ID, func() error {
			return store.Feeds().Update(ctx, next)
		}); err != nil {
			return res, err
		}
	}

	ls, err := store.Livestock().List(ctx, livestock.Filter{})
	if err != nil {
		return res, fmt.Errorf("list livestock: %w", err)
	}
	for _, l := range ls {
		res.Livestock.Scanned++
		next := livestock.Reconcile(l)
		if next == l {
			continue
		}
		if err := write(ctx, log, dryRun, &res.Livestock, "livestock", l.ID, func() error {
			return store.Livestock().Update(ctx, next)
		}); err != nil {
			return res, err
		}
	}
	return res, nil
}

// write aplica un cambio. Un conflicto de unicidad se cuenta y se sigue con el resto.
func write(ctx context.Context, log logger.Logger, dryRun bool, t *Totals, entity, id string, apply func() error) error {
	fields := map[string]any{"entity": entity, "id": id, "dry_run": dryRun}
	if dryRun {
		t.Changed++
		log.Info("would update", fields)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := apply(); err != nil {
		if errs.KindOf(err) == errs.KindConflict {
			t.Conflicts++
			fields["err"] = err
			log.Warn("skipped conflicting record", fields)
			return nil
		}
		return fmt.Errorf("update %s %s: %w", entity, id, err)
	}
	t.Changed++
	log.Info("updated", fields)
	return nil
}
