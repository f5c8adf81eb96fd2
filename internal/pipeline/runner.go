// Package pipeline orchestrates a populate run: load the document, scan
// component sets into variant records, render and deduplicate names, plan
// and provision the output container, materialize instances, save, and
// persist the scan summary.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/framefold/instancer/internal/config"
	"github.com/framefold/instancer/internal/display"
	"github.com/framefold/instancer/internal/document"
	"github.com/framefold/instancer/internal/host"
	"github.com/framefold/instancer/internal/layout"
	"github.com/framefold/instancer/internal/logging"
	"github.com/framefold/instancer/internal/state"
	"github.com/framefold/instancer/internal/variant"
)

// Run is the top-level entry point for one populate run. Per-member
// materialization failures are logged and counted but do not stop the
// batch; only setup failures (unreadable document, missing page) abort.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, st *state.Store) (RunStats, error) {
	start := time.Now()
	stats := RunStats{DryRun: cfg.DryRun}

	doc, err := document.Load(cfg.DocumentPath)
	if err != nil {
		return stats, err
	}
	page, err := doc.Page(cfg.PageName)
	if err != nil {
		return stats, err
	}

	pattern := effectivePattern(cfg, st)
	kw := effectiveKeywords(cfg, st)
	log.Info("Scanning %q (page %q) with pattern %q", doc.Name, page.Name, pattern)

	h := host.NewDocHost(doc)

	records, sets := collectRecords(h, page, kw)
	stats.Sets = sets
	stats.Members = len(records)
	if len(records) == 0 {
		log.Warn("No variant members found; nothing to do")
		stats.Elapsed = time.Since(start)
		return stats, nil
	}

	unique := variant.Deduplicate(records, pattern)
	stats.Unique = len(unique)
	if d := stats.Duplicates(); d > 0 {
		log.Info("Deduplicated %s", display.Count(d, "name collision"))
	}
	log.Debug(cfg.Verbose, "unique records:\n%s", spew.Sdump(unique))

	existing := page.FindChild(cfg.ContainerName, document.TypeFrame)
	plan := layout.BuildPlan(cfg, page, existing)
	container := h.Provision(page, plan)
	log.Debug(cfg.Verbose, "container plan: %+v", plan)

	materializeAll(ctx, h, unique, pattern, container, log, cfg.Verbose, &stats)

	if cfg.DryRun {
		log.Info("Dry run: document not saved")
	} else {
		out := cfg.OutputPath
		if out == "" {
			out = cfg.DocumentPath
		}
		if err := doc.Save(out); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("save document: %w", err)
		}
		log.Success("Saved %s", out)

		st.RecordScan(stats.Sets, stats.Members, stats.Created, cfg.ContainerName)
		if err := st.Save(); err != nil {
			log.Warn("Could not persist scan state: %v", err)
		}
	}

	stats.Elapsed = time.Since(start)
	logSummary(log, &stats)
	return stats, nil
}

// materializeAll renders each record's name and places a fresh instance in
// the container. One record failing never aborts the rest.
func materializeAll(
	ctx context.Context,
	m host.Materializer,
	records []variant.Record,
	pattern variant.Pattern,
	container *document.Node,
	log *logging.Logger,
	verbose bool,
	stats *RunStats,
) {
	for i, r := range records {
		if ctx.Err() != nil {
			log.Warn("Interrupted after %d/%d", i, len(records))
			return
		}

		name := pattern.Render(r)
		inst, err := m.Materialize(ctx, r.MemberID, name)
		if err != nil {
			log.Error("Materialize %q (%s): %v", name, r.MemberID, err)
			stats.Failed++
			continue
		}
		container.AppendChild(inst)
		stats.Created++
		log.Debug(verbose, "[%d/%d] %s", i+1, len(records), name)
	}
}

// Reset removes the generated container and clears the persisted scan
// summary. Operator settings like the pattern survive.
func Reset(cfg *config.Config, log *logging.Logger, st *state.Store) error {
	doc, err := document.Load(cfg.DocumentPath)
	if err != nil {
		return err
	}
	page, err := doc.Page(cfg.PageName)
	if err != nil {
		return err
	}

	h := host.NewDocHost(doc)
	if !h.Remove(page, cfg.ContainerName) {
		log.Info("No container %q on page %q", cfg.ContainerName, page.Name)
	} else {
		out := cfg.OutputPath
		if out == "" {
			out = cfg.DocumentPath
		}
		if err := doc.Save(out); err != nil {
			return fmt.Errorf("save document: %w", err)
		}
		log.Success("Removed container %q", cfg.ContainerName)
	}

	st.ClearScan()
	if err := st.Save(); err != nil {
		return fmt.Errorf("clear scan state: %w", err)
	}
	return nil
}

func effectivePattern(cfg *config.Config, st *state.Store) variant.Pattern {
	if cfg.Pattern != "" {
		return variant.Pattern(cfg.Pattern)
	}
	if st.Settings.Pattern != "" {
		return variant.Pattern(st.Settings.Pattern)
	}
	return variant.DefaultPattern
}

func effectiveKeywords(cfg *config.Config, st *state.Store) variant.Keywords {
	if len(cfg.Keywords) > 0 {
		return variant.Keywords(cfg.Keywords)
	}
	if len(st.Settings.Keywords) > 0 {
		return variant.Keywords(st.Settings.Keywords)
	}
	return variant.DefaultKeywords
}

func logSummary(log *logging.Logger, stats *RunStats) {
	fmt.Println()
	fmt.Print(display.Summary("Run summary", [][2]string{
		{"Component sets", fmt.Sprintf("%d", stats.Sets)},
		{"Members", fmt.Sprintf("%d", stats.Members)},
		{"Unique names", fmt.Sprintf("%d", stats.Unique)},
		{"Duplicates dropped", fmt.Sprintf("%d", stats.Duplicates())},
		{"Instances created", fmt.Sprintf("%d", stats.Created)},
		{"Failed", fmt.Sprintf("%d", stats.Failed)},
		{"Elapsed", display.FormatDuration(stats.Elapsed)},
	}))

	switch {
	case stats.Failed > 0:
		log.Warn("Completed with %s", display.Count(stats.Failed, "failure"))
	case stats.DryRun:
		log.Success("Dry run complete: %s would be created", display.Count(stats.Unique, "instance"))
	default:
		log.Success("Created %s", display.Count(stats.Created, "instance"))
	}
}
