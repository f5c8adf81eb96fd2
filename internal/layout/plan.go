// Package layout decides where and how the generated container is placed:
// position clear of existing page content, auto-layout direction, wrap,
// spacing, and padding. Pure planning; the host package applies the plan.
package layout

import (
	"github.com/framefold/instancer/internal/config"
	"github.com/framefold/instancer/internal/document"
)

// Plan holds the complete set of container decisions for one populate run.
// Produced by BuildPlan and consumed by the container provisioner.
type Plan struct {
	ContainerName string
	X, Y          float64
	Mode          string // document.LayoutHorizontal or document.LayoutVertical
	Wrap          bool
	Spacing       float64
	Padding       float64
	MaxWidth      float64 // wrap width; only meaningful when Wrap is set
}

// BuildPlan computes the container placement for a page.
//
// A container that already exists (same name, frame) keeps its position so
// repeated runs are stable; otherwise the container is placed to the right
// of all existing content with the configured gutter, top-aligned with it.
// An empty page gets the origin.
func BuildPlan(cfg *config.Config, page *document.Node, existing *document.Node) Plan {
	plan := Plan{
		ContainerName: cfg.ContainerName,
		Spacing:       cfg.Spacing,
		Padding:       cfg.Padding,
	}

	switch cfg.Layout {
	case config.LayoutVertical:
		plan.Mode = document.LayoutVertical
	default:
		plan.Mode = document.LayoutHorizontal
		plan.Wrap = true
		plan.MaxWidth = cfg.MaxRowWidth
	}

	if existing != nil {
		plan.X = existing.X
		plan.Y = existing.Y
		return plan
	}

	bounds := page.ContentBounds()
	if bounds.Empty() {
		return plan
	}
	plan.X = bounds.Right() + cfg.Gutter
	plan.Y = bounds.Y
	return plan
}
