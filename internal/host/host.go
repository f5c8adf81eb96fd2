// Package host defines the capability interfaces the pipeline needs from
// the document host — scanning for component sets, materializing variant
// instances, and provisioning the output container — plus the file-backed
// implementation over a loaded document tree.
//
// The interfaces keep the pipeline independent of where the document
// actually lives; tests substitute failing or counting fakes.
package host

import (
	"context"

	"github.com/framefold/instancer/internal/document"
	"github.com/framefold/instancer/internal/layout"
)

// ScanSource lists the sibling grouping nodes to scan.
type ScanSource interface {
	// ComponentSets returns the component sets one level below the page,
	// in document order.
	ComponentSets(page *document.Node) []*document.Node
}

// Materializer produces instances of variant members. Failures are
// per-item: the caller reports them independently and continues the batch.
type Materializer interface {
	// Materialize returns a fresh instance of the member with the given
	// opaque id, already renamed to name. The instance is not attached to
	// the tree; the caller inserts it into the container.
	Materialize(ctx context.Context, memberID, name string) (*document.Node, error)
}

// ContainerProvisioner manages the generated output container.
type ContainerProvisioner interface {
	// Provision creates the container described by plan, or replaces the
	// existing one with the same name (position kept, children dropped).
	Provision(page *document.Node, plan layout.Plan) *document.Node
	// Remove deletes the named generated container. Reports whether one
	// existed.
	Remove(page *document.Node, name string) bool
}

// Host bundles the three capabilities a populate run needs.
type Host interface {
	ScanSource
	Materializer
	ContainerProvisioner
}
