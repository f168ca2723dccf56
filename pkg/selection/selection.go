// Package selection derives which category is shown in the command pane and
// decides when the caller has to navigate somewhere else.
package selection

import (
	"fmt"

	"tableflip.dev/keepcmd/pkg/category"
)

// Kind classifies a Navigation.
type Kind int

const (
	// Stay means the current selection is valid.
	Stay Kind = iota
	// ToCategory asks the caller to select Navigation.ID.
	ToCategory
	// ToRoot asks the caller to clear the selection.
	ToRoot
)

// Navigation is a "go to category X" or "go to root" instruction.
type Navigation struct {
	Kind Kind
	ID   string
}

// Requested reports whether the caller has to navigate.
func (n Navigation) Requested() bool { return n.Kind != Stay }

// Target is the category id to select after navigating; empty for the root.
func (n Navigation) Target() string {
	if n.Kind == ToCategory {
		return n.ID
	}
	return ""
}

func (n Navigation) String() string {
	switch n.Kind {
	case Stay:
		return "stay"
	case ToCategory:
		return fmt.Sprintf("go to %q", n.ID)
	case ToRoot:
		return "go to root"
	default:
		return fmt.Sprintf("Navigation(%d)", int(n.Kind))
	}
}

// GoTo returns a navigation to id.
func GoTo(id string) Navigation { return Navigation{Kind: ToCategory, ID: id} }

// Root returns a navigation that clears the selection.
func Root() Navigation { return Navigation{Kind: ToRoot} }

// Select returns the category whose id is requested, or nil.
func Select(c category.Collection, requested string) *category.Category {
	if requested == "" {
		return nil
	}
	return c.Find(requested)
}

// Reconcile decides where to navigate given the collection and the requested
// category id:
//
//   - requested id exists: Stay.
//   - nothing usable requested and categories exist: go to the first one.
//   - nothing usable requested and no categories: go to the root.
func Reconcile(c category.Collection, requested string) Navigation {
	if Select(c, requested) != nil {
		return Navigation{Kind: Stay}
	}
	if len(c) > 0 {
		return GoTo(c[0].ID)
	}
	return Root()
}

// Reconciler applies Reconcile but only emits a navigation when it would
// change something, so evaluating it again with the same inputs is a no-op.
type Reconciler struct {
	last    Navigation
	lastReq string
	emitted bool
}

// Evaluate returns the navigation to perform, or a Stay navigation.
func (r *Reconciler) Evaluate(c category.Collection, requested string) Navigation {
	nav := Reconcile(c, requested)
	if !nav.Requested() || nav.Target() == requested {
		r.emitted = false
		return Navigation{Kind: Stay}
	}
	if r.emitted && r.last == nav && r.lastReq == requested {
		return Navigation{Kind: Stay}
	}
	r.last, r.lastReq, r.emitted = nav, requested, true
	return nav
}

// Reset forgets the last emitted navigation.
func (r *Reconciler) Reset() {
	*r = Reconciler{}
}
