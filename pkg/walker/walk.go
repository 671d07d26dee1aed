// Package walker flattens a remote address space into a classified,
// deterministically ordered list of entries, and groups that list for menu
// display. Individual unreadable subtrees are skipped, never fatal: one
// misbehaving node must not prevent browsing the rest of the server.
package walker

import (
	"context"
	"sort"
	"strings"

	"github.com/ormasoftchile/nodescope/pkg/session"
)

// Entry is one discovered node.
type Entry struct {
	// Handle is a borrowed reference owned by the issuing session.
	Handle session.NodeHandle
	Kind   session.NodeKind
	// Path holds the display names from the traversal root down to this
	// node, root excluded. Never empty.
	Path []string
	// Owner is the nearest ancestor container. Set for every entry below
	// a container; procedure invocation requires it as the target object.
	Owner session.NodeHandle
}

// JoinedPath returns the slash-joined display path.
func (e Entry) JoinedPath() string { return strings.Join(e.Path, "/") }

// Name returns the entry's own display name (last path segment).
func (e Entry) Name() string { return e.Path[len(e.Path)-1] }

// Report counts what the walk skipped, so the lenient-skip policy stays
// observable.
type Report struct {
	// Visited counts nodes whose metadata was read successfully.
	Visited int
	// Unreadable counts nodes dropped (with their descendants) because a
	// metadata read failed.
	Unreadable int
	// EnumerationFailures counts nodes whose children listing failed and
	// were treated as leaves.
	EnumerationFailures int
}

// frame is one element of the explicit traversal stack.
type frame struct {
	handle session.NodeHandle
	path   []string
	owner  session.NodeHandle
}

// Walk traverses the graph below root depth-first with an explicit work
// stack (graphs may be deep; never recurse by call stack) and returns every
// container, data point, procedure and other node as a sorted entry list.
// The walk itself never fails: per-node failures drop that subtree and are
// tallied in the report.
func Walk(ctx context.Context, s session.Session, root session.NodeHandle) ([]Entry, Report) {
	var (
		entries []Entry
		report  Report
	)

	stack := []frame{{handle: root, path: nil, owner: nil}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kind, err := s.Kind(ctx, f.handle)
		if err != nil {
			report.Unreadable++
			continue
		}
		name, err := s.DisplayName(ctx, f.handle)
		if err != nil {
			report.Unreadable++
			continue
		}
		report.Visited++

		// Paths exclude the traversal root: the root itself is not an
		// entry and contributes no segment.
		var path []string
		if f.handle != root {
			path = append(append([]string(nil), f.path...), name)
			entries = append(entries, Entry{
				Handle: f.handle,
				Kind:   kind,
				Path:   path,
				Owner:  f.owner,
			})
		}

		owner := f.owner
		if kind == session.Container {
			owner = f.handle
		}

		children, err := s.Children(ctx, f.handle)
		if err != nil {
			report.EnumerationFailures++
			continue
		}
		for _, child := range children {
			stack = append(stack, frame{handle: child, path: path, owner: owner})
		}
	}

	// The one global step: sort for a reproducible menu.
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].JoinedPath()) < strings.ToLower(entries[j].JoinedPath())
	})
	return entries, report
}
