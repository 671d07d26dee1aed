// Package navigator is the interactive controller: it owns the stack of
// menu levels over the walked address space, interprets operator commands,
// and dispatches to the per-kind interaction flows. One logical thread of
// control; exactly one remote or console call outstanding at a time.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ormasoftchile/nodescope/pkg/console"
	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/walker"
)

// errQuit unwinds the whole navigation stack. It is the deliberate
// early-exit, not a failure; Run translates it to a nil return.
var errQuit = errors.New("quit")

// Navigator drives the menu system over one connected session.
type Navigator struct {
	s session.Session
	c console.Console
}

// New builds a navigator over a connected session.
func New(s session.Session, c console.Console) *Navigator {
	return &Navigator{s: s, c: c}
}

// item is one selectable row of a menu level.
type item struct {
	label string
	// descend builds the next level. nil for leaf entries.
	descend func() *level
	// entry is set for leaf rows and dispatched on its kind.
	entry *walker.Entry
}

// level is one frame of the navigation stack.
type level struct {
	title string
	items []item
	// base carries the unfiltered entries of an entry-list level; nil on
	// group levels, where filtering is not offered.
	base []walker.Entry
}

func (l *level) labels() []string {
	out := make([]string, len(l.items))
	for i, it := range l.items {
		out[i] = it.label
	}
	return out
}

// Run executes the dispatch loop until the operator quits. The root menu
// re-walks the address space every time it is entered so the operator
// always sees current server state.
func (n *Navigator) Run(ctx context.Context) error {
	var stack []*level
	for {
		if len(stack) == 0 {
			stack = append(stack, n.rootLevel(ctx))
		}
		cur := stack[len(stack)-1]
		n.c.List(cur.title, cur.labels())

		line, err := n.c.ReadLine(n.prompt(stack))
		if err != nil {
			// EOF/interrupt: same release path as quit.
			return nil
		}

		cmd := Resolve(line, len(cur.items))
		switch cmd.Kind {
		case Quit:
			return nil
		case Root:
			stack = nil
		case Up:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
				if len(stack) == 1 {
					// Popped back to the root: rebuild on re-entry.
					stack = nil
				}
			}
		case Help:
			n.c.Info(console.RenderMarkdown(helpText))
		case Filter:
			n.applyFilter(cur, cmd.Arg)
		case Select:
			it := cur.items[cmd.Index]
			if it.descend != nil {
				stack = append(stack, it.descend())
				continue
			}
			if err := n.interact(ctx, *it.entry); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		default:
			n.c.Error(cmd.Reason)
		}
	}
}

// rootLevel walks the space and lists the kind groups.
func (n *Navigator) rootLevel(ctx context.Context) *level {
	entries, report := walker.Walk(ctx, n.s, n.s.Root())
	if report.Unreadable > 0 || report.EnumerationFailures > 0 {
		n.c.Info(fmt.Sprintf("skipped %d unreadable node(s), %d failed enumeration(s)",
			report.Unreadable, report.EnumerationFailures))
	}

	byKind := walker.GroupByKind(entries)
	lvl := &level{title: "Address Space"}
	for _, key := range byKind.Keys() {
		key := key
		group := byKind.Entries(key)
		lvl.items = append(lvl.items, item{
			label:   fmt.Sprintf("%s (%d)", key, len(group)),
			descend: func() *level { return n.groupLevel(key, group) },
		})
	}
	return lvl
}

// groupLevel lists the first-segment sub-groups inside one kind group.
func (n *Navigator) groupLevel(kind string, entries []walker.Entry) *level {
	bySegment := walker.GroupByFirstSegment(entries)
	lvl := &level{title: kind}
	for _, key := range bySegment.Keys() {
		key := key
		group := bySegment.Entries(key)
		lvl.items = append(lvl.items, item{
			label:   fmt.Sprintf("%s (%d)", key, len(group)),
			descend: func() *level { return n.entriesLevel(kind+" / "+key, group) },
		})
	}
	return lvl
}

// entriesLevel lists concrete entries; selecting one starts its
// interaction flow.
func (n *Navigator) entriesLevel(title string, entries []walker.Entry) *level {
	lvl := &level{title: title, base: entries}
	lvl.items = entryItems(entries)
	return lvl
}

func entryItems(entries []walker.Entry) []item {
	width := 0
	for _, e := range entries {
		if w := len(e.Kind.String()); w > width {
			width = w
		}
	}
	items := make([]item, len(entries))
	for i := range entries {
		e := &entries[i]
		items[i] = item{
			label: fmt.Sprintf("%s /%s", console.Pad(e.Kind.String(), width), e.JoinedPath()),
			entry: e,
		}
	}
	return items
}

// applyFilter narrows an entry-list level in place; an empty expression
// restores the unfiltered view. Group levels reject filtering.
func (n *Navigator) applyFilter(lvl *level, expression string) {
	if lvl.base == nil {
		n.c.Error("filtering applies to entry lists only")
		return
	}
	if expression == "" {
		lvl.items = entryItems(lvl.base)
		n.c.Info("filter cleared")
		return
	}
	filtered, err := FilterEntries(lvl.base, expression)
	if err != nil {
		n.c.Error(err.Error())
		return
	}
	lvl.items = entryItems(filtered)
	n.c.Info(fmt.Sprintf("%d of %d entries match", len(filtered), len(lvl.base)))
}

// prompt renders the breadcrumb of the current stack.
func (n *Navigator) prompt(stack []*level) string {
	parts := make([]string, len(stack))
	for i, l := range stack {
		parts[i] = l.title
	}
	return strings.Join(parts, " > ") + "> "
}
