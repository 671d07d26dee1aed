package walker_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/simserver"
	"github.com/ormasoftchile/nodescope/pkg/variant"
	"github.com/ormasoftchile/nodescope/pkg/walker"
)

// connect spins up a simulated space and returns a live session for it.
func connect(t *testing.T, srv *simserver.Server) session.Session {
	t.Helper()
	ctx := context.Background()
	if err := srv.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { srv.Disconnect(ctx) })
	return srv
}

func paths(entries []walker.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.JoinedPath()
	}
	return out
}

// TestWalkDemoSpace walks the built-in demo space and checks completeness,
// path shape and ordering.
func TestWalkDemoSpace(t *testing.T) {
	srv := simserver.Demo()
	s := connect(t, srv)

	entries, report := walker.Walk(context.Background(), s, s.Root())

	want := []string{
		"DA_UA",
		"DA_UA/Flow",
		"DA_UA/folder_test",
		"DA_UA/folder_test/Flow2",
		"DA_UA/IsEven",
		"DA_UA/Pressure",
		"DA_UA/SetTargetTemperature",
		"DA_UA/TargetTemperature",
		"DA_UA/Temperature",
	}
	if got := paths(entries); !reflect.DeepEqual(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
	for _, e := range entries {
		if len(e.Path) == 0 {
			t.Error("entry with empty path")
		}
	}
	if report.Unreadable != 0 || report.EnumerationFailures != 0 {
		t.Errorf("unexpected skips: %+v", report)
	}
}

// TestWalkSortsCaseInsensitive: ordering ignores case so the menu is stable
// regardless of server naming conventions.
func TestWalkSortsCaseInsensitive(t *testing.T) {
	srv := simserver.New("sortspace")
	root := srv.RootNode()
	root.AddDataPoint("beta", variant.NewValue(variant.Double, 1.0), true)
	root.AddDataPoint("Alpha", variant.NewValue(variant.Double, 1.0), true)
	root.AddDataPoint("ALTO", variant.NewValue(variant.Double, 1.0), true)
	s := connect(t, srv)

	entries, _ := walker.Walk(context.Background(), s, s.Root())

	got := paths(entries)
	for i := 1; i < len(got); i++ {
		if strings.ToLower(got[i-1]) > strings.ToLower(got[i]) {
			t.Errorf("order violated at %d: %v", i, got)
		}
	}
}

// TestWalkDeterministic re-runs the walk against an unchanged graph and
// expects identical output.
func TestWalkDeterministic(t *testing.T) {
	srv := simserver.Demo()
	s := connect(t, srv)
	ctx := context.Background()

	first, _ := walker.Walk(ctx, s, s.Root())
	second, _ := walker.Walk(ctx, s, s.Root())
	if !reflect.DeepEqual(paths(first), paths(second)) {
		t.Errorf("walk not deterministic:\n  first  %v\n  second %v", paths(first), paths(second))
	}
}

// TestWalkSkipsUnreadableSubtree: a node whose metadata cannot be read
// disappears along with its descendants, siblings survive, and the report
// counts the skip.
func TestWalkSkipsUnreadableSubtree(t *testing.T) {
	srv := simserver.Demo()
	srv.Lookup("DA_UA/folder_test").FailReads()
	s := connect(t, srv)

	entries, report := walker.Walk(context.Background(), s, s.Root())

	for _, p := range paths(entries) {
		if strings.HasPrefix(p, "DA_UA/folder_test") {
			t.Errorf("unreadable subtree leaked into result: %s", p)
		}
	}
	// Siblings and ancestors stay browsable.
	got := paths(entries)
	for _, want := range []string{"DA_UA", "DA_UA/Temperature", "DA_UA/IsEven"} {
		found := false
		for _, p := range got {
			if p == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing sibling/ancestor %s", want)
		}
	}
	if report.Unreadable != 1 {
		t.Errorf("report.Unreadable = %d, want 1", report.Unreadable)
	}
}

// TestWalkEnumerationFailureIsLeaf: children listing failure turns the node
// into a leaf instead of aborting the walk.
func TestWalkEnumerationFailureIsLeaf(t *testing.T) {
	srv := simserver.Demo()
	srv.Lookup("DA_UA/folder_test").FailChildren()
	s := connect(t, srv)

	entries, report := walker.Walk(context.Background(), s, s.Root())

	got := paths(entries)
	hasFolder, hasChild := false, false
	for _, p := range got {
		if p == "DA_UA/folder_test" {
			hasFolder = true
		}
		if p == "DA_UA/folder_test/Flow2" {
			hasChild = true
		}
	}
	if !hasFolder {
		t.Error("node with failing enumeration should still be listed")
	}
	if hasChild {
		t.Error("children behind a failed enumeration should be dropped")
	}
	if report.EnumerationFailures != 1 {
		t.Errorf("report.EnumerationFailures = %d, want 1", report.EnumerationFailures)
	}
}

// TestWalkProcedureOwner: every procedure entry carries its owning
// container.
func TestWalkProcedureOwner(t *testing.T) {
	srv := simserver.Demo()
	s := connect(t, srv)

	entries, _ := walker.Walk(context.Background(), s, s.Root())
	for _, e := range entries {
		if e.Kind == session.Procedure && e.Owner == nil {
			t.Errorf("procedure %s has no owning container", e.JoinedPath())
		}
	}
}

// TestWalkDuplicatePathsPreserved: aliased names are not deduplicated,
// both entries show up.
func TestWalkDuplicatePathsPreserved(t *testing.T) {
	srv := simserver.New("dupes")
	root := srv.RootNode()
	root.AddDataPoint("Twin", variant.NewValue(variant.Double, 1.0), true)
	root.AddDataPoint("Twin", variant.NewValue(variant.Double, 2.0), true)
	s := connect(t, srv)

	entries, _ := walker.Walk(context.Background(), s, s.Root())
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want both duplicate entries", len(entries))
	}
	if entries[0].JoinedPath() != "Twin" || entries[1].JoinedPath() != "Twin" {
		t.Errorf("paths = %v, want two Twin entries", paths(entries))
	}
}

// TestWalkOtherNodesEnumerated: Other nodes appear in the result for
// completeness.
func TestWalkOtherNodesEnumerated(t *testing.T) {
	srv := simserver.New("misc")
	srv.RootNode().AddOther("ServerDiagnostics")
	s := connect(t, srv)

	entries, _ := walker.Walk(context.Background(), s, s.Root())
	if len(entries) != 1 || entries[0].Kind != session.Other {
		t.Fatalf("entries = %v, want one Other entry", paths(entries))
	}
}
