package navigator_test

import (
	"testing"

	"github.com/ormasoftchile/nodescope/pkg/navigator"
	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/walker"
)

func filterFixture() []walker.Entry {
	return []walker.Entry{
		{Kind: session.Container, Path: []string{"Device"}},
		{Kind: session.DataPoint, Path: []string{"Device", "Speed"}},
		{Kind: session.DataPoint, Path: []string{"Device", "Torque"}},
		{Kind: session.Procedure, Path: []string{"Device", "Reset"}},
	}
}

func TestFilterEntriesByKind(t *testing.T) {
	got, err := navigator.FilterEntries(filterFixture(), `kind == "DataPoint"`)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("matches = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Kind != session.DataPoint {
			t.Errorf("non-datapoint leaked: %v", e)
		}
	}
}

func TestFilterEntriesByNameAndDepth(t *testing.T) {
	got, err := navigator.FilterEntries(filterFixture(), `depth > 1 && name startsWith "S"`)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].Name() != "Speed" {
		t.Errorf("got %v, want only Speed", got)
	}
}

func TestFilterEntriesCompileError(t *testing.T) {
	_, err := navigator.FilterEntries(filterFixture(), `kind ==`)
	if err == nil {
		t.Fatal("expected compile error")
	}
}

func TestFilterEntriesMustBeBool(t *testing.T) {
	_, err := navigator.FilterEntries(filterFixture(), `name`)
	if err == nil {
		t.Fatal("expected error for non-boolean filter")
	}
}
