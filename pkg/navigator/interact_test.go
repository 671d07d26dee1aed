package navigator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ormasoftchile/nodescope/pkg/navigator"
	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/simserver"
	"github.com/ormasoftchile/nodescope/pkg/variant"
	"github.com/ormasoftchile/nodescope/pkg/walker"
)

// moveSpace has a two-argument procedure for the count-mismatch cases.
func moveSpace(t *testing.T) (*simserver.Server, walker.Entry) {
	t.Helper()
	srv := simserver.New("move")
	dev := srv.RootNode().AddContainer("Device")
	dev.AddProcedure("Move", []session.ArgumentDescriptor{
		{Name: "axis", Type: variant.Int32},
		{Name: "distance", Type: variant.Double},
	}, nil)

	ctx := context.Background()
	if err := srv.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { srv.Disconnect(ctx) })

	entries, _ := walker.Walk(ctx, srv, srv.Root())
	for _, e := range entries {
		if e.Kind == session.Procedure {
			return srv, e
		}
	}
	t.Fatal("procedure entry not found")
	return nil, walker.Entry{}
}

// TestInvokeArgumentCountMismatch: one text for two descriptors fails
// before any remote invoke reaches the server.
func TestInvokeArgumentCountMismatch(t *testing.T) {
	srv, proc := moveSpace(t)

	_, err := navigator.InvokeProcedure(context.Background(), srv, proc, []string{"1"})

	var countErr *navigator.ArgumentCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("err = %v, want *ArgumentCountError", err)
	}
	if countErr.Got != 1 || countErr.Want != 2 {
		t.Errorf("mismatch = %+v, want got 1 want 2", countErr)
	}
	if len(srv.Invocations()) != 0 {
		t.Errorf("remote invoke was issued despite mismatch: %v", srv.Invocations())
	}
}

// TestInvokeConvertsEachArgument: texts convert against the declared
// types before the call goes out.
func TestInvokeConvertsEachArgument(t *testing.T) {
	srv, proc := moveSpace(t)
	ctx := context.Background()

	if _, err := navigator.InvokeProcedure(ctx, srv, proc, []string{"2", "3.5"}); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	calls := srv.Invocations()
	if len(calls) != 1 {
		t.Fatalf("invocations = %d, want 1", len(calls))
	}
	args := calls[0].Args
	if args[0].Data != int32(2) || args[1].Data != 3.5 {
		t.Errorf("args = %v, want [2 3.5] typed", args)
	}
	if calls[0].Container != "Objects/Device" {
		t.Errorf("container = %q, want the owning object", calls[0].Container)
	}
}

// TestInvokeConversionErrorNoCall: a bad argument aborts before the remote
// call.
func TestInvokeConversionErrorNoCall(t *testing.T) {
	srv, proc := moveSpace(t)

	_, err := navigator.InvokeProcedure(context.Background(), srv, proc, []string{"north", "3.5"})

	var convErr *variant.ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("err = %v, want conversion error", err)
	}
	if len(srv.Invocations()) != 0 {
		t.Error("remote invoke issued despite conversion failure")
	}
}

// TestUnreadableArgumentsMeansZeroArgs: argument metadata failure degrades
// the procedure to zero arguments instead of blocking invocation.
func TestUnreadableArgumentsMeansZeroArgs(t *testing.T) {
	srv := simserver.New("opaque")
	dev := srv.RootNode().AddContainer("Device")
	dev.AddProcedure("Mystery", nil, func([]variant.Value) (variant.Value, error) {
		return variant.NewValue(variant.String, "ran"), nil
	})

	ctx := context.Background()
	if err := srv.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer srv.Disconnect(ctx)

	entries, _ := walker.Walk(ctx, srv, srv.Root())
	var proc walker.Entry
	for _, e := range entries {
		if e.Kind == session.Procedure {
			proc = e
		}
	}
	// Metadata reads start failing after the walk found the node.
	srv.Lookup("Device/Mystery").FailReads()

	_, err := navigator.InvokeProcedure(ctx, srv, proc, nil)

	// Zero texts against zero (unreadable) descriptors: the call goes out.
	if err != nil {
		t.Fatalf("invoke with unreadable metadata: %v", err)
	}
	if len(srv.Invocations()) != 1 {
		t.Errorf("invocations = %d, want 1", len(srv.Invocations()))
	}
}
