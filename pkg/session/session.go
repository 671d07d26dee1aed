// Package session defines the remote-session capability consumed by the
// browser core: an authenticated connection to a hierarchically-addressed
// automation server, exposed through a narrow interface so that wire
// protocols stay outside the core.
package session

import (
	"context"
	"fmt"

	"github.com/ormasoftchile/nodescope/pkg/variant"
)

// NodeHandle is an opaque reference to one node of the remote object graph.
// Handles are owned by the Session that issued them and must not be used
// after Disconnect.
type NodeHandle interface {
	fmt.Stringer
}

// NodeKind classifies a remote node.
type NodeKind int

const (
	// Container organizes other nodes and holds no value of its own.
	Container NodeKind = iota
	// DataPoint holds a readable/writable typed value.
	DataPoint
	// Procedure is a remotely invokable operation with typed arguments.
	Procedure
	// Other is present in the graph but not actionable. It is still
	// enumerated for completeness, never offered for interaction.
	Other
)

func (k NodeKind) String() string {
	switch k {
	case Container:
		return "Container"
	case DataPoint:
		return "DataPoint"
	case Procedure:
		return "Procedure"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// ArgumentDescriptor describes one declared input argument of a Procedure.
type ArgumentDescriptor struct {
	Name string
	Type variant.TypeTag
}

// Session is the remote-session capability. Every call may fail
// independently; the browser core decides per call site whether a failure
// is fatal, skipped or shown to the operator. Implementations serve one
// caller at a time; the core never issues two calls in parallel.
type Session interface {
	// Connect establishes the session. Handles are only valid between a
	// successful Connect and the matching Disconnect.
	Connect(ctx context.Context) error
	// Disconnect releases the session. Safe to call after a failed
	// Connect.
	Disconnect(ctx context.Context) error

	// Root returns the traversal root (the server's objects folder).
	Root() NodeHandle

	// Kind reads the node's classification.
	Kind(ctx context.Context, h NodeHandle) (NodeKind, error)
	// DisplayName reads the node's human-readable name.
	DisplayName(ctx context.Context, h NodeHandle) (string, error)
	// Children enumerates the node's hierarchical children.
	Children(ctx context.Context, h NodeHandle) ([]NodeHandle, error)

	// ReadValue reads a data point's current value and type.
	ReadValue(ctx context.Context, h NodeHandle) (variant.Value, error)
	// WriteValue writes a data point.
	WriteValue(ctx context.Context, h NodeHandle, v variant.Value) error

	// InputArguments reads a procedure's declared input arguments.
	InputArguments(ctx context.Context, procedure NodeHandle) ([]ArgumentDescriptor, error)
	// Invoke calls a procedure on its owning container.
	Invoke(ctx context.Context, container, procedure NodeHandle, args []variant.Value) (variant.Value, error)
}
