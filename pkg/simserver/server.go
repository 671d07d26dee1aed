// Package simserver is an in-memory reference implementation of the
// session capability. It stands in for a real automation server during
// development and acts as the test fixture for the session contract:
// address spaces come from code (the built-in demo space) or from YAML
// fixture files, and per-node fault injection exercises the browser's
// partial-failure behavior.
package simserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/ormasoftchile/nodescope/pkg/config"
	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/variant"
)

var errNotConnected = errors.New("session not connected")

// InvokeRecord captures one procedure invocation for test assertions.
type InvokeRecord struct {
	Container string
	Procedure string
	Args      []variant.Value
}

// Server is an in-memory address space behind the session.Session
// interface. It serves a single caller; the browser core never issues
// concurrent calls.
type Server struct {
	name      string
	root      *Node
	connected bool
	invoked   []InvokeRecord
}

// New creates an empty server whose root container carries the given
// space name.
func New(name string) *Server {
	return &Server{
		name: name,
		root: &Node{id: "Objects", name: "Objects", kind: session.Container},
	}
}

// RootNode returns the mutable root for space construction.
func (s *Server) RootNode() *Node { return s.root }

// Invocations returns the procedure calls issued so far, in order.
func (s *Server) Invocations() []InvokeRecord { return s.invoked }

// Connected reports whether the session is currently established.
func (s *Server) Connected() bool { return s.connected }

// --- session.Session ---

func (s *Server) Connect(ctx context.Context) error {
	if s.connected {
		return errors.New("already connected")
	}
	s.connected = true
	return nil
}

func (s *Server) Disconnect(ctx context.Context) error {
	// Idempotent so that every exit path can release unconditionally.
	s.connected = false
	return nil
}

func (s *Server) Root() session.NodeHandle {
	return handle{node: s.root, srv: s}
}

func (s *Server) Kind(ctx context.Context, h session.NodeHandle) (session.NodeKind, error) {
	n, err := s.asHandle(h)
	if err != nil {
		return 0, err
	}
	if n.unreadable {
		return 0, fmt.Errorf("read kind of %s: attribute not readable", n.id)
	}
	return n.kind, nil
}

func (s *Server) DisplayName(ctx context.Context, h session.NodeHandle) (string, error) {
	n, err := s.asHandle(h)
	if err != nil {
		return "", err
	}
	if n.unreadable {
		return "", fmt.Errorf("read display name of %s: attribute not readable", n.id)
	}
	return n.name, nil
}

func (s *Server) Children(ctx context.Context, h session.NodeHandle) ([]session.NodeHandle, error) {
	n, err := s.asHandle(h)
	if err != nil {
		return nil, err
	}
	if n.childrenFail {
		return nil, fmt.Errorf("browse %s: references not available", n.id)
	}
	out := make([]session.NodeHandle, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, handle{node: c, srv: s})
	}
	return out, nil
}

func (s *Server) ReadValue(ctx context.Context, h session.NodeHandle) (variant.Value, error) {
	n, err := s.asHandle(h)
	if err != nil {
		return variant.Value{}, err
	}
	if n.kind != session.DataPoint {
		return variant.Value{}, fmt.Errorf("%s is not a data point", n.id)
	}
	return n.value, nil
}

func (s *Server) WriteValue(ctx context.Context, h session.NodeHandle, v variant.Value) error {
	n, err := s.asHandle(h)
	if err != nil {
		return err
	}
	if n.kind != session.DataPoint {
		return fmt.Errorf("%s is not a data point", n.id)
	}
	if n.writeFail || !n.writable {
		return fmt.Errorf("write %s: access denied", n.id)
	}
	n.value = v
	return nil
}

func (s *Server) InputArguments(ctx context.Context, procedure session.NodeHandle) ([]session.ArgumentDescriptor, error) {
	n, err := s.asHandle(procedure)
	if err != nil {
		return nil, err
	}
	if n.kind != session.Procedure {
		return nil, fmt.Errorf("%s is not a procedure", n.id)
	}
	if n.unreadable {
		return nil, fmt.Errorf("read input arguments of %s: attribute not readable", n.id)
	}
	return n.args, nil
}

func (s *Server) Invoke(ctx context.Context, container, procedure session.NodeHandle, args []variant.Value) (variant.Value, error) {
	cn, err := s.asHandle(container)
	if err != nil {
		return variant.Value{}, err
	}
	pn, err := s.asHandle(procedure)
	if err != nil {
		return variant.Value{}, err
	}
	if pn.kind != session.Procedure {
		return variant.Value{}, fmt.Errorf("%s is not a procedure", pn.id)
	}

	s.invoked = append(s.invoked, InvokeRecord{
		Container: cn.id,
		Procedure: pn.id,
		Args:      args,
	})

	if len(args) != len(pn.args) {
		return variant.Value{}, fmt.Errorf("invoke %s: expected %d arguments, got %d",
			pn.id, len(pn.args), len(args))
	}
	if pn.invoke == nil {
		return variant.NewValue(variant.String, "ok"), nil
	}
	result, err := pn.invoke(args)
	if err != nil {
		return variant.Value{}, fmt.Errorf("invoke %s: %w", pn.id, err)
	}
	return result, nil
}

// --- dialer registration ---

func init() {
	session.Register("sim", dial)
}

// dial builds a server for a sim:// endpoint. With a fixture configured the
// space is loaded from that YAML file, otherwise the built-in demo space is
// served.
func dial(cfg *config.Config) (session.Session, error) {
	if cfg.Fixture != "" {
		return LoadFixtureFile(cfg.Fixture)
	}
	return Demo(), nil
}
