package simserver

import (
	"fmt"
	"strings"

	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/variant"
)

// InvokeFunc implements a procedure's behavior.
type InvokeFunc func(args []variant.Value) (variant.Value, error)

// Node is one element of the simulated address space. Fault flags let tests
// exercise the browser's partial-failure paths.
type Node struct {
	id       string
	name     string
	kind     session.NodeKind
	value    variant.Value
	writable bool
	args     []session.ArgumentDescriptor
	invoke   InvokeFunc
	children []*Node

	// Fault injection.
	unreadable   bool // Kind/DisplayName reads fail
	childrenFail bool // Children enumeration fails
	writeFail    bool // WriteValue fails
}

// Name returns the node's display name.
func (n *Node) Name() string { return n.name }

// Value returns the node's current value (data points only).
func (n *Node) Value() variant.Value { return n.value }

// SetValue replaces the node's value directly, bypassing the session write
// path. Used by procedure behaviors and tests.
func (n *Node) SetValue(v variant.Value) { n.value = v }

// FailReads makes metadata reads of this node fail.
func (n *Node) FailReads() { n.unreadable = true }

// FailChildren makes children enumeration of this node fail.
func (n *Node) FailChildren() { n.childrenFail = true }

// FailWrites makes value writes to this node fail.
func (n *Node) FailWrites() { n.writeFail = true }

// handle is the session-owned reference to a Node. It goes stale when the
// issuing server disconnects.
type handle struct {
	node *Node
	srv  *Server
}

func (h handle) String() string { return h.node.id }

// AddContainer appends a container child.
func (n *Node) AddContainer(name string) *Node {
	return n.add(&Node{name: name, kind: session.Container})
}

// AddDataPoint appends a readable data point child.
func (n *Node) AddDataPoint(name string, v variant.Value, writable bool) *Node {
	return n.add(&Node{name: name, kind: session.DataPoint, value: v, writable: writable})
}

// AddProcedure appends an invokable child with the given argument
// signature and behavior.
func (n *Node) AddProcedure(name string, args []session.ArgumentDescriptor, fn InvokeFunc) *Node {
	return n.add(&Node{name: name, kind: session.Procedure, args: args, invoke: fn})
}

// AddOther appends a non-actionable child (views, reference types and
// similar graph clutter).
func (n *Node) AddOther(name string) *Node {
	return n.add(&Node{name: name, kind: session.Other})
}

func (n *Node) add(child *Node) *Node {
	child.id = n.id + "/" + child.name
	n.children = append(n.children, child)
	return child
}

// find walks the graph by display-name path segments.
func (n *Node) find(segments []string) *Node {
	if len(segments) == 0 {
		return n
	}
	for _, c := range n.children {
		if c.name == segments[0] {
			return c.find(segments[1:])
		}
	}
	return nil
}

// Lookup resolves a slash-separated display-name path beneath the root,
// e.g. "DA_UA/folder_test/Flow2". Returns nil when no such node exists.
func (s *Server) Lookup(path string) *Node {
	return s.root.find(strings.Split(path, "/"))
}

// asHandle checks that a handle belongs to this server and is still live.
func (s *Server) asHandle(h session.NodeHandle) (*Node, error) {
	hh, ok := h.(handle)
	if !ok || hh.srv != s {
		return nil, fmt.Errorf("foreign node handle %v", h)
	}
	if !s.connected {
		return nil, errNotConnected
	}
	return hh.node, nil
}
