package navigator

import (
	"context"
	"fmt"
	"strings"

	"github.com/ormasoftchile/nodescope/pkg/session"
	"github.com/ormasoftchile/nodescope/pkg/variant"
	"github.com/ormasoftchile/nodescope/pkg/walker"
)

// ArgumentCountError reports that the supplied argument count disagrees
// with the procedure's declared input arguments. Raised before any remote
// call is made.
type ArgumentCountError struct {
	Got, Want int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("argument count mismatch: got %d, procedure declares %d", e.Got, e.Want)
}

// interact dispatches the chosen entry on its kind. This is the single
// point where kinds are matched exhaustively.
func (n *Navigator) interact(ctx context.Context, e walker.Entry) error {
	switch e.Kind {
	case session.DataPoint:
		return n.dataPointLoop(ctx, e)
	case session.Procedure:
		return n.procedureFlow(ctx, e)
	case session.Container, session.Other:
		// Nothing to interact with; just show where it lives.
		n.c.Info(fmt.Sprintf("%s /%s", e.Kind, e.JoinedPath()))
		return nil
	}
	return nil
}

// dataPointLoop reads and displays the value, then offers re-read, write
// or back. Conversion and remote failures are shown and the loop
// continues.
func (n *Navigator) dataPointLoop(ctx context.Context, e walker.Entry) error {
	for {
		v, err := n.s.ReadValue(ctx, e.Handle)
		if err != nil {
			n.c.Error(fmt.Sprintf("read %s: %v", e.JoinedPath(), err))
		} else {
			n.c.Result(fmt.Sprintf("%s = %v (%s)", e.JoinedPath(), v.Data, v.Tag))
		}

		line, rerr := n.c.ReadLine("[r] re-read, [w] write, [b] back: ")
		if rerr != nil {
			return errQuit
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "r":
			continue
		case "b", "back":
			return nil
		case "q", "quit":
			return errQuit
		case "w":
			if err := n.writeDataPoint(ctx, e, v.Tag); err != nil {
				return err
			}
		default:
			n.c.Error("enter r, w or b")
		}
	}
}

// writeDataPoint prompts for a value, converts it against the data point's
// type and writes it. Failures are operator-visible, never fatal.
func (n *Navigator) writeDataPoint(ctx context.Context, e walker.Entry, tag variant.TypeTag) error {
	line, err := n.c.ReadLine(fmt.Sprintf("new value (%s): ", tag))
	if err != nil {
		return errQuit
	}
	v, cerr := variant.Convert(line, tag)
	if cerr != nil {
		n.c.Error(cerr.Error())
		return nil
	}
	if werr := n.s.WriteValue(ctx, e.Handle, v); werr != nil {
		n.c.Error(fmt.Sprintf("write %s: %v", e.JoinedPath(), werr))
		return nil
	}
	n.c.Info("value written")
	return nil
}

// procedureFlow prompts one text per declared argument, invokes, and shows
// the result or the error. Returns to the item menu regardless of outcome.
func (n *Navigator) procedureFlow(ctx context.Context, e walker.Entry) error {
	descs, err := n.s.InputArguments(ctx, e.Handle)
	if err != nil {
		// Unreadable argument metadata: treat as zero arguments.
		descs = nil
	}

	texts := make([]string, 0, len(descs))
	for _, d := range descs {
		line, rerr := n.c.ReadLine(fmt.Sprintf("%s (%s) = ", d.Name, d.Type))
		if rerr != nil {
			return errQuit
		}
		texts = append(texts, line)
	}

	result, ierr := InvokeProcedure(ctx, n.s, e, texts)
	if ierr != nil {
		n.c.Error(fmt.Sprintf("invoke %s: %v", e.JoinedPath(), ierr))
		return nil
	}
	n.c.Result(fmt.Sprintf("%s -> %v", e.JoinedPath(), result.Data))
	return nil
}

// InvokeProcedure converts the argument texts against the procedure's
// declared input arguments and invokes it on its owning container. The
// count check runs before any remote invoke call.
func InvokeProcedure(ctx context.Context, s session.Session, e walker.Entry, texts []string) (variant.Value, error) {
	if e.Owner == nil {
		return variant.Value{}, fmt.Errorf("procedure %s has no owning container", e.JoinedPath())
	}

	descs, err := s.InputArguments(ctx, e.Handle)
	if err != nil {
		descs = nil
	}
	if len(texts) != len(descs) {
		return variant.Value{}, &ArgumentCountError{Got: len(texts), Want: len(descs)}
	}

	args := make([]variant.Value, 0, len(descs))
	for i, d := range descs {
		v, cerr := variant.Convert(texts[i], d.Type)
		if cerr != nil {
			return variant.Value{}, fmt.Errorf("argument %s: %w", d.Name, cerr)
		}
		args = append(args, v)
	}
	return s.Invoke(ctx, e.Owner, e.Handle, args)
}
