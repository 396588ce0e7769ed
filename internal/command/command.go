// Package command turns a process argument list into one of the three adr
// commands.
package command

import (
	"fmt"

	adrerrors "github.com/bitlake/adr/internal/errors"
)

// Command is a resolved invocation. The set of implementations is closed:
// Init, New and List are the only values Resolve produces.
type Command interface {
	isCommand()
}

// Init starts tracking ADRs stored under Path.
type Init struct {
	Path string
}

// New creates the next numbered record for Title.
type New struct {
	Title string
}

// List prints the tracked records.
type List struct{}

func (Init) isCommand() {}
func (New) isCommand()  {}
func (List) isCommand() {}

const (
	listKeyword = "list"
	newKeyword  = "new"
)

// Resolve parses args, where args[0] is the program name.
//
// A lone "list" resolves to List. With two arguments, "new" resolves to New
// and any other first argument resolves to Init, so "nit docs/adr" is an init.
// Arguments past the second are ignored.
func Resolve(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("no command given: %w", adrerrors.ErrInvalidCommand)
	}

	name := args[1]
	if len(args) == 2 {
		if name != listKeyword {
			return nil, fmt.Errorf("unknown command %q: %w", name, adrerrors.ErrInvalidCommand)
		}
		return List{}, nil
	}

	arg := args[2]
	if name == newKeyword {
		return New{Title: arg}, nil
	}
	return Init{Path: arg}, nil
}
