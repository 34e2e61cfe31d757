package lr

import (
	"fmt"

	"github.com/hallowpine/lrgen/grammar"
)

// ActionType tags the three shapes an ACTION-table entry can take: shift,
// reduce, or accept.
type ActionType int

const (
	Error ActionType = iota
	Shift
	Reduce
	Accept
)

func (t ActionType) String() string {
	switch t {
	case Shift:
		return "SHIFT"
	case Reduce:
		return "REDUCE"
	case Accept:
		return "ACCEPT"
	default:
		return "ERROR"
	}
}

// Action is a single ACTION-table entry.
type Action struct {
	Type       ActionType
	ShiftState int
	Reduction  grammar.Production
}

// Equal reports whether two actions are the same entry: an identical
// existing entry is a no-op, not a conflict. Reduction is compared via
// Production.Equal since grammar.Production holds a slice and so isn't
// comparable with ==.
func (a Action) Equal(other Action) bool {
	if a.Type != other.Type {
		return false
	}
	switch a.Type {
	case Shift:
		return a.ShiftState == other.ShiftState
	case Reduce:
		return a.Reduction.Equal(other.Reduction)
	default:
		return true
	}
}

func (a Action) String() string {
	switch a.Type {
	case Shift:
		return fmt.Sprintf("SHIFT %d", a.ShiftState)
	case Reduce:
		return fmt.Sprintf("REDUCE %s", a.Reduction.String())
	case Accept:
		return "ACCEPT"
	default:
		return "ERROR"
	}
}
