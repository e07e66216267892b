package arrangement

import "fmt"

// PreconditionError is the panic value of a mutator called with input that
// breaks its contract. The arrangement is left untouched or inconsistent,
// there is no rollback.
type PreconditionError struct {
	Op  string
	Msg string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("arrangement: %s: %s", e.Op, e.Msg)
}

// TopologyError is the panic value raised when the DCEL turns out to be in a
// state no sequence of valid operations can produce.
type TopologyError struct {
	Op  string
	Msg string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("arrangement: %s: broken topology: %s", e.Op, e.Msg)
}

func precondition(op, format string, args ...any) {
	panic(&PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...)})
}

func broken(op, format string, args ...any) {
	panic(&TopologyError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
