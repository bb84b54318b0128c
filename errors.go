package geomvec

import (
	"fmt"
)

// LengthMismatchError reports sequence operands of different lengths. The
// check runs before any element is evaluated.
type LengthMismatchError struct {
	Left  int
	Right int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("lengths of inputs do not match, left: %d, right: %d", e.Left, e.Right)
}

// OperandTypeError reports a right-hand operand that is neither a single
// geometry value nor a geometry sequence.
type OperandTypeError struct {
	Value any
}

func (e *OperandTypeError) Error() string {
	return fmt.Sprintf("operand type not known: %T", e.Value)
}
