package spirv

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind categorizes recompiler failures. Every kind is fatal: the
// recompiler has no partial-success mode, and stops at the first error.
type ErrorKind uint8

const (
	// ErrUnsupportedInstruction: no rule matches (type, format) for the
	// current instruction.
	ErrUnsupportedInstruction ErrorKind = iota

	// ErrUnsupportedOperandShape: a rule matched but a precondition on
	// operand type, size, or modifier failed.
	ErrUnsupportedOperandShape

	// ErrUnsupportedBindingConfig: a rule needs a resource the binding
	// info does not declare.
	ErrUnsupportedBindingConfig

	// ErrInvalidStageCombination: the shader's stage and the supplied
	// stage-info record disagree, or more than one stage info was given.
	ErrInvalidStageCombination

	// ErrBug: a pool lookup returned its sentinel id, or some other
	// internal invariant of the emitter failed.
	ErrBug
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedInstruction:
		return "UnsupportedInstruction"
	case ErrUnsupportedOperandShape:
		return "UnsupportedOperandShape"
	case ErrUnsupportedBindingConfig:
		return "UnsupportedBindingConfig"
	case ErrInvalidStageCombination:
		return "InvalidStageCombination"
	case ErrBug:
		return "Bug"
	default:
		return "Unknown"
	}
}

// Error is a recompiler failure. PC identifies the offending instruction
// when HasPC is set; HasPC is false for errors that are not
// instruction-specific, e.g. ErrInvalidStageCombination.
type Error struct {
	Kind ErrorKind
	PC   uint32
	HasPC bool

	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.HasPC {
		if e.Cause != nil {
			return fmt.Sprintf("gcnspirv %s at pc=%#x: %s: %v", e.Kind, e.PC, e.Message, e.Cause)
		}
		return fmt.Sprintf("gcnspirv %s at pc=%#x: %s", e.Kind, e.PC, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("gcnspirv %s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("gcnspirv %s: %s", e.Kind, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to Cause.
func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an Error with no offending instruction in scope.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewInstructionError builds an Error tied to the instruction at pc.
func NewInstructionError(kind ErrorKind, pc uint32, message string) *Error {
	return &Error{Kind: kind, PC: pc, HasPC: true, Message: message}
}

// Wrap attaches cause to a new Error of the given kind, tied to pc.
func Wrap(kind ErrorKind, pc uint32, cause error, message string) *Error {
	return &Error{Kind: kind, PC: pc, HasPC: true, Message: message, Cause: errors.WithStack(cause)}
}
