package errcode

// Code is a stable identifier for a board configuration defect.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Identifier domain
	UnknownPin    Code = "unknown_pin"
	UnknownBus    Code = "unknown_bus"
	UnknownVector Code = "unknown_vector"
	BadClockMask  Code = "bad_clock_mask"

	// Record shape
	PinConflict Code = "pin_conflict"
	Conflict    Code = "resource_conflict"
	Incomplete  Code = "incomplete"

	// Cross-table and binding
	IndexOutOfRange Code = "index_out_of_range"
	ISRMismatch     Code = "isr_mismatch"
	DuplicateISR    Code = "duplicate_isr"
	DivTableDrift   Code = "divtable_drift"

	// Bring-up
	CPUInit Code = "cpu_init"

	Error Code = "error" // generic fallback
)

// E keeps the failing table entry alongside the code.
type E struct {
	C   Code
	Op  string // e.g. "uart[1]"
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// New builds an *E.
func New(c Code, op, msg string) *E { return &E{C: c, Op: op, Msg: msg} }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// Is reports whether err carries code c, looking through joined and
// wrapped errors.
func Is(err error, c Code) bool {
	switch x := err.(type) {
	case nil:
		return false
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			if Is(e, c) {
				return true
			}
		}
		return false
	}
	if Of(err) == c {
		return true
	}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return Is(u.Unwrap(), c)
	}
	return false
}
