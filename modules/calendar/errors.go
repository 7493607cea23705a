package calendar

import "fmt"

// InvariantError is the panic value raised when calendar arithmetic produces a
// month or weekday outside its range. It marks a programming error; drawing
// failures are returned as ordinary errors instead.
type InvariantError struct {
	What  string
	Value int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("calendar: impossible %s value %d", e.What, e.Value)
}

func invariant(what string, v int) {
	panic(&InvariantError{What: what, Value: v})
}
