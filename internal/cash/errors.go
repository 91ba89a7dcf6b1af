package cash

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrPersistence = errors.New("operation failed")
	// ErrLoad matches persistence errors raised while reading.
	ErrLoad = errors.New("load failed")
)

// ValidationCode identifies a user-correctable input problem.
type ValidationCode string

const (
	CodeInvalidAmount        ValidationCode = "invalid_amount"
	CodeExceedsAvailableCash ValidationCode = "exceeds_available_cash"
	CodeMissingRecipient     ValidationCode = "missing_recipient"
)

// ValidationError is returned before any I/O is attempted.
type ValidationError struct {
	Code ValidationCode
}

func (e *ValidationError) Error() string {
	return "validation failed: " + string(e.Code)
}

// Is matches any ValidationError carrying the same code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

var (
	ErrInvalidAmount        = &ValidationError{Code: CodeInvalidAmount}
	ErrExceedsAvailableCash = &ValidationError{Code: CodeExceedsAvailableCash}
	ErrMissingRecipient     = &ValidationError{Code: CodeMissingRecipient}
)

// PersistenceError wraps a failed read or write against the data store.
type PersistenceError struct {
	Op   string
	Err  error
	Read bool
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence || (e.Read && target == ErrLoad)
}

func persistence(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

func loadFailure(op string, err error) error {
	return &PersistenceError{Op: op, Err: err, Read: true}
}
