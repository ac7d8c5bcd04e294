package domain

import "errors"

var (
	ErrAliasNotFound       = errors.New("alias not found")
	ErrInvalidAlias        = errors.New("alias and token must not be empty")
	ErrAccountNotFound     = errors.New("account not found")
	ErrNoAccountsAvailable = errors.New("no accounts available")
	ErrNoActiveSession     = errors.New("no active session")
	ErrNoRecipient         = errors.New("recipient is not set")
)

// TransportError marks a failure returned by the push transport. The message is kept as is.
type TransportError struct {
	Op  string
	Err error
}

func NewTransportError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
