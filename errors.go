package cashbook

import "errors"

var (
	// ErrInvalidInput is returned when a record field or a search parameter is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange is returned when a position does not address a record of the ledger.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrPersistenceCorrupt is returned when a ledger file cannot be decoded.
	ErrPersistenceCorrupt = errors.New("corrupt ledger file")
)
