package services

import "errors"

var (
	// ErrNotFound means there is nothing to show: no dog with that id, or no
	// eligible dog for the requested status.
	ErrNotFound = errors.New("not found")

	// ErrLedgerReset means a preference replacement and the deletion of the
	// user's decisions could not be committed together. Callers must surface it.
	ErrLedgerReset = errors.New("preference update and ledger reset did not commit together")
)
