package sendflow

import (
	"errors"

	"github.com/gabapcia/tokensend/internal/broadcast"
)

var (
	// ErrNetwork wraps query and broadcast transport failures.
	ErrNetwork = broadcast.ErrNetwork

	// ErrInvalidTarget blocks submission while the target is not a known address.
	ErrInvalidTarget = errors.New("target is invalid")

	// ErrInsufficientBalance blocks submission while the amount exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrEmptyTarget blocks submission while no target is set.
	ErrEmptyTarget = errors.New("target is empty")

	// ErrZeroAmount blocks submission while the amount is not positive.
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrAmountPrecision blocks submission while the amount is finer than one micro unit.
	ErrAmountPrecision = errors.New("amount has more than 6 decimal places")

	// ErrTargetPending blocks submission while the target is being validated.
	ErrTargetPending = errors.New("target validation in progress")

	// ErrNotReady blocks submission until an account balance has been loaded.
	ErrNotReady = errors.New("account balance not loaded")

	// ErrSubmissionInFlight is returned when a transfer is already being submitted.
	ErrSubmissionInFlight = errors.New("a transfer is already in flight")

	// ErrTransferFailed is returned when the ledger applied the transfer with a non-zero code.
	ErrTransferFailed = errors.New("transfer failed on ledger")

	// ErrRecordNotFound is returned by stores that hold no record for a key.
	ErrRecordNotFound = errors.New("record not found")
)
