package transfer

import (
	"errors"
	"fmt"
)

var (
	// ErrSigning matches every *SigningError.
	ErrSigning = errors.New("transfer signing failed")

	// ErrInvalidRequest is returned when a Request fails validation.
	ErrInvalidRequest = errors.New("invalid transfer request")

	// ErrMissingSigningKey is returned by KeySigner when the request carries no key.
	ErrMissingSigningKey = errors.New("signing key is missing")

	// ErrMalformedSigningKey is returned by KeySigner when the key is not a
	// hex encoded ed25519 seed or private key.
	ErrMalformedSigningKey = errors.New("signing key is malformed")

	// ErrInvalidSignature is returned by Verify when the envelope signature
	// does not match its payload.
	ErrInvalidSignature = errors.New("transfer signature is invalid")
)

// SigningError reports that a transfer could not be signed. The cause is kept
// so callers can still match extension specific errors.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("%s: %v", ErrSigning, e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrSigning) hold for any *SigningError.
func (e *SigningError) Is(target error) bool {
	return target == ErrSigning
}
