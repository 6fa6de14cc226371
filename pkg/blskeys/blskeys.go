// Package blskeys generates BLS12-381 key pairs, either from fresh randomness or from 32 bytes of
// caller-supplied key material, and derives deterministic chains of key pairs in which each pair is
// generated from the secret key of the pair before it.
//
// Public keys are compressed G1 points; signatures (which this package does not produce) live in
// G2.
package blskeys

import "errors"

const (
	MaterialSize  = 32 // MaterialSize is the length of key material in bytes.
	PublicKeySize = 48 // PublicKeySize is the length of a compressed G1 public key in bytes.
	SecretKeySize = 32 // SecretKeySize is the length of a secret key scalar in bytes.

	idSize = 8
)

var (
	// ErrPrimitiveFailed is returned when the signature primitive rejects key material.
	ErrPrimitiveFailed = errors.New("key generation failed")

	// ErrEntropyUnavailable is returned when the random source cannot produce key material.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrInvalidHex is returned when key material is not a hex string.
	ErrInvalidHex = errors.New("invalid hex")

	// ErrInvalidLength is returned when decoded key material or keys have the wrong length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidCount is returned when a chain of less than one key pair is requested.
	ErrInvalidCount = errors.New("key pair count must be at least 1")
)

// DerivationError is returned when a key pair cannot be derived. It matches its Kind with
// errors.Is and unwraps to the underlying cause.
type DerivationError struct {
	Kind error
	Err  error
}

func (e *DerivationError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}

	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *DerivationError) Is(target error) bool {
	return target == e.Kind
}

func (e *DerivationError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when textual key material cannot be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "invalid key material: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
