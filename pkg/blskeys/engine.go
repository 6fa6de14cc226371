package blskeys

import (
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/bls"
	"github.com/codahale/blskeygen/pkg/blskeys/internal/rng"
)

var errNoKeyPair = errors.New("no key pair returned")

// Primitive deterministically transforms key material into a key pair.
type Primitive func(material KeyMaterial) (*KeyPair, error)

// BLS12381 generates a key pair with the BLS12-381 KeyGen procedure, using the key material as
// input keying material and producing a public key in G1.
func BLS12381(material KeyMaterial) (*KeyPair, error) {
	sk, err := bls.KeyGen[bls.KeyG1SigG2](material[:], nil, nil)
	if err != nil {
		return nil, err
	}

	secret, err := sk.MarshalBinary()
	if err != nil {
		return nil, err
	}

	public, err := sk.PublicKey().MarshalBinary()
	if err != nil {
		return nil, err
	}

	return NewKeyPair(public, secret)
}

// Engine derives key pairs and chains of key pairs.
type Engine struct {
	primitive Primitive
	random    io.Reader
}

// Option configures an Engine.
type Option func(*Engine)

// WithPrimitive replaces the BLS12-381 primitive.
func WithPrimitive(p Primitive) Option {
	return func(e *Engine) {
		e.primitive = p
	}
}

// WithRandom replaces the source of key material used when none is provided.
func WithRandom(r io.Reader) Option {
	return func(e *Engine) {
		e.random = r
	}
}

// NewEngine returns an Engine which uses BLS12381 and a whitened copy of the host's RNG unless
// configured otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{primitive: BLS12381, random: rng.Reader}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// DeriveFirst generates a key pair from the given key material, or from random key material if it
// is nil.
func (e *Engine) DeriveFirst(material *KeyMaterial) (*KeyPair, error) {
	var m KeyMaterial

	if material != nil {
		m = *material
	} else if _, err := io.ReadFull(e.random, m[:]); err != nil {
		return nil, &DerivationError{Kind: ErrEntropyUnavailable, Err: err}
	}

	kp, err := e.primitive(m)
	if err != nil {
		return nil, &DerivationError{Kind: ErrPrimitiveFailed, Err: err}
	}

	if kp == nil {
		return nil, &DerivationError{Kind: ErrPrimitiveFailed, Err: errNoKeyPair}
	}

	return kp, nil
}

// DeriveNext generates the key pair which follows the given one in a chain, using its secret key
// as key material.
func (e *Engine) DeriveNext(previous *KeyPair) (*KeyPair, error) {
	m := previous.Material()

	return e.DeriveFirst(&m)
}

// Chain derives n key pairs, starting from the given key material (or random key material if it is
// nil), and passes each one to fn as soon as it is derived. The first error returned by either the
// derivation or fn stops the chain.
func (e *Engine) Chain(material *KeyMaterial, n int, fn func(i int, kp *KeyPair) error) error {
	if n < 1 {
		return ErrInvalidCount
	}

	kp, err := e.DeriveFirst(material)
	if err != nil {
		return fmt.Errorf("derive key pair 0: %w", err)
	}

	for i := 0; ; i++ {
		if err := fn(i, kp); err != nil {
			return err
		}

		if i == n-1 {
			return nil
		}

		kp, err = e.DeriveNext(kp)
		if err != nil {
			return fmt.Errorf("derive key pair %d: %w", i+1, err)
		}
	}
}

// Generate derives a chain of n key pairs and returns them in order.
func (e *Engine) Generate(material *KeyMaterial, n int) ([]*KeyPair, error) {
	var pairs []*KeyPair

	if err := e.Chain(material, n, func(_ int, kp *KeyPair) error {
		pairs = append(pairs, kp)

		return nil
	}); err != nil {
		return nil, err
	}

	return pairs, nil
}
