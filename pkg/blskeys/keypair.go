package blskeys

import (
	"fmt"

	"github.com/codahale/blskeygen/pkg/blskeys/internal/skid"
	"github.com/mr-tron/base58"
)

// KeyPair is a BLS public key and the secret key it was generated with. Key pairs are immutable.
type KeyPair struct {
	public [PublicKeySize]byte
	secret [SecretKeySize]byte
}

// NewKeyPair returns a key pair with copies of the given public and secret keys.
func NewKeyPair(public, secret []byte) (*KeyPair, error) {
	if len(public) != PublicKeySize {
		return nil, fmt.Errorf("%w: public key must be %d bytes, got %d",
			ErrInvalidLength, PublicKeySize, len(public))
	}

	if len(secret) != SecretKeySize {
		return nil, fmt.Errorf("%w: secret key must be %d bytes, got %d",
			ErrInvalidLength, SecretKeySize, len(secret))
	}

	var kp KeyPair

	copy(kp.public[:], public)
	copy(kp.secret[:], secret)

	return &kp, nil
}

// Public returns a copy of the public key.
func (kp *KeyPair) Public() []byte {
	b := kp.public

	return b[:]
}

// Secret returns a copy of the secret key.
func (kp *KeyPair) Secret() []byte {
	b := kp.secret

	return b[:]
}

// Material returns the secret key as key material for the next pair in a chain.
func (kp *KeyPair) Material() KeyMaterial {
	return KeyMaterial(kp.secret)
}

// Equal returns true if both key pairs have the same public and secret keys.
func (kp *KeyPair) Equal(other *KeyPair) bool {
	return kp.public == other.public && kp.secret == other.secret
}

// String returns a safe identifier for the key pair which reveals nothing about the secret key.
func (kp *KeyPair) String() string {
	return base58.Encode(skid.ID(kp.Public(), idSize))
}

var _ fmt.Stringer = &KeyPair{}
