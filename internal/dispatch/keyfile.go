package dispatch

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/codahale/blskeygen/pkg/blskeys"
)

type keyFile struct {
	Public string `json:"public"`
	Secret string `json:"secret"`
}

// Marshal encodes a key pair as indented JSON with lower-case hex public and secret fields.
func Marshal(kp *blskeys.KeyPair) ([]byte, error) {
	b, err := json.MarshalIndent(keyFile{
		Public: hex.EncodeToString(kp.Public()),
		Secret: hex.EncodeToString(kp.Secret()),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize key pair: %w", err)
	}

	return b, nil
}

// Unmarshal decodes the results of Marshal.
func Unmarshal(data []byte) (*blskeys.KeyPair, error) {
	var kf keyFile

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&kf); err != nil {
		return nil, fmt.Errorf("invalid key file: %w", err)
	}

	public, err := hex.DecodeString(kf.Public)
	if err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	secret, err := hex.DecodeString(kf.Secret)
	if err != nil {
		return nil, fmt.Errorf("invalid secret key: %w", err)
	}

	return blskeys.NewKeyPair(public, secret)
}

// ReadFile reads and decodes a key file.
func ReadFile(path string) (*blskeys.KeyPair, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Unmarshal(b)
}
