// Package skid provides the STROBE protocol for safe key pair IDs.
//
// ID generation is performed as follows, given a public key P and ID size N:
//
//     INIT('blskeygen.skid', level=256)
//     AD(BE_U32(N), meta=true)
//     AD(P)
//     PRF(N)
package skid

import (
	"encoding/binary"

	"github.com/sammyne/strobe"
)

// ID returns an identifier for the public key which is n bytes long.
func ID(pk []byte, n int) []byte {
	s, err := strobe.New("blskeygen.skid", strobe.Bit256)
	if err != nil {
		panic(err)
	}

	var size [4]byte

	binary.BigEndian.PutUint32(size[:], uint32(n))

	if err := s.AD(size[:], &strobe.Options{Meta: true}); err != nil {
		panic(err)
	}

	if err := s.AD(pk, &strobe.Options{}); err != nil {
		panic(err)
	}

	id := make([]byte, n)
	if err := s.PRF(id, false); err != nil {
		panic(err)
	}

	return id
}
