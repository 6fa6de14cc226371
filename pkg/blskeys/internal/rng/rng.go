// Package rng provides the STROBE protocol used to whiten the host's RNG.
//
// At startup, a STROBE protocol is initialized:
//
//     INIT('blskeygen.rng', level=256)
//
// When a block of random data is required, a block B of equivalent size is read from the host
// machine's RNG, and the following operations performed:
//
//     AD(LE_U64(LEN(B)), meta=true)
//     KEY(B)
//     PRF(LEN(B)) -> B
//     RATCHET(32)
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"

	"github.com/sammyne/strobe"
)

const ratchetSize = int(strobe.Bit256) / 8

//nolint:gochecknoglobals // need a singleton
// Reader is a global, shared instance of a cryptographically secure random number generator.
var Reader io.Reader = New(rand.Reader)

// New returns a reader which whitens blocks read from src with a fresh STROBE protocol.
func New(src io.Reader) io.Reader {
	s, err := strobe.New("blskeygen.rng", strobe.Bit256)
	if err != nil {
		panic(err)
	}

	return &reader{src: src, rng: s}
}

type reader struct {
	mu     sync.Mutex
	src    io.Reader
	rng    *strobe.Strobe
	lenBuf [8]byte
}

func (r *reader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Read a new block of data from the underlying RNG.
	if _, err := io.ReadFull(r.src, p); err != nil {
		return 0, err
	}

	// Include length of PRF request as associated data.
	binary.LittleEndian.PutUint64(r.lenBuf[:], uint64(len(p)))

	if err := r.rng.AD(r.lenBuf[:], &strobe.Options{Meta: true}); err != nil {
		return 0, err
	}

	// Re-key the protocol with the block.
	if err := r.rng.KEY(p, false); err != nil {
		return 0, err
	}

	// Return the results of the PRF.
	if err := r.rng.PRF(p, false); err != nil {
		return 0, err
	}

	// Ratchet the state of the RNG to prevent rollback.
	if err := r.rng.RATCHET(ratchetSize); err != nil {
		return 0, err
	}

	return len(p), nil
}
