package rng

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestReader_Read(t *testing.T) {
	t.Parallel()

	// Generate 10MiB and see if anything explodes.
	if _, err := io.CopyN(io.Discard, Reader, 1024*1024*10); err != nil {
		t.Fatal(err)
	}
}

func TestReader_Whitening(t *testing.T) {
	t.Parallel()

	src := bytes.Repeat([]byte{0xAA}, 64)

	a := make([]byte, 32)
	if _, err := io.ReadFull(New(bytes.NewReader(src)), a); err != nil {
		t.Fatal(err)
	}

	b := make([]byte, 32)
	if _, err := io.ReadFull(New(bytes.NewReader(src)), b); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "same source, same output", a, b)

	if bytes.Equal(a, src[:32]) {
		t.Fatal("output was not whitened")
	}
}

func TestReader_SourceFailure(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken")
	r := New(io.MultiReader(bytes.NewReader(make([]byte, 4)), &failingReader{err: errBroken}))

	_, err := io.ReadFull(r, make([]byte, 32))

	assert.Equal(t, "error", errBroken, err, cmpopts.EquateErrors())
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func BenchmarkRead(b *testing.B) {
	buf := make([]byte, 1024*1024)

	for i := 0; i < b.N; i++ {
		_, _ = io.ReadFull(Reader, buf)
	}
}
