package blskeys

import (
	"strings"
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const materialHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func testMaterial(t *testing.T) KeyMaterial {
	t.Helper()

	m, err := ParseKeyMaterial(materialHex)
	if err != nil {
		t.Fatal(err)
	}

	return m
}

func TestParseKeyMaterial(t *testing.T) {
	t.Parallel()

	m := testMaterial(t)

	for i := range m {
		assert.Equal(t, "byte", byte(i), m[i])
	}
}

func TestParseKeyMaterial_Prefixed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0x" + materialHex, "0X" + materialHex, " 0x" + materialHex + "\n"} {
		m, err := ParseKeyMaterial(s)
		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, "key material", testMaterial(t), m)
	}
}

func TestParseKeyMaterial_UpperCase(t *testing.T) {
	t.Parallel()

	m, err := ParseKeyMaterial(strings.ToUpper(materialHex))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "key material", testMaterial(t), m)
}

func TestParseKeyMaterial_BadLength(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "0x", materialHex[:62], materialHex + "20", materialHex[:63], "0x0x" + materialHex} {
		_, err := ParseKeyMaterial(s)

		assert.Equal(t, "error", ErrInvalidLength, err, cmpopts.EquateErrors())

		if _, ok := err.(*DecodeError); !ok {
			t.Fatalf("expected a DecodeError for %q but was %T", s, err)
		}
	}
}

func TestParseKeyMaterial_BadHex(t *testing.T) {
	t.Parallel()

	_, err := ParseKeyMaterial("zz" + materialHex[2:])

	assert.Equal(t, "error", ErrInvalidHex, err, cmpopts.EquateErrors())
}

func TestKeyMaterial_MarshalText(t *testing.T) {
	t.Parallel()

	text, err := testMaterial(t).MarshalText()
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "text", materialHex, string(text))
}
