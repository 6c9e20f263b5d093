// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package encoding

import (
	"bytes"
	"testing"

	group "github.com/bytemare/crypto"
)

func TestI2OSP(t *testing.T) {
	for _, test := range []struct {
		expected []byte
		value    int
		length   int
	}{
		{[]byte{0}, 0, 1},
		{[]byte{255}, 255, 1},
		{[]byte{1, 0}, 256, 2},
		{[]byte{0, 0, 0, 42}, 42, 4},
		{[]byte{0x01, 0x02, 0x03, 0x04}, 0x01020304, 4},
	} {
		if out := I2OSP(test.value, test.length); !bytes.Equal(out, test.expected) {
			t.Fatalf("I2OSP(%d, %d) = %v, want %v", test.value, test.length, out, test.expected)
		}
	}
}

func TestI2OSPPanics(t *testing.T) {
	for _, test := range []struct {
		name   string
		value  int
		length int
	}{
		{"zero length", 1, 0},
		{"oversized length", 1, 5},
		{"negative value", -1, 4},
		{"value too high", 256, 1},
	} {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("want panic")
				}
			}()

			_ = I2OSP(test.value, test.length)
		})
	}
}

func TestEncodeVector(t *testing.T) {
	out := EncodeVector([]byte("abc"))
	if !bytes.Equal(out, []byte{0, 0, 0, 3, 'a', 'b', 'c'}) {
		t.Fatalf("unexpected encoding %v", out)
	}

	if !bytes.Equal(EncodeVector(nil), []byte{0, 0, 0, 0}) {
		t.Fatal("empty input must encode to its length prefix")
	}
}

func TestConcatenate(t *testing.T) {
	if !bytes.Equal(Concat([]byte{1}, []byte{2}), []byte{1, 2}) {
		t.Fatal("Concat")
	}

	if !bytes.Equal(Concat3([]byte{1}, []byte{2}, []byte{3}), []byte{1, 2, 3}) {
		t.Fatal("Concat3")
	}

	if !bytes.Equal(Concatenate([]byte{1}, nil, []byte{2, 3}), []byte{1, 2, 3}) {
		t.Fatal("Concatenate")
	}
}

func TestSerializeLengths(t *testing.T) {
	for _, g := range []group.Group{group.P256Sha256, group.P384Sha384, group.P521Sha512} {
		s := g.NewScalar().Random()
		if len(SerializeScalar(s, g)) != ScalarLength[g] {
			t.Fatalf("scalar length mismatch for group %s", g)
		}

		e := g.Base().Multiply(s)
		if len(SerializePoint(e, g)) != PointLength[g] {
			t.Fatalf("point length mismatch for group %s", g)
		}
	}
}
