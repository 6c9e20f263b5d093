// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides structures and functions to operate Owl that are not part of the public API.
package internal

import (
	cryptorand "crypto/rand"
	"fmt"

	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal/encoding"
)

// RandomBytes returns random bytes of length len (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := cryptorand.Read(r); err != nil {
		// We can as well not panic and try again in a loop
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

// Configuration is the internal representation of a protocol configuration,
// shared by the client, the server, and the deserializer.
type Configuration struct {
	Hash         *Hash
	MAC          *Mac
	KSF          *KSF
	ServerID     []byte
	Group        group.Group
	ScalarLength int
	PointLength  int
}

// RandomScalar returns a uniformly random scalar in [1, n-1].
func (c *Configuration) RandomScalar() *group.Scalar {
	return c.Group.NewScalar().Random()
}

// frame returns the unambiguous concatenation of the arguments, each prefixed
// with its 4-byte big-endian length.
func frame(args ...[]byte) []byte {
	framed := make([][]byte, len(args))
	for i, arg := range args {
		framed[i] = encoding.EncodeVector(arg)
	}

	return encoding.Concatenate(framed...)
}

// HashToScalar hashes the length-framed concatenation of the arguments and
// reduces the digest modulo the group order.
func (c *Configuration) HashToScalar(args ...[]byte) *group.Scalar {
	return scalarFromDigest(c.Group, c.Hash.Compute(frame(args...)))
}

// SessionKey returns the raw digest of the serialized shared point.
func (c *Configuration) SessionKey(k *group.Element) []byte {
	return c.Hash.Compute(encoding.SerializePoint(k, c.Group))
}

// Confirmation returns the key-confirmation tag over the length-framed
// arguments, keyed with the serialized shared point.
func (c *Configuration) Confirmation(k *group.Element, args ...[]byte) []byte {
	return c.MAC.MAC(encoding.SerializePoint(k, c.Group), frame(args...))
}

// SerializeScalar returns the fixed-width encoding of s in the configured group.
func (c *Configuration) SerializeScalar(s *group.Scalar) []byte {
	return encoding.SerializeScalar(s, c.Group)
}

// SerializePoint returns the canonical encoding of e in the configured group.
func (c *Configuration) SerializePoint(e *group.Element) []byte {
	return encoding.SerializePoint(e, c.Group)
}
