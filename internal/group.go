// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"math/big"

	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal/encoding"
)

// Prime orders of the base-point subgroups, from the published curve parameters.
const (
	p256Order = "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"
	p384Order = "ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf" +
		"581a0db248b0a77aecec196accc52973"
	p521Order = "01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
		"ffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"
)

var groupOrders = map[group.Group]*big.Int{
	group.P256Sha256: mustParseOrder(p256Order),
	group.P384Sha384: mustParseOrder(p384Order),
	group.P521Sha512: mustParseOrder(p521Order),
}

func mustParseOrder(hexOrder string) *big.Int {
	n, ok := new(big.Int).SetString(hexOrder, 16)
	if !ok {
		panic("invalid group order constant")
	}

	return n
}

// Order returns the prime order of the group's base-point subgroup.
func Order(g group.Group) *big.Int {
	n, ok := groupOrders[g]
	if !ok {
		panic("invalid group identifier")
	}

	return n
}

// scalarFromDigest interprets digest as a big-endian integer, reduces it modulo
// the group order, and returns the result as a scalar.
func scalarFromDigest(g group.Group, digest []byte) *group.Scalar {
	i := new(big.Int).SetBytes(digest)
	i.Mod(i, Order(g))

	out := i.FillBytes(make([]byte, encoding.ScalarLength[g]))

	s := g.NewScalar()
	if err := s.Decode(out); err != nil {
		// A value in [0, n) always decodes.
		panic(err)
	}

	return s
}

// ValidPoint returns whether e is usable as a public protocol value: non-nil and
// not the group identity. Elements decoded from the wire are already known to be
// on the curve.
func ValidPoint(e *group.Element) bool {
	return e != nil && !e.IsIdentity()
}
