// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package schnorr implements the Schnorr non-interactive zero-knowledge proof
// of knowledge of a discrete logarithm, made non-interactive with the
// Fiat-Shamir transform. Proofs are bound to an arbitrary base, which the
// protocol sets to composite points for the alpha and beta proofs, and to a
// prover identity string.
package schnorr

import (
	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal"
	"github.com/Nick-Maro/owl-go/message"
)

// Prove returns a proof of knowledge of x such that public = base * x, bound to
// the prover identity.
func Prove(
	conf *internal.Configuration, x *group.Scalar, base, public *group.Element, prover []byte,
) *message.ZKP {
	return prove(conf, conf.RandomScalar(), x, base, public, prover)
}

// prove consumes the nonce v: the returned proof's response is v - x*h, and v is
// zeroed before returning.
func prove(
	conf *internal.Configuration, v, x *group.Scalar, base, public *group.Element, prover []byte,
) *message.ZKP {
	commitment := base.Copy().Multiply(v)
	h := challenge(conf, base, commitment, public, prover)
	r := v.Copy().Subtract(x.Copy().Multiply(h))

	v.Zero()

	return &message.ZKP{H: h, R: r}
}

// Verify recomputes the commitment from the proof and returns whether the
// challenge matches. The public point is validated first; arithmetic on an
// invalid point never happens.
func Verify(
	conf *internal.Configuration, proof *message.ZKP, base, public *group.Element, prover []byte,
) bool {
	if proof == nil || proof.H == nil || proof.R == nil {
		return false
	}

	if !internal.ValidPoint(public) || base == nil {
		return false
	}

	commitment := base.Copy().Multiply(proof.R).Add(public.Copy().Multiply(proof.H))

	return challenge(conf, base, commitment, public, prover).Equal(proof.H) == 1
}

func challenge(
	conf *internal.Configuration, base, commitment, public *group.Element, prover []byte,
) *group.Scalar {
	return conf.HashToScalar(
		conf.SerializePoint(base),
		conf.SerializePoint(commitment),
		conf.SerializePoint(public),
		prover,
	)
}
