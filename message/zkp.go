// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package message

import (
	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal/encoding"
)

// ZKP is a Schnorr non-interactive proof of knowledge of a discrete logarithm,
// as transmitted in every protocol message. Its validity is only established by
// verification.
type ZKP struct {
	H *group.Scalar `json:"h"`
	R *group.Scalar `json:"r"`
}

// Serialize returns the byte encoding of the proof.
func (z *ZKP) Serialize(g group.Group) []byte {
	return encoding.Concat(encoding.SerializeScalar(z.H, g), encoding.SerializeScalar(z.R, g))
}
