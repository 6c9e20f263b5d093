// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package message provides the message structures for the Owl protocol.
package message

import (
	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal/encoding"
)

// RegistrationRequest is the single message of the registration flow, created by
// the client and sent to the server over a mutually authenticated, confidential
// channel. It carries the password verifier pi and the password-derived point T,
// never the password itself.
type RegistrationRequest struct {
	G  group.Group    `json:"-"`
	Pi *group.Scalar  `json:"pi"`
	T  *group.Element `json:"T"`
}

// Serialize returns the byte encoding of RegistrationRequest.
func (r *RegistrationRequest) Serialize() []byte {
	return encoding.Concat(encoding.SerializeScalar(r.Pi, r.G), encoding.SerializePoint(r.T, r.G))
}
