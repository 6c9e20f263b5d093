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

// AuthInitRequest is the first message of the login flow, created by the client
// and sent to the server.
type AuthInitRequest struct {
	G   group.Group    `json:"-"`
	X1  *group.Element `json:"X1"`
	X2  *group.Element `json:"X2"`
	PI1 *ZKP           `json:"PI1"`
	PI2 *ZKP           `json:"PI2"`
}

// Serialize returns the byte encoding of AuthInitRequest.
func (m *AuthInitRequest) Serialize() []byte {
	return encoding.Concatenate(
		encoding.SerializePoint(m.X1, m.G),
		encoding.SerializePoint(m.X2, m.G),
		m.PI1.Serialize(m.G),
		m.PI2.Serialize(m.G),
	)
}

// AuthInitResponse is the second message of the login flow, created by the
// server and sent to the client.
type AuthInitResponse struct {
	G      group.Group    `json:"-"`
	X3     *group.Element `json:"X3"`
	X4     *group.Element `json:"X4"`
	Beta   *group.Element `json:"beta"`
	PI3    *ZKP           `json:"PI3"`
	PI4    *ZKP           `json:"PI4"`
	PIBeta *ZKP           `json:"PIbeta"`
}

// Serialize returns the byte encoding of AuthInitResponse.
func (m *AuthInitResponse) Serialize() []byte {
	return encoding.Concatenate(
		encoding.SerializePoint(m.X3, m.G),
		encoding.SerializePoint(m.X4, m.G),
		encoding.SerializePoint(m.Beta, m.G),
		m.PI3.Serialize(m.G),
		m.PI4.Serialize(m.G),
		m.PIBeta.Serialize(m.G),
	)
}

// AuthFinishRequest is the third and last message of the login flow, created by
// the client and sent to the server.
type AuthFinishRequest struct {
	G       group.Group    `json:"-"`
	Alpha   *group.Element `json:"alpha"`
	PIAlpha *ZKP           `json:"PIalpha"`
	R       *group.Scalar  `json:"r"`
}

// Serialize returns the byte encoding of AuthFinishRequest.
func (m *AuthFinishRequest) Serialize() []byte {
	return encoding.Concat3(
		encoding.SerializePoint(m.Alpha, m.G),
		m.PIAlpha.Serialize(m.G),
		encoding.SerializeScalar(m.R, m.G),
	)
}
