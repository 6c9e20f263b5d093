// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package owl

import (
	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal"
	"github.com/Nick-Maro/owl-go/message"
)

// AuthFinishResult is the terminal output of a successful login on either side.
type AuthFinishResult struct {
	// Key is the 32-byte session key, H(K).
	Key []byte `json:"key"`

	// KC is the key-confirmation tag to transmit to the peer.
	KC []byte `json:"kc"`

	// KCTest is the tag the peer is expected to transmit; compare it to the
	// received tag with VerifyKeyConfirmation.
	KCTest []byte `json:"kcTest"`
}

// transcript collects every public value of one login session. Both sides hash
// the exact same sequence; reordering or omitting one element breaks the
// password check.
type transcript struct {
	k        *group.Element
	username []byte
	x1, x2   *group.Element
	pi1, pi2 *message.ZKP
	x3, x4   *group.Element
	pi3, pi4 *message.ZKP
	beta     *group.Element
	piBeta   *message.ZKP
	alpha    *group.Element
	piAlpha  *message.ZKP
}

func (t *transcript) hash(conf *internal.Configuration) *group.Scalar {
	return conf.HashToScalar(
		conf.SerializePoint(t.k),
		t.username,
		conf.SerializePoint(t.x1),
		conf.SerializePoint(t.x2),
		conf.SerializeScalar(t.pi1.H),
		conf.SerializeScalar(t.pi1.R),
		conf.SerializeScalar(t.pi2.H),
		conf.SerializeScalar(t.pi2.R),
		conf.ServerID,
		conf.SerializePoint(t.x3),
		conf.SerializePoint(t.x4),
		conf.SerializeScalar(t.pi3.H),
		conf.SerializeScalar(t.pi3.R),
		conf.SerializeScalar(t.pi4.H),
		conf.SerializeScalar(t.pi4.R),
		conf.SerializePoint(t.beta),
		conf.SerializeScalar(t.piBeta.H),
		conf.SerializeScalar(t.piBeta.R),
		conf.SerializePoint(t.alpha),
		conf.SerializeScalar(t.piAlpha.H),
		conf.SerializeScalar(t.piAlpha.R),
	)
}

// confirmationTags derives the two directional key-confirmation tags. The
// client transmits the client tag and expects the server tag; the server does
// the opposite.
func confirmationTags(
	conf *internal.Configuration, k *group.Element, username []byte, x1, x2, x3, x4 *group.Element,
) (clientTag, serverTag []byte) {
	clientTag = conf.Confirmation(k,
		username,
		conf.ServerID,
		conf.SerializePoint(x1),
		conf.SerializePoint(x2),
		conf.SerializePoint(x3),
		conf.SerializePoint(x4),
	)

	serverTag = conf.Confirmation(k,
		conf.ServerID,
		username,
		conf.SerializePoint(x3),
		conf.SerializePoint(x4),
		conf.SerializePoint(x1),
		conf.SerializePoint(x2),
	)

	return clientTag, serverTag
}
