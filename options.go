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
)

// ClientOptions enables setting the client's ephemeral key shares, which
// default to secure random scalars if not set. Fixing them, together with the
// server's share, pins K, the session key and the confirmation tags, for test
// vectors and audits. The Schnorr proof nonces are not fixed: the proofs, the
// transcript hash and the response scalar r still differ between runs. Never
// reuse a share across sessions.
type ClientOptions struct {
	X1 *group.Scalar
	X2 *group.Scalar
}

// ServerOptions enables setting the server's ephemeral key share, which
// defaults to a secure random scalar if not set.
type ServerOptions struct {
	X4 *group.Scalar
}

func clientKeyShares(conf *internal.Configuration, options []*ClientOptions) (x1, x2 *group.Scalar) {
	if len(options) != 0 && options[0] != nil && options[0].X1 != nil {
		x1 = options[0].X1.Copy()
	} else {
		x1 = conf.RandomScalar()
	}

	if len(options) != 0 && options[0] != nil && options[0].X2 != nil {
		x2 = options[0].X2.Copy()
	} else {
		x2 = conf.RandomScalar()
	}

	return x1, x2
}

func serverKeyShare(conf *internal.Configuration, options []*ServerOptions) *group.Scalar {
	if len(options) != 0 && options[0] != nil && options[0].X4 != nil {
		return options[0].X4.Copy()
	}

	return conf.RandomScalar()
}
