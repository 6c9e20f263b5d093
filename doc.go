// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package owl implements the Owl augmented password-authenticated key exchange protocol.
//
// Owl is an augmented PAKE: a client and a server sharing only a human-chosen
// password establish a high-entropy session key over an insecure channel. The
// server stores a password-derived verifier, never the password, so a database
// compromise yields only an offline dictionary-attack target, and neither an
// active network attacker nor a corrupted server can impersonate the client in
// a later session. Both parties receive cryptographic confirmation that the
// peer holds the same key.
//
// The package exposes the protocol as value-typed messages and pure state
// machine steps: one registration flow and a three-flow login exchange.
// Transport, credential storage, and session management are the caller's.
package owl
