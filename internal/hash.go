// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto"
	"crypto/hmac"

	"github.com/bytemare/hash"
	"github.com/bytemare/ksf"
)

// NewHash returns a newly instantiated Hash.
func NewHash(id crypto.Hash) *Hash {
	return &Hash{id: id}
}

// Hash wraps a hash function and exposes only necessary hashing methods.
type Hash struct {
	id crypto.Hash
}

// Size returns the output size of the hashing function.
func (h *Hash) Size() int {
	return hash.FromCrypto(h.id).GetHashFunction().Size()
}

// Compute returns the hash of the concatenation of the input, over a fresh state.
func (h *Hash) Compute(input ...[]byte) []byte {
	f := hash.FromCrypto(h.id).GetHashFunction()
	for _, i := range input {
		_, _ = f.Write(i)
	}

	return f.Sum(nil)
}

// NewMac returns a newly instantiated Mac.
func NewMac(id crypto.Hash) *Mac {
	return &Mac{h: hash.FromCrypto(id).GetHashFunction(), id: id}
}

// Mac wraps a hash function and exposes Message Authentication Code methods.
type Mac struct {
	h  *hash.Fixed
	id crypto.Hash
}

// Equal returns a constant-time comparison of the input.
func (m *Mac) Equal(a, b []byte) bool {
	return hmac.Equal(a, b)
}

// MAC computes an HMAC over the message using key. Keys of any length are
// accepted, such as serialized group elements longer than the digest.
func (m *Mac) MAC(key, message []byte) []byte {
	mac := hmac.New(m.id.New, key)
	_, _ = mac.Write(message)

	return mac.Sum(nil)
}

// Size returns the MAC's output length.
func (m *Mac) Size() int {
	return m.h.Size()
}

// NewKSF returns a newly instantiated KSF.
func NewKSF(id ksf.Identifier) *KSF {
	if id == 0 {
		return &KSF{&IdentityKSF{}}
	}

	return &KSF{id.Get()}
}

// KSF wraps a key stretching function and exposes its functions.
type KSF struct {
	ksfInterface
}

type ksfInterface interface {
	// Harden uses default parameters for the key derivation function over the input password and salt.
	Harden(password, salt []byte, length int) []byte
	Parameterize(parameters ...int)
}

// IdentityKSF represents a KSF with no operations.
type IdentityKSF struct{}

// Harden returns the password as is.
func (i IdentityKSF) Harden(password, _ []byte, _ int) []byte {
	return password
}

// Parameterize applies KSF parameters if defined.
func (i IdentityKSF) Parameterize(_ ...int) {
	// no-op
}
