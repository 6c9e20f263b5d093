// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package owl

import (
	"sync"

	group "github.com/bytemare/crypto"

	"github.com/Nick-Maro/owl-go/internal"
	"github.com/Nick-Maro/owl-go/internal/encoding"
	"github.com/Nick-Maro/owl-go/internal/schnorr"
	"github.com/Nick-Maro/owl-go/message"
)

// UserCredentials is the server's per-user record, written once at registration
// and read-only thereafter. It never contains the password; pi and T are
// sensitive in that they enable an offline dictionary attack, nothing more.
type UserCredentials struct {
	G   group.Group    `json:"-"`
	X3  *group.Element `json:"X3"`
	PI3 *message.ZKP   `json:"PI3"`
	Pi  *group.Scalar  `json:"pi"`
	T   *group.Element `json:"T"`
}

// Serialize returns the byte encoding of UserCredentials. Persistence must
// preserve all four fields byte-identically.
func (c *UserCredentials) Serialize() []byte {
	return encoding.Concatenate(
		encoding.SerializePoint(c.X3, c.G),
		c.PI3.Serialize(c.G),
		encoding.SerializeScalar(c.Pi, c.G),
		encoding.SerializePoint(c.T, c.G),
	)
}

// CredentialStore is the storage contract the server consumes. Implementations
// must return records byte-identical to what was stored.
type CredentialStore interface {
	// Get returns the credentials registered for the username, if any.
	Get(username string) (*UserCredentials, bool)

	// Put stores the credentials under the username.
	Put(username string, credentials *UserCredentials)
}

// MemoryStore is an in-memory CredentialStore, safe for concurrent use.
type MemoryStore struct {
	users map[string]*UserCredentials
	mu    sync.RWMutex
}

// NewMemoryStore returns an empty in-memory credential store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*UserCredentials)}
}

// Get returns the credentials registered for the username, if any.
func (s *MemoryStore) Get(username string) (*UserCredentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credentials, ok := s.users[username]

	return credentials, ok
}

// Put stores the credentials under the username.
func (s *MemoryStore) Put(username string, credentials *UserCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[username] = credentials
}

// fakeUserCredentials builds a random, well-formed credential record. See
// Server.FakeUserCredentials.
func fakeUserCredentials(conf *internal.Configuration) *UserCredentials {
	x3 := conf.RandomScalar()
	x3Pub := conf.Group.Base().Multiply(x3)
	pi3 := schnorr.Prove(conf, x3, conf.Group.Base(), x3Pub, conf.ServerID)

	x3.Zero()

	return &UserCredentials{
		G:   conf.Group,
		X3:  x3Pub,
		PI3: pi3,
		Pi:  conf.RandomScalar(),
		T:   conf.Group.Base().Multiply(conf.RandomScalar()),
	}
}
