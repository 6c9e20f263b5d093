// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package owl

import (
	"crypto"
	"crypto/hmac"

	group "github.com/bytemare/crypto"
	"github.com/bytemare/ksf"

	"github.com/Nick-Maro/owl-go/internal"
	"github.com/Nick-Maro/owl-go/internal/encoding"
)

// Group identifies the prime-order group the protocol runs in.
type Group byte

const (
	// P256 is the NIST P-256 group.
	P256 = Group(group.P256Sha256)

	// P384 is the NIST P-384 group.
	P384 = Group(group.P384Sha384)

	// P521 is the NIST P-521 group.
	P521 = Group(group.P521Sha512)
)

// Available returns whether the group is supported by the protocol.
func (g Group) Available() bool {
	switch g {
	case P256, P384, P521:
		return true
	default:
		return false
	}
}

// Group returns the group identifier in the arithmetic layer.
func (g Group) Group() group.Group {
	return group.Group(g)
}

// Configuration collects the protocol parameters shared by a client and a
// server. It is immutable once in use; changing the server identity or the
// group changes every dependent value.
type Configuration struct {
	// ServerID is the server's identity string, bound into every
	// server-originated proof and into the transcript hash. It must be non-empty
	// and stable for a given server.
	ServerID string `json:"serverId"`

	// KSF optionally names a key stretching function applied to the password
	// before it enters the protocol, salted with the username. The zero value
	// leaves the password as is.
	KSF ksf.Identifier `json:"ksf,omitempty"`

	// Group selects the curve. The zero value is not valid.
	Group Group `json:"group"`
}

// DefaultConfiguration returns a configuration over P-256 for the given server
// identity.
func DefaultConfiguration(serverID string) *Configuration {
	return &Configuration{
		ServerID: serverID,
		KSF:      0,
		Group:    P256,
	}
}

func (c *Configuration) verify() error {
	if !c.Group.Available() {
		return ErrCodeConfiguration.New("invalid group identifier")
	}

	if c.ServerID == "" {
		return ErrCodeConfiguration.New("empty server identity")
	}

	return nil
}

func (c *Configuration) toInternal() (*internal.Configuration, error) {
	if err := c.verify(); err != nil {
		return nil, err
	}

	g := c.Group.Group()

	return &internal.Configuration{
		Hash:         internal.NewHash(crypto.SHA256),
		MAC:          internal.NewMac(crypto.SHA256),
		KSF:          internal.NewKSF(c.KSF),
		ServerID:     []byte(c.ServerID),
		Group:        g,
		ScalarLength: encoding.ScalarLength[g],
		PointLength:  encoding.PointLength[g],
	}, nil
}

// Client returns a new client for this configuration.
func (c *Configuration) Client() (*Client, error) {
	conf, err := c.toInternal()
	if err != nil {
		return nil, err
	}

	return &Client{conf: conf}, nil
}

// Server returns a new server for this configuration.
func (c *Configuration) Server() (*Server, error) {
	conf, err := c.toInternal()
	if err != nil {
		return nil, err
	}

	return &Server{conf: conf}, nil
}

// Deserializer returns a message deserializer for this configuration.
func (c *Configuration) Deserializer() (*Deserializer, error) {
	conf, err := c.toInternal()
	if err != nil {
		return nil, err
	}

	return &Deserializer{conf: conf}, nil
}

// VerifyKeyConfirmation compares, in constant time, a locally computed
// key-confirmation tag against the tag received from the peer.
func VerifyKeyConfirmation(expected, received []byte) bool {
	return hmac.Equal(expected, received)
}
