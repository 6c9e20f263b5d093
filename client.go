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
	"github.com/Nick-Maro/owl-go/internal/schnorr"
	"github.com/Nick-Maro/owl-go/message"
)

// Client represents an Owl client, holding the state between the first and the
// last login flow. A client runs one login session at a time; the state is
// consumed exactly once, by AuthFinish, and erased whatever the outcome.
type Client struct {
	conf  *internal.Configuration
	state *clientState
}

// clientState holds the values produced by AuthInit and consumed by AuthFinish.
type clientState struct {
	username []byte
	t        *group.Scalar
	pi       *group.Scalar
	x1, x2   *group.Scalar
	bigX1    *group.Element
	bigX2    *group.Element
	pi1, pi2 *message.ZKP
}

// flush zeroes every secret scalar and drops the references.
func (s *clientState) flush() {
	s.t.Zero()
	s.pi.Zero()
	s.x1.Zero()
	s.x2.Zero()
	s.t, s.pi, s.x1, s.x2 = nil, nil, nil, nil
	s.bigX1, s.bigX2 = nil, nil
	s.pi1, s.pi2 = nil, nil
}

// password derives the scalars t and pi from the username and the password,
// applying the configured key stretching function first.
func (c *Client) password(username, password string) (t, pi *group.Scalar, err error) {
	w := c.conf.KSF.Harden([]byte(password), []byte(username), c.conf.Hash.Size())

	t = c.conf.HashToScalar([]byte(username), w)
	pi = c.conf.HashToScalar(c.conf.SerializeScalar(t))

	for i := range w {
		w[i] = 0
	}

	if pi.IsZero() {
		t.Zero()
		return nil, nil, ErrWeakPassword
	}

	return t, pi, nil
}

// Register derives the password verifier and the password-derived point for the
// username, and returns the registration request to transmit to the server over
// a mutually authenticated, confidential channel.
func (c *Client) Register(username, password string) (*message.RegistrationRequest, error) {
	t, pi, err := c.password(username, password)
	if err != nil {
		return nil, err
	}

	bigT := c.conf.Group.Base().Multiply(t)
	t.Zero()

	return &message.RegistrationRequest{
		G:  c.conf.Group,
		Pi: pi,
		T:  bigT,
	}, nil
}

// AuthInit starts a login session and returns the first message to transmit to
// the server. The client keeps the session state for AuthFinish; calling
// AuthInit again erases any pending session.
func (c *Client) AuthInit(username, password string, options ...*ClientOptions) (*message.AuthInitRequest, error) {
	c.Flush()

	t, pi, err := c.password(username, password)
	if err != nil {
		return nil, err
	}

	x1, x2 := clientKeyShares(c.conf, options)
	bigX1 := c.conf.Group.Base().Multiply(x1)
	bigX2 := c.conf.Group.Base().Multiply(x2)

	uid := []byte(username)
	pi1 := schnorr.Prove(c.conf, x1, c.conf.Group.Base(), bigX1, uid)
	pi2 := schnorr.Prove(c.conf, x2, c.conf.Group.Base(), bigX2, uid)

	c.state = &clientState{
		username: uid,
		t:        t,
		pi:       pi,
		x1:       x1,
		x2:       x2,
		bigX1:    bigX1,
		bigX2:    bigX2,
		pi1:      pi1,
		pi2:      pi2,
	}

	return &message.AuthInitRequest{
		G:   c.conf.Group,
		X1:  bigX1,
		X2:  bigX2,
		PI1: pi1,
		PI2: pi2,
	}, nil
}

// Flush abandons any pending login session, erasing its secrets. There is no
// protocol-level cancellation message; the peer's state expires on its side.
func (c *Client) Flush() {
	if c.state != nil {
		c.state.flush()
		c.state = nil
	}
}

// AuthFinish consumes the server's response and the pending session state, and
// returns the final message to transmit together with the session key and the
// key-confirmation tags. The session state is erased whatever the outcome.
func (c *Client) AuthFinish(response *message.AuthInitResponse) (*message.AuthFinishRequest, *AuthFinishResult, error) {
	if c.state == nil {
		return nil, nil, ErrUninitialisedClient
	}

	state := c.state
	defer func() {
		state.flush()
		c.state = nil
	}()

	if !internal.ValidPoint(response.X3) || !internal.ValidPoint(response.X4) ||
		!internal.ValidPoint(response.Beta) {
		return nil, nil, ErrMalformedResponse
	}

	betaBase := state.bigX1.Copy().Add(state.bigX2).Add(response.X3)

	if !schnorr.Verify(c.conf, response.PI3, c.conf.Group.Base(), response.X3, c.conf.ServerID) ||
		!schnorr.Verify(c.conf, response.PI4, c.conf.Group.Base(), response.X4, c.conf.ServerID) ||
		!schnorr.Verify(c.conf, response.PIBeta, betaBase, response.Beta, c.conf.ServerID) {
		return nil, nil, ErrZKPVerification
	}

	s := state.x2.Copy().Multiply(state.pi)

	alphaBase := state.bigX1.Copy().Add(response.X3).Add(response.X4)
	alpha := alphaBase.Copy().Multiply(s)
	piAlpha := schnorr.Prove(c.conf, s, alphaBase, alpha, state.username)

	k := response.Beta.Copy().Subtract(response.X4.Copy().Multiply(s)).Multiply(state.x2)

	h := (&transcript{
		k:        k,
		username: state.username,
		x1:       state.bigX1,
		x2:       state.bigX2,
		pi1:      state.pi1,
		pi2:      state.pi2,
		x3:       response.X3,
		x4:       response.X4,
		pi3:      response.PI3,
		pi4:      response.PI4,
		beta:     response.Beta,
		piBeta:   response.PIBeta,
		alpha:    alpha,
		piAlpha:  piAlpha,
	}).hash(c.conf)

	r := state.x1.Copy().Subtract(state.t.Copy().Multiply(h))

	key := c.conf.SessionKey(k)
	kc, kcTest := confirmationTags(c.conf, k, state.username,
		state.bigX1, state.bigX2, response.X3, response.X4)

	s.Zero()

	request := &message.AuthFinishRequest{
		G:       c.conf.Group,
		Alpha:   alpha,
		PIAlpha: piAlpha,
		R:       r,
	}

	result := &AuthFinishResult{
		Key:    key,
		KC:     kc,
		KCTest: kcTest,
	}

	return request, result, nil
}
