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
	"github.com/Nick-Maro/owl-go/internal/encoding"
	"github.com/Nick-Maro/owl-go/internal/schnorr"
	"github.com/Nick-Maro/owl-go/message"
)

// Server represents an Owl server. It holds no per-session state itself: the
// AuthInitialValues returned by AuthInit belong to the caller, who hands them
// back to AuthFinish for that session and no other.
type Server struct {
	conf *internal.Configuration
}

// AuthInitialValues is the server's state between the second login flow and the
// finish step. It holds secrets and is consumed exactly once; AuthFinish erases
// it whatever the outcome. A session abandoned before the finish step must be
// erased with Flush.
type AuthInitialValues struct {
	G        group.Group    `json:"-"`
	T        *group.Element `json:"T"`
	Pi       *group.Scalar  `json:"pi"`
	X4Secret *group.Scalar  `json:"x4"`
	X1       *group.Element `json:"X1"`
	X2       *group.Element `json:"X2"`
	X3       *group.Element `json:"X3"`
	X4       *group.Element `json:"X4"`
	Beta     *group.Element `json:"beta"`
	PI1      *message.ZKP   `json:"PI1"`
	PI2      *message.ZKP   `json:"PI2"`
	PI3      *message.ZKP   `json:"PI3"`
	PI4      *message.ZKP   `json:"PI4"`
	PIBeta   *message.ZKP   `json:"PIbeta"`
}

// Serialize returns the byte encoding of AuthInitialValues, for deployments
// that hold session state out of process. The encoding contains secrets and
// must be protected and erased like the live value.
func (v *AuthInitialValues) Serialize() []byte {
	return encoding.Concatenate(
		encoding.SerializePoint(v.T, v.G),
		encoding.SerializeScalar(v.Pi, v.G),
		encoding.SerializeScalar(v.X4Secret, v.G),
		encoding.SerializePoint(v.X1, v.G),
		encoding.SerializePoint(v.X2, v.G),
		encoding.SerializePoint(v.X3, v.G),
		encoding.SerializePoint(v.X4, v.G),
		encoding.SerializePoint(v.Beta, v.G),
		v.PI1.Serialize(v.G),
		v.PI2.Serialize(v.G),
		v.PI3.Serialize(v.G),
		v.PI4.Serialize(v.G),
		v.PIBeta.Serialize(v.G),
	)
}

// Flush zeroes the secret scalars and drops the references.
func (v *AuthInitialValues) Flush() {
	v.Pi.Zero()
	v.X4Secret.Zero()
	v.Pi, v.X4Secret = nil, nil
	v.T, v.X1, v.X2, v.X3, v.X4, v.Beta = nil, nil, nil, nil, nil, nil
	v.PI1, v.PI2, v.PI3, v.PI4, v.PIBeta = nil, nil, nil, nil, nil
}

// Register validates a registration request and returns the per-user record to
// persist. The request is expected to arrive over a mutually authenticated,
// confidential channel; the protocol does not protect it.
func (s *Server) Register(request *message.RegistrationRequest) (*UserCredentials, error) {
	if request.Pi == nil || request.Pi.IsZero() || !internal.ValidPoint(request.T) {
		return nil, ErrMalformedRequest
	}

	x3 := s.conf.RandomScalar()
	bigX3 := s.conf.Group.Base().Multiply(x3)
	pi3 := schnorr.Prove(s.conf, x3, s.conf.Group.Base(), bigX3, s.conf.ServerID)

	x3.Zero()

	return &UserCredentials{
		G:   s.conf.Group,
		X3:  bigX3,
		PI3: pi3,
		Pi:  request.Pi.Copy(),
		T:   request.T.Copy(),
	}, nil
}

// FakeUserCredentials returns a random, well-formed credential record. When a
// username is not registered, run AuthInit against such a record instead of
// returning early: the exchange then proceeds with uniform timing and fails the
// password check at the finish step, so an attacker cannot probe for usernames.
func (s *Server) FakeUserCredentials() *UserCredentials {
	return fakeUserCredentials(s.conf)
}

// AuthInit consumes the client's first message and returns the response to
// transmit together with the session state to hand back to AuthFinish.
func (s *Server) AuthInit(
	username string, request *message.AuthInitRequest, credentials *UserCredentials, options ...*ServerOptions,
) (*message.AuthInitResponse, *AuthInitialValues, error) {
	if credentials == nil {
		return nil, nil, ErrUnknownUser
	}

	if !internal.ValidPoint(request.X1) || !internal.ValidPoint(request.X2) {
		return nil, nil, ErrMalformedRequest
	}

	uid := []byte(username)
	if !schnorr.Verify(s.conf, request.PI1, s.conf.Group.Base(), request.X1, uid) ||
		!schnorr.Verify(s.conf, request.PI2, s.conf.Group.Base(), request.X2, uid) {
		return nil, nil, ErrZKPVerification
	}

	x4 := serverKeyShare(s.conf, options)
	bigX4 := s.conf.Group.Base().Multiply(x4)
	pi4 := schnorr.Prove(s.conf, x4, s.conf.Group.Base(), bigX4, s.conf.ServerID)

	secret := x4.Copy().Multiply(credentials.Pi)

	betaBase := request.X1.Copy().Add(request.X2).Add(credentials.X3)
	beta := betaBase.Copy().Multiply(secret)

	if beta.IsIdentity() {
		secret.Zero()
		x4.Zero()

		return nil, nil, ErrMalformedRequest
	}

	piBeta := schnorr.Prove(s.conf, secret, betaBase, beta, s.conf.ServerID)

	secret.Zero()

	initial := &AuthInitialValues{
		G:        s.conf.Group,
		T:        credentials.T,
		Pi:       credentials.Pi.Copy(),
		X4Secret: x4,
		X1:       request.X1,
		X2:       request.X2,
		X3:       credentials.X3,
		X4:       bigX4,
		Beta:     beta,
		PI1:      request.PI1,
		PI2:      request.PI2,
		PI3:      credentials.PI3,
		PI4:      pi4,
		PIBeta:   piBeta,
	}

	response := &message.AuthInitResponse{
		G:      s.conf.Group,
		X3:     credentials.X3,
		X4:     bigX4,
		Beta:   beta,
		PI3:    credentials.PI3,
		PI4:    pi4,
		PIBeta: piBeta,
	}

	return response, initial, nil
}

// AuthFinish consumes the client's last message and the session state, checks
// the proof and the password, and returns the session key and the
// key-confirmation tags. The session state is erased whatever the outcome.
func (s *Server) AuthFinish(
	username string, request *message.AuthFinishRequest, initial *AuthInitialValues,
) (*AuthFinishResult, error) {
	defer initial.Flush()

	uid := []byte(username)

	if !internal.ValidPoint(request.Alpha) {
		return nil, ErrZKPVerification
	}

	alphaBase := initial.X1.Copy().Add(initial.X3).Add(initial.X4)
	if !schnorr.Verify(s.conf, request.PIAlpha, alphaBase, request.Alpha, uid) {
		return nil, ErrZKPVerification
	}

	if request.R == nil {
		return nil, ErrAuthentication
	}

	secret := initial.X4Secret.Copy().Multiply(initial.Pi)
	k := request.Alpha.Copy().Subtract(initial.X2.Copy().Multiply(secret)).Multiply(initial.X4Secret)

	h := (&transcript{
		k:        k,
		username: uid,
		x1:       initial.X1,
		x2:       initial.X2,
		pi1:      initial.PI1,
		pi2:      initial.PI2,
		x3:       initial.X3,
		x4:       initial.X4,
		pi3:      initial.PI3,
		pi4:      initial.PI4,
		beta:     initial.Beta,
		piBeta:   initial.PIBeta,
		alpha:    request.Alpha,
		piAlpha:  request.PIAlpha,
	}).hash(s.conf)

	// Password check: G*r + T*h must reconstruct the X1 the client committed to
	// in the first flow.
	reconstructed := s.conf.Group.Base().Multiply(request.R).Add(initial.T.Copy().Multiply(h))
	if reconstructed.Equal(initial.X1) != 1 {
		secret.Zero()

		return nil, ErrAuthentication
	}

	key := s.conf.SessionKey(k)
	clientTag, serverTag := confirmationTags(s.conf, k, uid,
		initial.X1, initial.X2, initial.X3, initial.X4)

	secret.Zero()

	return &AuthFinishResult{
		Key:    key,
		KC:     serverTag,
		KCTest: clientTag,
	}, nil
}
