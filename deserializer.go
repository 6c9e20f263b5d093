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

// Deserializer exposes the message deserialization functions. Every decoded
// point is validated on-curve and every decoded scalar is checked to be below
// the group order by the arithmetic layer; identity and non-zero checks remain
// the state machines' duty.
type Deserializer struct {
	conf *internal.Configuration
}

type decoder struct {
	conf   *internal.Configuration
	input  []byte
	offset int
	err    error
}

func (d *decoder) element() *group.Element {
	if d.err != nil {
		return nil
	}

	e := d.conf.Group.NewElement()
	if err := e.Decode(d.input[d.offset : d.offset+d.conf.PointLength]); err != nil {
		d.err = err
		return nil
	}

	d.offset += d.conf.PointLength

	return e
}

func (d *decoder) scalar() *group.Scalar {
	if d.err != nil {
		return nil
	}

	s := d.conf.Group.NewScalar()
	if err := s.Decode(d.input[d.offset : d.offset+d.conf.ScalarLength]); err != nil {
		d.err = err
		return nil
	}

	d.offset += d.conf.ScalarLength

	return s
}

func (d *decoder) zkp() *message.ZKP {
	return &message.ZKP{H: d.scalar(), R: d.scalar()}
}

func (d *Deserializer) decoder(input []byte, elements, scalars int, lengthErr *Error) (*decoder, error) {
	if len(input) != elements*d.conf.PointLength+scalars*d.conf.ScalarLength {
		return nil, lengthErr
	}

	return &decoder{conf: d.conf, input: input}, nil
}

// RegistrationRequest takes a serialized RegistrationRequest and returns the
// deserialized structure.
func (d *Deserializer) RegistrationRequest(input []byte) (*message.RegistrationRequest, error) {
	dec, err := d.decoder(input, 1, 1, ErrMalformedRequest)
	if err != nil {
		return nil, err
	}

	m := &message.RegistrationRequest{
		G:  d.conf.Group,
		Pi: dec.scalar(),
		T:  dec.element(),
	}

	if dec.err != nil {
		return nil, ErrCodeMalformedRequest.New("invalid registration request", dec.err)
	}

	return m, nil
}

// AuthInitRequest takes a serialized AuthInitRequest and returns the
// deserialized structure.
func (d *Deserializer) AuthInitRequest(input []byte) (*message.AuthInitRequest, error) {
	dec, err := d.decoder(input, 2, 4, ErrMalformedRequest)
	if err != nil {
		return nil, err
	}

	m := &message.AuthInitRequest{
		G:   d.conf.Group,
		X1:  dec.element(),
		X2:  dec.element(),
		PI1: dec.zkp(),
		PI2: dec.zkp(),
	}

	if dec.err != nil {
		return nil, ErrCodeMalformedRequest.New("invalid auth init request", dec.err)
	}

	return m, nil
}

// AuthInitResponse takes a serialized AuthInitResponse and returns the
// deserialized structure.
func (d *Deserializer) AuthInitResponse(input []byte) (*message.AuthInitResponse, error) {
	dec, err := d.decoder(input, 3, 6, ErrMalformedResponse)
	if err != nil {
		return nil, err
	}

	m := &message.AuthInitResponse{
		G:      d.conf.Group,
		X3:     dec.element(),
		X4:     dec.element(),
		Beta:   dec.element(),
		PI3:    dec.zkp(),
		PI4:    dec.zkp(),
		PIBeta: dec.zkp(),
	}

	if dec.err != nil {
		return nil, ErrCodeMalformedResponse.New("invalid auth init response", dec.err)
	}

	return m, nil
}

// AuthFinishRequest takes a serialized AuthFinishRequest and returns the
// deserialized structure.
func (d *Deserializer) AuthFinishRequest(input []byte) (*message.AuthFinishRequest, error) {
	dec, err := d.decoder(input, 1, 3, ErrMalformedRequest)
	if err != nil {
		return nil, err
	}

	m := &message.AuthFinishRequest{
		G:       d.conf.Group,
		Alpha:   dec.element(),
		PIAlpha: dec.zkp(),
		R:       dec.scalar(),
	}

	if dec.err != nil {
		return nil, ErrCodeMalformedRequest.New("invalid auth finish request", dec.err)
	}

	return m, nil
}

// UserCredentials takes a serialized credential record and returns the
// deserialized structure.
func (d *Deserializer) UserCredentials(input []byte) (*UserCredentials, error) {
	dec, err := d.decoder(input, 2, 3, ErrMalformedRequest)
	if err != nil {
		return nil, err
	}

	c := &UserCredentials{
		G:   d.conf.Group,
		X3:  dec.element(),
		PI3: dec.zkp(),
		Pi:  dec.scalar(),
		T:   dec.element(),
	}

	if dec.err != nil {
		return nil, ErrCodeMalformedRequest.New("invalid credential record", dec.err)
	}

	return c, nil
}

// AuthInitialValues takes serialized server session state and returns the
// deserialized structure.
func (d *Deserializer) AuthInitialValues(input []byte) (*AuthInitialValues, error) {
	dec, err := d.decoder(input, 6, 12, ErrMalformedRequest)
	if err != nil {
		return nil, err
	}

	v := &AuthInitialValues{
		G:        d.conf.Group,
		T:        dec.element(),
		Pi:       dec.scalar(),
		X4Secret: dec.scalar(),
		X1:       dec.element(),
		X2:       dec.element(),
		X3:       dec.element(),
		X4:       dec.element(),
		Beta:     dec.element(),
		PI1:      dec.zkp(),
		PI2:      dec.zkp(),
		PI3:      dec.zkp(),
		PI4:      dec.zkp(),
		PIBeta:   dec.zkp(),
	}

	if dec.err != nil {
		return nil, ErrCodeMalformedRequest.New("invalid session state", dec.err)
	}

	return v, nil
}
