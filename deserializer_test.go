// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package owl_test

import (
	"bytes"
	"errors"
	"testing"

	owl "github.com/Nick-Maro/owl-go"
)

func deserializer(t *testing.T, c *configuration) *owl.Deserializer {
	t.Helper()

	d, err := c.conf.Deserializer()
	if err != nil {
		t.Fatal(err)
	}

	return d
}

func TestDeserializeRoundTrip(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		client, server, credentials := register(t, c, testUsername, testPassword)
		d := deserializer(t, c)

		regRequest, err := client.Register(testUsername, testPassword)
		if err != nil {
			t.Fatal(err)
		}

		initRequest, err := client.AuthInit(testUsername, testPassword)
		if err != nil {
			t.Fatal(err)
		}

		initResponse, initial, err := server.AuthInit(testUsername, initRequest, credentials)
		if err != nil {
			t.Fatal(err)
		}

		finishRequest, _, err := client.AuthFinish(initResponse)
		if err != nil {
			t.Fatal(err)
		}

		for name, pair := range map[string]struct {
			serialized  []byte
			deserialize func([]byte) ([]byte, error)
		}{
			"RegistrationRequest": {regRequest.Serialize(), func(b []byte) ([]byte, error) {
				m, err := d.RegistrationRequest(b)
				if err != nil {
					return nil, err
				}
				return m.Serialize(), nil
			}},
			"AuthInitRequest": {initRequest.Serialize(), func(b []byte) ([]byte, error) {
				m, err := d.AuthInitRequest(b)
				if err != nil {
					return nil, err
				}
				return m.Serialize(), nil
			}},
			"AuthInitResponse": {initResponse.Serialize(), func(b []byte) ([]byte, error) {
				m, err := d.AuthInitResponse(b)
				if err != nil {
					return nil, err
				}
				return m.Serialize(), nil
			}},
			"AuthFinishRequest": {finishRequest.Serialize(), func(b []byte) ([]byte, error) {
				m, err := d.AuthFinishRequest(b)
				if err != nil {
					return nil, err
				}
				return m.Serialize(), nil
			}},
			"UserCredentials": {credentials.Serialize(), func(b []byte) ([]byte, error) {
				m, err := d.UserCredentials(b)
				if err != nil {
					return nil, err
				}
				return m.Serialize(), nil
			}},
			"AuthInitialValues": {initial.Serialize(), func(b []byte) ([]byte, error) {
				m, err := d.AuthInitialValues(b)
				if err != nil {
					return nil, err
				}
				return m.Serialize(), nil
			}},
		} {
			reserialized, err := pair.deserialize(pair.serialized)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}

			if !bytes.Equal(pair.serialized, reserialized) {
				t.Fatalf("%s: round trip does not preserve bytes", name)
			}

			if _, err := pair.deserialize(pair.serialized[:len(pair.serialized)-1]); err == nil {
				t.Fatalf("%s: truncated input must be rejected", name)
			}

			if _, err := pair.deserialize(append(pair.serialized, 0)); err == nil {
				t.Fatalf("%s: oversized input must be rejected", name)
			}
		}
	})
}

func TestDeserializeInvalidPoint(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		client, _, _ := register(t, c, testUsername, testPassword)
		d := deserializer(t, c)

		initRequest, err := client.AuthInit(testUsername, testPassword)
		if err != nil {
			t.Fatal(err)
		}

		encoded := initRequest.Serialize()
		// Break the compression tag of X1.
		encoded[0] = 0x05

		if _, err := d.AuthInitRequest(encoded); !errors.Is(err, owl.ErrMalformedRequest) {
			t.Fatalf("want malformed request, got %v", err)
		}
	})
}

func TestDeserializeInvalidScalar(t *testing.T) {
	testAll(t, func(t *testing.T, c *configuration) {
		client, server, credentials := register(t, c, testUsername, testPassword)
		d := deserializer(t, c)

		initRequest, err := client.AuthInit(testUsername, testPassword)
		if err != nil {
			t.Fatal(err)
		}

		initResponse, _, err := server.AuthInit(testUsername, initRequest, credentials)
		if err != nil {
			t.Fatal(err)
		}

		finishRequest, _, err := client.AuthFinish(initResponse)
		if err != nil {
			t.Fatal(err)
		}

		encoded := finishRequest.Serialize()

		// Overwrite the response scalar with the group order, which is out of
		// range.
		order := c.curve.Params().N.FillBytes(make([]byte, scalarLength(c)))
		copy(encoded[len(encoded)-len(order):], order)

		if _, err := d.AuthFinishRequest(encoded); !errors.Is(err, owl.ErrMalformedRequest) {
			t.Fatalf("want malformed request, got %v", err)
		}
	})
}

func scalarLength(c *configuration) int {
	switch c.conf.Group {
	case owl.P256:
		return 32
	case owl.P384:
		return 48
	case owl.P521:
		return 66
	default:
		panic("unsupported group")
	}
}
