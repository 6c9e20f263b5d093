// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package owl_test

import (
	"crypto/elliptic"
	"testing"

	group "github.com/bytemare/crypto"

	owl "github.com/Nick-Maro/owl-go"
)

// helper functions

type configuration struct {
	curve elliptic.Curve
	conf  *owl.Configuration
	name  string
}

var configurationTable = []*configuration{
	{
		name:  "P256",
		conf:  &owl.Configuration{ServerID: "server.example.com", Group: owl.P256},
		curve: elliptic.P256(),
	},
	{
		name:  "P384",
		conf:  &owl.Configuration{ServerID: "server.example.com", Group: owl.P384},
		curve: elliptic.P384(),
	},
	{
		name:  "P521",
		conf:  &owl.Configuration{ServerID: "server.example.com", Group: owl.P521},
		curve: elliptic.P521(),
	},
}

func testAll(t *testing.T, f func(*testing.T, *configuration)) {
	for _, test := range configurationTable {
		t.Run(test.name, func(t *testing.T) {
			f(t, test)
		})
	}
}

func clientServer(t *testing.T, c *configuration) (*owl.Client, *owl.Server) {
	t.Helper()

	client, err := c.conf.Client()
	if err != nil {
		t.Fatal(err)
	}

	server, err := c.conf.Server()
	if err != nil {
		t.Fatal(err)
	}

	return client, server
}

func register(t *testing.T, c *configuration, username, password string) (*owl.Client, *owl.Server, *owl.UserCredentials) {
	t.Helper()

	client, server := clientServer(t, c)

	request, err := client.Register(username, password)
	if err != nil {
		t.Fatal(err)
	}

	credentials, err := server.Register(request)
	if err != nil {
		t.Fatal(err)
	}

	return client, server, credentials
}

// login runs a full successful exchange and returns both results.
func login(
	t *testing.T,
	client *owl.Client,
	server *owl.Server,
	credentials *owl.UserCredentials,
	username, password string,
) (clientResult, serverResult *owl.AuthFinishResult) {
	t.Helper()

	initRequest, err := client.AuthInit(username, password)
	if err != nil {
		t.Fatal(err)
	}

	initResponse, initial, err := server.AuthInit(username, initRequest, credentials)
	if err != nil {
		t.Fatal(err)
	}

	finishRequest, clientResult, err := client.AuthFinish(initResponse)
	if err != nil {
		t.Fatal(err)
	}

	serverResult, err = server.AuthFinish(username, finishRequest, initial)
	if err != nil {
		t.Fatal(err)
	}

	return clientResult, serverResult
}

func randomElement(g group.Group) *group.Element {
	return g.Base().Multiply(g.NewScalar().Random())
}

func identityElement(g group.Group) *group.Element {
	return g.NewElement()
}
