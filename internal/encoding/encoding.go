// SPDX-License-Identifier: MIT
//
// Copyright (C) 2026 The owl-go authors. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides byte encoding utilities.
package encoding

import (
	"encoding/binary"
	"errors"
)

var (
	errInputNegative = errors.New("negative input")
	errInputLarge    = errors.New("input is too high for length")
	errLengthInvalid = errors.New("length is not in [1,4]")
)

// I2OSP Integer to Octet Stream Primitive on maximum 4 bytes.
func I2OSP(value, length int) []byte {
	if length <= 0 || length > 4 {
		panic(errLengthInvalid)
	}

	if value < 0 {
		panic(errInputNegative)
	}

	if length < 4 && value >= 1<<(8*length) {
		panic(errInputLarge)
	}

	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(value))

	return out[4-length:]
}

// EncodeVector returns the input prefixed with its 4-byte big-endian length.
// It is the framing used for every argument of the protocol's tuple hashes.
func EncodeVector(in []byte) []byte {
	return append(I2OSP(len(in), 4), in...)
}

func Concat(a, b []byte) []byte {
	e := make([]byte, 0, len(a)+len(b))
	e = append(e, a...)
	e = append(e, b...)

	return e
}

func Concat3(a, b, c []byte) []byte {
	e := make([]byte, 0, len(a)+len(b)+len(c))
	e = append(e, a...)
	e = append(e, b...)
	e = append(e, c...)

	return e
}

// Concatenate takes the variadic array of input and returns a concatenation of it.
func Concatenate(input ...[]byte) []byte {
	length := 0
	for _, b := range input {
		length += len(b)
	}

	buf := make([]byte, 0, length)

	for _, in := range input {
		buf = append(buf, in...)
	}

	return buf
}
