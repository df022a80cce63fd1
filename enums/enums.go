// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the standard interface for enum types and the
// helper functions that generated enum methods are built on.
package enums

import "fmt"

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this
	// enum type has. This slice will be in the
	// same order as the enum values were defined.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its
	// string representation, and returns an
	// error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// Enums is a type constraint for enum types that
// are based on integer types.
type Enums interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}
