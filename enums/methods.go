// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"gopkg.in/yaml.v3"
)

// This file contains implementations of enumgen methods.

// String returns the string representation of the given
// enum value with the given map.
func String[T Enums](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message.
func SetString[T Enums](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// SetStringLower sets the given enum value from its string representation,
// the map from enum names to values, and the name of the enum type,
// which is used for the error message. It also tries the lowercase version
// of the given string if the original version fails.
func SetStringLower[T Enums](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return errors.New(s + " is not a valid value for type " + typeName)
}

// Desc returns the description of the given enum value.
func Desc[T Enums](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return fmt.Sprint(i)
}

// Values returns the given values as a slice of [Enum] values.
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, d := range values {
		res[i] = d
	}
	return res
}

// UnmarshalText loads the enum from the given text.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		errors.Log(fmt.Errorf("enums.UnmarshalText: %v", err))
	}
	return nil
}

// UnmarshalYAML loads the enum from the given yaml node.
// It logs any error instead of returning it to prevent
// one modified enum from tanking an entire object loading operation.
func UnmarshalYAML[T EnumSetter](i T, n *yaml.Node, typeName string) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("enums.UnmarshalYAML: %s must be a scalar, not line %d", typeName, n.Line)
	}
	return UnmarshalText(i, []byte(n.Value), typeName)
}
