// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorspace converts colors between models, prints
// gradients and the named swatch table, and reads and writes
// palette files.
package main

import (
	"os"

	"cogentcore.org/colorspace/base/errors"
)

func main() {
	if errors.Log(newRootCmd().Execute()) != nil {
		os.Exit(1)
	}
}
