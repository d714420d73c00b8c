// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import "github.com/cpmech/gosl/io"

// Warn prints a configuration warning. Nothing is printed if io.Verbose is false
func Warn(msg string, prm ...interface{}) {
	io.Pfyel("warning: "+msg+"\n", prm...)
}
