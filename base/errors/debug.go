// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build debug

package errors

// Debug is whether to put the program in debug mode
// and capture the stack traces for errors.
var Debug = true
