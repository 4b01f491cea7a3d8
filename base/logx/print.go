// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// PrintlnDebug prints the given arguments to [os.Stdout], colored and
// gated by [UserLevel], like [fmt.Println] at [slog.LevelDebug].
func PrintlnDebug(a ...any) {
	printlnLevel(slog.LevelDebug, a...)
}

// PrintlnInfo prints the given arguments to [os.Stdout], gated by
// [UserLevel], like [fmt.Println] at [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	printlnLevel(slog.LevelInfo, a...)
}

// PrintlnWarn prints the given arguments to [os.Stderr], colored and
// gated by [UserLevel], like [fmt.Println] at [slog.LevelWarn].
func PrintlnWarn(a ...any) {
	printlnLevel(slog.LevelWarn, a...)
}

// PrintlnError prints the given arguments to [os.Stderr], colored and
// gated by [UserLevel], like [fmt.Println] at [slog.LevelError].
func PrintlnError(a ...any) {
	printlnLevel(slog.LevelError, a...)
}

func printlnLevel(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	w := os.Stdout
	if level >= slog.LevelWarn {
		w = os.Stderr
	}
	fmt.Fprintln(w, ApplyLevelColor(level, fmt.Sprint(a...)))
}
