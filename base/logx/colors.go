// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// colorProfile is the termenv color profile, stored globally for
// convenience of access by the color functions.
var colorProfile = termenv.ColorProfile()

// ApplyColor applies the given color to the given string
// and returns the resulting string. If [UseColor] is set
// to false, it just returns the string it was passed.
func ApplyColor(clr string, str string) string {
	if !UseColor {
		return str
	}
	return termenv.String(str).Foreground(colorProfile.Color(clr)).String()
}

// DebugColor returns the given string formatted in the color
// associated with debug messages.
func DebugColor(str string) string {
	return ApplyColor("#3fb1e8", str)
}

// InfoColor returns the given string formatted in the color
// associated with info messages, which is just the default color.
func InfoColor(str string) string {
	return str
}

// WarnColor returns the given string formatted in the color
// associated with warning messages.
func WarnColor(str string) string {
	return ApplyColor("#e7c101", str)
}

// ErrorColor returns the given string formatted in the color
// associated with error messages.
func ErrorColor(str string) string {
	return ApplyColor("#ee1010", str)
}

// SuccessColor returns the given string formatted in the color
// associated with success messages.
func SuccessColor(str string) string {
	return ApplyColor("#22c219", str)
}

// ApplyLevelColor applies the color associated with the given level
// to the given string and returns the resulting string.
func ApplyLevelColor(level slog.Level, str string) string {
	switch level {
	case slog.LevelDebug:
		return DebugColor(str)
	case slog.LevelWarn:
		return WarnColor(str)
	case slog.LevelError:
		return ErrorColor(str)
	default:
		return InfoColor(str)
	}
}

// LevelColor returns the given level formatted as a colored string
// suitable for use as a message prefix.
func LevelColor(level slog.Level) string {
	return ApplyLevelColor(level, level.String())
}
