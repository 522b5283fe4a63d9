// Package ui provides terminal output helpers used outside the full-screen
// session: colored messages, interactive prompts, and spinners.
package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Color functions for styled output
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

// Success prints a success message with a green checkmark.
func Success(msg string) {
	fmt.Printf("%s %s\n", Green("✓"), msg)
}

// Successf prints a formatted success message.
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow warning symbol.
func Warning(msg string) {
	fmt.Printf("%s %s\n", Yellow("⚠"), msg)
}

// Error prints an error message with a red X.
func Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", Red("✗"), msg)
}

// Errorf prints a formatted error message.
func Errorf(format string, args ...interface{}) {
	Error(fmt.Sprintf(format, args...))
}

// Info prints an info message with a blue arrow.
func Info(msg string) {
	fmt.Printf("%s %s\n", Blue("→"), msg)
}

// Infof prints a formatted info message.
func Infof(format string, args ...interface{}) {
	Info(fmt.Sprintf(format, args...))
}

// Debug prints a debug message with a dim bullet (only if ZEITTUI_DEBUG is set).
func Debug(msg string) {
	if os.Getenv("ZEITTUI_DEBUG") != "" {
		fmt.Printf("%s %s\n", Dim("•"), Dim(msg))
	}
}

// Debugf prints a formatted debug message.
func Debugf(format string, args ...interface{}) {
	Debug(fmt.Sprintf(format, args...))
}
