// Package console provides the color printing helpers shared by the
// demo programs. Model output is printed in blue to stand apart from
// the surrounding narration.
package console

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	blue   = color.New(color.FgBlue)
	bold   = color.New(color.Bold)
	redErr = color.New(color.FgRed)
)

// Blue prints model output in blue.
func Blue(text string) {
	blue.Println(text)
}

// Header prints a bold section header.
func Header(text string) {
	bold.Printf("=== %s ===\n", strings.ToUpper(text))
}

// Subheader prints a smaller section marker.
func Subheader(text string) {
	fmt.Printf("\n--- %s ---\n", text)
}

// Rule prints a separator line of the given width.
func Rule(width int) {
	fmt.Println(strings.Repeat("=", width))
}

// Divider prints a lighter separator line of the given width.
func Divider(width int) {
	fmt.Println(strings.Repeat("-", width))
}

// Error reports a failed example without aborting the surrounding loop.
func Error(err error) {
	redErr.Printf("Error: %v\n", err)
}
