package app

import "github.com/atotto/clipboard"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// SystemClipboard uses the platform clipboard.
type SystemClipboard struct{}

// Write implements Clipboard.
func (SystemClipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
