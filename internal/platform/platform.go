// Package platform performs the desktop side effects of sharing.
package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Package-level variables allow mocking in tests.
var (
	clipboardWriteAll = clipboard.WriteAll
	openURL           = browser.OpenURL
)

// CopyText puts text on the system clipboard.
func CopyText(text string) error {
	if err := clipboardWriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// OpenURL opens url in the default browser.
func OpenURL(url string) error {
	if err := openURL(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
