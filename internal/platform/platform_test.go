package platform

import (
	"errors"
	"testing"
)

func TestCopyText(t *testing.T) {
	original := clipboardWriteAll
	defer func() { clipboardWriteAll = original }()

	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	if err := CopyText("results"); err != nil {
		t.Fatalf("CopyText() error = %v", err)
	}
	if copied != "results" {
		t.Fatalf("copied %q, expected %q", copied, "results")
	}

	clipboardWriteAll = func(string) error { return errors.New("no clipboard") }
	if err := CopyText("results"); err == nil {
		t.Fatal("expected error when the clipboard is unavailable")
	}
}

func TestOpenURL(t *testing.T) {
	original := openURL
	defer func() { openURL = original }()

	var opened string
	openURL = func(url string) error {
		opened = url
		return nil
	}

	if err := OpenURL("https://example.com"); err != nil {
		t.Fatalf("OpenURL() error = %v", err)
	}
	if opened != "https://example.com" {
		t.Fatalf("opened %q", opened)
	}

	openURL = func(string) error { return errors.New("headless") }
	if err := OpenURL("https://example.com"); err == nil {
		t.Fatal("expected error when no browser is available")
	}
}
