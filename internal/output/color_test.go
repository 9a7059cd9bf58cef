package output

import (
	"os"
	"testing"
)

func TestSetNoColor_Toggles(t *testing.T) {
	SetNoColor(true)
	if !IsNoColor() {
		t.Fatal("IsNoColor() = false after SetNoColor(true)")
	}
	if StyleHeader.GetBold() {
		t.Error("plain header should not be bold")
	}

	SetNoColor(false)
	if IsNoColor() {
		t.Fatal("IsNoColor() = true after SetNoColor(false)")
	}
	if !StyleHeader.GetBold() {
		t.Error("re-enabling colour should restore the header style")
	}
}

func TestColorEnabled(t *testing.T) {
	if ColorEnabled(os.Stdout, false) {
		t.Error("colour disabled in config must win")
	}

	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(os.Stdout, true) {
		t.Error("NO_COLOR must disable colour")
	}
}

func TestColorEnabled_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	if ColorEnabled(f, true) {
		t.Error("a regular file is not a terminal")
	}
}
