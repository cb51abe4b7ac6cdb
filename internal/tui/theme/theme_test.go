package theme

import "testing"

func TestByName(t *testing.T) {
	for _, want := range All {
		if got := ByName(want.Name); got.Name != want.Name {
			t.Errorf("ByName(%q) = %q", want.Name, got.Name)
		}
	}

	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got.Name, FlexokiDark.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("catppuccin-mocha")
	if Active.Name != "catppuccin-mocha" {
		t.Errorf("Active = %q after SetActive", Active.Name)
	}
}
