package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName == "" {
		t.Fatal("expected AppName to be non-empty")
	}
	if AppName != "Emberclash.Quest" {
		t.Fatalf("AppName = %q, want %q", AppName, "Emberclash.Quest")
	}
}

func TestGameTitle(t *testing.T) {
	if GameTitle == "" {
		t.Fatal("expected GameTitle to be non-empty")
	}
}
