package lang

import (
	"net/url"
	"testing"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		raw  string
		want Language
	}{
		{"", English},
		{"lang=english", English},
		{"lang=hinglish", Hinglish},
		{"lang=HINGLISH", English},
		{"lang=french", English},
		{"topic=dom_api", English},
		{"topic=dom_api&lang=hinglish", Hinglish},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.raw)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", tt.raw, err)
		}
		if got := FromQuery(q); got != tt.want {
			t.Errorf("FromQuery(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestOther(t *testing.T) {
	if English.Other() != Hinglish {
		t.Errorf("English.Other() = %q", English.Other())
	}
	if Hinglish.Other() != English {
		t.Errorf("Hinglish.Other() = %q", Hinglish.Other())
	}
}

func TestFolder(t *testing.T) {
	if got := Language("klingon").Folder(); got != "english" {
		t.Errorf("unknown language folder = %q, want english", got)
	}
	if got := Hinglish.Folder(); got != "hinglish" {
		t.Errorf("Hinglish.Folder() = %q", got)
	}
}

func TestTag(t *testing.T) {
	if got := English.Tag().String(); got != "en" {
		t.Errorf("English tag = %q, want en", got)
	}
	if got := Hinglish.Tag().String(); got != "hi-Latn" {
		t.Errorf("Hinglish tag = %q, want hi-Latn", got)
	}
}

func TestToggleLabel(t *testing.T) {
	if English.ToggleLabel() != "Switch to Hinglish" {
		t.Errorf("English label = %q", English.ToggleLabel())
	}
	if Hinglish.ToggleLabel() != "Switch to English" {
		t.Errorf("Hinglish label = %q", Hinglish.ToggleLabel())
	}
}
