package core

import "testing"

func TestKeyStringRoundTrip(t *testing.T) {
	for _, k := range Keys {
		parsed, err := ParseKey(k.String())
		if err != nil {
			t.Fatalf("ParseKey(%q) failed: %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("ParseKey(%q) = %v, expected %v", k.String(), parsed, k)
		}
	}
}

func TestParseKeyCaseInsensitive(t *testing.T) {
	k, err := ParseKey("space")
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	if k != KeySpace {
		t.Errorf("ParseKey(\"space\") = %v, expected Space", k)
	}
}

func TestParseKeyUnknown(t *testing.T) {
	if _, err := ParseKey("Enter"); err == nil {
		t.Error("ParseKey should reject keys the game does not handle")
	}
	if _, err := ParseKey("None"); err == nil {
		t.Error("ParseKey should reject KeyNone")
	}
}

func TestKeyStringUnknown(t *testing.T) {
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q, expected Unknown", Key(99).String())
	}
}

func TestKeyText(t *testing.T) {
	text, err := KeyDown.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(text) != "Down" {
		t.Errorf("MarshalText = %q, expected Down", text)
	}

	var k Key
	if err := k.UnmarshalText([]byte("k")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if k != KeyK {
		t.Errorf("UnmarshalText(\"k\") = %v, expected K", k)
	}

	if _, err := KeyNone.MarshalText(); err == nil {
		t.Error("MarshalText should reject KeyNone")
	}
}
