package sound

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if k, err := ParseKind(" COIN "); err != nil || k != Coin {
		t.Errorf("ParseKind should ignore case and space, got %v, %v", k, err)
	}
	if _, err := ParseKind("siren"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Expected ErrUnknownKind, got %v", err)
	}
}

func TestKindStringOutOfRange(t *testing.T) {
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("String() = %q", s)
	}
}
