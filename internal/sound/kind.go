package sound

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names a sound cue.
type Kind int

const (
	Click Kind = iota
	Copy
	Success
	Whoosh
	Coin
	kindCount
)

var ErrUnknownKind = errors.New("unknown sound kind")

var kindNames = [kindCount]string{
	Click:   "click",
	Copy:    "copy",
	Success: "success",
	Whoosh:  "whoosh",
	Coin:    "coin",
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every cue in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a cue name (case-insensitive) back to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
