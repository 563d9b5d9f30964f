package clickpack

import (
	"fmt"
	"strings"
)

// LoadFor selects which bank(s) a load targets
// All occupies value 0, so a single-bank target maps to bank index LoadFor-1
type LoadFor int

const (
	LoadForAll LoadFor = iota
	LoadForPlayer1
	LoadForPlayer2
	LoadForLeft1
	LoadForRight1
	LoadForLeft2
	LoadForRight2
)

var loadForNames = [...]string{"all", "player1", "player2", "left1", "right1", "left2", "right2"}

// Bank returns the targeted bank, false for LoadForAll
func (l LoadFor) Bank() (Bank, bool) {
	if l <= LoadForAll || l > LoadForRight2 {
		return 0, false
	}
	return Bank(l - 1), true
}

func (l LoadFor) String() string {
	if l < LoadForAll || l > LoadForRight2 {
		return fmt.Sprintf("loadfor(%d)", int(l))
	}
	return loadForNames[l]
}

// ParseLoadFor accepts the lowercase names used in config files
func ParseLoadFor(s string) (LoadFor, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range loadForNames {
		if name == s {
			return LoadFor(i), nil
		}
	}
	return LoadForAll, fmt.Errorf("unknown clickpack target %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (l LoadFor) MarshalText() ([]byte, error) {
	if l < LoadForAll || l > LoadForRight2 {
		return nil, fmt.Errorf("invalid clickpack target %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *LoadFor) UnmarshalText(text []byte) error {
	v, err := ParseLoadFor(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
