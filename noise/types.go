// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"fmt"
	"strings"
)

// Type selects the noise color to synthesize.
type Type int

const (
	White Type = iota
	Pink
	Brown
	Blue
	Violet
	Grey
	Orange
)

var typeNames = [...]string{
	White:  "white",
	Pink:   "pink",
	Brown:  "brown",
	Blue:   "blue",
	Violet: "violet",
	Grey:   "grey",
	Orange: "orange",
}

// Types returns every supported noise type in declaration order.
func Types() []Type {
	return []Type{White, Pink, Brown, Blue, Violet, Grey, Orange}
}

// Valid reports whether t is one of the declared noise types.
func (t Type) Valid() bool {
	return t >= White && t <= Orange
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType maps an identifier such as "pink" to its Type.
// Matching is case insensitive and ignores surrounding spaces.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnsupportedNoiseType)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%d: %w", int(t), ErrUnsupportedNoiseType)
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
