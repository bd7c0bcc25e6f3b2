// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"white", White, false},
		{"pink", Pink, false},
		{"brown", Brown, false},
		{"blue", Blue, false},
		{"violet", Violet, false},
		{"grey", Grey, false},
		{"orange", Orange, false},
		{"  Pink ", Pink, false},
		{"BROWN", Brown, false},
		{"gray", 0, true},
		{"unknown", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedNoiseType) {
				t.Errorf("ParseType(%q) error = %v, want ErrUnsupportedNoiseType", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseType(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestType_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ.String(), got, err)
		}
	}
}

func TestType_Invalid(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{-1, 7, 100} {
		if typ.Valid() {
			t.Errorf("Type(%d).Valid() = true", int(typ))
		}
		if _, err := typ.MarshalText(); !errors.Is(err, ErrUnsupportedNoiseType) {
			t.Errorf("Type(%d).MarshalText() error = %v", int(typ), err)
		}
	}

	if got := Type(9).String(); got != "Type(9)" {
		t.Errorf("String() = %q, want %q", got, "Type(9)")
	}
}

func TestTypes(t *testing.T) {
	t.Parallel()

	types := Types()
	if len(types) != 7 {
		t.Fatalf("len(Types()) = %d, want 7", len(types))
	}
	for i, typ := range types {
		if int(typ) != i || !typ.Valid() {
			t.Errorf("Types()[%d] = %v", i, typ)
		}
	}
}

func TestType_JSON(t *testing.T) {
	t.Parallel()

	var v struct {
		Type Type `json:"type"`
	}

	if err := json.Unmarshal([]byte(`{"type":"violet"}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Type != Violet {
		t.Errorf("Type = %v, want violet", v.Type)
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"type":"violet"}` {
		t.Errorf("Marshal() = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"type":"teal"}`), &v); !errors.Is(err, ErrUnsupportedNoiseType) {
		t.Errorf("Unmarshal(teal) error = %v, want ErrUnsupportedNoiseType", err)
	}
}
