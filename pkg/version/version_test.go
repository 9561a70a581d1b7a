package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Version
		wantErr bool
	}{
		{"0.2.0", Version{0, 2, 0}, false},
		{"v1.10.3", Version{1, 10, 3}, false},
		{" 2.0.1 ", Version{2, 0, 1}, false},
		{"1.2", Version{}, true},
		{"1.2.x", Version{}, true},
		{"1.-2.0", Version{}, true},
		{"", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "2.0.0", -1},
		{"1.2.0", "1.1.9", 1},
		{"1.1.1", "1.1.2", -1},
	}

	for _, tt := range tests {
		if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
			t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSupports(t *testing.T) {
	current := MustParse("0.2.0")

	tests := []struct {
		required string
		wantErr  bool
	}{
		{"0.2.0", false},
		{"0.1.5", false},
		{"0.2.1", false},
		{"0.3.0", false},
		{"1.0.0", true},
		{"2.4.1", true},
	}

	for _, tt := range tests {
		t.Run(tt.required, func(t *testing.T) {
			err := current.Supports(MustParse(tt.required))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Supports(%s) error = %v, wantErr %v", tt.required, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrIncompatible) {
				t.Errorf("Supports(%s) error = %v, want ErrIncompatible", tt.required, err)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := String(); got != "0.2.0" {
		t.Errorf("String() = %q", got)
	}
}
