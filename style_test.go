package loadbar

import (
	"errors"
	"testing"
)

func TestStyleString(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{Standard, "standard"},
		{Wave, "wave"},
		{Style(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.style.String()
			if got != tt.want {
				t.Errorf("Style.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"standard", Standard, false},
		{"Standard", Standard, false},
		{"bar", Standard, false},
		{"WAVE", Wave, false},
		{" wave ", Wave, false},
		{"sine", Wave, false},
		{"spiral", Standard, true},
		{"", Standard, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStyle(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyle) {
					t.Errorf("ParseStyle(%q) error = %v, want ErrInvalidStyle", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParseStyle(t *testing.T) {
	if MustParseStyle("wave") != Wave {
		t.Error("MustParseStyle(\"wave\") should return Wave")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParseStyle should panic on an invalid style")
		}
	}()
	MustParseStyle("nope")
}
