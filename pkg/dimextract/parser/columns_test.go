package parser

import (
	"reflect"
	"testing"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
)

func TestAssignColumns(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []string
		expected   models.Dimensions
		ambiguous  []string
		positional bool
	}{
		{
			name:       "length width thickness in order",
			tokens:     []string{"53", "62", "8"},
			expected:   models.Dimensions{Length: "53", Width: "62", Thick: "8"},
			positional: true,
		},
		{
			name:       "range length",
			tokens:     []string{"63,3-10", "50", "5"},
			expected:   models.Dimensions{Length: "63,3-10", Width: "50", Thick: "5"},
			positional: true,
		},
		{
			name:      "two single-digit thickness candidates",
			tokens:    []string{"100", "8", "9"},
			expected:  models.Dimensions{Length: "100"},
			ambiguous: []string{"width", "thick"},
		},
		{
			name:      "single-digit thickness candidates in either order",
			tokens:    []string{"100", "9", "8"},
			expected:  models.Dimensions{Length: "100"},
			ambiguous: []string{"width", "thick"},
		},
		{
			name:      "equal length and width in order are ambiguous",
			tokens:    []string{"50", "50", "5"},
			expected:  models.Dimensions{},
			ambiguous: []string{"length", "width", "thick"},
		},
		{
			name:      "equal length-only values beside a thickness",
			tokens:    []string{"120", "120", "8"},
			expected:  models.Dimensions{Thick: "8"},
			ambiguous: []string{"length", "width"},
		},
		{
			name:      "lone token valid for every column",
			tokens:    []string{"50"},
			expected:  models.Dimensions{},
			ambiguous: []string{"length", "width", "thick"},
		},
		{
			name:     "single thickness candidate beside a width",
			tokens:   []string{"120", "8"},
			expected: models.Dimensions{Width: "120", Thick: "8"},
		},
		{
			name:      "thickness candidate before the width is not assigned",
			tokens:    []string{"8", "120"},
			expected:  models.Dimensions{Length: "120"},
			ambiguous: []string{"width", "thick"},
		},
		{
			name:     "larger value is the length",
			tokens:   []string{"100", "120"},
			expected: models.Dimensions{Length: "120", Width: "100"},
		},
		{
			name:      "equal values are ambiguous",
			tokens:    []string{"100", "100"},
			expected:  models.Dimensions{},
			ambiguous: []string{"length", "width"},
		},
		{
			name:      "three length candidates are ambiguous",
			tokens:    []string{"100", "110", "120"},
			expected:  models.Dimensions{},
			ambiguous: []string{"length", "width"},
		},
		{
			name:     "invalid tokens are dropped",
			tokens:   []string{"1-2-3", "100", "1.2.3"},
			expected: models.Dimensions{Length: "100"},
		},
		{
			name:       "overlong length kept for volume repair",
			tokens:     []string{"1205", "55", "8"},
			expected:   models.Dimensions{Length: "1205", Width: "55", Thick: "8"},
			positional: true,
		},
		{
			name:     "overlong length alone is dropped",
			tokens:   []string{"1205", "100"},
			expected: models.Dimensions{Length: "100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssignColumns(tt.tokens)
			if a.Dimensions != tt.expected {
				t.Errorf("AssignColumns(%q) = %+v, expected %+v", tt.tokens, a.Dimensions, tt.expected)
			}
			if !reflect.DeepEqual(a.Ambiguous, tt.ambiguous) {
				t.Errorf("AssignColumns(%q).Ambiguous = %q, expected %q", tt.tokens, a.Ambiguous, tt.ambiguous)
			}
			if a.Positional != tt.positional {
				t.Errorf("AssignColumns(%q).Positional = %v, expected %v", tt.tokens, a.Positional, tt.positional)
			}
		})
	}
}

func TestAssignTail(t *testing.T) {
	merged := []bool{true, true, true}

	tests := []struct {
		name       string
		tail       Tail
		expected   models.Dimensions
		ambiguous  []string
		positional bool
	}{
		{
			name:       "volume confirms the layout",
			tail:       Tail{Tokens: []string{"100", "50", "8"}, Volume: "0,04", Pcs: 1},
			expected:   models.Dimensions{Length: "100", Width: "50", Thick: "8"},
			positional: true,
		},
		{
			name:       "volume of every piece confirms the layout",
			tail:       Tail{Tokens: []string{"100", "50", "8"}, Volume: "0,08", Pcs: 2},
			expected:   models.Dimensions{Length: "100", Width: "50", Thick: "8"},
			positional: true,
		},
		{
			name:      "volume contradicts the layout",
			tail:      Tail{Tokens: []string{"100", "50", "8"}, Volume: "0,500", Pcs: 1},
			expected:  models.Dimensions{Length: "100"},
			ambiguous: []string{"width", "thick"},
		},
		{
			name:      "contested thickness is not taken even when the volume matches",
			tail:      Tail{Tokens: []string{"100", "9", "8"}, Volume: "0,0072", Pcs: 1},
			expected:  models.Dimensions{Length: "100"},
			ambiguous: []string{"width", "thick"},
		},
		{
			name:       "equal parts of a merged token",
			tail:       Tail{Tokens: []string{"15", "15", "15"}, Partitioned: merged, Volume: "0,003", Pcs: 1},
			expected:   models.Dimensions{Length: "15", Width: "15", Thick: "15"},
			positional: true,
		},
		{
			name:      "equal raw tokens stay blank",
			tail:      Tail{Tokens: []string{"15", "15", "15"}, Volume: "0,003", Pcs: 1},
			expected:  models.Dimensions{},
			ambiguous: []string{"length", "width", "thick"},
		},
		{
			name:      "equal raw tokens with a matching volume stay blank",
			tail:      Tail{Tokens: []string{"50", "50", "5"}, Volume: "0,0125", Pcs: 1},
			expected:  models.Dimensions{},
			ambiguous: []string{"length", "width", "thick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AssignTail(tt.tail)
			if a.Dimensions != tt.expected {
				t.Errorf("AssignTail(%+v) = %+v, expected %+v", tt.tail, a.Dimensions, tt.expected)
			}
			if !reflect.DeepEqual(a.Ambiguous, tt.ambiguous) {
				t.Errorf("AssignTail(%+v).Ambiguous = %q, expected %q", tt.tail, a.Ambiguous, tt.ambiguous)
			}
			if a.Positional != tt.positional {
				t.Errorf("AssignTail(%+v).Positional = %v, expected %v", tt.tail, a.Positional, tt.positional)
			}
		})
	}
}

func TestAssignColumnsDeterministic(t *testing.T) {
	tokens := []string{"100", "8", "9"}
	first := AssignColumns(tokens)
	for i := 0; i < 10; i++ {
		if again := AssignColumns(tokens); !reflect.DeepEqual(first, again) {
			t.Fatalf("AssignColumns(%q) changed between calls: %+v then %+v", tokens, first, again)
		}
	}
}
