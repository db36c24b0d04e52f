package parser

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/PremnathSundarrajan/Convert-PDF-to-EXCEL-sub000/pkg/dimextract/models"
)

func TestBuildRow(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		expected models.Row
	}{
		{
			name:   "clean headstone row",
			tokens: []string{"1", "headstone", "black", "premium", "53", "62", "8", "0,026"},
			expected: models.Row{
				Pcs: "1", Item: "headstone", Material: "black premium",
				Length: "53", Width: "62", Thick: "8", M3: "0.026",
			},
		},
		{
			name:   "range length",
			tokens: []string{"1", "item", "63,3-10", "50", "5"},
			expected: models.Row{
				Pcs: "1", Item: "item",
				Length: "63.3 - 10", Width: "50", Thick: "5",
			},
		},
		{
			name:   "two single-digit thickness candidates",
			tokens: []string{"1", "item", "100", "8", "9"},
			expected: models.Row{
				Pcs: "1", Item: "item", Length: "100",
				Ambiguous: []string{"width", "thick"},
			},
		},
		{
			name:   "lone ambiguous token",
			tokens: []string{"1", "item", "50"},
			expected: models.Row{
				Pcs: "1", Item: "item",
				Ambiguous: []string{"length", "width", "thick"},
			},
		},
		{
			name:   "equal-digit merge repair",
			tokens: []string{"1", "flowerblock", "black", "premium", "151515", "0,003"},
			expected: models.Row{
				Pcs: "1", Item: "flowerblock", Material: "black premium",
				Length: "15", Width: "15", Thick: "15", M3: "0.003",
			},
		},
		{
			name:   "length and width glued",
			tokens: []string{"1", "headstone", "black", "5362", "8", "0,026"},
			expected: models.Row{
				Pcs: "1", Item: "headstone", Material: "black",
				Length: "53", Width: "62", Thick: "8", M3: "0.026",
			},
		},
		{
			name:   "orientation modifiers join the item",
			tokens: []string{"2", "headstone", "left", "black", "granite", "100", "50", "8", "0,08"},
			expected: models.Row{
				Pcs: "2", Item: "headstone left", Material: "black granite",
				Length: "100", Width: "50", Thick: "8", M3: "0.08",
			},
		},
		{
			name:   "missing piece count defaults to one",
			tokens: []string{"headstone", "black", "53", "62", "8", "0,026"},
			expected: models.Row{
				Pcs: "1", Item: "headstone", Material: "black",
				Length: "53", Width: "62", Thick: "8", M3: "0.026",
			},
		},
		{
			name:   "thickness range",
			tokens: []string{"1", "kerb", "120", "60", "10-12", "0,072"},
			expected: models.Row{
				Pcs: "1", Item: "kerb",
				Length: "120", Width: "60", Thick: "10 - 12", M3: "0.072",
			},
		},
		{
			name:   "volume glued to thickness",
			tokens: []string{"1", "headstone", "53", "62", "80,026"},
			expected: models.Row{
				Pcs: "1", Item: "headstone",
				Length: "53", Width: "62", Thick: "8", M3: "0.026",
			},
		},
		{
			name:   "zero length is blank",
			tokens: []string{"1", "item", "0", "60", "8", "0,02"},
			expected: models.Row{
				Pcs: "1", Item: "item",
				Width: "60", Thick: "8", M3: "0.02",
			},
		},
		{
			name:   "no text tokens",
			tokens: []string{"3", "53", "62", "8", "0,079"},
			expected: models.Row{
				Pcs: "3", Length: "53", Width: "62", Thick: "8", M3: "0.079",
			},
		},
		{
			name:   "width digit moved into missing thickness",
			tokens: []string{"1", "slab", "200", "105", "0,01"},
			expected: models.Row{
				Pcs: "1", Item: "slab",
				Length: "200", Width: "10", Thick: "5", M3: "0.01",
				Repair: string(RepairWidthToNewThick),
			},
		},
		{
			name:   "repaired thickness is not reported ambiguous",
			tokens: []string{"1", "item", "5", "200", "105", "0,01"},
			expected: models.Row{
				Pcs: "1", Item: "item",
				Length: "200", Width: "10", Thick: "5", M3: "0.01",
				Repair: string(RepairWidthToNewThick),
			},
		},
		{
			name:   "contested thickness with a contradicting volume",
			tokens: []string{"1", "item", "100", "9", "8", "0,500"},
			expected: models.Row{
				Pcs: "1", Item: "item", Length: "100", M3: "0.500",
				Ambiguous: []string{"width", "thick"},
			},
		},
		{
			name:   "contested thickness without volume",
			tokens: []string{"1", "item", "100", "9", "8"},
			expected: models.Row{
				Pcs: "1", Item: "item", Length: "100",
				Ambiguous: []string{"width", "thick"},
			},
		},
		{
			name:   "equal length and width are blank",
			tokens: []string{"1", "item", "50", "50", "5", "0,0125"},
			expected: models.Row{
				Pcs: "1", Item: "item", M3: "0.0125",
				Ambiguous: []string{"length", "width", "thick"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildRow(tt.tokens)
			if !rowsEqual(result, tt.expected) {
				t.Errorf("BuildRow(%q) = %+v, expected %+v", tt.tokens, result, tt.expected)
			}
		})
	}
}

func rowsEqual(a, b models.Row) bool {
	return a.Order == b.Order && a.Client == b.Client && a.Pcs == b.Pcs &&
		a.Item == b.Item && a.Material == b.Material &&
		a.Length == b.Length && a.Width == b.Width && a.Thick == b.Thick &&
		a.M3 == b.M3 && a.Repair == b.Repair &&
		strings.Join(a.Ambiguous, ",") == strings.Join(b.Ambiguous, ",")
}

var (
	lwDigits    = regexp.MustCompile(`^\d{1,3}(\.\d{1,3})?( - \d{1,3}(\.\d{1,3})?)?$`)
	thickDigits = regexp.MustCompile(`^\d{1,2}( - \d{1,2})?$`)
	rangeForm   = regexp.MustCompile(`^\d+(\.\d+)?\s-\s\d+(\.\d+)?$`)
)

func TestBuildRowInvariants(t *testing.T) {
	inputs := [][]string{
		{"1", "headstone", "black", "premium", "53", "62", "8", "0,026"},
		{"1", "item", "63,3-10", "50", "5"},
		{"1", "item", "100", "8", "9"},
		{"1", "flowerblock", "151515", "0,003"},
		{"1", "headstone", "5362", "8", "0,026"},
		{"1", "base", "1205", "5", "8", "0,9"},
		{"1", "base", "10-2030-40", "5", "0,05"},
		{"2", "kerb", "10020-25", "0,05"},
		{"1", "item", "1000", "2000", "3000", "0,5"},
		{"1", "item", "12,5", "7,25", "3", "0,0003"},
		{"1", "item", "1-2-3", "4.5.6", "0,1"},
	}

	for _, tokens := range inputs {
		row := BuildRow(tokens)
		for _, f := range []struct {
			name  string
			value string
			re    *regexp.Regexp
		}{
			{"length", row.Length, lwDigits},
			{"width", row.Width, lwDigits},
			{"thick", row.Thick, thickDigits},
		} {
			if f.value != "" && !f.re.MatchString(f.value) {
				t.Errorf("BuildRow(%q).%s = %q violates its digit constraint", tokens, f.name, f.value)
			}
			if strings.Contains(f.value, "-") && !rangeForm.MatchString(f.value) {
				t.Errorf("BuildRow(%q).%s = %q is not rendered as \"A - B\"", tokens, f.name, f.value)
			}
		}
		for _, v := range []string{row.Pcs, row.Length, row.Width, row.Thick, row.M3} {
			if strings.Contains(v, ",") {
				t.Errorf("BuildRow(%q) produced comma in %q", tokens, v)
			}
		}
		if row.M3 != "" && !strings.HasPrefix(row.M3, "0.") {
			t.Errorf("BuildRow(%q).M3 = %q, expected a 0.x figure", tokens, row.M3)
		}
	}
}

func TestBuildRowTiesBlank(t *testing.T) {
	for _, side := range []string{"15", "50", "100", "120", "12,5"} {
		for _, thick := range []string{"2", "5", "8"} {
			s, _ := FirstNumber(side)
			tv, _ := FirstNumber(thick)
			volume := strings.Replace(strconv.FormatFloat(CubicMeters(s, s, tv), 'f', -1, 64), ".", ",", 1)

			for _, tokens := range [][]string{
				{"1", "item", side, side, thick},
				{"1", "item", side, side, thick, volume},
			} {
				row := BuildRow(tokens)
				if row.Length != "" || row.Width != "" {
					t.Errorf("BuildRow(%q) = length %q, width %q, expected both blank", tokens, row.Length, row.Width)
				}
			}
		}
	}
}

func TestSplitText(t *testing.T) {
	tests := []struct {
		text     []string
		item     string
		material string
	}{
		{[]string{"headstone", "black", "premium"}, "headstone", "black premium"},
		{[]string{"headstone", "Right", "black"}, "headstone Right", "black"},
		{[]string{"base", "black", "back"}, "base back", "black"},
		{[]string{"slab"}, "slab", ""},
		{nil, "", ""},
	}

	for _, tt := range tests {
		item, material := splitText(tt.text)
		if item != tt.item || material != tt.material {
			t.Errorf("splitText(%q) = (%q, %q), expected (%q, %q)", tt.text, item, material, tt.item, tt.material)
		}
	}
}

func TestRenderNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"63,3-10", "63.3 - 10"},
		{"10-12", "10 - 12"},
		{"12,5", "12.5"},
		{"53", "53"},
	}

	for _, tt := range tests {
		if result := RenderNumber(tt.input); result != tt.expected {
			t.Errorf("RenderNumber(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
