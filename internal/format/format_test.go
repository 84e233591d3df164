package format

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"123.456-78", "12345678"},
		{"R$ 1.500,00", "150000"},
	}

	for _, tt := range tests {
		if got := DigitsOnly(tt.in); got != tt.want {
			t.Errorf("DigitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCPFCNPJ(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"partial cpf", "123", "123"},
		{"cpf mid group", "12345", "123.45"},
		{"cpf before dash", "123456789", "123.456.789"},
		{"full cpf", "12345678901", "123.456.789-01"},
		{"cnpj partial", "123456789012", "12.345.678/9012"},
		{"full cnpj", "12345678901234", "12.345.678/9012-34"},
		{"overflow truncated", "123456789012345678", "12.345.678/9012-34"},
		{"already masked", "123.456.789-01", "123.456.789-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCPFCNPJ(tt.in); got != tt.want {
				t.Errorf("FormatCPFCNPJ(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The mask must hold at every truncation length, since it runs on each
// keystroke: digit content is preserved (up to 14) and the punctuation
// sits at the fixed CPF/CNPJ offsets.
func TestFormatCPFCNPJProgressive(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("digit content preserved at every length", prop.ForAll(
		func(digits string) bool {
			masked := FormatCPFCNPJ(digits)
			want := digits
			if len(want) > 14 {
				want = want[:14]
			}
			return DigitsOnly(masked) == want
		},
		gen.RegexMatch(`^[0-9]{0,14}$`),
	))

	properties.Property("punctuation matches the expected pattern", prop.ForAll(
		func(digits string) bool {
			masked := FormatCPFCNPJ(digits)
			var pattern string
			if len(digits) <= 11 {
				pattern = "XXX.XXX.XXX-XX"
			} else {
				pattern = "XX.XXX.XXX/XXXX-XX"
			}
			if len(masked) > len(pattern) {
				return false
			}
			for i, r := range masked {
				p := pattern[i]
				if p == 'X' {
					if r < '0' || r > '9' {
						return false
					}
				} else if byte(r) != p {
					return false
				}
			}
			return true
		},
		gen.RegexMatch(`^[0-9]{0,14}$`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormatCurrencyBRL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", ""},
		{"5", "R$ 0,05"},
		{"50", "R$ 0,50"},
		{"150000", "R$ 1.500,00"},
		{"123456789", "R$ 1.234.567,89"},
		{"R$ 1.500,00", "R$ 1.500,00"},
	}

	for _, tt := range tests {
		if got := FormatCurrencyBRL(tt.in); got != tt.want {
			t.Errorf("FormatCurrencyBRL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCurrencyBRLLongInput(t *testing.T) {
	long := strings.Repeat("9", 40)
	got := FormatCurrencyBRL(long)
	want := FormatCurrencyBRL(strings.Repeat("9", 18))
	if got != want {
		t.Errorf("FormatCurrencyBRL(40 nines) = %q, want %q", got, want)
	}
	if strings.Contains(got, "-") {
		t.Errorf("overflowed into a negative-looking value: %q", got)
	}
}

func TestFormatCEP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"013", "013"},
		{"01310", "01310"},
		{"013101", "01310-1"},
		{"01310100", "01310-100"},
		{"01310-100", "01310-100"},
	}

	for _, tt := range tests {
		if got := FormatCEP(tt.in); got != tt.want {
			t.Errorf("FormatCEP(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLinesToList(t *testing.T) {
	got := LinesToList("- item um\n\nitem dois  \n- ")
	want := []string{"item um", "item dois"}
	if len(got) != len(want) {
		t.Fatalf("LinesToList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLinesToListKeepsDuplicates(t *testing.T) {
	got := LinesToList("a\na\nb")
	if len(got) != 3 {
		t.Errorf("expected duplicates preserved, got %v", got)
	}
}

func TestMergeUnique(t *testing.T) {
	got := MergeUnique(
		[]string{"Danos morais", "danos MORAIS "},
		[]string{"Danos morais", "Outro"},
	)
	want := []string{"Danos morais", "Outro"}
	if len(got) != len(want) {
		t.Fatalf("MergeUnique() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMergeUniqueDropsEmpties(t *testing.T) {
	got := MergeUnique([]string{"  ", "", "a"}, nil, []string{"A", "b"})
	want := []string{"a", "b"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("MergeUnique() = %v, want %v", got, want)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Direito do Consumidor", "direito_do_consumidor"},
		{"  Cível  ", "c_vel"},
		{"valor_causa", "valor_causa"},
		{"a--b", "a_b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
