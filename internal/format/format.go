package format

import (
	"fmt"
	"strings"
)

// DigitsOnly strips every non-digit character from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCPFCNPJ applies progressive CPF or CNPJ punctuation to whatever
// digits are present. Up to 11 digits it masks as CPF (000.000.000-00),
// from 12 to 14 as CNPJ (00.000.000/0000-00). It runs on every keystroke,
// so every truncation length must render correctly.
func FormatCPFCNPJ(s string) string {
	d := DigitsOnly(s)
	if len(d) > 14 {
		d = d[:14]
	}
	if len(d) <= 11 {
		return maskCPF(d)
	}
	return maskCNPJ(d)
}

func maskCPF(d string) string {
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func maskCNPJ(d string) string {
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 2, 5:
			b.WriteByte('.')
		case 8:
			b.WriteByte('/')
		case 12:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatCurrencyBRL reads s as a raw digit string of centavos and renders
// it as "R$ 1.234,56". An input with no digits renders as the empty
// string, not "R$ 0,00".
func FormatCurrencyBRL(s string) string {
	d := DigitsOnly(s)
	if d == "" {
		return ""
	}
	// 18 digits always fit in uint64; extra keystrokes are dropped.
	if len(d) > 18 {
		d = d[:18]
	}
	var cents uint64
	for _, r := range d {
		cents = cents*10 + uint64(r-'0')
	}
	reais := cents / 100
	resto := cents % 100

	inteiro := fmt.Sprintf("%d", reais)
	var b strings.Builder
	for i, r := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("R$ %s,%02d", b.String(), resto)
}

// FormatCEP masks a postal code as 00000-000, progressively.
func FormatCEP(s string) string {
	d := DigitsOnly(s)
	if len(d) > 8 {
		d = d[:8]
	}
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// LinesToList splits free text into trimmed list items. A single leading
// "-" bullet is stripped; empty lines are dropped; order is preserved
// and duplicates are kept.
func LinesToList(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// MergeUnique concatenates the given lists in order, trims each item,
// drops empties, and deduplicates case-insensitively keeping the first
// occurrence.
func MergeUnique(lists ...[]string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, item := range list {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			key := strings.ToLower(item)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}

// Slug lowercases s and collapses every run of non-alphanumeric
// characters into a single underscore. Used for deriving state keys;
// distinct inputs may collide on purpose.
func Slug(s string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(s) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			if b.Len() > 0 {
				pendingSep = true
			}
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
