package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCNPJ(t *testing.T) {
	cases := map[string]string{
		"":                     "",
		"1":                    "1",
		"12":                   "12",
		"123":                  "12.3",
		"12345":                "12.345",
		"123456":               "12.345.6",
		"12345678":             "12.345.678",
		"123456789":            "12.345.678/9",
		"123456780001":         "12.345.678/0001",
		"1234567800019":        "12.345.678/0001-9",
		"12345678000195":       "12.345.678/0001-95",
		"12.345.678/0001-95":   "12.345.678/0001-95",
		"12345678000195999999": "12.345.678/0001-95",
		"ab12c":                "12",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskCNPJ(in), "input %q", in)
	}
}

func TestMaskCNPJIdempotent(t *testing.T) {
	inputs := []string{"", "1", "123", "1234567", "123456789", "12345678000", "12345678000195", "99.999.999/9999-99", "x1y2z3"}
	for _, in := range inputs {
		once := MaskCNPJ(in)
		assert.Equal(t, once, MaskCNPJ(once), "input %q", in)
	}
}

func TestMaskPhone(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"abc":            "",
		"1":              "(1",
		"11":             "(11",
		"119":            "(11) 9",
		"119876":         "(11) 9876",
		"1198765":        "(11) 9876-5",
		"1198765432":     "(11) 9876-5432",
		"11987654321":    "(11) 98765-4321",
		"119876543210":   "(11) 98765-4321",
		"(11) 98765-4321": "(11) 98765-4321",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskPhone(in), "input %q", in)
	}
}

func TestMaskPhoneTruncatesToElevenDigits(t *testing.T) {
	out := MaskPhone("1234567890123456")
	assert.Len(t, Digits(out), 11)
}
