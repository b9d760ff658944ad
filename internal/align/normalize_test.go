package align

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"שָׁלוֹם עוֹלָם", "שלום עולם"},
		{"בְּרֵאשִׁית בָּרָא", "בראשית ברא"},
		{"עַל־פְּנֵי", "עלפני"}, // maqaf joiner dropped
		{"Hello, World!", "hello world"},
		{"  extra   spaces  ", "extra spaces"},
		{"Line 1\nLine 2", "line 1 line 2"},
		{"...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"שָׁלוֹם עוֹלָם",
		"וַיֹּ֤אמֶר אֱלֹהִים֙", // cantillation marks
		"Mixed עִבְרִית and English!",
		"¿Qué tal? Ça va!",
		"123 !@# 456",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}
