package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple address", "a@b.co", true},
		{"longer address", "customer.name@mail.example.org", true},
		{"plus tag", "user+tag@example.com", true},
		{"no at sign", "not-an-email", false},
		{"two at signs", "a@@b.co", false},
		{"no dot in domain", "a@bco", false},
		{"whitespace", "a b@c.co", false},
		{"empty", "", false},
		{"missing local part", "@b.co", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.input))
		})
	}
}

func TestIsValidMoneroAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"95 chars valid alphabet", strings.Repeat("4", 95), true},
		{"90 chars lower bound", strings.Repeat("A", 90), true},
		{"106 chars upper bound", strings.Repeat("z", 106), true},
		{"95 chars containing zero", "0" + strings.Repeat("4", 94), false},
		{"95 chars containing capital O", strings.Repeat("4", 94) + "O", false},
		{"95 chars containing capital I", "I" + strings.Repeat("4", 94), false},
		{"95 chars containing lowercase l", "l" + strings.Repeat("4", 94), false},
		{"80 chars too short", strings.Repeat("4", 80), false},
		{"107 chars too long", strings.Repeat("4", 107), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMoneroAddress(tt.input))
		})
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"angle brackets", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"ampersand", "a&b", "a&amp;b"},
		{"double quote", `say "hi"`, "say &#34;hi&#34;"},
		{"single quote", "it's", "it&#39;s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.input))
		})
	}
}
