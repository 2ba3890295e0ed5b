package label

import (
	"testing"
)

func TestSanitize_Entities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Plain text unchanged",
			input:    "protein folding",
			expected: "protein folding",
		},
		{
			name:     "Named entity",
			input:    "Fast &amp; Secure",
			expected: "Fast & Secure",
		},
		{
			name:     "Numeric entity",
			input:    "caf&#233;",
			expected: "café",
		},
		{
			name:     "Non-breaking space entity trimmed",
			input:    "&nbsp;goal&nbsp;",
			expected: "goal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSanitize_Tags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Line break becomes space",
			input:    "protein<br>folding",
			expected: "protein folding",
		},
		{
			name:     "Styled tag",
			input:    `<font style="font-size: 14px">Encryption</font>`,
			expected: "Encryption",
		},
		{
			name:     "Adjacent block tags leave inner run",
			input:    "<div>protein</div><div>folding</div>",
			expected: "protein  folding",
		},
		{
			name:     "Entity-encoded markup is decoded then stripped",
			input:    "&lt;b&gt;bold&lt;/b&gt;",
			expected: "bold",
		},
		{
			name:     "Unclosed angle bracket survives",
			input:    "a < b",
			expected: "a < b",
		},
		{
			name:     "Empty label",
			input:    "",
			expected: "",
		},
		{
			name:     "Whitespace only",
			input:    "  \t ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.expected {
				t.Errorf("Sanitize() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
