package tokens

import (
	"strings"
	"testing"
)

func TestNewEstimatingCounter(t *testing.T) {
	c := NewEstimatingCounter()

	if c.CharsPerToken != DefaultCharsPerToken {
		t.Errorf("expected CharsPerToken %v, got %v", DefaultCharsPerToken, c.CharsPerToken)
	}
}

func TestNewEstimatingCounterWithRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected float64
	}{
		{
			name:     "custom ratio",
			ratio:    3.0,
			expected: 3.0,
		},
		{
			name:     "zero ratio uses default",
			ratio:    0,
			expected: DefaultCharsPerToken,
		},
		{
			name:     "negative ratio uses default",
			ratio:    -1,
			expected: DefaultCharsPerToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEstimatingCounterWithRatio(tt.ratio)
			if c.CharsPerToken != tt.expected {
				t.Errorf("expected CharsPerToken %v, got %v", tt.expected, c.CharsPerToken)
			}
		})
	}
}

func TestEstimatingCounter_Count(t *testing.T) {
	c := NewEstimatingCounter()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "empty string",
			text:     "",
			expected: 0,
		},
		{
			name:     "single character",
			text:     "a",
			expected: 0, // 1/4 = 0.25 rounds to 0
		},
		{
			name:     "four characters",
			text:     "test",
			expected: 1, // 4/4 = 1
		},
		{
			name:     "hello world",
			text:     "Hello World",
			expected: 3, // 11/4 = 2.75 rounds to 3
		},
		{
			name:     "multibyte runes counted once",
			text:     "日本語　てすと",
			expected: 2, // 7 runes / 4 = 1.75 rounds to 2
		},
		{
			name:     "large text",
			text:     strings.Repeat("x", 40000),
			expected: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Count(tt.text); got != tt.expected {
				t.Errorf("Count(%q) = %d, expected %d", tt.text, got, tt.expected)
			}
		})
	}
}

func TestEstimatingCounter_FitsInLimit(t *testing.T) {
	c := NewEstimatingCounter()

	if !c.FitsInLimit("test", 1) {
		t.Error("4 chars should fit in 1 token")
	}
	if c.FitsInLimit(strings.Repeat("x", 100), 10) {
		t.Error("100 chars should not fit in 10 tokens")
	}
	if !c.FitsInLimit("", 0) {
		t.Error("empty text should fit in 0 tokens")
	}
}

func TestEstimatingCounter_Slice(t *testing.T) {
	c := NewEstimatingCounter()
	text := strings.Repeat("x", 400) // 100 tokens

	tests := []struct {
		name      string
		maxTokens int
		wantLen   int
	}{
		{name: "zero budget", maxTokens: 0, wantLen: 0},
		{name: "negative budget", maxTokens: -5, wantLen: 0},
		{name: "partial", maxTokens: 10, wantLen: 41}, // 41/4 rounds to 10, 42/4 rounds to 11
		{name: "fits whole", maxTokens: 100, wantLen: 400},
		{name: "budget beyond text", maxTokens: 1000, wantLen: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Slice(text, tt.maxTokens)
			if len(got) != tt.wantLen {
				t.Errorf("Slice len = %d, expected %d", len(got), tt.wantLen)
			}
			if c.Count(got) > tt.maxTokens && tt.maxTokens >= 0 {
				t.Errorf("sliced text costs %d, over budget %d", c.Count(got), tt.maxTokens)
			}
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens("Hello World"); got != 3 {
		t.Errorf("EstimateTokens = %d, expected 3", got)
	}
}

func BenchmarkEstimatingCounter_Count(b *testing.B) {
	c := NewEstimatingCounter()
	text := strings.Repeat("benchmark text ", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Count(text)
	}
}
