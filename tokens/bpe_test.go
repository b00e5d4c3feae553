package tokens

import (
	"strings"
	"testing"
)

func TestNewBPECounter(t *testing.T) {
	for _, encoding := range []string{EncodingCl100kBase, EncodingO200kBase, EncodingP50kBase, EncodingR50kBase} {
		t.Run(encoding, func(t *testing.T) {
			if _, err := NewBPECounter(encoding); err != nil {
				t.Fatalf("NewBPECounter(%q) failed: %v", encoding, err)
			}
		})
	}
}

func TestNewBPECounter_UnknownEncodingFallsBack(t *testing.T) {
	c, err := NewBPECounter("no-such-encoding")
	if err != nil {
		t.Fatalf("expected fallback to default encoding, got error: %v", err)
	}
	if c.Encoding() != DefaultEncoding {
		t.Errorf("encoding = %q, expected %q", c.Encoding(), DefaultEncoding)
	}
}

func TestBPECounter_Count(t *testing.T) {
	c, err := NewBPECounter(EncodingCl100kBase)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.Count(""); got != 0 {
		t.Errorf("Count of empty text = %d, expected 0", got)
	}
	if got := c.Count("Hello, world!"); got <= 0 {
		t.Errorf("Count = %d, expected > 0", got)
	}

	// Monotonic in text length.
	short := c.Count("some text")
	long := c.Count("some text, and then some more text after it")
	if long <= short {
		t.Errorf("longer text counted %d tokens, shorter counted %d", long, short)
	}
}

func TestBPECounter_CountIsDeterministic(t *testing.T) {
	c, err := NewBPECounter(EncodingCl100kBase)
	if err != nil {
		t.Fatal(err)
	}

	text := strings.Repeat("deterministic counting ", 50)
	first := c.Count(text)
	for i := 0; i < 5; i++ {
		if got := c.Count(text); got != first {
			t.Fatalf("Count varied across calls: %d then %d", first, got)
		}
	}
}

func TestBPECounter_Slice(t *testing.T) {
	c, err := NewBPECounter(EncodingCl100kBase)
	if err != nil {
		t.Fatal(err)
	}

	text := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)

	sliced := c.Slice(text, 50)
	if got := c.Count(sliced); got > 50 {
		t.Errorf("sliced text costs %d tokens, over the 50-token budget", got)
	}
	if !strings.HasPrefix(text, sliced) {
		t.Error("slice is not a prefix of the input")
	}

	if got := c.Slice(text, 0); got != "" {
		t.Errorf("zero budget returned %q, expected empty", got)
	}
	if got := c.Slice("short", 1000); got != "short" {
		t.Errorf("oversized budget returned %q, expected input unchanged", got)
	}
}

func BenchmarkBPECounter_Count(b *testing.B) {
	c, err := NewBPECounter(EncodingCl100kBase)
	if err != nil {
		b.Fatal(err)
	}
	text := strings.Repeat("benchmark text ", 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Count(text)
	}
}
