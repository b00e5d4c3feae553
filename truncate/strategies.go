package truncate

import (
	"github.com/promptfit/promptfit/tokens"
)

// prefix returns the longest prefix of text costing at most maxTokens.
// Uses exact token slicing when the counter supports it, otherwise a
// binary search over rune prefixes.
func (t *Truncator) prefix(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if slicer, ok := t.counter.(tokens.Slicer); ok {
		return slicer.Slice(text, maxTokens)
	}

	runes := []rune(text)
	keep := searchMax(len(runes), func(k int) bool {
		return t.counter.FitsInLimit(string(runes[:k]), maxTokens)
	})
	return string(runes[:keep])
}

// truncateEnd keeps the head of the text. The marker is costed together
// with the kept text so the combined result never exceeds the limit.
func (t *Truncator) truncateEnd(text string, maxTokens int) string {
	if t.suffix == "" {
		return t.prefix(text, maxTokens)
	}

	runes := []rune(text)
	keep := searchMax(len(runes), func(k int) bool {
		return t.counter.FitsInLimit(string(runes[:k])+t.suffix, maxTokens)
	})
	if keep == 0 {
		return t.suffix
	}
	return string(runes[:keep]) + t.suffix
}

// truncateStart keeps the tail of the text.
func (t *Truncator) truncateStart(text string, maxTokens int) string {
	runes := []rune(text)
	keep := searchMax(len(runes), func(k int) bool {
		return t.counter.FitsInLimit(t.suffix+string(runes[len(runes)-k:]), maxTokens)
	})
	if keep == 0 {
		return t.suffix
	}
	return t.suffix + string(runes[len(runes)-keep:])
}

// truncateMiddle keeps both ends of the text. The head takes half the
// budget; the tail grows to whatever the combined result still allows.
func (t *Truncator) truncateMiddle(text string, maxTokens int) string {
	markerCost := t.counter.Count(t.suffix)
	half := (maxTokens - markerCost) / 2
	if half <= 0 {
		return t.suffix
	}

	head := t.prefix(text, half)
	rest := []rune(text[len(head):])
	keep := searchMax(len(rest), func(k int) bool {
		return t.counter.FitsInLimit(head+t.suffix+string(rest[len(rest)-k:]), maxTokens)
	})
	return head + t.suffix + string(rest[len(rest)-keep:])
}

// searchMax returns the largest k in [0, n] for which ok(k) holds,
// assuming ok is monotone (true up to some point, false after).
func searchMax(n int, ok func(int) bool) int {
	low, high := 0, n
	for low < high {
		mid := (low + high + 1) / 2
		if ok(mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low
}
