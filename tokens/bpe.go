package tokens

import (
	"github.com/tiktoken-go/tokenizer"
)

// Encoding names accepted by NewBPECounter. These match the tiktoken
// vocabulary names embedded in the tokenizer package.
const (
	EncodingCl100kBase = "cl100k_base"
	EncodingO200kBase  = "o200k_base"
	EncodingP50kBase   = "p50k_base"
	EncodingR50kBase   = "r50k_base"
)

// DefaultEncoding is used for model identifiers with no known encoding.
// cl100k_base tracks Claude and GPT-4 tokenization closely enough for
// budgeting decisions.
const DefaultEncoding = EncodingCl100kBase

// BPECounter counts tokens with a real byte-pair encoding.
// The vocabularies are compiled into the binary; counting never touches
// the network or the filesystem.
type BPECounter struct {
	codec    tokenizer.Codec
	fallback *EstimatingCounter
}

// NewBPECounter creates a counter for the named encoding.
// Unrecognized encoding names fall back to DefaultEncoding.
func NewBPECounter(encoding string) (*BPECounter, error) {
	codec, err := tokenizer.Get(encodingFor(encoding))
	if err != nil {
		return nil, err
	}
	return &BPECounter{
		codec:    codec,
		fallback: NewEstimatingCounter(),
	}, nil
}

func encodingFor(name string) tokenizer.Encoding {
	switch name {
	case EncodingO200kBase:
		return tokenizer.O200kBase
	case EncodingP50kBase:
		return tokenizer.P50kBase
	case EncodingR50kBase:
		return tokenizer.R50kBase
	default:
		return tokenizer.Cl100kBase
	}
}

// Count returns the exact BPE token count for text, or an estimate if the
// codec rejects the input.
func (c *BPECounter) Count(text string) int {
	if text == "" {
		return 0
	}
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return c.fallback.Count(text)
	}
	return len(ids)
}

// FitsInLimit returns true if the text fits within the token limit.
func (c *BPECounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Slice returns the prefix of text that decodes from its first maxTokens
// tokens. The cut lands on an exact token boundary.
func (c *BPECounter) Slice(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	ids, _, err := c.codec.Encode(text)
	if err != nil {
		return c.fallback.Slice(text, maxTokens)
	}
	if len(ids) <= maxTokens {
		return text
	}
	out, err := c.codec.Decode(ids[:maxTokens])
	if err != nil {
		return c.fallback.Slice(text, maxTokens)
	}
	return out
}

// Encoding returns the name of the underlying vocabulary.
func (c *BPECounter) Encoding() string {
	return c.codec.GetName()
}
