package model

// Tokenizer encoding names. These match the vocabulary names used by the
// tokens package.
const (
	EncodingCl100kBase = "cl100k_base"
	EncodingO200kBase  = "o200k_base"
)

// Profile describes a model's budgeting characteristics.
type Profile struct {
	// Name is the normalized family name this profile belongs to.
	Name ModelName

	// ContextWindow is the maximum number of tokens the model can read
	// across prompt and reply combined.
	ContextWindow int

	// ReservedCompletionTokens is the default budget held back for the
	// model's reply when the caller's policy doesn't specify one.
	ReservedCompletionTokens int

	// Encoding names the tokenizer vocabulary that approximates this
	// model's tokenization.
	Encoding string
}

// DefaultProfile is returned for model identifiers with no known profile.
// The window is deliberately conservative.
var DefaultProfile = Profile{
	Name:                     "default",
	ContextWindow:            100000,
	ReservedCompletionTokens: 4000,
	Encoding:                 EncodingCl100kBase,
}

// Profiles contains budgeting profiles for common model families.
var Profiles = map[ModelName]Profile{
	ModelOpus:    {Name: ModelOpus, ContextWindow: 200000, ReservedCompletionTokens: 4000, Encoding: EncodingCl100kBase},
	ModelSonnet:  {Name: ModelSonnet, ContextWindow: 200000, ReservedCompletionTokens: 4000, Encoding: EncodingCl100kBase},
	ModelHaiku:   {Name: ModelHaiku, ContextWindow: 200000, ReservedCompletionTokens: 4000, Encoding: EncodingCl100kBase},
	ModelGPT:     {Name: ModelGPT, ContextWindow: 272000, ReservedCompletionTokens: 8000, Encoding: EncodingO200kBase},
	ModelGPTMini: {Name: ModelGPTMini, ContextWindow: 272000, ReservedCompletionTokens: 8000, Encoding: EncodingO200kBase},
	ModelGPT4:    {Name: ModelGPT4, ContextWindow: 128000, ReservedCompletionTokens: 4000, Encoding: EncodingCl100kBase},
	ModelGPT4o:   {Name: ModelGPT4o, ContextWindow: 128000, ReservedCompletionTokens: 4000, Encoding: EncodingO200kBase},
}

// Lookup returns the profile for a model identifier, normalizing the name
// first. The second return is false when the identifier is unknown and the
// default profile was substituted.
func Lookup(name string) (Profile, bool) {
	if p, ok := Profiles[Normalize(name)]; ok {
		return p, true
	}
	return DefaultProfile, false
}

// ContextWindow returns the context window for a model, or the default
// window if the model is unknown.
func ContextWindow(name string) int {
	p, _ := Lookup(name)
	return p.ContextWindow
}
