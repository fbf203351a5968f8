package describe

// DefaultTonePhrase is used for every tone key not present in the lexicon.
const DefaultTonePhrase = "professional and engaging"

// toneLexicon maps the closed set of tone keys to the writing-style phrase
// interpolated into the prompt.
var toneLexicon = map[string]string{
	"modern":  "modern, sleek, and contemporary with emphasis on clean lines and updated features",
	"cozy":    "warm, inviting, and charming with emphasis on comfort and homey atmosphere",
	"luxury":  "luxurious, elegant, and sophisticated with emphasis on high-end finishes and exclusivity",
	"family":  "family-friendly, practical, and welcoming with emphasis on space and community",
	"move-in": "move-in ready, well-maintained, and turnkey with emphasis on convenience and condition",
}

// TonePhrase translates a tone key through the lexicon. Lookup is by exact
// match; anything unknown falls back to the default phrase.
func TonePhrase(tone string) string {
	if phrase, ok := toneLexicon[tone]; ok {
		return phrase
	}

	return DefaultTonePhrase
}
