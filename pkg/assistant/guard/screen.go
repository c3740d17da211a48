package guard

import "strings"

// Known prompt-override phrasings. Matching is detection-only: a hit is
// surfaced for logging while enforcement stays with the compiled
// instruction prompt, which downstream inference honors best-effort.
var injectionPatterns = []struct {
	Id     string
	Phrase string
}{
	{Id: "ignore-previous", Phrase: "ignore previous instructions"},
	{Id: "ignore-above", Phrase: "ignore the above"},
	{Id: "system-prompt", Phrase: "system prompt"},
	{Id: "you-are-now", Phrase: "you are now"},
	{Id: "forget-everything", Phrase: "forget everything"},
	{Id: "new-instructions", Phrase: "new instructions:"},
	{Id: "disregard-rules", Phrase: "disregard your rules"},
	{Id: "act-as", Phrase: "act as if you are"},
}

// Screen classifies a user message against the known injection patterns.
// It returns every matched pattern id; an empty slice means no match.
func Screen(message string) []string {
	lowered := strings.ToLower(message)

	var matched []string
	for _, p := range injectionPatterns {
		if strings.Contains(lowered, p.Phrase) {
			matched = append(matched, p.Id)
		}
	}
	return matched
}
