package speech

import "strings"

var punctuation = strings.NewReplacer(
	".", "", ",", "", "/", "", "#", "", "!", "", "$", "", "%", "", "^", "",
	"&", "", "*", "", ";", "", ":", "", "{", "", "}", "", "=", "", "-", "",
	"_", "", "`", "", "~", "", "(", "", ")", "", "?", "", "¿", "", "¡", "",
	"\"", "",
)

// Normalize lowercases s and strips punctuation.
func Normalize(s string) string {
	return punctuation.Replace(strings.ToLower(s))
}

// MatchTranscript maps a spoken transcript onto a word bank. Each spoken
// token claims the first unused bank entry equal to it after
// normalization; tokens without a match are discarded. The result holds
// indices into bank in spoken order.
func MatchTranscript(transcript string, bank []string) []int {
	used := make([]bool, len(bank))
	normalized := make([]string, len(bank))
	for i, w := range bank {
		normalized[i] = Normalize(strings.TrimSpace(w))
	}

	var out []int
	for _, token := range strings.Fields(Normalize(transcript)) {
		for i, w := range normalized {
			if !used[i] && w == token {
				used[i] = true
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// Words resolves indices returned by MatchTranscript.
func Words(bank []string, indices []int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, bank[i])
	}
	return out
}
