package lessongen

// RepairWordBank returns bank with every word of correct that is missing
// appended in answer order. Existing entries keep their order, and a
// repeated answer word gets as many bank entries as it has occurrences.
func RepairWordBank(correct, bank []string) []string {
	have := make(map[string]int, len(bank))
	for _, w := range bank {
		have[w]++
	}

	out := append([]string(nil), bank...)
	need := make(map[string]int, len(correct))
	for _, w := range correct {
		need[w]++
		if need[w] > have[w] {
			out = append(out, w)
			have[w]++
		}
	}
	return out
}
