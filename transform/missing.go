package transform

import "github.com/VanDung-dev/ARFF-Engine/dataset"

// NormalizeMissing replaces string cells equal to any of the tokens with
// the missing sentinel, in place, and returns the number of replaced
// cells. ARFF loading normalizes raw tokens before cells are typed; this
// pass covers datasets built from frames, JSON or code.
func (e *Engine) NormalizeMissing(ds *dataset.Dataset, tokens []string) int {
	if ds == nil || len(tokens) == 0 {
		return 0
	}
	match := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		match[tok] = true
	}

	replaced := 0
	for _, row := range ds.Rows {
		for i, cell := range row {
			if s, ok := cell.(string); ok && match[s] {
				row[i] = nil
				replaced++
			}
		}
	}
	return replaced
}
