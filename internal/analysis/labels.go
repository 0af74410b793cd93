package analysis

import (
	"errors"
	"fmt"
	"sort"
)

// Other labels integers whose trajectory found no cycle within the bound.
const Other = "other"

// MaxLabels is the number of distinct labels the encoding can produce:
// 26 single letters followed by 26*26 two-letter codes.
const MaxLabels = 26 * 27

const letters = "abcdefghijklmnopqrstuvwxyz"

// ErrLabelSpace indicates more distinct cycles than labels.
var ErrLabelSpace = errors.New("analysis: label index out of range")

// Label encodes a first-appearance index. Indices 0-25 map to a-z. From 26
// on the first letter is letters[idx/26-1] and the second letters[idx%26],
// so 26 is "aa", 52 is "ba" and 701 is "zz".
func Label(idx int) (string, error) {
	if idx < 0 || idx >= MaxLabels {
		return "", fmt.Errorf("%w: %d", ErrLabelSpace, idx)
	}
	if idx < 26 {
		return letters[idx : idx+1], nil
	}
	return string([]byte{letters[idx/26-1], letters[idx%26]}), nil
}

// SortLabels returns the distinct labels in presentation order: real labels
// by string order, then Other.
func SortLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a == Other) != (b == Other) {
			return b == Other
		}
		return a < b
	})
	return out
}
