package road

import "strings"

// SuffixUnknown is the category for unnamed roads and names without a
// trailing token. It is always a valid category and always gets a color.
const SuffixUnknown = "unknown"

// ClassifySuffix returns the classification suffix of a road name: the last
// whitespace-delimited token, lowercased. Pure function.
func ClassifySuffix(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return SuffixUnknown
	}
	return strings.ToLower(fields[len(fields)-1])
}

// Classifier applies an optional alias table on top of ClassifySuffix, so
// that e.g. "st" can be folded into "street". Aliases are an explicit
// configuration; the zero value classifies without expansion.
type Classifier struct {
	Aliases map[string]string
}

func (c Classifier) Classify(name string) string {
	suffix := ClassifySuffix(name)
	if c.Aliases == nil {
		return suffix
	}
	if full, ok := c.Aliases[suffix]; ok {
		return strings.ToLower(full)
	}
	return suffix
}
