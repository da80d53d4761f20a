package scanner

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Keywords lists the reserved words in lexical order.
func Keywords() []string {
	keywords := maps.Keys(reservedKeywords)
	slices.Sort(keywords)
	return keywords
}
