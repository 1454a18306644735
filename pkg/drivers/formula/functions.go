package formula

import (
	"strings"

	"github.com/xuri/efp"
)

// Functions returns the distinct function names called by formula, upper-cased,
// in order of appearance. The leading "=" is optional.
func Functions(formula string) []string {
	ps := efp.ExcelParser()
	tokens := ps.Parse(strings.TrimPrefix(formula, "="))

	var names []string
	seen := make(map[string]bool)
	for _, token := range tokens {
		if token.TType != efp.TokenTypeFunction || token.TSubType != efp.TokenSubTypeStart {
			continue
		}
		name := strings.ToUpper(token.TValue)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
