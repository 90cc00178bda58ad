package texverts

import (
	"iter"
	"strings"
)

// All returns an iterator over the directives in input, in the order they
// occur. Matches never overlap.
func All(input string) iter.Seq[Directive] {
	return func(yield func(Directive) bool) {
		line, last := 1, 0
		for _, m := range directiveRE.FindAllStringSubmatchIndex(input, -1) {
			line += strings.Count(input[last:m[0]], "\n")
			last = m[0]
			d := Directive{
				Offset:  m[0],
				Line:    line,
				Prefix:  input[m[2]:m[3]],
				Columns: input[m[4]:m[5]],
				Suffix:  input[m[6]:m[7]],
			}
			if !yield(d) {
				return
			}
		}
	}
}

