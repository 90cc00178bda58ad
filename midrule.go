package texverts

import "regexp"

// midruleRE matches a row break immediately followed, after whitespace, by
// a minipage cell.
var midruleRE = regexp.MustCompile(`(\\tabularnewline)(\s+)(\\begin\{minipage\})`)

// The whitespace run is repeated on both sides of the inserted rule.
const midruleTemplate = `${1}${2}\midrule${2}${3}`

func insertMidrules(s string) string {
	return midruleRE.ReplaceAllString(s, midruleTemplate)
}
