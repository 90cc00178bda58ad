package texverts

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrProcessing        = errors.New("processing fault")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Rule is the delimiter placed around and between column letters.
const Rule = "|"

// directiveRE matches a longtable column directive. The groups are the
// opening through "{@{}", the alignment letters, and the closing "@{}}".
// The bracketed options stop at the first "]" and never cross a newline.
var directiveRE = regexp.MustCompile(`(\\begin\{longtable\}\[[^\]\n]*\]\{@\{\})([rcl]+)(@\{\}\})`)

// Directive is one located occurrence of a longtable column directive.
type Directive struct {
	// Offset is the byte offset of the match within the input.
	Offset int `json:"offset" yaml:"offset"`
	// Line is the 1-based line the match starts on.
	Line    int    `json:"line" yaml:"line"`
	Prefix  string `json:"prefix" yaml:"prefix"`
	Columns string `json:"columns" yaml:"columns"`
	Suffix  string `json:"suffix" yaml:"suffix"`
}

// Text returns the directive exactly as it appeared in the input.
func (d Directive) Text() string {
	return d.Prefix + d.Columns + d.Suffix
}

// String implements fmt.Stringer.
func (d Directive) String() string {
	return fmt.Sprintf("%d:%d %s", d.Line, d.Offset, d.Text())
}

// Rewritten returns the directive with its column field ruled.
func (d Directive) Rewritten(opts ...Option) string {
	return d.rewrite(newConfig(opts))
}

func (d Directive) rewrite(c *config) string {
	return d.Prefix + c.columns(d.Columns) + d.Suffix
}

// RuleColumns surrounds every column letter with [Rule]: "rcl" becomes
// "|r|c|l|".
func RuleColumns(cols string) string {
	if cols == "" {
		return ""
	}
	return Rule + InnerRuleColumns(cols) + Rule
}

// InnerRuleColumns places [Rule] between column letters only: "rcl" becomes
// "r|c|l".
func InnerRuleColumns(cols string) string {
	return strings.Join(strings.Split(cols, ""), Rule)
}

// Find returns every directive in input, in the order they occur.
func Find(input string) []Directive {
	var out []Directive
	for d := range All(input) {
		out = append(out, d)
	}
	return out
}

// Rewrite rules the column field of every directive in input and leaves all
// other bytes untouched. Replacements are computed for every match first and
// then substituted left to right, each match consuming the next replacement.
func Rewrite(input string, opts ...Option) (string, error) {
	c := newConfig(opts)
	out, _, err := rewrite(input, c)
	return out, err
}

func rewrite(input string, c *config) (string, []Directive, error) {
	found := Find(input)

	output := input
	if len(found) > 0 {
		replacements := make([]string, len(found))
		for i, d := range found {
			replacements[i] = d.rewrite(c)
		}

		// Both passes use directiveRE, so next only differs from
		// len(replacements) if the matcher disagrees with itself.
		next := 0
		output = directiveRE.ReplaceAllStringFunc(input, func(string) string {
			if next >= len(replacements) {
				next++
				return ""
			}
			r := replacements[next]
			next++
			return r
		})
		if next != len(replacements) {
			return input, found, fmt.Errorf("%w: substituted %d directives, collected %d", ErrProcessing, next, len(replacements))
		}
	}

	if c.midrule {
		output = insertMidrules(output)
	}
	return output, found, nil
}

// Result is the outcome of [Transform]. On a fault Text holds the original
// input verbatim and Err describes the fault; no directive is partially
// rewritten.
type Result struct {
	Text       string
	Original   string
	Directives []Directive
	Err        error
}

// OK reports whether the transformation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Diagnostic returns the message to print on the error channel, or "" when
// the transformation succeeded.
func (r Result) Diagnostic() string {
	if r.Err == nil {
		return ""
	}
	return fmt.Sprintf("Critical error, printing original input to output:\n%v\n", r.Err)
}

// Transform is [Rewrite] behind a fault boundary. Errors and panics raised
// while matching or substituting are converted into Result.Err and the
// original input is returned as Result.Text.
func Transform(input string, opts ...Option) (res Result) {
	res.Original = input
	defer func() {
		if p := recover(); p != nil {
			res.Text = input
			res.Directives = nil
			res.Err = fmt.Errorf("%w: %v", ErrProcessing, p)
		}
	}()

	out, found, err := rewrite(input, newConfig(opts))
	if err != nil {
		res.Text = input
		res.Err = err
		return res
	}
	res.Text = out
	res.Directives = found
	return res
}
