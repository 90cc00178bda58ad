// Package texverts adds vertical rules to the longtable column directives
// that pandoc emits when converting to LaTeX.
//
// A directive such as
//
//	\begin{longtable}[c]{@{}ll@{}}
//
// is rewritten to
//
//	\begin{longtable}[c]{@{}|l|l|@{}}
//
// Only the alignment letters r, c and l are recognized. A directive whose
// column field holds anything else is passed through unchanged, as is every
// byte outside a matched directive. The input is treated as an opaque blob;
// no LaTeX is parsed.
//
// # Rewriting
//
// [Rewrite] returns the transformed text. [Transform] does the same behind a
// fault boundary and reports the outcome as a [Result]: on a fault the
// result carries the original input together with an error wrapping
// [ErrProcessing], never a partially rewritten text.
//
//	res := texverts.Transform(input)
//	if !res.OK() {
//		fmt.Fprint(os.Stderr, res.Diagnostic())
//	}
//	fmt.Print(res.Text)
//
// [Filter] wires the same contract to a reader and two writers, which is
// what the texverts command uses for stdin, stdout and stderr.
//
// # Options
//
// [WithoutOuterRules] rules only between columns, giving "r|c|l" instead of
// "|r|c|l|". [WithColumnFunc] replaces the column rendering entirely.
// [WithMidrule] inserts \midrule between a \tabularnewline and a following
// \begin{minipage}; it is off by default.
//
// # Scanning
//
// [Find] and [All] locate directives without rewriting them. [Report] and
// [WriteReport] render what was found in one of the [Formats]:
//
//	entries := texverts.Report(texverts.Find(input))
//	texverts.WriteReport(os.Stdout, texverts.Markdown, entries)
package texverts
