package texverts

// Option configures [Rewrite], [Transform] and [Filter].
type Option func(*config)

type config struct {
	midrule bool
	columns func(string) string
}

func newConfig(opts []Option) *config {
	c := &config{columns: RuleColumns}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithMidrule enables the secondary pass that inserts \midrule between a
// \tabularnewline and a following \begin{minipage}.
func WithMidrule() Option {
	return func(c *config) { c.midrule = true }
}

// WithoutOuterRules rules only between columns: "rcl" becomes "r|c|l".
func WithoutOuterRules() Option {
	return func(c *config) { c.columns = InnerRuleColumns }
}

// WithColumnFunc replaces the column rendering entirely. fn receives the
// matched alignment letters and returns the new column field. A nil fn
// restores the default.
func WithColumnFunc(fn func(cols string) string) Option {
	return func(c *config) {
		if fn == nil {
			fn = RuleColumns
		}
		c.columns = fn
	}
}
