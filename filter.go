package texverts

import (
	"fmt"
	"io"
)

// Filter reads all of r, transforms it and writes the result to w in a
// single write. On a fault the diagnostic goes to errw and the original
// input goes to w, so w always receives usable text. The returned error is
// the fault, if any, or a write failure on w.
func Filter(r io.Reader, w, errw io.Writer, opts ...Option) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		// Echo whatever was read before the failure.
		res := Result{
			Text:     string(data),
			Original: string(data),
			Err:      fmt.Errorf("%w: read input: %v", ErrProcessing, err),
		}
		return res, emit(w, errw, res)
	}

	res := Transform(string(data), opts...)
	return res, emit(w, errw, res)
}

func emit(w, errw io.Writer, res Result) error {
	if msg := res.Diagnostic(); msg != "" {
		// The diagnostic is best effort; the primary output must still go out.
		_, _ = io.WriteString(errw, msg)
	}
	if _, err := io.WriteString(w, res.Text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return res.Err
}
