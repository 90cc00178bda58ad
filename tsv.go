package texverts

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, strings.Join(Entry{}.Header(), "\t")); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, strings.Join(e.Row(), "\t")); err != nil {
			return err
		}
	}
	return nil
}
