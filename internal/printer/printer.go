// Package printer renders integer sequences as text, one value per line.
package printer

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/charmingruby/negfilt/seq"
)

// FormatLine renders v in canonical base 10 followed by a newline.
func FormatLine[T constraints.Signed](v T) string {
	return strconv.FormatInt(int64(v), 10) + "\n"
}

// WriteLines writes every value of values to w, one per line, in order. It
// stops at the first failed write and returns that error wrapped.
func WriteLines[T constraints.Signed](w io.Writer, values []T) error {
	for i, line := range seq.Map(values, FormatLine[T]) {
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("printer: write value %d: %w", i, err)
		}
	}
	return nil
}
