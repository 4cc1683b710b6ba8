package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/fia-comparison/internal/domain"
)

// GenerateReport writes results in the named format to path and returns the
// path actually written.
func GenerateReport(results *domain.Comparison, format, path string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(f, results, path)
}

// Summary returns the console summary block on its own, for printing after a
// file export.
func Summary(results *domain.Comparison) string {
	var buf bytes.Buffer
	writeSummary(&buf, results.Summary)
	return buf.String()
}
