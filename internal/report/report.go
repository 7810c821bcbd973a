// Package report renders a SimulationReport in the four supported output
// formats. Renderers are independent pure functions over the same report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kennygrant/sanitize"
)

// outputPath builds <dir>/<sanitized-url>-<timestamp><ext>, creating the
// directory if needed, and returns the absolute path.
func outputPath(dir, url, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir %q: %w", dir, err)
	}
	name := fmt.Sprintf("%s-%s%s", sanitize.BaseName(url), time.Now().UTC().Format("20060102-150405"), ext)
	return filepath.Abs(filepath.Join(dir, name))
}
