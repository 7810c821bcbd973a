package report

import (
	"fmt"
	"os"

	"github.com/foliokit/foliokit/internal/model"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON produces the canonical lossless serialization of a report:
// two-space indented JSON that round-trips back into the identical structure.
func MarshalJSON(r *model.SimulationReport) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteJSON writes the canonical JSON report and returns the absolute path.
func WriteJSON(r *model.SimulationReport, dir string) (string, error) {
	data, err := MarshalJSON(r)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	path, err := outputPath(dir, r.URL, ".json")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write json report: %w", err)
	}
	return path, nil
}
