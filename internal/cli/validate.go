package cli

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the generated SEO artifacts exist and are well-formed",
	RunE: func(cmd *cobra.Command, args []string) error {
		publicDir := cfg.OutputSettings.PublicDir
		dataDir := cfg.OutputSettings.DataDir
		failures := 0

		check := func(name string, err error) {
			if err != nil {
				failures++
				fmt.Printf("  ✗ %-28s %v\n", name, err)
				return
			}
			fmt.Printf("  ✓ %s\n", name)
		}

		fmt.Println("Validating generated artifacts:")
		check("public/llms.txt", nonEmptyFile(filepath.Join(publicDir, "llms.txt")))
		check("public/robots.txt", nonEmptyFile(filepath.Join(publicDir, "robots.txt")))
		check("public/sitemap.xml", wellFormedXML(filepath.Join(publicDir, "sitemap.xml")))
		check("src/data/structured-data.json", validStructuredData(filepath.Join(dataDir, "structured-data.json")))

		if failures > 0 {
			return fmt.Errorf("%d artifact checks failed; run 'foliokit generate all'", failures)
		}
		fmt.Println("All artifacts look good.")
		return nil
	},
}

func nonEmptyFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return fmt.Errorf("file is empty")
	}
	return nil
}

func wellFormedXML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc struct{}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("malformed xml: %w", err)
	}
	return nil
}

func validStructuredData(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var schemas []map[string]any
	if err := jsoniter.Unmarshal(data, &schemas); err != nil {
		return fmt.Errorf("malformed json: %w", err)
	}
	if len(schemas) == 0 {
		return fmt.Errorf("no schemas present")
	}
	for i, schema := range schemas {
		if schema["@context"] == nil || schema["@type"] == nil {
			return fmt.Errorf("schema %d is missing @context or @type", i)
		}
	}
	return nil
}
