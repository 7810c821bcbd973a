package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/foliokit/foliokit/config"
	"github.com/foliokit/foliokit/internal/generator"
	"github.com/spf13/cobra"
)

var initYes bool

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Scaffold a new portfolio project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "my-portfolio"
		if len(args) > 0 {
			name = args[0]
		}

		site := &config.SiteConfig{Name: name}
		if !initYes {
			reader := bufio.NewReader(os.Stdin)
			site.Name = prompt(reader, "Site name", name)
			site.Author = prompt(reader, "Author", "")
			site.Description = prompt(reader, "Description", "")
			site.BaseURL = prompt(reader, "Base URL", "https://example.com")
		} else {
			site.BaseURL = "https://example.com"
		}

		if err := generator.Scaffold(name, site, cfg.Language); err != nil {
			return err
		}

		fmt.Printf("Project %q scaffolded.\n", name)
		fmt.Println("Next steps:")
		fmt.Printf("  cd %s\n", name)
		fmt.Println("  foliokit generate all")
		fmt.Println("  foliokit serve")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "skip prompts and use defaults")
}

func prompt(reader *bufio.Reader, label, fallback string) string {
	if fallback != "" {
		fmt.Printf("%s [%s]: ", label, fallback)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return fallback
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
