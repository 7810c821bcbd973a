package cli

import (
	"fmt"

	"github.com/foliokit/foliokit/internal/deploy"
	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy [platform]",
	Short: "Write deploy configuration or push the site (vercel, netlify, s3)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := cfg.DeploySettings.Platform
		if len(args) > 0 {
			platform = args[0]
		}

		switch platform {
		case "vercel", "netlify":
			path, err := deploy.WriteConfig(platform, ".")
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s deploy config → %s\n", platform, path)
			return nil
		case "s3":
			uploader, err := deploy.NewS3Uploader(cfg.DeploySettings.S3, log)
			if err != nil {
				return err
			}
			endpoint, err := uploader.UploadDir(cmd.Context(), cfg.OutputSettings.PublicDir)
			if err != nil {
				return err
			}
			fmt.Printf("Site uploaded → %s\n", endpoint)
			return nil
		default:
			return fmt.Errorf("unknown deploy platform %q", platform)
		}
	},
}
