package cli

import (
	"fmt"

	"github.com/pakaje/pakaje/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the manifest's shape",
	Long: `Check field types and required fields (name, version, description,
license, author) against the package.json schema. Version strings,
dependency ranges and names are not inspected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveFile()
		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(out, "%s: ok\n", path)
			return nil
		}

		for _, issue := range result.Issues {
			loc := issue.Path
			if loc == "" {
				loc = "/"
			}
			fmt.Fprintf(out, "  %s: %s (%s)\n", loc, issue.Message, issue.Keyword)
		}
		return fmt.Errorf("%s: %d issue(s) found", path, len(result.Issues))
	},
}
