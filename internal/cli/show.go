package cli

import (
	"fmt"

	"github.com/pakaje/pakaje/internal/manifest"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var showFormat string

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "o", "json", "Output format: json or yaml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the manifest",
	Long:  `Load the manifest and print it as JSON (the on-disk layout) or YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveFile()
		pkg, err := manifest.Load(cmd.Context(), path)
		if err != nil {
			return err
		}
		logger.Debug("loaded manifest", "path", path, "name", pkg.Name)

		out, err := render(pkg, showFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

// render encodes v as JSON with the manifest codec or as YAML.
func render(v any, format string) ([]byte, error) {
	switch format {
	case "json":
		return manifest.Encode(v, manifest.DefaultWriteOptions())
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("--format must be 'json' or 'yaml', got %q", format)
	}
}
