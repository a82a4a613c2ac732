package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pakaje/pakaje/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	initVersion string
	initForce   bool
)

func init() {
	initCmd.Flags().StringVar(&initVersion, "version", "", "Initial package version (strict semver, default 1.0.0)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing manifest")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Write a default package.json",
	Long: `Write the default package.json template.

The package name defaults to the current directory's name. An existing
manifest is only replaced with --force; the old content is not merged.

Examples:
  pakaje init
  pakaje init my-app --version 0.1.0
  pakaje init -f packages/api/package.json --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := packageName(args)
		if err != nil {
			return err
		}

		path := resolveFile()
		if !initForce {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}
		}

		pkg := manifest.New(name)
		if initVersion != "" {
			v, err := semver.StrictNewVersion(initVersion)
			if err != nil {
				return fmt.Errorf("invalid --version %q: %w", initVersion, err)
			}
			pkg.Version = v.String()
		}

		if err := manifest.Save(cmd.Context(), pkg, path); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		logger.Debug("wrote manifest", "path", path, "name", pkg.Name, "version", pkg.Version)

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote to %s\n", path)
		return nil
	},
}

func packageName(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return filepath.Base(cwd), nil
}
