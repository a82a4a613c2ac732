package cli

import (
	"fmt"

	"github.com/pakaje/pakaje/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort  bool
	versionFormat string
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().StringVarP(&versionFormat, "format", "o", "", "Print build info as json or yaml")
	rootCmd.AddCommand(versionCmd)
}

type buildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := buildInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate}

		switch {
		case versionShort:
			_, err := fmt.Fprintln(out, info.Version)
			return err
		case versionFormat != "":
			data, err := render(info, versionFormat)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		}

		_, err := fmt.Fprintf(out, "%s %s (commit %s, built %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		return err
	},
}
