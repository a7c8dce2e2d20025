package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the CDG CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version"    yaml:"version"`
				Commit  string `json:"commit"     yaml:"commit"`
				Built   string `json:"built"      yaml:"built"`
				Go      string `json:"go_version" yaml:"go_version"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
				Go:      runtime.Version(),
			}

			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			if handled, err := r.data(versionInfo); handled {
				return err
			}

			return r.table([]string{"Property", "Value"}, [][]string{
				{"Version", version},
				{"Commit", commit},
				{"Built", date},
				{"Go Version", versionInfo.Go},
			})
		},
	}
}
