package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

type pathEntry struct {
	Kind  string `json:"kind"  yaml:"kind"`
	Shape string `json:"shape" yaml:"shape"`
	Path  string `json:"path"  yaml:"path"`
}

// NewPathsCommand creates the command listing a sample path for every endpoint
func NewPathsCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List a sample path for every endpoint",
		Long:  "List every endpoint kind with the response shape it materializes to and a sample path. No request is made",
		Example: `  cdg paths
  cdg paths --filter committee`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newRenderer(cmd)
			if err != nil {
				return err
			}

			paths, err := cdg.ExamplePaths()
			if err != nil {
				return fmt.Errorf("failed to build example paths: %w", err)
			}

			entries := make([]pathEntry, 0, len(paths))
			for _, path := range paths {
				if filter != "" && !strings.Contains(path.Kind.String(), strings.ToLower(filter)) {
					continue
				}

				entries = append(entries, pathEntry{Kind: path.Kind.String(), Shape: path.Shape.String(), Path: path.Path})
			}

			if handled, err := r.data(entries); handled {
				return err
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{entry.Kind, entry.Shape, entry.Path})
			}

			return r.table([]string{"Kind", "Shape", "Path"}, rows)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only kinds containing this text")

	return cmd
}
