package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewCommitteesCommand creates the committees command group
func NewCommitteesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "committees",
		Aliases: []string{"committee"},
		Short:   "Browse congressional committees",
		Long:    "List House, Senate and joint committees and show their details",
	}

	cmd.AddCommand(newCommitteesListCommand())
	cmd.AddCommand(newCommitteesGetCommand())

	return cmd
}

func newCommitteesListCommand() *cobra.Command {
	var (
		flags    listFlags
		congress int
		chamber  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List committees",
		Long:  "List committees, optionally narrowed to a congress and chamber",
		Example: `  cdg committees list --chamber senate
  cdg committees list --congress 118 --chamber house`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.windowParams()
			if err != nil {
				return err
			}

			var parsed cdg.ChamberType

			if chamber != "" {
				parsed, err = cdg.ParseChamberType(chamber)
				if err != nil {
					return fmt.Errorf("invalid --chamber: %w", err)
				}
			}

			var endpoint cdg.Endpoint

			switch {
			case congress != 0 && parsed != "":
				endpoint = cdg.CommitteeByCongressChamber(congress, parsed, params)
			case congress != 0:
				endpoint = cdg.CommitteeByCongress(congress, params)
			case parsed != "":
				endpoint = cdg.CommitteeByChamber(parsed, params)
			default:
				endpoint = cdg.CommitteeList(params)
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, committees *cdg.CommitteesResponse) error {
				rows := make([][]string, 0, len(committees.Committees))
				for _, committee := range committees.Committees {
					rows = append(rows, []string{
						str(committee.SystemCode),
						truncate(str(committee.Name), r.titleLength()),
						titleCase(strings.ToLower(str(committee.Chamber))),
						str(committee.CommitteeTypeCode),
						fmt.Sprintf("%d", len(committee.Subcommittees)),
					})
				}

				if err := r.table([]string{"Code", "Name", "Chamber", "Type", "Subcommittees"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), committees.Pagination, flags.offset)

				return nil
			})
		},
	}

	addWindowFlags(cmd, &flags)
	cmd.Flags().IntVar(&congress, "congress", 0, "congress number")
	cmd.Flags().StringVar(&chamber, "chamber", "", "chamber (house, senate, joint)")

	return cmd
}

func newCommitteesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get CHAMBER CODE",
		Short:   "Get committee details",
		Long:    "Display a committee, its history and its subcommittees as returned by the API",
		Example: "  cdg committees get house hspw00",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chamber, err := cdg.ParseChamberType(args[0])
			if err != nil {
				return fmt.Errorf("invalid chamber: %w", err)
			}

			return fetchStructural(cmd, cdg.CommitteeDetails(chamber, strings.ToLower(args[1]), cdg.NewDetailParams()))
		},
	}
}
