package commands

import (
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewNominationsCommand creates the nominations command group
func NewNominationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nominations",
		Aliases: []string{"nomination", "nom"},
		Short:   "Browse presidential nominations",
		Long:    "List nominations submitted to the Senate and show their details",
	}

	cmd.AddCommand(newNominationsListCommand())
	cmd.AddCommand(newNominationsGetCommand())

	return cmd
}

func newNominationsListCommand() *cobra.Command {
	var (
		flags    listFlags
		congress int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List nominations",
		Long:  "List nominations, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.listParams()
			if err != nil {
				return err
			}

			endpoint := cdg.NominationList(params)
			if congress != 0 {
				endpoint = cdg.NominationByCongress(congress, params)
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, nominations *cdg.NominationsResponse) error {
				rows := make([][]string, 0, len(nominations.Nominations))
				for _, nomination := range nominations.Nominations {
					date, action := latestAction(nomination.LatestAction)
					rows = append(rows, []string{
						str(nomination.Citation),
						truncate(firstNonEmpty(str(nomination.Description), str(nomination.Organization)), r.titleLength()),
						str(nomination.ReceivedDate),
						date,
						truncate(action, r.titleLength()),
					})
				}

				if err := r.table([]string{"Citation", "Description", "Received", "Action Date", "Latest Action"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), nominations.Pagination, flags.offset)

				return nil
			})
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().IntVar(&congress, "congress", 0, "congress number")

	return cmd
}

func newNominationsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get CONGRESS NUMBER",
		Short:   "Get nomination details",
		Long:    "Display a nomination as returned by the API. Partitioned nominations use NUMBER-PART, such as 2467-1",
		Example: "  cdg nominations get 117 2467",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			congress, err := parseCount("congress", args[0])
			if err != nil {
				return err
			}

			return fetchStructural(cmd, cdg.NominationDetails(congress, args[1], cdg.NewDetailParams()))
		},
	}
}
