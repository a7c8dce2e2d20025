package commands

import (
	"fmt"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewAmendmentsCommand creates the amendments command group
func NewAmendmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "amendments",
		Aliases: []string{"amendment", "amdt"},
		Short:   "Browse amendments",
		Long:    "List House and Senate amendments and show their details",
	}

	cmd.AddCommand(newAmendmentsListCommand())
	cmd.AddCommand(newAmendmentsGetCommand())

	return cmd
}

func newAmendmentsListCommand() *cobra.Command {
	var (
		flags         listFlags
		congress      int
		amendmentType string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List amendments",
		Long:  "List amendments, most recently updated first, optionally narrowed to a congress and type",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.listParams()
			if err != nil {
				return err
			}

			var endpoint cdg.Endpoint

			switch {
			case amendmentType != "" && congress == 0:
				return ErrTypeNeedsCongress
			case amendmentType != "":
				parsed, err := cdg.ParseAmendmentType(amendmentType)
				if err != nil {
					return fmt.Errorf("invalid --type: %w", err)
				}

				endpoint = cdg.AmendmentByType(congress, parsed, params)
			case congress != 0:
				endpoint = cdg.AmendmentByCongress(congress, params)
			default:
				endpoint = cdg.AmendmentList(params)
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, amendments *cdg.AmendmentsResponse) error {
				rows := make([][]string, 0, len(amendments.Amendments))
				for _, amendment := range amendments.Amendments {
					date, _ := latestAction(amendment.LatestAction)
					rows = append(rows, []string{
						num(amendment.Congress),
						billLabel(amendment.Type, amendment.Number),
						truncate(firstNonEmpty(str(amendment.Purpose), str(amendment.Description)), r.titleLength()),
						date,
					})
				}

				if err := r.table([]string{"Congress", "Amendment", "Purpose", "Action Date"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), amendments.Pagination, flags.offset)

				return nil
			})
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().IntVar(&congress, "congress", 0, "congress number")
	cmd.Flags().StringVar(&amendmentType, "type", "", "amendment type (hamdt, samdt, suamdt)")

	return cmd
}

func newAmendmentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get CONGRESS TYPE NUMBER",
		Short:   "Get amendment details",
		Long:    "Display an amendment as returned by the API",
		Example: "  cdg amendments get 117 samdt 2137",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			congress, err := parseCount("congress", args[0])
			if err != nil {
				return err
			}

			amendmentType, err := cdg.ParseAmendmentType(args[1])
			if err != nil {
				return fmt.Errorf("invalid amendment type: %w", err)
			}

			number, err := parseCount("amendment number", args[2])
			if err != nil {
				return err
			}

			return fetchStructural(cmd, cdg.AmendmentDetails(congress, amendmentType, number, cdg.NewDetailParams()))
		},
	}
}
