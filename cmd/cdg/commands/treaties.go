package commands

import (
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewTreatiesCommand creates the treaties command group
func NewTreatiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "treaties",
		Aliases: []string{"treaty"},
		Short:   "Browse treaties",
		Long:    "List treaties transmitted to the Senate and show their details",
	}

	cmd.AddCommand(newTreatiesListCommand())
	cmd.AddCommand(newTreatiesGetCommand())

	return cmd
}

func newTreatiesListCommand() *cobra.Command {
	var (
		flags    listFlags
		congress int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List treaties",
		Long:  "List treaties, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.listParams()
			if err != nil {
				return err
			}

			endpoint := cdg.TreatyList(params)
			if congress != 0 {
				endpoint = cdg.TreatyByCongress(congress, params)
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, treaties *cdg.TreatiesResponse) error {
				rows := make([][]string, 0, len(treaties.Treaties))
				for _, treaty := range treaties.Treaties {
					number := num(treaty.Number)
					if suffix := str(treaty.Suffix); suffix != "" {
						number += suffix
					}

					rows = append(rows, []string{
						num(treaty.CongressReceived),
						number,
						truncate(str(treaty.Topic), r.titleLength()),
						orNA(str(treaty.TransmittedDate)),
					})
				}

				if err := r.table([]string{"Congress", "Number", "Topic", "Transmitted"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), treaties.Pagination, flags.offset)

				return nil
			})
		},
	}

	addListFlags(cmd, &flags)
	cmd.Flags().IntVar(&congress, "congress", 0, "congress number")

	return cmd
}

func newTreatiesGetCommand() *cobra.Command {
	var suffix string

	cmd := &cobra.Command{
		Use:     "get CONGRESS NUMBER",
		Short:   "Get treaty details",
		Long:    "Display a treaty as returned by the API. Use --suffix for a partitioned treaty",
		Example: "  cdg treaties get 117 3\n  cdg treaties get 114 13 --suffix A",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			congress, err := parseCount("congress", args[0])
			if err != nil {
				return err
			}

			number, err := parseCount("treaty number", args[1])
			if err != nil {
				return err
			}

			endpoint := cdg.TreatyDetails(congress, number, cdg.NewDetailParams())
			if suffix != "" {
				endpoint = cdg.TreatyPartitioned(congress, number, suffix, cdg.NewDetailParams())
			}

			return fetchStructural(cmd, endpoint)
		},
	}

	cmd.Flags().StringVar(&suffix, "suffix", "", "partition suffix, such as A")

	return cmd
}
