package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewLawsCommand creates the laws command group
func NewLawsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "laws",
		Aliases: []string{"law"},
		Short:   "Browse public and private laws",
		Long:    "List the bills of a congress that became law",
	}

	cmd.AddCommand(newLawsListCommand())

	return cmd
}

func newLawsListCommand() *cobra.Command {
	var (
		flags   listFlags
		lawType string
	)

	cmd := &cobra.Command{
		Use:   "list CONGRESS",
		Short: "List laws",
		Long:  "List the laws enacted by a congress, optionally only public (pub) or private (priv) laws",
		Example: `  cdg laws list 118
  cdg laws list 117 --type pub`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			congress, err := parseCount("congress", args[0])
			if err != nil {
				return err
			}

			params, err := flags.pageParams()
			if err != nil {
				return err
			}

			endpoint := cdg.LawByCongress(congress, params)

			if lawType != "" {
				parsed, err := cdg.ParseLawType(lawType)
				if err != nil {
					return fmt.Errorf("invalid --type: %w", err)
				}

				endpoint = cdg.LawByType(congress, parsed, params)
			}

			return fetchShaped(cmd, endpoint, func(r *renderer, laws *cdg.LawsResponse) error {
				rows := make([][]string, 0, len(laws.Bills))
				for _, bill := range laws.Bills {
					numbers := make([]string, 0, len(bill.Laws))
					for _, law := range bill.Laws {
						numbers = append(numbers, strings.TrimSpace(str(law.Type)+" "+str(law.Number)))
					}

					rows = append(rows, []string{
						strings.Join(numbers, ", "),
						billLabel(bill.Type, bill.Number),
						truncate(str(bill.Title), r.titleLength()),
					})
				}

				if err := r.table([]string{"Law", "Bill", "Title"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), laws.Pagination, flags.offset)

				return nil
			})
		},
	}

	addPageFlags(cmd, &flags)
	cmd.Flags().StringVar(&lawType, "type", "", "law type (pub or priv)")

	return cmd
}
