package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewCongressCommand creates the congress command group
func NewCongressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "congress",
		Aliases: []string{"congresses"},
		Short:   "Show congresses and their sessions",
		Long:    "Show the current congress, list past congresses and display the sessions of each",
	}

	cmd.AddCommand(newCongressCurrentCommand())
	cmd.AddCommand(newCongressListCommand())
	cmd.AddCommand(newCongressGetCommand())

	return cmd
}

func newCongressCurrentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the current congress",
		Long:  "Display the current congress and its sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchShaped(cmd, cdg.CongressCurrent(cdg.NewDetailParams()), renderCongressDetails)
		},
	}
}

func newCongressGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "get CONGRESS",
		Short:   "Get congress details",
		Long:    "Display a congress and its sessions",
		Example: "  cdg congress get 117",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			congress, err := parseCount("congress", args[0])
			if err != nil {
				return err
			}

			return fetchShaped(cmd, cdg.CongressDetails(congress, cdg.NewDetailParams()), renderCongressDetails)
		},
	}
}

func newCongressListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List congresses",
		Long:  "List congresses, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.pageParams()
			if err != nil {
				return err
			}

			return fetchShaped(cmd, cdg.CongressList(params), func(r *renderer, congresses *cdg.CongressesResponse) error {
				rows := make([][]string, 0, len(congresses.Congresses))
				for _, congress := range congresses.Congresses {
					rows = append(rows, []string{
						str(congress.Name),
						str(congress.StartYear),
						str(congress.EndYear),
						sessionSummary(congress.Sessions),
					})
				}

				if err := r.table([]string{"Name", "Start", "End", "Sessions"}, rows); err != nil {
					return err
				}

				r.paginationNote(len(rows), congresses.Pagination, flags.offset)

				return nil
			})
		},
	}

	addPageFlags(cmd, &flags)

	return cmd
}

func renderCongressDetails(r *renderer, details *cdg.CongressDetailsResponse) error {
	congress := details.Congress

	_, _ = fmt.Fprintf(r.out, "Congress Details:\n\n")

	err := r.properties([][2]string{
		{"name", str(congress.Name)},
		{"number", num(congress.Number)},
		{"start year", str(congress.StartYear)},
		{"end year", str(congress.EndYear)},
		{"updated", str(congress.UpdateDate)},
	})
	if err != nil {
		return err
	}

	if len(congress.Sessions) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(congress.Sessions))
	for _, session := range congress.Sessions {
		rows = append(rows, []string{
			titleCase(strings.ToLower(str(session.Chamber))),
			num(session.Number),
			str(session.Type),
			orNA(str(session.StartDate)),
			orNA(str(session.EndDate)),
		})
	}

	_, _ = fmt.Fprintf(r.out, "\nSessions:\n")

	return r.table([]string{"Chamber", "Session", "Type", "Start", "End"}, rows)
}

// sessionSummary condenses sessions into "House 1, 2; Senate 1, 2".
func sessionSummary(sessions []cdg.Session) string {
	var (
		order     []string
		byChamber = map[string][]string{}
	)

	for _, session := range sessions {
		chamber := titleCase(strings.ToLower(str(session.Chamber)))
		if _, seen := byChamber[chamber]; !seen {
			order = append(order, chamber)
		}

		byChamber[chamber] = append(byChamber[chamber], num(session.Number))
	}

	parts := make([]string, 0, len(order))
	for _, chamber := range order {
		parts = append(parts, chamber+" "+strings.Join(byChamber[chamber], ", "))
	}

	return strings.Join(parts, "; ")
}
