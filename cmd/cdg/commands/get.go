package commands

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the command that fetches an arbitrary API path
func NewGetCommand() *cobra.Command {
	var (
		flags         listFlags
		chamber       string
		year          int
		month         int
		day           int
		currentMember bool
		conference    bool
		shape         string
	)

	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Fetch any API path",
		Long: `Fetch a path below the API root and print the response as returned.

Only the query parameters given as flags are sent. With --shape the response is also
checked against a known response shape and a warning is printed when it does not match.
Run "cdg paths" for a sample path of every endpoint.`,
		Example: `  cdg get bill/118/hr/3076/text
  cdg get congressional-record --year 2022 --month 6 --day 28
  cdg get committee/house --shape committees --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := cdg.NewGenericParams()
			changed := cmd.Flags().Changed

			if changed("limit") || changed("offset") {
				if err := flags.validatePage(); err != nil {
					return err
				}
			}

			if changed("limit") {
				params = params.WithLimit(flags.limit)
			}

			if changed("offset") {
				params = params.WithOffset(flags.offset)
			}

			from, to, err := flags.window()
			if err != nil {
				return err
			}

			if !from.IsZero() {
				params = params.WithFromDateTime(from)
			}

			if !to.IsZero() {
				params = params.WithToDateTime(to)
			}

			if flags.sort != "" {
				sort, err := cdg.ParseSortType(flags.sort)
				if err != nil {
					return fmt.Errorf("invalid --sort: %w", err)
				}

				params = params.WithSort(sort)
			}

			if chamber != "" {
				parsed, err := cdg.ParseChamberType(chamber)
				if err != nil {
					return fmt.Errorf("invalid --chamber: %w", err)
				}

				params = params.WithChamber(parsed)
			}

			if changed("year") {
				params = params.WithYear(year)
			}

			if changed("month") {
				params = params.WithMonth(month)
			}

			if changed("day") {
				params = params.WithDay(day)
			}

			if changed("current-member") {
				params = params.WithCurrentMember(currentMember)
			}

			if changed("conference") {
				params = params.WithConference(conference)
			}

			endpoint := cdg.Custom(args[0], params)

			if shape == "" {
				return fetchStructural(cmd, endpoint)
			}

			return fetchAsTag(cmd, endpoint, cdg.ShapeTag(strings.ToLower(shape)))
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "results per page (1-250)")
	cmd.Flags().StringVar(&flags.from, "from", "", "fromDateTime (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&flags.to, "to", "", "toDateTime (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort by update date (asc or desc)")
	cmd.Flags().StringVar(&chamber, "chamber", "", "chamber (house, senate, joint, nochamber)")
	cmd.Flags().IntVar(&year, "year", 0, "year")
	cmd.Flags().IntVar(&month, "month", 0, "month")
	cmd.Flags().IntVar(&day, "day", 0, "day")
	cmd.Flags().BoolVar(&currentMember, "current-member", false, "currentMember filter")
	cmd.Flags().BoolVar(&conference, "conference", false, "conference reports only")
	cmd.Flags().StringVar(&shape, "shape", "", "check the response against this shape (see \"cdg paths\")")

	return cmd
}

// fetchAsTag fetches endpoint, checks it against tag and renders the structural form.
func fetchAsTag(cmd *cobra.Command, endpoint cdg.Endpoint, tag cdg.ShapeTag) error {
	if !tag.Known() {
		return fmt.Errorf("%w: %q", cdg.ErrUnknownShape, tag)
	}

	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	client, err := createClient(cmd)
	if err != nil {
		return err
	}

	structural, err := client.Fetch(commandContext(cmd), endpoint)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", endpoint.Kind(), err)
	}

	if _, err := cdg.MaterializeTag(structural, tag); err != nil {
		if !cdg.IsShapeMismatch(err) {
			return err
		}

		r.note("Warning: %v", err)
	}

	return r.structural(structural)
}
