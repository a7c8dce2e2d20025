package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/fivetwenty-io/cdg-client/pkg/cdgclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Viper keys shared by the root command and the config commands.
const (
	KeyAPIKey          = "api_key"
	KeyBaseURL         = "base_url"
	KeyOutput          = "output"
	KeyPretty          = "pretty"
	KeyVerbose         = "verbose"
	KeyRetryMax        = "retry_max"
	KeyRequestsPerHour = "requests_per_hour"
	KeyConfig          = "config"
)

// UserAgent is sent with every request the CLI makes.
var UserAgent = "cdg-cli/dev"

// Common static errors used throughout the commands package.
var (
	ErrNoResults          = errors.New("no results")
	ErrDistrictNeedsState = errors.New("--district requires --state")
	ErrTypeNeedsCongress  = errors.New("--type requires --congress")
)

// createClient builds a client from the effective viper configuration.
func createClient(cmd *cobra.Command) (cdg.Client, error) {
	verbose := viper.GetBool(KeyVerbose)

	config := &cdg.Config{
		APIKey:          viper.GetString(KeyAPIKey),
		BaseURL:         viper.GetString(KeyBaseURL),
		RetryMax:        viper.GetInt(KeyRetryMax),
		RequestsPerHour: viper.GetInt(KeyRequestsPerHour),
		UserAgent:       UserAgent,
		Logger:          NewLogger(cmd.ErrOrStderr(), verbose),
		Debug:           verbose,
	}

	client, err := cdgclient.New(config)
	if err != nil {
		if errors.Is(err, cdg.ErrMissingCredential) {
			return nil, constants.ErrNoAPIKeyConfigured
		}

		return nil, err
	}

	return client, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// renderer writes command results in the format selected by --output.
type renderer struct {
	out    io.Writer
	errOut io.Writer
	format string
	pretty bool
}

func newRenderer(cmd *cobra.Command) (*renderer, error) {
	format := strings.ToLower(viper.GetString(KeyOutput))
	if format == "" {
		format = constants.FormatTable
	}

	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}

	out := cmd.OutOrStdout()

	return &renderer{
		out:    out,
		errOut: cmd.ErrOrStderr(),
		format: format,
		pretty: viper.GetBool(KeyPretty) || isTerminal(out),
	}, nil
}

// structural renders a response without losing any key. Table mode falls back to JSON.
func (r *renderer) structural(s *cdg.Structural) error {
	if r.format == constants.FormatYAML {
		return r.yaml(s)
	}

	pretty := r.pretty || r.format == constants.FormatTable

	_, err := fmt.Fprintln(r.out, s.Render(pretty))

	return err
}

func (r *renderer) json(data any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)

	if r.pretty {
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))
	}

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func (r *renderer) yaml(data any) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(constants.JSONIndentSize)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// data renders plain Go values in json or yaml mode. It reports false in table mode.
func (r *renderer) data(value any) (bool, error) {
	switch r.format {
	case constants.FormatJSON:
		return true, r.json(value)
	case constants.FormatYAML:
		return true, r.yaml(value)
	}

	return false, nil
}

func (r *renderer) table(headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(r.out, "No results found")

		return err
	}

	table := tablewriter.NewWriter(r.out)

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	table.Header(header...)

	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// properties renders a two-column detail table. Empty values are skipped.
func (r *renderer) properties(pairs [][2]string) error {
	rows := make([][]string, 0, len(pairs))

	for _, pair := range pairs {
		if pair[1] == "" {
			continue
		}

		rows = append(rows, []string{titleCase(pair[0]), pair[1]})
	}

	return r.table([]string{"Property", "Value"}, rows)
}

func (r *renderer) note(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errOut, format+"\n", args...)
}

// paginationNote points at the next page when the listing was cut short.
func (r *renderer) paginationNote(shown int, pagination *cdg.Pagination, offset int) {
	if pagination == nil || pagination.Count == nil || r.format != constants.FormatTable {
		return
	}

	if total := *pagination.Count; offset+shown < total {
		r.note("\nShowing %d-%d of %d. Use --offset %d for the next page.", offset+1, offset+shown, total, offset+shown)
	}
}

// titleLength picks how much of a title fits the terminal.
func (r *renderer) titleLength() int {
	if width := terminalWidth(r.out); width > 0 && width < constants.NarrowTerminalWidth {
		return constants.ShortTitleDisplayLength
	}

	return constants.TitleDisplayLength
}

// fetchShaped fetches endpoint and renders it. Table mode uses the materialized shape; json
// and yaml render the structural form so that keys unknown to the shape survive. When the
// response does not match the shape, a warning is printed and the structural form is shown.
func fetchShaped[T any](cmd *cobra.Command, endpoint cdg.Endpoint, table func(r *renderer, shape *T) error) error {
	r, err := newRenderer(cmd)
	if err != nil {
		return err
	}

	client, err := createClient(cmd)
	if err != nil {
		return err
	}

	shape, structural, err := cdg.FetchAs[T](commandContext(cmd), client, endpoint)
	if err != nil {
		if structural == nil || !cdg.IsShapeMismatch(err) {
			return fmt.Errorf("failed to fetch %s: %w", endpoint.Kind(), err)
		}

		r.note("Warning: %v; showing the raw response", err)

		return r.structural(structural)
	}

	if r.format != constants.FormatTable {
		return r.structural(structural)
	}

	return table(r, shape)
}

// fetchStructural fetches endpoint and renders its structural form.
func fetchStructural(cmd *cobra.Command, endpoint cdg.Endpoint) error {
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

	return r.structural(structural)
}

// listFlags are the paging and date-window flags shared by list commands.
type listFlags struct {
	offset int
	limit  int
	from   string
	to     string
	sort   string
}

func addPageFlags(cmd *cobra.Command, flags *listFlags) {
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&flags.limit, "limit", constants.DefaultPageLimit, fmt.Sprintf("results per page (1-%d)", constants.MaxPageLimit))
}

func addWindowFlags(cmd *cobra.Command, flags *listFlags) {
	addPageFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.from, "from", "", "only results updated at or after this date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().StringVar(&flags.to, "to", "", "only results updated at or before this date (YYYY-MM-DD or RFC 3339)")
}

func addListFlags(cmd *cobra.Command, flags *listFlags) {
	addWindowFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort by update date (asc or desc)")
}

func (f *listFlags) validatePage() error {
	if f.limit < 1 || f.limit > constants.MaxPageLimit {
		return fmt.Errorf("%w: --limit %d", constants.ErrLimitOutOfRange, f.limit)
	}

	if f.offset < 0 {
		return fmt.Errorf("%w: --offset %d", constants.ErrInvalidNumber, f.offset)
	}

	return nil
}

func (f *listFlags) pageParams() (cdg.PageParams, error) {
	if err := f.validatePage(); err != nil {
		return cdg.PageParams{}, err
	}

	params := cdg.NewPageParams().WithLimit(f.limit)
	if f.offset > 0 {
		params = params.WithOffset(f.offset)
	}

	return params, nil
}

func (f *listFlags) windowParams() (cdg.WindowParams, error) {
	if err := f.validatePage(); err != nil {
		return cdg.WindowParams{}, err
	}

	params := cdg.NewWindowParams().WithLimit(f.limit)
	if f.offset > 0 {
		params = params.WithOffset(f.offset)
	}

	from, to, err := f.window()
	if err != nil {
		return cdg.WindowParams{}, err
	}

	if !from.IsZero() {
		params = params.WithFromDateTime(from)
	}

	if !to.IsZero() {
		params = params.WithToDateTime(to)
	}

	return params, nil
}

func (f *listFlags) listParams() (cdg.ListParams, error) {
	if err := f.validatePage(); err != nil {
		return cdg.ListParams{}, err
	}

	params := cdg.NewListParams().WithLimit(f.limit)
	if f.offset > 0 {
		params = params.WithOffset(f.offset)
	}

	from, to, err := f.window()
	if err != nil {
		return cdg.ListParams{}, err
	}

	if !from.IsZero() {
		params = params.WithFromDateTime(from)
	}

	if !to.IsZero() {
		params = params.WithToDateTime(to)
	}

	if f.sort != "" {
		sort, err := cdg.ParseSortType(f.sort)
		if err != nil {
			return cdg.ListParams{}, fmt.Errorf("invalid --sort: %w", err)
		}

		params = params.WithSort(sort)
	}

	return params, nil
}

func (f *listFlags) window() (time.Time, time.Time, error) {
	from, err := parseDate("from", f.from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := parseDate("to", f.to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}

// parseDate accepts YYYY-MM-DD (midnight UTC) or RFC 3339. Empty input yields the zero time.
func parseDate(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s %q", constants.ErrInvalidDate, flag, value)
	}

	return parsed, nil
}

func parseCount(name, value string) (int, error) {
	number, err := strconv.Atoi(value)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("%w: %s %q", constants.ErrInvalidNumber, name, value)
	}

	return number, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)

	return ok && term.IsTerminal(int(file.Fd()))
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}

	return width
}

var titleCaser = cases.Title(language.English)

// titleCase turns "latest action" or "house" into display form.
func titleCase(s string) string {
	return titleCaser.String(s)
}

func truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}

	runes := []rune(s)

	return string(runes[:length-3]) + "..."
}

// str dereferences an optional string for display.
func str(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// num dereferences an optional number for display.
func num(n *int) string {
	if n == nil {
		return ""
	}

	return strconv.Itoa(*n)
}

func orNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}

func latestAction(action *cdg.LatestAction) (string, string) {
	if action == nil {
		return "", ""
	}

	return str(action.ActionDate), str(action.Text)
}
