// Package cdg provides types, interfaces, and helpers for working with the
// Congress.gov API v3.
//
// # Overview
//
// The cdg package defines the endpoint catalog (one constructor per API
// resource, e.g. BillDetails, MemberByState, TreatyPartitioned), the parameter
// families each endpoint accepts, the URL builder and the typed response
// shapes (e.g. BillsResponse, MemberDetailsResponse). A concrete Client is
// provided by the cdgclient package, which wires configuration, transport and
// credential resolution. Most consumers should import cdgclient to construct a
// client and then fetch endpoints described here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/cdg-client/pkg/cdg"
//	  "github.com/fivetwenty-io/cdg-client/pkg/cdgclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cdgclient.New(&cdg.Config{APIKey: "DEMO_KEY"})
//	  if err != nil { log.Fatal(err) }
//
//	  bill, _, err := cdg.FetchAs[cdg.BillDetailsResponse](ctx, cli,
//	    cdg.BillDetails(117, cdg.BillTypeHR, 3076, cdg.NewDetailParams()))
//	  if err != nil { log.Fatal(err) }
//	  _ = bill
//	}
//
// # Parameters
//
// Every endpoint takes exactly one parameter family (ListParams, PageParams,
// WindowParams, DetailParams, MemberParams, ReportParams, RecordParams,
// GenericParams, ...). Each starts from its New function with format=json and
// is refined with value-receiver WithX setters:
//
//	params := cdg.NewListParams().WithLimit(50).WithSort(cdg.SortUpdateDateDesc)
//	endpoint := cdg.BillByType(118, cdg.BillTypeHR, params)
//
// Query parameters are always encoded in one canonical order with api_key last,
// so the same endpoint and key always build the same URL.
//
// # Responses
//
// Client.Fetch returns the structural form of a response: an ordered JSON
// object tree that keeps every key the server sent. Materialize, FetchAs and
// MaterializeTag convert it to a typed shape; a required top-level field that
// is missing or of the wrong JSON kind yields a ShapeMismatchError, and the
// structural form remains available for rendering:
//
//	bills, raw, err := cdg.FetchAs[cdg.BillsResponse](ctx, cli, endpoint)
//	if cdg.IsShapeMismatch(err) {
//	  fmt.Println(raw.Render(true))
//	}
//
// Fields the shapes do not model are kept in each shape's Extra member.
//
// # Errors
//
// Failures are reported as URLConstructionError, TransportError,
// MalformedBodyError and ShapeMismatchError, each matching its sentinel
// (ErrURLConstruction, ErrTransport, ErrMalformedBody, ErrShapeMismatch) with
// errors.Is. Helpers such as IsNotFound and IsRateLimited branch on common
// transport statuses.
//
// # Interceptors and batches
//
// The package includes request/response interceptors (logging with the key
// redacted, headers, metrics, client-side hourly rate limiting) and a
// BatchExecutor that fetches several endpoints concurrently with bounded
// parallelism.
package cdg
