// Package cdgclient provides the primary entry point for constructing a
// Congress.gov API v3 client that implements the cdg.Client interface.
//
// It is the only place the library reads the process environment: when no API
// key is given explicitly, CDG_API_KEY is looked up with os.LookupEnv.
//
// Quick start
//
//	import (
//	  "context"
//	  "fmt"
//	  "log"
//
//	  "github.com/fivetwenty-io/cdg-client/pkg/cdg"
//	  "github.com/fivetwenty-io/cdg-client/pkg/cdgclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Key from CDG_API_KEY:
//	  cli, err := cdgclient.NewFromEnvironment()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an explicit key and a client-side request budget:
//	  cli, err = cdgclient.New(&cdg.Config{APIKey: "DEMO_KEY", RequestsPerHour: 5000})
//	  if err != nil { log.Fatal(err) }
//
//	  bills, raw, err := cdg.FetchAs[cdg.BillsResponse](ctx, cli,
//	    cdg.BillByCongress(118, cdg.NewListParams().WithLimit(5)))
//	  if cdg.IsShapeMismatch(err) {
//	    fmt.Println(raw.Render(true))
//	    return
//	  }
//	  if err != nil { log.Fatal(err) }
//
//	  for _, bill := range bills.Bills {
//	    if bill.Title != nil { fmt.Println(*bill.Title) }
//	  }
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewFromEnvironment,
// NewWithKey and NewWithBaseURL.
package cdgclient
