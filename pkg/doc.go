// Package pkg provides the libraries behind the trending command.
//
// # Overview
//
// The data flow is a straight line:
//
//	https://github.com/trending/<language>
//	         ↓
//	    [integrations/github] (one GET with a browser User-Agent)
//	         ↓
//	    [trending] (HTML rows → []trending.Repository)
//	         ↓
//	    internal/cli (listing or JSON)
//
// # Quick Start
//
//	client := github.NewClient(github.Options{})
//	repos, err := client.Trending(ctx, "go")
//	if err != nil {
//	    return err
//	}
//	for i, r := range repos {
//	    fmt.Printf("%d. %s ★ %s\n", i+1, r.Name, r.Stars)
//	}
//
// # Packages
//
//   - [trending]: markup extraction and the Repository record
//   - [integrations]: shared HTTP client and status mapping
//   - [integrations/github]: the trending page fetcher
//   - [errors]: structured error codes
//   - [observability]: HTTP and extraction hooks
//   - [buildinfo]: ldflags version metadata
//
// [trending]: https://pkg.go.dev/github.com/matzehuels/trending/pkg/trending
// [integrations]: https://pkg.go.dev/github.com/matzehuels/trending/pkg/integrations
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/trending/pkg/integrations/github
// [errors]: https://pkg.go.dev/github.com/matzehuels/trending/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/trending/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/trending/pkg/buildinfo
package pkg
