// Package integrations provides HTTP clients for upstream web pages.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [github]: GitHub Trending pages
//
// # Shared Infrastructure
//
// The [Client] type provides the HTTP plumbing used by every upstream
// client: default headers, status mapping and observability events.
//
//	client := integrations.NewClient(0, map[string]string{"User-Agent": ua})
//	body, err := client.GetText(ctx, "https://github.com/trending/go", nil)
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // 404 from upstream
//	}
//
// Status mapping:
//
//   - 2xx: success
//   - 404: [ErrNotFound]
//   - anything else, and transport failures: [ErrNetwork]
//
// Requests are issued once. Failures are returned to the caller unchanged.
//
// [github]: github.com/matzehuels/trending/pkg/integrations/github
package integrations
