// Package github fetches GitHub Trending pages.
//
// # Overview
//
// The trending listing lives at https://github.com/trending/<language> and
// has no JSON API, so the client downloads the HTML and hands it to
// [trending.Extract].
//
// # Usage
//
//	client := github.NewClient(github.Options{})
//
//	repos, err := client.Trending(ctx, "go")
//	switch {
//	case errors.Is(err, errors.ErrCodeLanguageNotFound):
//	    // GitHub answered 404 for the language
//	case err != nil:
//	    // network or server failure
//	}
//
// # User-Agent
//
// Requests carry [DefaultUserAgent], a desktop browser identification.
// GitHub alters or refuses the page for clients that do not look like a
// browser, so the header is required rather than cosmetic.
//
// # Retries
//
// There are none. Each call issues exactly one request.
//
// [trending.Extract]: github.com/matzehuels/trending/pkg/trending.Extract
package github
