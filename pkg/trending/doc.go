// Package trending extracts repository listings from GitHub Trending markup.
//
// # Overview
//
// GitHub renders https://github.com/trending/<language> as an HTML page with
// one row per ranked repository. This package turns that markup into an
// ordered slice of [Repository] records:
//
//	repos := trending.Parse(html)
//	for i, r := range repos {
//	    fmt.Println(i+1, r.Name, r.Stars)
//	}
//
// # Selectors
//
// The page is not a stable API. Each row is located with [RowSelector] and
// every field is read through a sub-selector scoped to that row:
//
//   - [TitleSelector]: owner/name link (name and URL)
//   - [DescriptionSelector]: description paragraph
//   - [StarsSelector]: stargazers link
//   - [ForksSelector], [LanguageSelector], [StarsTodaySelector]: extra details
//
// A missing sub-element yields an empty field. Rows whose title resolves
// to an empty name are skipped. Malformed markup never produces an error.
//
// # Ordering
//
// Records are returned in document order, which is the page's own trending
// rank. Duplicates are kept.
package trending
