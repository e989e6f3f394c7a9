package trending

import (
	"context"
	"io"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/matzehuels/trending/pkg/observability"
)

// CSS selectors for the trending page layout.
const (
	RowSelector         = "article.Box-row"
	TitleSelector       = "h2 a"
	DescriptionSelector = "p.col-9"
	StarsSelector       = `a[href$="/stargazers"]`
	ForksSelector       = `a[href$="/forks"]`
	LanguageSelector    = `[itemprop="programmingLanguage"]`
	StarsTodaySelector  = "span.d-inline-block.float-sm-right"
)

// Parse extracts repositories from markup using the default [Origin].
// It never fails: unparsable input yields an empty result.
func Parse(markup string) []Repository {
	repos, err := Extract(strings.NewReader(markup), Origin)
	if err != nil {
		return nil
	}
	return repos
}

// Extract reads an HTML document from r and returns one [Repository] per
// row with a non-empty name, in document order. origin is prepended to
// each title href. The only error is a failure to read r.
func Extract(r io.Reader, origin string) ([]Repository, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return fromDocument(doc, origin), nil
}

// ExtractContext is [Extract] with an observability event reporting how
// many rows were matched and how many records survived.
func ExtractContext(ctx context.Context, r io.Reader, origin string) ([]Repository, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	rows := doc.Find(RowSelector)
	repos := fromSelection(rows, origin)
	observability.Extract().OnExtract(ctx, rows.Length(), len(repos))
	return repos, nil
}

func fromDocument(doc *goquery.Document, origin string) []Repository {
	return fromSelection(doc.Find(RowSelector), origin)
}

func fromSelection(rows *goquery.Selection, origin string) []Repository {
	repos := make([]Repository, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		if repo, ok := extractRow(row, origin); ok {
			repos = append(repos, repo)
		}
	})
	return repos
}

func extractRow(row *goquery.Selection, origin string) (Repository, bool) {
	title := row.Find(TitleSelector).First()
	name := stripSpace(title.Text())
	if name == "" {
		return Repository{}, false
	}
	href, _ := title.Attr("href")

	return Repository{
		Name:        name,
		URL:         origin + href,
		Description: text(row, DescriptionSelector),
		Stars:       text(row, StarsSelector),
		Language:    text(row, LanguageSelector),
		Forks:       text(row, ForksSelector),
		StarsToday:  text(row, StarsTodaySelector),
	}, true
}

// text returns the trimmed text of the first match of sel inside row.
func text(row *goquery.Selection, sel string) string {
	return strings.TrimSpace(row.Find(sel).First().Text())
}

// stripSpace removes every whitespace rune, including interior ones.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
