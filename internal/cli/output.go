package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/trending/pkg/trending"
)

// printRepositories prints the numbered listing for language.
//
//	 1. golang/go
//	    ★ 128,431 stars · 112 stars today · Go
//	    The Go programming language
//	    https://github.com/golang/go
func printRepositories(w io.Writer, language string, repos []trending.Repository) {
	printSuccess(w, "%s trending %s repositories", StyleNumber.Render(fmt.Sprint(len(repos))), StyleTitle.Render(language))
	printNewline(w)

	width := len(fmt.Sprint(len(repos)))
	indent := strings.Repeat(" ", width+3)

	for i, r := range repos {
		index := fmt.Sprintf("%*d.", width+1, i+1)
		fmt.Fprintln(w, StyleNumber.Render(index)+" "+StyleName.Render(r.Name))
		fmt.Fprintln(w, indent+starLine(r))
		fmt.Fprintln(w, indent+StyleValue.Render(description(r)))
		fmt.Fprintln(w, indent+StyleLink.Render(r.URL))
		if i < len(repos)-1 {
			printNewline(w)
		}
	}
}

// starLine renders the star count followed by whatever details the row had.
func starLine(r trending.Repository) string {
	stars := r.Stars
	if stars == "" {
		stars = "n/a"
	}
	parts := []string{StyleStars.Render(iconStar + " " + stars + " stars")}
	for _, extra := range []string{r.StarsToday, r.Language} {
		if extra != "" {
			parts = append(parts, StyleDim.Render(extra))
		}
	}
	return strings.Join(parts, StyleDim.Render(" "+iconDot+" "))
}

func description(r trending.Repository) string {
	if r.Description == "" {
		return noDescription
	}
	return r.Description
}

// writeJSON writes repos as an indented JSON array. An empty result is "[]".
func writeJSON(w io.Writer, repos []trending.Repository) error {
	if repos == nil {
		repos = []trending.Repository{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(repos)
}
