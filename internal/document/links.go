package document

import (
	"slices"

	"mvdan.cc/xurls/v2"
)

var linkRe = xurls.Strict()

// findLinks returns the distinct URLs with a scheme found in text, in order of appearance.
func findLinks(text string) []string {
	found := linkRe.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}

	links := make([]string, 0, len(found))
	for _, link := range found {
		if slices.Contains(links, link) {
			continue
		}
		links = append(links, link)
	}

	return links
}
