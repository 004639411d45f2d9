// Package index resolves human-readable note titles from a snapshot's
// index document.
package index

import (
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/net/html"

	"github.com/backmassage/notesift/internal/logging"
	"github.com/backmassage/notesift/internal/snapshot"
)

// linkPattern matches hyperlink targets that reference note files.
const linkPattern = snapshot.NotesSubdir + "/*.html"

// ResolveTitles parses the snapshot's index document and returns a mapping
// from stored note filename to display title. Every <a> whose href matches
// notes/*.html contributes one entry: the href's filename component mapped
// to the link's rendered text, whitespace-trimmed. Entries with an empty
// filename or title are skipped.
//
// A missing or unparseable index document yields an empty map and a warning;
// callers treat that as "no renaming information available", not a failure.
func ResolveTitles(s snapshot.Snapshot, log *logging.Logger) map[string]string {
	titles := make(map[string]string)

	f, err := os.Open(s.IndexFile())
	if err != nil {
		log.Warn("Index document not found: %s", s.IndexFile())
		return titles
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		log.Warn("Cannot parse index document %s: %v", s.IndexFile(), err)
		return titles
	}

	collectLinks(doc, titles)
	log.Info("Resolved %d title mappings from %s", len(titles), s.IndexFile())
	return titles
}

// collectLinks walks the parsed document and records every note link.
func collectLinks(n *html.Node, titles map[string]string) {
	if n.Type == html.ElementNode && n.Data == "a" {
		if href, ok := attrValue(n, "href"); ok {
			if match, _ := doublestar.Match(linkPattern, href); match {
				name := strings.TrimPrefix(href, snapshot.NotesSubdir+"/")
				title := strings.TrimSpace(renderedText(n))
				if name != "" && title != "" {
					titles[name] = title
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLinks(c, titles)
	}
}

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// renderedText concatenates all text nodes beneath n.
func renderedText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
