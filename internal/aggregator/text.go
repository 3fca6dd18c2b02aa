package aggregator

import (
	"regexp"
	"sort"
	"strings"
)

// frictionKeywords are scanned in order; output follows this order.
var frictionKeywords = []string{
	"difficult", "hard", "complicated", "confusing", "slow", "problem", "issue",
	"frustrating", "annoying", "challenging", "trouble", "struggle", "hassle",
}

var themeWord = regexp.MustCompile(`\b[a-z]{4,}\b`)

var stopWords = map[string]bool{
	"that": true, "this": true, "with": true, "from": true, "have": true, "were": true,
	"they": true, "them": true, "their": true, "there": true, "what": true, "when": true,
	"where": true, "which": true, "would": true, "could": true, "should": true, "about": true,
	"very": true, "really": true, "just": true, "been": true, "also": true, "into": true,
	"than": true, "then": true, "some": true, "more": true, "most": true, "much": true,
	"your": true, "will": true, "does": true, "like": true, "only": true, "even": true,
	"because": true, "after": true, "before": true, "while": true, "over": true, "being": true,
	"here": true, "these": true, "those": true, "other": true, "such": true, "each": true,
	"make": true, "made": true, "well": true, "still": true, "almost": true, "didn": true,
	"doesn": true, "wasn": true, "isn": true, "aren": true, "couldn": true, "wouldn": true,
}

// FrictionPoints returns the friction keywords found in text, deduplicated, in keyword
// order, at most ten.
func FrictionPoints(text string) []string {
	lower := strings.ToLower(text)
	out := []string{}
	for _, kw := range frictionKeywords {
		if len(out) == maxFrictionPoints {
			break
		}
		if strings.Contains(lower, kw) {
			out = append(out, kw)
		}
	}
	return out
}

// KeyThemes returns the five most frequent words of four or more letters, excluding stop
// words. Ties keep first-seen order.
func KeyThemes(text string) []string {
	var c counter
	for _, w := range themeWord.FindAllString(strings.ToLower(text), -1) {
		if !stopWords[w] {
			c.add(w)
		}
	}
	return c.top(maxKeyThemes)
}

// counter counts strings and remembers first-seen order.
type counter struct {
	order  []string
	counts map[string]int
}

func (c *counter) add(s string) {
	if c.counts == nil {
		c.counts = map[string]int{}
	}
	if _, ok := c.counts[s]; !ok {
		c.order = append(c.order, s)
	}
	c.counts[s]++
}

func (c *counter) top(n int) []string {
	ranked := append([]string(nil), c.order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		return []string{}
	}
	return ranked
}
