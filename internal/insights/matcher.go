package insights

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const phraseCacheSize = 256

var phraseCache *lru.Cache[string, *regexp.Regexp]

func init() {
	c, err := lru.New[string, *regexp.Regexp](phraseCacheSize)
	if err != nil {
		panic(err)
	}
	phraseCache = c
	warmPhraseCache(storyPhrases, metaphorPhrases, shouldPhrases, selfCompassionPhrases, selfFocusPhrases)
}

// CountWords sums the substring occurrences of every indicator in text.
// Matching is case-insensitive and does not respect word boundaries, so "like"
// is also counted inside "alike".
func CountWords(text string, words []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		count += strings.Count(lower, strings.ToLower(w))
	}
	return count
}

// CountPhrases sums the non-overlapping, case-insensitive matches of every phrase.
func CountPhrases(text string, phrases []string) int {
	count := 0
	for _, p := range phrases {
		if p == "" {
			continue
		}
		count += len(phraseRegexp(p).FindAllStringIndex(text, -1))
	}
	return count
}

func phraseRegexp(phrase string) *regexp.Regexp {
	if re, ok := phraseCache.Get(phrase); ok {
		return re
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase))
	phraseCache.Add(phrase, re)
	return re
}

func warmPhraseCache(lists ...[]string) {
	for _, l := range lists {
		for _, p := range l {
			phraseRegexp(p)
		}
	}
}
