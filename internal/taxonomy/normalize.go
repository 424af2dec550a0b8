package taxonomy

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

var (
	// setsRepsRe matches embedded set×rep/set×quantity notation, with an
	// optional unit so "4x25m" and "2 x 50 meters" strip in one pass:
	// a bare "\d+x\d+" would stop at the digit/letter boundary.
	setsRepsRe = regexp.MustCompile(`\b\d+\s*[x×]\s*\d+(?:[.,]\d+)?\s*(?:km|kilometers?|kilometer|meters?|metres?|m|kg|kgs|lbs?|min|mins|minutes?|sec|secs|seconds?|reps?)?\b`)

	// distanceRe matches distance with unit: "50m", "2.5 km", "1000 meters"
	distanceRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s*(?:km|kilometers?|kilometer|m|meters?|metres?)\b`)

	// weightRe matches weight with unit: "80kg", "24 kg", "35lb"
	weightRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s*(?:kg|kgs|lbs?|pounds?)\b`)

	// durationRe matches duration with unit: "30min", "45 minutes", "1.5h"
	durationRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\s*(?:min|mins|minutes?|h|hr|hrs|hours?|sec|secs|seconds?)\b`)

	// percentRe matches intensity annotations: "@80%", "@ 75 %"
	percentRe = regexp.MustCompile(`@\s*\d+(?:[.,]\d+)?\s*%?`)

	// repsRe matches bare rep counts: "x20", "20 reps", "15 wdh"
	repsRe = regexp.MustCompile(`\b\d+\s*(?:reps?|wdh|wiederholungen)\b|\bx\s*\d+\b`)

	// numberRe sweeps leftover standalone numbers after unit forms are gone
	numberRe = regexp.MustCompile(`\b\d+(?:[.,]\d+)?\b`)

	// punctRe collapses separator punctuation left behind by metric
	// stripping, including a dangling "@" once its number is gone
	punctRe = regexp.MustCompile(`[(){}\[\],;:/\-–*@]+`)

	spaceRe = regexp.MustCompile(`\s+`)
)

// aliasKeysByLength holds alias keys sorted by descending length. Longest
// first, so "farmers row" style phrases hit their long alias before a short
// one like "row" can claim the substring.
var aliasKeysByLength = sync.OnceValue(func() []string {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
})

// canonicalPhrases holds every multi-word canonical form in the alias table.
// The substring fallback must not rewrite a word that is part of a longer
// canonical phrase already present in the name ("lunges" inside
// "sandbag lunges", "bike" inside "assault bike").
var canonicalPhrases = sync.OnceValue(func() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range aliases {
		if !seen[v] && strings.Contains(v, " ") {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
})

// insideCanonicalPhrase reports whether key occurs in padded only as part of
// a longer canonical phrase that is itself present.
func insideCanonicalPhrase(padded, key string) bool {
	for _, c := range canonicalPhrases() {
		if len(c) <= len(key) {
			continue
		}
		if strings.Contains(" "+c+" ", " "+key+" ") && strings.Contains(padded, " "+c+" ") {
			return true
		}
	}
	return false
}

// Normalize canonicalizes a free-text exercise name. It is pure and total:
// any input produces some output, and normalizing twice equals normalizing
// once. Metric noise is stripped first so "Sled Push 50m @80%" and
// "Sled Push" normalize identically, then the alias table maps variants to
// canonical vocabulary.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))

	// Unit-bearing forms strip before percentRe so "@ 9kg" loses "9kg" as a
	// weight instead of percentRe eating "@ 9" and orphaning the unit.
	s = setsRepsRe.ReplaceAllString(s, " ")
	s = distanceRe.ReplaceAllString(s, " ")
	s = weightRe.ReplaceAllString(s, " ")
	s = durationRe.ReplaceAllString(s, " ")
	s = percentRe.ReplaceAllString(s, " ")
	s = repsRe.ReplaceAllString(s, " ")
	s = numberRe.ReplaceAllString(s, " ")
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	if canonical, ok := aliases[s]; ok {
		return canonical
	}

	// No exact match: replace every alias that appears as whole words,
	// longest key first so "prowler push" wins before a shorter key could
	// claim part of it. Word boundaries keep "ski" from firing inside
	// "skipping". A key whose canonical form is already present is skipped,
	// which keeps Normalize idempotent ("ski erg" must not become
	// "ski erg erg" via the short "ski" alias).
	padded := " " + s + " "
	for _, k := range aliasKeysByLength() {
		if strings.Contains(padded, " "+aliases[k]+" ") {
			continue
		}
		if !strings.Contains(padded, " "+k+" ") {
			continue
		}
		// "lunges" must survive inside "sandbag lunges", "bike" inside
		// "assault bike": a word that is part of a longer canonical phrase
		// already in the name is not a variant to rewrite.
		if insideCanonicalPhrase(padded, k) {
			continue
		}
		padded = strings.Replace(padded, " "+k+" ", " "+aliases[k]+" ", 1)
	}

	return strings.TrimSpace(spaceRe.ReplaceAllString(padded, " "))
}
