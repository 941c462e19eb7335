// Package identity matches player names across sources that do not share
// a key space. Matching is substring containment over normalized names:
// no tokenization and no edit distance, which is tolerant of suffixes
// ("Jr.", "III") and diacritics while staying cheap and predictable.
package identity

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes, so
// "José" and "Jose" normalize to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases a name and strips diacritical marks.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Match returns the candidates whose normalized name contains the
// normalized target as a substring, preserving candidate order. An empty
// target or candidate list yields nil; candidates with an empty name are
// skipped. Ambiguity is left to the caller: pre-order candidates or use
// Best with an explicit ordering.
func Match[T any](target string, candidates []T, name func(T) string) []T {
	t := Normalize(strings.TrimSpace(target))
	if t == "" || len(candidates) == 0 {
		return nil
	}
	var out []T
	for _, c := range candidates {
		n := name(c)
		if n == "" {
			continue
		}
		if strings.Contains(Normalize(n), t) {
			out = append(out, c)
		}
	}
	return out
}

// Best returns the top match after applying a deterministic ordering.
// The less function is the caller's tie-break (typically source rank);
// a nil less keeps candidate order. The second return is false when
// nothing matched.
func Best[T any](target string, candidates []T, name func(T) string, less func(a, b T) bool) (T, bool) {
	matches := Match(target, candidates, name)
	if len(matches) == 0 {
		var zero T
		return zero, false
	}
	if less != nil {
		sort.SliceStable(matches, func(i, j int) bool { return less(matches[i], matches[j]) })
	}
	return matches[0], true
}
