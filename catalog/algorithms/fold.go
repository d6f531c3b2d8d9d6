package algorithms

import (
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldDiacritics removes combining marks from a string.
// Example: "mērvienība" -> "mervieniba", "kopā" -> "kopa".
func FoldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// FoldKey lowercases a string and strips its diacritics. This is the
// comparison form used for catalog keys, category names and position lookups.
func FoldKey(s string) string {
	return strings.ToLower(FoldDiacritics(strings.TrimSpace(s)))
}

// CleanKey reduces a raw field key to its bare alphanumeric form:
// diacritics folded, lowercased, everything else removed.
// Example: "Materiālu izmaksas (EUR)" -> "materialuizmaksaseur".
func CleanKey(s string) string {
	folded := FoldKey(s)
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsASCIIWord reports whether the string consists of ASCII letters only.
// Used to decide whether a key token can go through the English stemmer.
func IsASCIIWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// EnglishStemmer stems English words using the Snowball algorithm.
// Insurer exports occasionally arrive with English column headers
// ("materials", "labour costs"); stemming collapses their plural and
// derived forms before stem-pattern matching. Latvian is not a Snowball
// language, so Latvian keys are matched on folded form only.
type EnglishStemmer struct {
	cache map[string]string
	mu    sync.RWMutex
}

// NewEnglishStemmer creates a stemmer with an internal cache.
func NewEnglishStemmer() *EnglishStemmer {
	return &EnglishStemmer{cache: make(map[string]string)}
}

// Stem returns the stemmed form of a word, caching results.
// Example: "materials" -> "material", "pricing" -> "price".
func (s *EnglishStemmer) Stem(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return ""
	}

	s.mu.RLock()
	if cached, ok := s.cache[normalized]; ok {
		s.mu.RUnlock()
		return cached
	}
	s.mu.RUnlock()

	stemmed, err := snowball.Stem(normalized, "english", true)
	if err != nil {
		stemmed = normalized
	}

	s.mu.Lock()
	s.cache[normalized] = stemmed
	s.mu.Unlock()

	return stemmed
}

// StemTokens stems every token of a whitespace-separated key. Tokens that
// are not plain ASCII words are passed through unchanged.
func (s *EnglishStemmer) StemTokens(key string) string {
	fields := strings.Fields(key)
	if len(fields) == 0 {
		return ""
	}
	for i, f := range fields {
		if IsASCIIWord(f) {
			fields[i] = s.Stem(f)
		}
	}
	return strings.Join(fields, " ")
}
