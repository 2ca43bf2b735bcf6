package extract

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopwords are matched against the folded (lowercase, accent-stripped) form
// of a token, so "À" and "a" collide on purpose. French function words plus
// the handful of English ones that show up in French résumés
var stopwords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"le", "la", "les", "l", "un", "une", "des", "du", "de", "d",
		"et", "ou", "a", "au", "aux", "en", "dans", "sur", "sous", "pour",
		"par", "avec", "sans", "chez", "depuis", "pendant", "entre", "vers",
		"comme", "est", "sont", "etre", "avoir", "fait", "que", "qui",
		"dont", "ou", "ce", "cet", "cette", "ces", "son", "sa", "ses",
		"leur", "leurs", "mon", "ma", "mes", "notre", "nos", "plus",
		"moins", "tres", "ne", "pas", "je", "tu", "il", "elle", "on",
		"nous", "vous", "ils", "elles", "se", "si", "y",
		"the", "of", "in", "at", "for", "with", "since", "from", "to", "and",
	} {
		stopwords[w] = struct{}{}
	}
}

// pool of fresh fold chains, lowercase then strip combining marks
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	},
}

// foldToken lowercases s and strips its diacritics
func foldToken(s string) string {
	tr := foldPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return ns
}

// isStopword reports whether the folded form of tok is a known function word
func isStopword(tok string) bool {
	f := strings.Trim(foldToken(tok), "'’.,;:!?")
	_, ok := stopwords[f]
	return ok
}

// isPunct reports whether tok is made of punctuation and symbols only
func isPunct(tok string) bool {
	if tok == "" {
		return true
	}
	for _, r := range tok {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
