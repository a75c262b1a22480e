package analysis

import (
	"regexp"
	"strings"
)

// reWord extracts maximal runs of lowercase Latin letters plus the Spanish
// accented vowels, ñ and ü, length >= 2. Token extraction, not whitespace
// splitting, so punctuation-adjacent words are captured cleanly
var reWord = regexp.MustCompile(`[a-záéíóúüñ]{2,}`)

// stopWords is the fixed Spanish stop-word set, initialized once and
// read-only afterward
var stopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	words := []string{
		"el", "la", "los", "las", "un", "una", "unos", "unas",
		"de", "del", "al", "a", "en", "por", "para", "con", "sin", "sobre", "entre",
		"y", "o", "u", "que", "como", "cuando", "donde", "cuanto", "quien", "cual",
		"yo", "tú", "él", "ella", "nosotros", "vosotros", "ellos", "ellas",
		"me", "te", "se", "nos", "os", "lo", "le", "les",
		"mi", "tu", "su", "sus", "nuestro", "nuestra", "vuestro", "vuestra",
		"es", "son", "fue", "eran", "ser", "estar", "está", "están", "hay", "había",
		"porque", "pero", "si", "no", "sí", "ya", "muy", "más", "menos", "también",
		"todo", "nada", "algo", "cada", "cualquier", "ninguno", "ninguna",
		"este", "esta", "estos", "estas", "ese", "esa", "esos", "esas",
		"entonces", "pues", "aunque", "además", "solo", "solamente", "mismo", "misma",
		"ahí", "aquí", "allí", "allá", "hacia", "desde", "hasta", "dentro", "fuera",
		"bien", "mal", "ahora", "antes", "después", "luego", "siempre", "nunca",
		"encuentran", "todos", "encuentra", "estén", "pm", "san",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// TopWords tokenizes every non-empty text, drops stop words and returns the
// n most frequent tokens, count-descending, ties broken by first appearance
// in the concatenated text
func TopWords(msgs []Message, n int) OrderedCounts {
	var parts []string
	for _, m := range msgs {
		if m.Text != "" {
			parts = append(parts, strings.ToLower(m.Text))
		}
	}
	all := strings.Join(parts, " ")

	c := newCounter()
	for _, w := range reWord.FindAllString(all, -1) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		c.add(w, 1)
	}
	return c.top(n)
}
