package analysis

import (
	"regexp"
	"strings"
)

// reBlockRef matches a block-reference token followed by a block digit,
// e.g. "bloque 3", "B#2", "bloque no. 4"
var reBlockRef = regexp.MustCompile(`\b(bloque|b|bloque no\.?)[ .#]*([1-6])`)

// Classify assigns text exactly one category. Rules run in strict priority
// order over the lower-cased text; the first match wins. Callers exclude
// empty-text messages before calling
func Classify(text string) MessageType {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "disparado automático por frecuencia") || strings.Contains(t, "daf"):
		return MessageTypeFrequencyTrip
	case strings.Contains(t, "disparo del circuito") ||
		strings.Contains(t, "averías primarias") ||
		strings.Contains(t, "averías secundarias") ||
		strings.Contains(t, "transformadores dañados"):
		return MessageTypeCircuitFailure
	case strings.Contains(t, "en el día de ayer"):
		return MessageTypeDailySummary
	case reBlockRef.MatchString(t):
		return MessageTypeBlockInfo
	default:
		return MessageTypeGeneral
	}
}
