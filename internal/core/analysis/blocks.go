package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

// alertGlyphs are the symbols the channel prefixes affectation notices with
const alertGlyphs = `[✅🚨‼️❗]`

// blockPatterns holds the compiled pattern family for one block number.
// The patterns are deliberately literal transcriptions of the channel's
// writing habits; their ordering and exclusion logic carry real domain
// semantics, so they are not generalized
type blockPatterns struct {
	number      int
	mention     *regexp.Regexp
	recovery    *regexp.Regexp
	exclusion   *regexp.Regexp
	affectation *regexp.Regexp
	emergency   *regexp.Regexp
}

// blockTable is built once at process start; patterns are read-only after
var blockTable = buildBlockTable()

func buildBlockTable() [blockCount]blockPatterns {
	var table [blockCount]blockPatterns
	for i := 1; i <= blockCount; i++ {
		// loose form tolerates plural, enumeration commas and bare digits
		loose := fmt.Sprintf(`(bloques?|no\.?|y|,|\s)[ .#]*%d`, i)
		// strict form requires an explicit block token before the digit
		strict := fmt.Sprintf(`(bloque|b|bloque no\.?)[ .#]*%d`, i)

		table[i-1] = blockPatterns{
			number:      i,
			mention:     regexp.MustCompile(loose + `\b`),
			recovery:    regexp.MustCompile(`restablecimiento[\s\S]*?` + loose),
			exclusion:   regexp.MustCompile(fmt.Sprintf(`(bloque|b|no\.?)[ .#]*%d[\s\S]*?afectaci[oó]n`, i)),
			affectation: regexp.MustCompile(alertGlyphs + `[\s\S]*?` + strict),
			emergency:   regexp.MustCompile(alertGlyphs + `[\s\S]*?` + strict + `[\s\S]*?emergencia`),
		}
	}
	return table
}

// AnalyzeBlocks counts mentions, declared recoveries, affectations and
// emergencies per block. One message can increment several blocks; each
// block's patterns are evaluated independently.
//
// A recovery only counts when the exclusion pattern (block followed by
// "afectación") is absent, so a block reported recovered and still affected
// in the same post is not double-counted as recovered
func AnalyzeBlocks(msgs []Message) []BlockAnalysis {
	out := make([]BlockAnalysis, blockCount)
	for i := range out {
		out[i].Number = i + 1
	}

	for bi := range blockTable {
		p := &blockTable[bi]
		for _, m := range msgs {
			t := strings.ToLower(m.Text)

			if p.mention.MatchString(t) {
				out[bi].Mentions++
			}

			if strings.Contains(t, "restablecimiento") &&
				p.recovery.MatchString(t) &&
				!p.exclusion.MatchString(t) {
				out[bi].DeclaredRecoveries++
			}

			if p.affectation.MatchString(t) {
				out[bi].DeclaredAffectations++
				if p.emergency.MatchString(t) {
					out[bi].DeclaredEmergencies++
				}
			}
		}
	}
	return out
}
