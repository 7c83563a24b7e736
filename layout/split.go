package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"

	"folio/common"
)

// boundaryFinder selects position (in runes) where paragraph text is cut so
// that the first part has no more than target runes.
type boundaryFinder interface {
	boundary(text []rune, target int) int
}

func newBoundaryFinder(cfg *Config, log *zap.Logger) boundaryFinder {
	words := wordBoundary{ratio: cfg.SplitFallbackRatio}
	if cfg.SplitBoundary != common.SplitBoundarySentence {
		return words
	}
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data, splitting on words", zap.Error(err))
		return words
	}
	return sentenceBoundary{tok: tok, words: words}
}

// wordBoundary looks for nearest whitespace at or before target. When none
// is found or it is closer to the start than ratio of target the cut is made
// right at target.
type wordBoundary struct {
	ratio float64
}

func (w wordBoundary) boundary(text []rune, target int) int {
	if target >= len(text) {
		return len(text)
	}
	for i := target; i > 0; i-- {
		if !unicode.IsSpace(text[i]) {
			continue
		}
		if float64(i) < float64(target)*w.ratio {
			break
		}
		return i
	}
	return target
}

// sentenceBoundary prefers end of the last sentence which fits into target
// and is not closer to the start than fallback ratio allows.
type sentenceBoundary struct {
	tok   *sentences.DefaultSentenceTokenizer
	words wordBoundary
}

func (s sentenceBoundary) boundary(text []rune, target int) int {
	if target >= len(text) {
		return len(text)
	}

	best, pos := 0, 0
	for _, sent := range s.tok.Tokenize(string(text)) {
		pos += utf8.RuneCountInString(sent.Text)
		if pos == 0 {
			continue
		}
		if pos > target || pos >= len(text) {
			break
		}
		if unicode.IsSpace(text[pos]) || unicode.IsSpace(text[pos-1]) {
			best = pos
		}
	}
	if best > 0 && float64(best) >= float64(target)*s.words.ratio {
		return best
	}
	return s.words.boundary(text, target)
}

// splitText cuts text at boundary selected by finder. Both parts are
// trimmed, the first one is never empty for non blank text, the remainder is
// empty when the whole text fits into target.
func splitText(text string, target int, finder boundaryFinder) (string, string) {
	runes := []rune(strings.TrimSpace(text))
	target = max(target, 1)
	idx := finder.boundary(runes, target)
	first := strings.TrimRightFunc(string(runes[:idx]), unicode.IsSpace)
	return first, strings.TrimSpace(string(runes[idx:]))
}
