package runnel

import (
	"fmt"
	"strings"
)

// lexPipeline splits src into stages on '|' and each stage into
// words on whitespace. Single and double quotes group text into one
// word and make '|' and whitespace literal; backslash escapes the
// next byte inside quotes.
func lexPipeline(src string) ([][]string, error) {
	var (
		stages [][]string
		words  []string
		word   strings.Builder
		inWord bool
	)
	flushWord := func() {
		if inWord {
			words = append(words, word.String())
			word.Reset()
			inWord = false
		}
	}
	flushStage := func() error {
		flushWord()
		if len(words) == 0 {
			return fmt.Errorf("empty stage")
		}
		stages = append(stages, words)
		words = nil
		return nil
	}
	i, n := 0, len(src)
	for i < n {
		c := src[i]
		switch {
		case c == '|':
			if err := flushStage(); err != nil {
				return nil, err
			}
			i++
		case c == ' ' || c == '\t' || c == '\n':
			flushWord()
			i++
		case c == '\'' || c == '"':
			q := c
			i++
			inWord = true
			for {
				if i >= n {
					return nil, fmt.Errorf("unterminated %q", string(q))
				}
				if src[i] == '\\' && i+1 < n {
					word.WriteByte(src[i+1])
					i += 2
					continue
				}
				if src[i] == q {
					i++
					break
				}
				word.WriteByte(src[i])
				i++
			}
		default:
			inWord = true
			word.WriteByte(c)
			i++
		}
	}
	if err := flushStage(); err != nil {
		return nil, err
	}
	return stages, nil
}
