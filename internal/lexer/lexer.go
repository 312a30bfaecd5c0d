// Package lexer performs the Jack lexical scan: comment stripping plus
// keyword/symbol/identifier/literal recognition. It exists only to make
// this repository runnable end-to-end from raw .jack source — the
// compilation engine (internal/compiler) never imports it and always
// treats tokens as an externally supplied stream, exactly as spec'd.
package lexer

import (
	"regexp"
	"strings"

	"github.com/libklein/nand2tetris/jackcompiler/internal/diag"
	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

var patterns = []struct {
	tag token.Tag
	re  *regexp.Regexp
}{
	{token.Keyword, regexp.MustCompile(`^(class|constructor|function|method|field|static|var|int|char|boolean|void|true|false|null|this|let|do|if|else|while|return)\b`)},
	{token.Identifier, regexp.MustCompile(`^[A-Za-z_]\w*`)},
	{token.IntegerConstant, regexp.MustCompile(`^\d+`)},
	{token.StringConstant, regexp.MustCompile(`^"[^"\n]*"`)},
	{token.Symbol, regexp.MustCompile(`^[{}()\[\].,;+\-*/&|<>=~]`)},
}

// Scan tokenizes src, stripping // and /* */ comments first. Any byte
// sequence that matches none of the token patterns is reported to sink
// as a syntax diagnostic and skipped so the scan can keep making
// progress on malformed input.
func Scan(src []byte, sink *diag.Sink) []token.Token {
	stripped := stripComments(string(src), sink)

	var tokens []token.Token
	idx := 0
	rest := stripped
	for {
		rest = strings.TrimLeft(rest, " \t\r\n")
		if rest == "" {
			break
		}

		matched := false
		for _, p := range patterns {
			loc := p.re.FindStringIndex(rest)
			if loc == nil || loc[0] != 0 {
				continue
			}
			lexeme := rest[:loc[1]]
			value := lexeme
			if p.tag == token.StringConstant {
				value = lexeme[1 : len(lexeme)-1]
			}
			tokens = append(tokens, token.Token{Tag: p.tag, Value: value, Index: idx})
			idx++
			rest = rest[loc[1]:]
			matched = true
			break
		}
		if !matched {
			sink.AddError(idx, "unrecognized token near %q", firstRunes(rest, 12))
			rest = rest[1:]
		}
	}
	return tokens
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

// stripComments removes // line comments and /* ... */ (and /** ... */)
// block comments. A block comment that never finds a closing */ is
// reported as an error (unclosed comment); a */ encountered with no
// matching open is reported as a warning, since that's a common
// authoring mistake the naive strip would otherwise hide silently.
func stripComments(src string, sink *diag.Sink) string {
	var out strings.Builder
	i := 0
	charIdx := 0
	for i < len(src) {
		switch {
		case strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end == -1 {
				i = len(src)
			} else {
				i += end
			}
		case strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end == -1 {
				sink.AddError(charIdx, "unclosed comment")
				i = len(src)
			} else {
				i += 2 + end + 2
			}
		case strings.HasPrefix(src[i:], "*/"):
			sink.AddWarning(charIdx, "'*/' with no matching '/*'")
			i += 2
		default:
			out.WriteByte(src[i])
			i++
			charIdx++
		}
	}
	return out.String()
}
