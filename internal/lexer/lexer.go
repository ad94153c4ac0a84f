package lexer

import "strings"

// Tokenize converts source into tokens. The returned slice always ends with
// an EOF token.
func Tokenize(source string) []Token {
	l := &lexer{src: source, line: 1, lineHead: true}
	l.run()
	return l.tokens
}

type lexer struct {
	src       string
	pos       int
	line      int
	lineStart int
	// lineHead is true until the first significant character of a line.
	lineHead bool
	tokens   []Token
}

func (l *lexer) emit(kind Kind, text string, start int) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   text,
		Line:   l.line,
		Column: start - l.lineStart + 1,
	})
}

func (l *lexer) run() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			l.emit(Newline, "\n", l.pos)
			l.pos++
			l.line++
			l.lineStart = l.pos
			l.lineHead = true
			continue
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
			continue
		case c == '#':
			l.skipLine()
			continue
		case (c == '+' || c == '|') && l.lineHead:
			l.gridLine()
		case c == '@':
			l.atKeyword()
		case c == '{':
			l.emit(LBrace, "{", l.pos)
			l.pos++
		case c == '}':
			l.emit(RBrace, "}", l.pos)
			l.pos++
		case c == '[':
			l.slot()
		case strings.HasPrefix(l.src[l.pos:], "..."):
			l.emit(Ellipsis, "...", l.pos)
			l.pos += 3
		case isIdentStart(c):
			l.identOrProperty()
		default:
			// Unknown characters are not an error.
			l.pos++
		}
		l.lineHead = false
	}
	l.emit(EOF, "", l.pos)
}

func (l *lexer) lineEnd() int {
	if i := strings.IndexByte(l.src[l.pos:], '\n'); i >= 0 {
		return l.pos + i
	}
	return len(l.src)
}

func (l *lexer) skipLine() {
	l.pos = l.lineEnd()
}

func (l *lexer) gridLine() {
	end := l.lineEnd()
	l.emit(GridLine, strings.TrimRight(l.src[l.pos:end], " \t\r"), l.pos)
	l.pos = end
}

func (l *lexer) atKeyword() {
	start := l.pos
	word := l.readIdent(l.pos + 1)
	l.pos += 1 + len(word)
	switch word {
	case "layout":
		l.emit(Layout, "@layout", start)
	case "breakpoints":
		l.emit(Breakpoints, "@breakpoints", start)
	}
}

func (l *lexer) slot() {
	start := l.pos
	end := l.lineEnd()
	closeIdx := strings.IndexByte(l.src[l.pos:end], ']')
	if closeIdx < 0 {
		l.pos++
		return
	}
	name := strings.TrimSpace(l.src[l.pos+1 : l.pos+closeIdx])
	if name == "" || !isIdentStart(name[0]) || len(l.readIdentFrom(name)) != len(name) {
		l.pos++
		return
	}
	l.emit(Slot, name, start)
	l.pos += closeIdx + 1
}

func (l *lexer) identOrProperty() {
	start := l.pos
	word := l.readIdent(l.pos)
	l.pos += len(word)

	look := l.pos
	for look < len(l.src) && (l.src[look] == ' ' || l.src[look] == '\t') {
		look++
	}
	if look >= len(l.src) || l.src[look] != ':' {
		l.emit(Ident, word, start)
		return
	}

	valueStart := look + 1
	valueEnd := valueStart
	for valueEnd < len(l.src) && !l.endsValue(valueEnd) {
		valueEnd++
	}
	value := strings.TrimSpace(l.src[valueStart:valueEnd])
	l.emit(Property, word+": "+value, start)
	l.pos = valueEnd
}

// endsValue reports whether the byte at i terminates a property value.
// A '#' only starts a comment when followed by whitespace, so colour
// literals such as #fff survive. Whitespace ends the value when another
// `key: value` pair follows on the same line.
func (l *lexer) endsValue(i int) bool {
	switch l.src[i] {
	case '\n', ';', '{', '}':
		return true
	case '#':
		return i+1 >= len(l.src) || isBlank(l.src[i+1])
	case ' ', '\t':
		return l.startsProperty(i + 1)
	}
	return false
}

// startsProperty reports whether an identifier followed by ':' and then
// whitespace or the end of the value begins at i. URLs such as
// https://host do not qualify.
func (l *lexer) startsProperty(i int) bool {
	word := l.readIdent(i)
	if word == "" {
		return false
	}
	j := i + len(word)
	for j < len(l.src) && (l.src[j] == ' ' || l.src[j] == '\t') {
		j++
	}
	if j >= len(l.src) || l.src[j] != ':' {
		return false
	}
	j++
	return j >= len(l.src) || isBlank(l.src[j]) || strings.IndexByte(";{}", l.src[j]) >= 0
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func (l *lexer) readIdent(from int) string {
	if from >= len(l.src) || !isIdentStart(l.src[from]) {
		return ""
	}
	return l.readIdentFrom(l.src[from:])
}

func (l *lexer) readIdentFrom(s string) string {
	end := 0
	for end < len(s) && isIdentChar(s[end]) {
		end++
	}
	return s[:end]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c == '-' || (c >= '0' && c <= '9')
}

func cutProperty(text string) (string, string, bool) {
	key, value, found := strings.Cut(text, ":")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
