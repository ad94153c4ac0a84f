package parser

import (
	"fmt"

	"github.com/specialistvlad/lytgrid/internal/grid"
	"github.com/specialistvlad/lytgrid/internal/lexer"
	"github.com/specialistvlad/lytgrid/internal/model"
)

// Parse parses a whole .lyt source. On error no layouts are returned.
func Parse(source string) ([]*model.Layout, error) {
	p := &parser{
		tokens:  lexer.Tokenize(source),
		globals: make(map[string]model.Breakpoint),
	}
	layouts, err := p.parseFile()
	if err != nil {
		return nil, err
	}
	return layouts, nil
}

type parser struct {
	tokens  []lexer.Token
	pos     int
	globals map[string]model.Breakpoint
}

func (p *parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) next() lexer.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != lexer.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) skipNewlines() {
	for p.peek().Kind == lexer.Newline {
		p.pos++
	}
}

func (p *parser) errorf(tok lexer.Token, expected string, args ...any) *SyntaxError {
	return &SyntaxError{
		Line:     tok.Line,
		Column:   tok.Column,
		Expected: fmt.Sprintf(expected, args...),
		Found:    tok.String(),
	}
}

func (p *parser) expect(kind lexer.Kind, expected string, args ...any) (lexer.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorf(tok, expected, args...)
	}
	return p.next(), nil
}

func (p *parser) parseFile() ([]*model.Layout, error) {
	var layouts []*model.Layout
	defined := make(map[string]int)

	for {
		p.skipNewlines()
		tok := p.peek()
		switch tok.Kind {
		case lexer.EOF:
			p.applyGlobals(layouts)
			return layouts, nil
		case lexer.Breakpoints:
			if err := p.parseBreakpoints(p.globals); err != nil {
				return nil, err
			}
		case lexer.Layout:
			l, err := p.parseLayout()
			if err != nil {
				return nil, err
			}
			if line, ok := defined[l.Name]; ok {
				return nil, &SyntaxError{
					Line:     l.Line,
					Column:   tok.Column,
					Expected: "a unique layout name",
					Found:    fmt.Sprintf("%q (already defined on line %d)", l.Name, line),
				}
			}
			defined[l.Name] = l.Line
			layouts = append(layouts, l)
		default:
			return nil, p.errorf(tok, "@layout or @breakpoints")
		}
	}
}

// applyGlobals copies file-level breakpoints into every root layout.
func (p *parser) applyGlobals(layouts []*model.Layout) {
	for _, l := range layouts {
		if l.Extends != "" {
			continue
		}
		for name, bp := range p.globals {
			if _, ok := l.Breakpoints[name]; !ok {
				l.Breakpoints[name] = bp
			}
		}
	}
}

func (p *parser) parseBreakpoints(into map[string]model.Breakpoint) error {
	p.next()
	p.skipNewlines()
	if _, err := p.expect(lexer.LBrace, "'{' after @breakpoints"); err != nil {
		return err
	}
	for {
		p.skipNewlines()
		tok := p.peek()
		switch tok.Kind {
		case lexer.RBrace:
			p.next()
			return nil
		case lexer.Property:
			name, value, _ := tok.KeyValue()
			if value == "" {
				return p.errorf(tok, "a size value for breakpoint %q", name)
			}
			into[name] = model.Breakpoint{Name: name, Value: value}
			p.next()
		default:
			return p.errorf(tok, "breakpoint declaration or '}'")
		}
	}
}

func (p *parser) parseLayout() (*model.Layout, error) {
	kw := p.next()
	nameTok, err := p.expect(lexer.Ident, "layout name after @layout")
	if err != nil {
		return nil, err
	}
	l := &model.Layout{
		Name:        nameTok.Text,
		Slots:       make(map[string]*model.SlotDefinition),
		Breakpoints: make(map[string]model.Breakpoint),
		Line:        kw.Line,
	}

	if tok := p.peek(); tok.Kind == lexer.Ident {
		if tok.Text != "extends" {
			return nil, p.errorf(tok, "'extends' or '{'")
		}
		p.next()
		parent, err := p.expect(lexer.Ident, "parent layout name after 'extends'")
		if err != nil {
			return nil, err
		}
		l.Extends = parent.Text
	}

	p.skipNewlines()
	if _, err := p.expect(lexer.LBrace, "'{' to open layout %q", l.Name); err != nil {
		return nil, err
	}

	for {
		p.skipNewlines()
		tok := p.peek()
		switch tok.Kind {
		case lexer.RBrace:
			p.next()
			return l, nil
		case lexer.GridLine:
			if l.Grid != nil {
				return nil, p.errorf(tok, "slot marker or '}' (layout %q already has a root grid)", l.Name)
			}
			g, err := p.parseGridRun()
			if err != nil {
				return nil, err
			}
			l.Grid = g
		case lexer.Slot:
			if _, ok := l.Slots[tok.Text]; ok {
				return nil, p.errorf(tok, "a slot not yet defined in layout %q", l.Name)
			}
			s, err := p.parseSlot()
			if err != nil {
				return nil, err
			}
			l.Slots[s.Name] = s
		case lexer.Breakpoints:
			if err := p.parseBreakpoints(l.Breakpoints); err != nil {
				return nil, err
			}
		case lexer.EOF:
			return nil, p.errorf(tok, "'}' to close layout %q", l.Name)
		default:
			return nil, p.errorf(tok, "grid line, slot marker or '}'")
		}
	}
}

// parseGridRun collects consecutive grid lines; blank lines inside the run
// are allowed.
func (p *parser) parseGridRun() (*grid.Grid, error) {
	first := p.peek()
	var lines []string
	for p.peek().Kind == lexer.GridLine {
		lines = append(lines, p.next().Text)
		mark := p.pos
		p.skipNewlines()
		if p.peek().Kind != lexer.GridLine {
			p.pos = mark
		}
	}
	g, err := grid.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("grid starting on line %d: %w", first.Line, err)
	}
	return g, nil
}

func (p *parser) parseSlot() (*model.SlotDefinition, error) {
	tok := p.next()
	s := &model.SlotDefinition{Name: tok.Text, Properties: model.NewProperties()}

	mark := p.pos
	p.skipNewlines()
	if p.peek().Kind == lexer.LBrace {
		p.next()
		p.skipNewlines()
		if p.peek().Kind == lexer.GridLine {
			g, err := p.parseGridRun()
			if err != nil {
				return nil, err
			}
			s.NestedGrid = g
			p.skipNewlines()
		} else {
			s.NestedGrid = &grid.Grid{}
		}
		if _, err := p.expect(lexer.RBrace, "'}' to close the nested grid of [%s]", s.Name); err != nil {
			return nil, err
		}
	} else {
		p.pos = mark
	}

	for {
		tok := p.peek()
		switch tok.Kind {
		case lexer.Newline:
			p.next()
		case lexer.Property:
			key, value, _ := tok.KeyValue()
			if value == "..." {
				s.IsContainer = true
			} else {
				s.Properties.Set(key, value)
			}
			p.next()
		case lexer.Ellipsis:
			s.IsContainer = true
			p.next()
		case lexer.Slot, lexer.RBrace, lexer.GridLine, lexer.Breakpoints, lexer.EOF:
			return s, nil
		default:
			return nil, p.errorf(tok, "property, '...', slot marker or '}'")
		}
	}
}
