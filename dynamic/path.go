package dynamic

import (
	"fmt"
	"strconv"
	"strings"
)

// Compile parses a path expression into a Chain.
//
//	name        field of the root record
//	.name       field
//	["a.b"]     field with a quoted name
//	?           stop when the focus is nil
//	[3]         slot of a sequence; negative slots are always absent
//	[*]         every element of a sequence
//	[k=v]       elements whose field k renders as v; v may be quoted
//
// For example "addr?.street", "items[*].label" or `items[status="in progress"]`.
// The empty expression is the identity chain.
func Compile(expr string, opts ...Option) (Chain, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Chain{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return Chain{}, err
	}

	p := &parser{expr: expr, maxSteps: cfg.MaxSteps}
	c, err := p.parse()
	if err != nil {
		cfg.Logger.Warn("rejected optic path", "expr", expr, "error", err)
		return Chain{}, err
	}

	cfg.Logger.Debug("compiled optic path", "expr", expr, "steps", len(c.path), "kind", c.Kind().String())
	return c, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(expr string, opts ...Option) Chain {
	c, err := Compile(expr, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

type parser struct {
	expr     string
	pos      int
	maxSteps int
}

func (p *parser) parse() (Chain, error) {
	c := New()
	if p.pos < len(p.expr) && isIdentByte(p.expr[p.pos]) {
		c = c.Prop(p.ident())
	}

	for p.pos < len(p.expr) {
		start := p.pos
		switch p.expr[p.pos] {
		case '.':
			p.pos++
			name := p.ident()
			if name == "" {
				return Chain{}, p.fail(start, "expected field name after '.'")
			}
			c = c.Prop(name)
		case '?':
			p.pos++
			c = c.Opt()
		case '[':
			p.pos++
			next, err := p.bracket(c)
			if err != nil {
				return Chain{}, err
			}
			c = next
		default:
			return Chain{}, p.fail(start, fmt.Sprintf("unexpected %q", p.expr[p.pos]))
		}

		if p.maxSteps > 0 && len(c.path) > p.maxSteps {
			return Chain{}, &SyntaxError{
				Expr: p.expr,
				Pos:  start,
				Msg:  fmt.Sprintf("path exceeds %d steps", p.maxSteps),
				Err:  ErrTooManySteps,
			}
		}
	}
	return c, nil
}

// bracket parses the inside of [...] with the opening bracket consumed. A
// name followed by '=' is a condition, whatever it looks like, so quoted and
// digit-led condition names render and parse back the same way.
func (p *parser) bracket(c Chain) (Chain, error) {
	start := p.pos - 1
	if strings.HasPrefix(p.expr[p.pos:], "*]") {
		p.pos += 2
		return c.Collect(), nil
	}

	quoted := strings.HasPrefix(p.expr[p.pos:], `"`)
	nameAt := p.pos
	var name string
	if quoted {
		n, err := p.quoted()
		if err != nil {
			return Chain{}, err
		}
		name = n
	} else {
		name = p.ident()
		if name == "" {
			return Chain{}, p.fail(start, "expected index, '*', quoted name or condition inside '[]'")
		}
	}

	if p.pos < len(p.expr) && p.expr[p.pos] == '=' {
		p.pos++
		return p.condition(c, name)
	}

	switch {
	case quoted:
		if err := p.expect(']'); err != nil {
			return Chain{}, err
		}
		return c.Prop(name), nil
	case isIndex(name):
		if err := p.expect(']'); err != nil {
			return Chain{}, err
		}
		i, err := strconv.Atoi(name)
		if err != nil {
			return Chain{}, p.fail(nameAt, "index out of range")
		}
		return c.At(i), nil
	}
	return Chain{}, p.expect('=')
}

// condition parses the value of [name=value] with the '=' consumed.
func (p *parser) condition(c Chain, name string) (Chain, error) {
	var value string
	if strings.HasPrefix(p.expr[p.pos:], `"`) {
		v, err := p.quoted()
		if err != nil {
			return Chain{}, err
		}
		value = v
	} else {
		value = p.ident()
	}
	if err := p.expect(']'); err != nil {
		return Chain{}, err
	}
	return c.Where(name, value), nil
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.expr) && isIdentByte(p.expr[p.pos]) {
		p.pos++
	}
	return p.expr[start:p.pos]
}

func (p *parser) quoted() (string, error) {
	lit, err := strconv.QuotedPrefix(p.expr[p.pos:])
	if err != nil {
		return "", p.fail(p.pos, "unterminated quoted string")
	}
	s, err := strconv.Unquote(lit)
	if err != nil {
		return "", p.fail(p.pos, "invalid quoted string")
	}
	p.pos += len(lit)
	return s, nil
}

func (p *parser) expect(b byte) error {
	if p.pos >= len(p.expr) || p.expr[p.pos] != b {
		return p.fail(p.pos, fmt.Sprintf("expected %q", b))
	}
	p.pos++
	return nil
}

func (p *parser) fail(pos int, msg string) error {
	return &SyntaxError{Expr: p.expr, Pos: pos, Msg: msg}
}

// isIndex reports whether s is a decimal integer, as rendered by Chain.At.
func isIndex(s string) bool {
	s = strings.TrimPrefix(s, "-")
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func isIdentByte(b byte) bool {
	switch b {
	case '.', '?', '[', ']', '=', '"', ' ', '\t', '\n', '\r':
		return false
	}
	return true
}
