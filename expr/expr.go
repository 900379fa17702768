/*package expr evaluates the small arithmetic expressions that show up in
simulator input files and grid-count flags, e.g. "64*4*4*4" or "N/2".

Supported operators are +, -, *, / and the Python-style // (floor division)
and ** (exponentiation), along with parentheses and unary + and -.
Identifiers are resolved through a caller-supplied name table.
*/
package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Eval evaluates the expression s. names supplies values for any
// identifiers appearing in s and may be nil.
func Eval(s string, names map[string]float64) (float64, error) {
	p := &parser{src: s, names: names}
	x, err := p.sum()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return 0, fmt.Errorf(
			"unexpected '%c' in expression %q", p.src[p.pos], s,
		)
	}
	return x, nil
}

// EvalInt evaluates s and requires the result to be integral.
func EvalInt(s string, names map[string]float64) (int, error) {
	x, err := Eval(s, names)
	if err != nil {
		return 0, err
	}
	n := math.Round(x)
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x-n) > 1e-9 {
		return 0, fmt.Errorf("expression %q = %g is not an integer", s, x)
	}
	return int(n), nil
}

type parser struct {
	src   string
	pos   int
	names map[string]float64
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the next non-space byte without consuming it, or 0 at the
// end of the input.
func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// sum := term (("+" | "-") term)*
func (p *parser) sum() (float64, error) {
	x, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x += y
		case '-':
			p.pos++
			y, err := p.term()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

// term := unary (("*" | "/" | "//") unary)*
//
// "*" must not consume the first byte of "**", which belongs to power.
func (p *parser) term() (float64, error) {
	x, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		switch {
		case p.peek() == '*' && !p.hasPrefix("**"):
			p.pos++
			y, err := p.unary()
			if err != nil {
				return 0, err
			}
			x *= y
		case p.hasPrefix("//"):
			p.pos += 2
			y, err := p.unary()
			if err != nil {
				return 0, err
			}
			if y == 0 {
				return 0, fmt.Errorf("division by zero in %q", p.src)
			}
			x = math.Floor(x / y)
		case p.peek() == '/':
			p.pos++
			y, err := p.unary()
			if err != nil {
				return 0, err
			}
			if y == 0 {
				return 0, fmt.Errorf("division by zero in %q", p.src)
			}
			x /= y
		default:
			return x, nil
		}
	}
}

// unary := ("+" | "-") unary | power
func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '+':
		p.pos++
		return p.unary()
	case '-':
		p.pos++
		x, err := p.unary()
		return -x, err
	}
	return p.power()
}

// power := atom ("**" unary)?
//
// The exponent recurses through unary so that "2**-1" parses and "**" is
// right-associative.
func (p *parser) power() (float64, error) {
	x, err := p.atom()
	if err != nil {
		return 0, err
	}
	if p.hasPrefix("**") {
		p.pos += 2
		y, err := p.unary()
		if err != nil {
			return 0, err
		}
		return math.Pow(x, y), nil
	}
	return x, nil
}

// atom := number | name | "(" sum ")"
func (p *parser) atom() (float64, error) {
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		x, err := p.sum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing ')' in expression %q", p.src)
		}
		p.pos++
		return x, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.number()
	case isNameByte(c):
		return p.name()
	case c == 0:
		return 0, fmt.Errorf("unexpected end of expression %q", p.src)
	}
	return 0, fmt.Errorf("unexpected '%c' in expression %q", c, p.src)
}

func (p *parser) number() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && isNumberByte(p.src[p.pos]) {
		// 'e'/'E' may be followed by a signed exponent.
		if (p.src[p.pos] == 'e' || p.src[p.pos] == 'E') &&
			p.pos+1 < len(p.src) &&
			(p.src[p.pos+1] == '+' || p.src[p.pos+1] == '-') {
			p.pos++
		}
		p.pos++
	}
	x, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf(
			"invalid number %q in expression %q", p.src[start:p.pos], p.src,
		)
	}
	return x, nil
}

func (p *parser) name() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (isNameByte(p.src[p.pos]) ||
		p.src[p.pos] >= '0' && p.src[p.pos] <= '9') {
		p.pos++
	}
	name := p.src[start:p.pos]
	x, ok := p.names[name]
	if !ok {
		return 0, fmt.Errorf("unknown name %q in expression %q", name, p.src)
	}
	return x, nil
}

func (p *parser) hasPrefix(op string) bool {
	p.skipSpace()
	return p.pos+len(op) <= len(p.src) && p.src[p.pos:p.pos+len(op)] == op
}

func isNameByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isNumberByte(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E'
}
