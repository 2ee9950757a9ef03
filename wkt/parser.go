// Package wkt reads and writes the Well-Known-Text form of geography records.
//
// Parse and ParseInto turn text into a geography.Record whose coordinates live
// in an arena.Arena; Write and AppendWKT render a record back to text. Only
// two-dimensional coordinates are supported, and a GeometryCollection may not
// contain another collection.
package wkt

import (
	"github.com/arloliu/geog/arena"
	"github.com/arloliu/geog/errs"
	"github.com/arloliu/geog/geography"
)

const emptyWord = "EMPTY"

// Parse parses text into a record backed by a fresh arena.
func Parse(text string, opts ...Option) (geography.Record, error) {
	return ParseInto(arena.New(), text, opts...)
}

// ParseInto parses text and appends its coordinates to a. The returned record
// borrows from a.
//
// Parsing is all-or-nothing: on error nothing stays referenced in the arena
// and the returned record is empty. The error is a *ParseError.
func ParseInto(a *arena.Arena, text string, opts ...Option) (geography.Record, error) {
	p := &parser{tok: NewTokenizer(text, opts...)}

	rec, err := p.parseGeometry(a)
	if err != nil {
		return geography.NewEmpty(geography.KindUnknown), err
	}

	return rec, nil
}

// ParseLines parses one geometry per non-blank line of text into a.
//
// It stops at the first malformed line; records parsed before it stay valid.
func ParseLines(a *arena.Arena, text string) ([]geography.Record, error) {
	p := &parser{tok: NewTokenizer(text, WithLineMode())}

	var recs []geography.Record
	for {
		for p.tok.Peek().Kind == TokenEOL {
			p.tok.Next()
		}
		if p.tok.Peek().Kind == TokenEOF {
			return recs, nil
		}

		rec, err := p.parseGeometry(a)
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

type parser struct {
	tok *Tokenizer
	b   *geography.Builder
}

// parseGeometry parses one geometry followed by an end of line or input.
func (p *parser) parseGeometry(a *arena.Arena) (geography.Record, error) {
	t := p.tok.Next()
	if t.IsWord(emptyWord) {
		if err := p.expectEnd(); err != nil {
			return geography.Record{}, err
		}

		return geography.NewEmpty(geography.KindUnknown), nil
	}

	kind, err := p.keyword(t)
	if err != nil {
		return geography.Record{}, err
	}

	p.b = geography.NewBuilder(a, kind)
	if err := p.body(kind, false); err != nil {
		p.b.Discard()
		return geography.Record{}, err
	}

	if err := p.expectEnd(); err != nil {
		p.b.Discard()
		return geography.Record{}, err
	}

	return p.b.Finish(), nil
}

func (p *parser) keyword(t Token) (geography.Kind, error) {
	if t.Kind != TokenWord || t.Text == emptyWord {
		return geography.KindUnknown, unexpected(t, "geometry keyword")
	}

	kind, ok := geography.KindFromKeyword(t.Text)
	if !ok {
		return geography.KindUnknown, failAt(t, errs.ErrUnsupportedGeometryType)
	}

	return kind, nil
}

// expectEnd accepts the end of input, or the end of a line in line mode.
func (p *parser) expectEnd() error {
	t := p.tok.Next()
	if t.Kind == TokenEOF || t.Kind == TokenEOL {
		return nil
	}

	return unexpected(t, "end of input")
}

func (p *parser) body(kind geography.Kind, member bool) error {
	switch kind {
	case geography.KindPoint:
		return p.point()
	case geography.KindLineString:
		return p.ring()
	case geography.KindPolygon:
		n, err := p.polygon()
		if err == nil && member {
			p.b.AddGroup(n)
		}

		return err
	case geography.KindMultiPoint:
		return p.multiPoint(member)
	case geography.KindMultiLineString:
		return p.multiLineString(member)
	case geography.KindMultiPolygon:
		return p.multiPolygon(member)
	case geography.KindGeometryCollection:
		return p.collection()
	default:
		return errs.ErrUnsupportedGeometryType
	}
}

// open consumes '(' or EMPTY and reports whether the body is empty.
func (p *parser) open() (bool, error) {
	t := p.tok.Next()
	switch {
	case t.Kind == TokenLParen:
		return false, nil
	case t.IsWord(emptyWord):
		return true, nil
	case t.IsWord("Z"), t.IsWord("M"), t.IsWord("ZM"):
		return false, failAt(t, errs.ErrUnsupportedDimension)
	default:
		return false, unexpected(t, "'EMPTY' or '('")
	}
}

// next consumes ',' or ')' and reports whether another item follows.
func (p *parser) next() (bool, error) {
	t := p.tok.Next()
	if t.Kind == TokenComma {
		return true, nil
	}
	if t.Kind == TokenRParen {
		return false, nil
	}

	return false, unexpected(t, "',' or ')'")
}

func (p *parser) number() (float64, error) {
	t := p.tok.Next()
	if t.Kind != TokenNumber {
		return 0, unexpected(t, "number")
	}

	return t.Number, nil
}

// coordinate reads one "lng lat" pair into the current ring.
func (p *parser) coordinate() error {
	lng, err := p.number()
	if err != nil {
		return err
	}

	lat, err := p.number()
	if err != nil {
		return err
	}

	if t := p.tok.Peek(); t.Kind == TokenNumber {
		return failAt(t, errs.ErrUnsupportedDimension)
	}

	p.b.AddPoint(lng, lat)

	return nil
}

// coordinates reads "coord [, coord]* )" as one ring.
func (p *parser) coordinates() error {
	for {
		if err := p.coordinate(); err != nil {
			return err
		}

		more, err := p.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	p.b.EndRing()

	return nil
}

// point reads "EMPTY" or "( lng lat )" as a ring of length 0 or 1.
func (p *parser) point() error {
	empty, err := p.open()
	if err != nil {
		return err
	}
	if empty {
		p.b.AddEmptyRing()
		return nil
	}

	if err := p.coordinate(); err != nil {
		return err
	}

	if t := p.tok.Next(); t.Kind != TokenRParen {
		return unexpected(t, "')'")
	}
	p.b.EndRing()

	return nil
}

// ring reads "EMPTY" or "( coordlist )" as one ring.
func (p *parser) ring() error {
	empty, err := p.open()
	if err != nil {
		return err
	}
	if empty {
		p.b.AddEmptyRing()
		return nil
	}

	return p.coordinates()
}

// polygon reads a polygon body and returns its ring count.
func (p *parser) polygon() (int, error) {
	empty, err := p.open()
	if err != nil || empty {
		return 0, err
	}

	n := 0
	for {
		if err := p.ring(); err != nil {
			return 0, err
		}
		n++

		more, err := p.next()
		if err != nil {
			return 0, err
		}
		if !more {
			return n, nil
		}
	}
}

// multiPoint accepts both "(1 2, 3 4)" and "((1 2), (3 4))". The first element
// decides the form for the whole body.
func (p *parser) multiPoint(member bool) error {
	empty, err := p.open()
	if err != nil || empty {
		if empty && member {
			p.b.AddGroup(0)
		}

		return err
	}

	first := p.tok.Peek()
	grouped := first.Kind == TokenLParen || first.IsWord(emptyWord)

	n := 0
	for {
		if grouped {
			if t := p.tok.Peek(); t.Kind != TokenLParen && !t.IsWord(emptyWord) {
				return unexpected(t, "'EMPTY' or '('")
			}
			err = p.point()
		} else if err = p.coordinate(); err == nil {
			p.b.EndRing()
		}
		if err != nil {
			return err
		}
		n++
		if !member {
			p.b.AddGroup(1)
		}

		more, err := p.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if member {
		p.b.AddGroup(n)
	}

	return nil
}

func (p *parser) multiLineString(member bool) error {
	empty, err := p.open()
	if err != nil || empty {
		if empty && member {
			p.b.AddGroup(0)
		}

		return err
	}

	n := 0
	for {
		if err := p.ring(); err != nil {
			return err
		}
		n++
		if !member {
			p.b.AddGroup(1)
		}

		more, err := p.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if member {
		p.b.AddGroup(n)
	}

	return nil
}

func (p *parser) multiPolygon(member bool) error {
	empty, err := p.open()
	if err != nil || empty {
		if empty && member {
			p.b.AddPolygonCount(0)
		}

		return err
	}

	n := 0
	for {
		rings, err := p.polygon()
		if err != nil {
			return err
		}
		p.b.AddGroup(rings)
		n++

		more, err := p.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if member {
		p.b.AddPolygonCount(n)
	}

	return nil
}

func (p *parser) collection() error {
	empty, err := p.open()
	if err != nil || empty {
		return err
	}

	for {
		t := p.tok.Next()
		kind, err := p.keyword(t)
		if err != nil {
			return err
		}
		if kind == geography.KindGeometryCollection {
			return failAt(t, errs.ErrNestedCollection)
		}

		p.b.AddMemberKind(kind)
		if err := p.body(kind, true); err != nil {
			return err
		}

		more, err := p.next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
