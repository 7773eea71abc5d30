package arff

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// ParseError reports a syntax or consistency problem at a 1-based source
// line. Unwrap exposes the underlying error so callers can still match
// the dataset sentinels with errors.Is.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes ARFF text into a dataset. Leading % comment lines become
// the description; the bare ? token parses to the missing sentinel.
func Parse(data []byte) (*dataset.Dataset, error) {
	return ParseWithMissing(data, nil)
}

// ParseWithMissing decodes ARFF text, additionally treating any raw data
// token exactly equal to one of the given tokens as the missing sentinel.
// The tokens are matched after unquoting and before type conversion, so a
// placeholder like "NA" in a numeric column loads cleanly as missing.
func ParseWithMissing(data []byte, tokens []string) (*dataset.Dataset, error) {
	p := &parser{missing: make(map[string]bool, len(tokens))}
	for _, tok := range tokens {
		p.missing[tok] = true
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := p.consume(scanner.Text()); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan arff: %w", err)
	}

	if !p.sawRelation {
		return nil, fmt.Errorf("%w: missing @relation declaration", dataset.ErrInvalidSchema)
	}
	if !p.inData {
		return nil, fmt.Errorf("%w: missing @data section", dataset.ErrInvalidSchema)
	}
	return dataset.New(p.relation, p.schema, p.rows, strings.Join(p.description, "\n"))
}

// token is one raw data field. Quoting matters: a bare ? is the missing
// marker while a quoted '?' is a literal string.
type token struct {
	text   string
	quoted bool
}

type parser struct {
	missing     map[string]bool
	description []string
	relation    string
	schema      dataset.Schema
	rows        []dataset.Row
	sawRelation bool
	inData      bool
}

func (p *parser) consume(line string) error {
	trimmed := strings.TrimSpace(line)

	if p.inData {
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "%"):
			return nil
		case strings.HasPrefix(trimmed, "{"):
			return fmt.Errorf("%w: sparse ARFF data", dataset.ErrUnsupportedFeature)
		default:
			return p.dataRow(trimmed)
		}
	}

	switch {
	case trimmed == "":
		return nil
	case strings.HasPrefix(trimmed, "%"):
		// Comments before @relation form the description; later ones
		// carry no meaning.
		if !p.sawRelation {
			text := strings.TrimPrefix(trimmed, "%")
			text = strings.TrimPrefix(text, " ")
			p.description = append(p.description, text)
		}
		return nil
	case strings.HasPrefix(trimmed, "@"):
		return p.directive(trimmed)
	default:
		return fmt.Errorf("%w: unexpected text %q in header", dataset.ErrInvalidSchema, trimmed)
	}
}

func (p *parser) directive(line string) error {
	keyword, rest := splitDirective(line)
	switch keyword {
	case "@RELATION":
		if p.sawRelation {
			return fmt.Errorf("%w: duplicate @relation declaration", dataset.ErrInvalidSchema)
		}
		name, err := relationName(rest)
		if err != nil {
			return err
		}
		p.relation = name
		p.sawRelation = true
		return nil
	case "@ATTRIBUTE":
		if !p.sawRelation {
			return fmt.Errorf("%w: @attribute before @relation", dataset.ErrInvalidSchema)
		}
		return p.attribute(rest)
	case "@DATA":
		if !p.sawRelation {
			return fmt.Errorf("%w: @data before @relation", dataset.ErrInvalidSchema)
		}
		if len(p.schema) == 0 {
			return fmt.Errorf("%w: @data without attributes", dataset.ErrInvalidSchema)
		}
		p.inData = true
		return nil
	default:
		return fmt.Errorf("%w: unknown declaration %q", dataset.ErrInvalidSchema, keyword)
	}
}

// attribute parses the remainder of an @attribute line: a possibly quoted
// name followed by a type keyword or a {…} nominal domain.
func (p *parser) attribute(rest string) error {
	name, spec, err := readName(rest)
	if err != nil {
		return fmt.Errorf("%w: %v", dataset.ErrInvalidSchema, err)
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return fmt.Errorf("%w: attribute %q has no type", dataset.ErrInvalidSchema, name)
	}
	if p.schema.Contains(name) {
		return fmt.Errorf("%w: duplicate attribute name %q", dataset.ErrInvalidSchema, name)
	}

	var attr dataset.Attribute
	if strings.HasPrefix(spec, "{") {
		labels, err := nominalDomain(spec)
		if err != nil {
			return err
		}
		attr, err = dataset.NominalAttribute(name, labels)
		if err != nil {
			return err
		}
	} else {
		fields := strings.Fields(spec)
		// DATE may carry a format string; it is rejected either way.
		if len(fields) > 1 && !strings.EqualFold(fields[0], "DATE") {
			return fmt.Errorf("%w: unexpected text after type of attribute %q", dataset.ErrInvalidSchema, name)
		}
		attr, err = dataset.ScalarAttribute(name, fields[0])
		if err != nil {
			return err
		}
	}
	p.schema = append(p.schema, attr)
	return nil
}

func (p *parser) dataRow(line string) error {
	tokens, err := splitRow(line)
	if err != nil {
		return err
	}
	if len(tokens) != len(p.schema) {
		return fmt.Errorf("%w: row has %d values, schema has %d attributes",
			dataset.ErrSchemaViolation, len(tokens), len(p.schema))
	}

	row := make(dataset.Row, len(tokens))
	for i, tok := range tokens {
		cell, err := p.cell(p.schema[i], tok)
		if err != nil {
			return err
		}
		row[i] = cell
	}
	p.rows = append(p.rows, row)
	return nil
}

// cell converts one raw token under the attribute's kind. Missing-token
// normalization happens here, on the raw text, so it runs exactly once
// and ahead of typing.
func (p *parser) cell(attr dataset.Attribute, tok token) (any, error) {
	if !tok.quoted && tok.text == "?" {
		return nil, nil
	}
	if p.missing[tok.text] {
		return nil, nil
	}

	switch attr.Kind {
	case dataset.KindNumeric:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not numeric (attribute %q)",
				dataset.ErrSchemaViolation, tok.text, attr.Name)
		}
		return v, nil
	case dataset.KindInteger:
		v, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer (attribute %q)",
				dataset.ErrSchemaViolation, tok.text, attr.Name)
		}
		return v, nil
	case dataset.KindNominal:
		for _, label := range attr.Labels {
			if label == tok.text {
				return tok.text, nil
			}
		}
		return nil, fmt.Errorf("%w: value %q outside the domain of %q",
			dataset.ErrSchemaViolation, tok.text, attr.Name)
	default:
		return tok.text, nil
	}
}

// splitDirective separates the @keyword from its argument text.
func splitDirective(s string) (string, string) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return strings.ToUpper(s), ""
	}
	return strings.ToUpper(s[:i]), strings.TrimSpace(s[i+1:])
}

func relationName(rest string) (string, error) {
	if rest == "" {
		return "", fmt.Errorf("%w: missing relation name", dataset.ErrInvalidSchema)
	}
	if rest[0] == '\'' || rest[0] == '"' {
		name, tail, err := readName(rest)
		if err != nil {
			return "", fmt.Errorf("%w: %v", dataset.ErrInvalidSchema, err)
		}
		if strings.TrimSpace(tail) != "" {
			return "", fmt.Errorf("%w: unexpected text after relation name", dataset.ErrInvalidSchema)
		}
		return name, nil
	}
	return rest, nil
}

// readName extracts a possibly quoted name from the start of s and
// returns it with the remainder.
func readName(s string) (string, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", errors.New("missing name")
	}
	if s[0] == '\'' || s[0] == '"' {
		quote := s[0]
		var b strings.Builder
		for i := 1; i < len(s); i++ {
			c := s[i]
			if c == '\\' && i+1 < len(s) {
				i++
				b.WriteByte(unescape(s[i]))
				continue
			}
			if c == quote {
				return b.String(), s[i+1:], nil
			}
			b.WriteByte(c)
		}
		return "", "", errors.New("unterminated quoted name")
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", nil
	}
	return s[:i], s[i+1:], nil
}

// nominalDomain parses a {a,b,c} declaration into its ordered labels.
func nominalDomain(spec string) ([]string, error) {
	if !strings.HasSuffix(spec, "}") {
		return nil, fmt.Errorf("%w: unterminated nominal domain", dataset.ErrInvalidSchema)
	}
	inner := spec[1 : len(spec)-1]
	if strings.TrimSpace(inner) == "" {
		return nil, fmt.Errorf("%w: empty nominal domain", dataset.ErrInvalidSchema)
	}
	tokens, err := splitRow(inner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dataset.ErrInvalidSchema, err)
	}
	labels := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.text == "" && !tok.quoted {
			return nil, fmt.Errorf("%w: empty nominal label", dataset.ErrInvalidSchema)
		}
		labels[i] = tok.text
	}
	return labels, nil
}

// splitRow splits comma-separated fields, honouring single and double
// quotes and backslash escapes inside quoted values.
func splitRow(s string) ([]token, error) {
	out := make([]token, 0, 8)
	i, n := 0, len(s)
	for {
		for i < n && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		var tok token
		if i < n && (s[i] == '\'' || s[i] == '"') {
			quote := s[i]
			i++
			var b strings.Builder
			closed := false
			for i < n {
				c := s[i]
				if c == '\\' && i+1 < n {
					i++
					b.WriteByte(unescape(s[i]))
					i++
					continue
				}
				if c == quote {
					closed = true
					i++
					break
				}
				b.WriteByte(c)
				i++
			}
			if !closed {
				return nil, fmt.Errorf("%w: unterminated quote", dataset.ErrSchemaViolation)
			}
			tok = token{text: b.String(), quoted: true}
			for i < n && (s[i] == ' ' || s[i] == '\t') {
				i++
			}
			if i < n && s[i] != ',' {
				return nil, fmt.Errorf("%w: unexpected text after quoted value", dataset.ErrSchemaViolation)
			}
		} else {
			start := i
			for i < n && s[i] != ',' {
				i++
			}
			tok = token{text: strings.TrimRight(s[start:i], " \t")}
		}
		out = append(out, tok)
		if i >= n {
			return out, nil
		}
		i++ // consume the comma
	}
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}
