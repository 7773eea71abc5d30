package arff

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Serialize renders a dataset as ARFF text: the description as leading %
// comments, the @relation line, one @attribute line per column and the
// dense @data rows. Parse reads the output back into an equal dataset.
func Serialize(ds *dataset.Dataset) ([]byte, error) {
	if err := ds.ValidateShape(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if ds.Description != "" {
		for _, line := range strings.Split(ds.Description, "\n") {
			buf.WriteString("% ")
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	buf.WriteString("@RELATION ")
	buf.WriteString(quoteIfNeeded(ds.Relation))
	buf.WriteString("\n\n")

	for _, attr := range ds.Schema {
		spec, err := typeSpec(attr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "@ATTRIBUTE %s %s\n", quoteIfNeeded(attr.Name), spec)
	}

	buf.WriteString("\n@DATA\n")
	for i, row := range ds.Rows {
		for j, cell := range row {
			if j > 0 {
				buf.WriteByte(',')
			}
			text, err := formatCell(cell)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			buf.WriteString(text)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// typeSpec renders an attribute's declared type.
func typeSpec(attr dataset.Attribute) (string, error) {
	switch attr.Kind {
	case dataset.KindNumeric:
		return "NUMERIC", nil
	case dataset.KindInteger:
		return "INTEGER", nil
	case dataset.KindString:
		return "STRING", nil
	case dataset.KindNominal:
		quoted := make([]string, len(attr.Labels))
		for i, label := range attr.Labels {
			quoted[i] = quoteIfNeeded(label)
		}
		return "{" + strings.Join(quoted, ",") + "}", nil
	default:
		return "", fmt.Errorf("%w: cannot serialize %s attribute %q",
			dataset.ErrUnsupportedFeature, attr.Kind, attr.Name)
	}
}

// formatCell renders one cell; missing becomes the bare ? marker.
func formatCell(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "?", nil
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64), nil
	case int64:
		return strconv.FormatInt(c, 10), nil
	case int:
		return strconv.Itoa(c), nil
	case string:
		return quoteIfNeeded(c), nil
	default:
		return "", fmt.Errorf("%w: unsupported cell type %T", dataset.ErrInvalidArgument, v)
	}
}

// quoteIfNeeded wraps a value in single quotes when it is empty, is the
// bare missing marker or contains ARFF metacharacters, escaping as needed.
func quoteIfNeeded(s string) string {
	if s == "" {
		return "''"
	}
	if s != "?" && !strings.ContainsAny(s, " \t,{}%'\"\\\n\r") {
		return s
	}
	var b strings.Builder
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
