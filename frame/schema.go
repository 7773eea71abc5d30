package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/goccy/go-json"

	"github.com/VanDung-dev/ARFF-Engine/dataset"
)

// Metadata keys carrying dataset information through Arrow schemas.
const (
	relationKey    = "arff.relation"
	descriptionKey = "arff.description"
	kindKey        = "arff.kind"
	labelsKey      = "arff.labels"
)

// SchemaToArrow maps a dataset schema to an Arrow schema. Every column is
// nullable because any cell may be missing. The attribute kind rides in
// field metadata, for nominal attributes together with the label domain
// as a JSON array.
func SchemaToArrow(s dataset.Schema) (*arrow.Schema, error) {
	fields, err := arrowFields(s)
	if err != nil {
		return nil, err
	}
	return arrow.NewSchema(fields, nil), nil
}

func arrowFields(s dataset.Schema) ([]arrow.Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	fields := make([]arrow.Field, len(s))
	for i, attr := range s {
		var typ arrow.DataType
		keys := []string{kindKey}
		values := []string{attr.Kind.String()}

		switch attr.Kind {
		case dataset.KindNumeric:
			typ = arrow.PrimitiveTypes.Float64
		case dataset.KindInteger:
			typ = arrow.PrimitiveTypes.Int64
		case dataset.KindString:
			typ = arrow.BinaryTypes.String
		case dataset.KindNominal:
			typ = arrow.BinaryTypes.String
			labels, err := json.Marshal(attr.Labels)
			if err != nil {
				return nil, fmt.Errorf("encode domain of %q: %w", attr.Name, err)
			}
			keys = append(keys, labelsKey)
			values = append(values, string(labels))
		default:
			return nil, fmt.Errorf("%w: no Arrow mapping for %s attribute %q",
				dataset.ErrUnsupportedFeature, attr.Kind, attr.Name)
		}

		fields[i] = arrow.Field{
			Name:     attr.Name,
			Type:     typ,
			Nullable: true,
			Metadata: arrow.NewMetadata(keys, values),
		}
	}
	return fields, nil
}

// SchemaFromArrow recovers a dataset schema from an Arrow schema. Fields
// written by SchemaToArrow carry their kind in metadata; plain Arrow
// fields fall back to the type mapping alone.
func SchemaFromArrow(as *arrow.Schema) (dataset.Schema, error) {
	if as == nil {
		return nil, fmt.Errorf("%w: nil arrow schema", dataset.ErrInvalidArgument)
	}

	schema := make(dataset.Schema, 0, as.NumFields())
	for i := 0; i < as.NumFields(); i++ {
		attr, err := attributeFromField(as.Field(i))
		if err != nil {
			return nil, err
		}
		schema = append(schema, attr)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func attributeFromField(field arrow.Field) (dataset.Attribute, error) {
	md := field.Metadata
	declared := ""
	if i := md.FindKey(kindKey); i >= 0 {
		declared = md.Values()[i]
	}

	if declared == "nominal" {
		if !arrow.TypeEqual(field.Type, arrow.BinaryTypes.String) {
			return dataset.Attribute{}, fmt.Errorf("%w: nominal field %q has Arrow type %s",
				dataset.ErrInvalidSchema, field.Name, field.Type)
		}
		j := md.FindKey(labelsKey)
		if j < 0 {
			return dataset.Attribute{}, fmt.Errorf("%w: nominal field %q carries no domain metadata",
				dataset.ErrInvalidSchema, field.Name)
		}
		var labels []string
		if err := json.Unmarshal([]byte(md.Values()[j]), &labels); err != nil {
			return dataset.Attribute{}, fmt.Errorf("%w: bad domain metadata on %q: %v",
				dataset.ErrInvalidSchema, field.Name, err)
		}
		return dataset.NominalAttribute(field.Name, labels)
	}

	var kind dataset.Kind
	switch {
	case arrow.TypeEqual(field.Type, arrow.PrimitiveTypes.Float64):
		kind = dataset.KindNumeric
	case arrow.TypeEqual(field.Type, arrow.PrimitiveTypes.Int64):
		kind = dataset.KindInteger
	case arrow.TypeEqual(field.Type, arrow.BinaryTypes.String):
		kind = dataset.KindString
	default:
		return dataset.Attribute{}, fmt.Errorf("%w: no attribute mapping for Arrow type %s of field %q",
			dataset.ErrUnsupportedFeature, field.Type, field.Name)
	}
	if declared != "" && declared != kind.String() {
		return dataset.Attribute{}, fmt.Errorf("%w: field %q declares kind %q but has Arrow type %s",
			dataset.ErrInvalidSchema, field.Name, declared, field.Type)
	}
	return dataset.Attribute{Name: field.Name, Kind: kind}, nil
}
