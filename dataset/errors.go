package dataset

import "errors"

// Common errors for dataset and transform operations
var (
	ErrInvalidSchema      = errors.New("invalid schema")
	ErrUnsupportedFeature = errors.New("unsupported feature")
	ErrAttributeNotFound  = errors.New("attribute not found")
	ErrSchemaViolation    = errors.New("schema violation")
	ErrSchemaMismatch     = errors.New("schema mismatch")
	ErrDuplicateAttribute = errors.New("duplicate attribute")
	ErrInvalidArgument    = errors.New("invalid argument")
)
