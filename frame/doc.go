// Package frame converts datasets to and from Apache Arrow records.
//
// This package implements:
// - Schema mapping between attribute kinds and Arrow field types
// - Dataset to Arrow record conversion with null-preserving columns
// - Arrow IPC stream serialization and IPC file round trips
//
// Attribute kinds and nominal label domains ride in Arrow field metadata,
// the relation name and description in schema metadata, so an IPC file
// loads back into an equal dataset.
package frame
