// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// OperationKind distinguishes the two recordable operation families.
type OperationKind string

const (
	KindConvert OperationKind = "convert"
	KindCalc    OperationKind = "calc"
)

// OperationRecord is one completed conversion or calculation as stored
// in the history database and written by the export formats.
type OperationRecord struct {
	// ID is the autoincrement row ID; zero before the record is stored.
	ID int64 `json:"id" yaml:"id"`

	// Kind is "convert" or "calc".
	Kind OperationKind `json:"kind" yaml:"kind"`

	// Expression is the input as given: the source number for a
	// conversion, or "a op b" for a calculation.
	Expression string `json:"expression" yaml:"expression"`

	// SourceBase is the base the input was parsed in.
	SourceBase int `json:"source_base" yaml:"source_base"`

	// TargetBase is the base the result is rendered in. For
	// calculations this equals SourceBase.
	TargetBase int `json:"target_base" yaml:"target_base"`

	// Result is the rendered output value.
	Result string `json:"result" yaml:"result"`

	// CreatedAt is when the operation was recorded, in UTC.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
