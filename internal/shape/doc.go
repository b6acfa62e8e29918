// Package shape validates decoded JSON values against declarative shape
// descriptors and maps them into normalized Go values.
//
// Shapes are built from a closed set of combinators:
//
//	String, Number, Int, Boolean, Unknown   primitives
//	Object(Prop(...), PropAs(...))           object of named properties
//	Optional(s)                              property may be absent
//	Nullable(s)                              value may be null
//	Array(s), Dict(s)                        homogeneous list / string-keyed map
//	OneOf(s...)                              first matching alternative
//
// Absent and null are distinct: an absent object property is only accepted by
// Optional, and a JSON null only by Nullable (or Unknown). Validate reports
// every failure it finds rather than stopping at the first one; each Failure
// carries the path of the offending value.
//
// Input values are expected in the form encoding/json produces when decoding
// into any: map[string]any, []any, float64, string, bool and nil. json.Number
// is accepted wherever a number is.
package shape
