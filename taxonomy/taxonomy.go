// Package taxonomy fixes how each contract feature is represented: as a
// yes/no binary, an ordinal bucket, an input-only signal, or a value derived
// analytically from another column. The taxonomy is configuration, not
// learned state; adding a bucket rule or a derived formula is a data change
// in the table below, not a control-flow change.
package taxonomy

// Category classifies a contract feature.
type Category int

const (
	// Binary features hold yes/no answers encoded as 1/0, and are predictable.
	Binary Category = iota
	// Ordinal features hold bucketed day counts or similar small codes, and
	// are predictable.
	Ordinal
	// InputOnly features may appear in a model's feature set but are never
	// produced as predictions.
	InputOnly
	// Derived features are computed from another column's realized value at
	// prediction time and are never trained directly.
	Derived
)

func (c Category) String() string {
	switch c {
	case Binary:
		return "binary"
	case Ordinal:
		return "ordinal"
	case InputOnly:
		return "input-only"
	case Derived:
		return "derived"
	default:
		return "unknown"
	}
}

// Column describes one named contract feature.
//
// Encode must be a total function: ambiguous or unparseable raw input
// degrades to a defined code or to missing (ok=false), never to an error.
// Derived columns carry no encoder; they set Source and Transform instead.
type Column struct {
	Name     string
	Category Category

	// Encode maps a raw corpus cell to an integer code. ok=false marks the
	// value as missing (binary columns only; ordinal buckets are total and
	// degrade to code 0).
	Encode func(raw string) (code int, ok bool)

	// Levels is the number of distinct codes the column can take.
	Levels int

	// Source and Transform apply to Derived columns only: the realized value
	// of Source is passed through Transform at prediction time.
	Source    string
	Transform func(source int) int
}

// columns is the fixed feature table over the CUAD-style corpus header.
var columns = []Column{
	{Name: "Termination For Convenience", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Change Of Control", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Anti-Assignment", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Revenue/Profit Sharing", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Ip Ownership Assignment", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Joint Ip Ownership", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Non-Transferable License", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Source Code Escrow", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Post-Termination Services", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Audit Rights", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Cap On Liability", Category: Binary, Encode: EncodeBinary, Levels: 2},
	{Name: "Liquidated Damages", Category: Binary, Encode: EncodeBinary, Levels: 2},

	{Name: "Renewal Term (Days)", Category: Ordinal, Encode: BucketRenewal, Levels: 5},
	{Name: "Notice Period To Terminate Renewal", Category: Ordinal, Encode: BucketNotice, Levels: 4},

	// Warranty duration is a useful signal but not a term a negotiator asks
	// the model to fill in.
	{Name: "Warranty Duration", Category: InputOnly, Encode: BucketRenewal, Levels: 5},

	// Uncapped liability is the logical complement of a liability cap.
	{Name: "Uncapped Liability", Category: Derived, Source: "Cap On Liability", Levels: 2,
		Transform: func(source int) int { return 1 - source }},
}

var byName = func() map[string]Column {
	m := make(map[string]Column, len(columns))
	for _, c := range columns {
		m[c.Name] = c
	}
	return m
}()

// Columns returns the full feature table in its fixed order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// Lookup returns the taxonomy entry for a column name.
func Lookup(name string) (Column, bool) {
	c, ok := byName[name]
	return c, ok
}

// FeatureNames returns the names usable as model features, in table order:
// Binary, Ordinal and InputOnly columns.
func FeatureNames() []string {
	var names []string
	for _, c := range columns {
		switch c.Category {
		case Binary, Ordinal, InputOnly:
			names = append(names, c.Name)
		}
	}
	return names
}

// PredictableNames returns the names the predictor produces models for, in
// table order: Binary and Ordinal columns.
func PredictableNames() []string {
	var names []string
	for _, c := range columns {
		switch c.Category {
		case Binary, Ordinal:
			names = append(names, c.Name)
		}
	}
	return names
}

// DerivedColumns returns the Derived entries in table order.
func DerivedColumns() []Column {
	var out []Column
	for _, c := range columns {
		if c.Category == Derived {
			out = append(out, c)
		}
	}
	return out
}
