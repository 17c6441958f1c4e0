package models

// Related data type values
const (
	RelatedDataJoin    = "join"    // Rows matched from another table
	RelatedDataInclude = "include" // Child records embedded in the result
	RelatedDataLookup  = "lookup"  // Reference value resolved by key
)

// FriendlyNames maps raw table and column identifiers to display names.
// Keys are matched case-insensitively.
type FriendlyNames struct {
	Tables map[string]string `json:"tables,omitempty" yaml:"tables"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields"`
}

// AppliedFilter is a filter the caller has already resolved. When present it
// replaces parsing of the WHERE clause.
type AppliedFilter struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Value        any    `json:"value"`
	DisplayValue string `json:"display_value,omitempty"`
}

// RelatedDataEntry describes a joined or included entity.
type RelatedDataEntry struct {
	Entity      string `json:"entity"`
	Description string `json:"description"`
	Type        string `json:"type"` // join, include, lookup
}

// CalculationEntry describes a derived or aggregated field.
type CalculationEntry struct {
	Field       string `json:"field"`
	Description string `json:"description"`
	Formula     string `json:"formula,omitempty"`
	Type        string `json:"type"`
	Example     string `json:"example,omitempty"`
}

// QueryDescription is the plain-English description of a query.
// Details are ordered: filters, sort, row limit, related data, calculations.
type QueryDescription struct {
	Summary   string   `json:"summary"`
	Details   []string `json:"details"`
	Technical string   `json:"technical,omitempty"` // Original input, verbatim
}
