package schema

// Custom string types for type safety.
type (
	// ChangeKind represents how a commit touched a file.
	ChangeKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// OrderMode represents how activities are ordered in the report.
	OrderMode string

	// SignalKind represents the category of an editorial signal.
	SignalKind string
)

// All change kinds produced by git log --name-status. Statuses the parser
// does not special-case (e.g. type changes) fall back to ModifiedKind.
const (
	AddedKind    ChangeKind = "A"
	ModifiedKind ChangeKind = "M"
	DeletedKind  ChangeKind = "D"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	TableOut   OutputMode = "table"
	JSONOut    OutputMode = "json"
	CSVOut     OutputMode = "csv"
	ParquetOut OutputMode = "parquet"
)

// All ordering modes supported.
const (
	NumberOrder   OrderMode = "number" // ascending PEP number, default
	ActivityOrder OrderMode = "activity"
)

// All signal kinds emitted by the detector. Status-transition kinds are
// reserved for a future diff-based detector and are never emitted from a
// single snapshot.
const (
	DeprecationSignal SignalKind = "deprecation"
	NormativeSignal   SignalKind = "normative_language"
)

// Signal weight tiers.
const (
	WeightNone   = 0
	WeightLow    = 10
	WeightMedium = 50
	WeightHigh   = 100
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	TableOut:   {},
	JSONOut:    {},
	CSVOut:     {},
	ParquetOut: {},
}

// ValidOrderModes lists all valid ordering modes.
var ValidOrderModes = map[OrderMode]struct{}{
	NumberOrder:   {},
	ActivityOrder: {},
}
