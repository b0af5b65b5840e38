package schema

// Custom string types for type safety.
type (
	// Party represents the registered party of a respondent.
	Party string

	// OutputMode represents the format of the output.
	OutputMode string

	// ColumnName represents a categorical column of the survey dataset.
	ColumnName string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All parties supported. Rows with any other party value are dropped on load.
const (
	Democrat   Party = "democrat"
	Republican Party = "republican"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All categorical columns of the survey dataset.
const (
	PartyColumn      ColumnName = "party"
	DifficultyColumn ColumnName = "voting_difficulty"
	ReasonColumn     ColumnName = "presumed_reason"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllParties returns the fixed party enumeration in display order.
var AllParties = []Party{Democrat, Republican}

// ValidParties lists all valid party values.
var ValidParties = map[Party]struct{}{
	Democrat:   {},
	Republican: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid run store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Column describes a categorical column of the dataset, including whether
// its values carry a total order. Ordering operations must check Ordered
// before comparing values.
type Column struct {
	Name    ColumnName
	Ordered bool
}

// Columns of the cleaned survey table, keyed by name.
var (
	PartyCol      = Column{Name: PartyColumn, Ordered: false}
	DifficultyCol = Column{Name: DifficultyColumn, Ordered: true}
	ReasonCol     = Column{Name: ReasonColumn, Ordered: false}
)

// ColumnByName resolves a column name to its metadata.
func ColumnByName(name ColumnName) (Column, bool) {
	switch name {
	case PartyColumn:
		return PartyCol, true
	case DifficultyColumn:
		return DifficultyCol, true
	case ReasonColumn:
		return ReasonCol, true
	default:
		return Column{}, false
	}
}
