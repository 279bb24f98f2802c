package domain

// EntityType names the kind of node in the content tree.
type EntityType string

const (
	EntityTypeCategory EntityType = "category"
	EntityTypeDeck     EntityType = "deck"
	EntityTypeCard     EntityType = "card"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCategory, EntityTypeDeck, EntityTypeCard:
		return true
	}
	return false
}

// ExportFormat is a portable deck file format.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatCSV  ExportFormat = "csv"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatCSV:
		return true
	}
	return false
}

// Extension returns the file extension for the format, including the dot.
func (f ExportFormat) Extension() string { return "." + string(f) }

// Media schema versions stored per card.
//   - MediaVersionLegacy: single image blob per side and absolute audio paths.
//   - MediaVersionCurrent: JSON arrays of bare filenames.
const (
	MediaVersionLegacy  = 1
	MediaVersionCurrent = 2
)
