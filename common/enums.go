// Enumerations shared between configuration, layout engine and command line
// processing. Code for them is produced by go-enum, see enums_enum.go.
package common

//go:generate go tool go-enum --marshal --names --values

// Requested output type.
// ENUM(json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Element id generation scheme.
// ENUM(counter, uuid)
type IDScheme int

// Where image units go relative to text units.
// ENUM(trail, inline)
type ImagePlacement int

// Preferred position for splitting overflowing paragraph.
// ENUM(word, sentence)
type SplitBoundary int
