// internal/output/formats.go
package output

// Output formats accepted by --output.
const (
	FormatTSV    = "tsv"
	FormatJSONL  = "jsonl"
	FormatSQLite = "sqlite"
	FormatFASTA  = "fasta"
)

// RegionFormats lists the formats the regions tool can emit.
var RegionFormats = []string{FormatTSV, FormatJSONL, FormatSQLite}
