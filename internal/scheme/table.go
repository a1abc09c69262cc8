// internal/scheme/table.go
package scheme

// Range is an inclusive span of position numbers.
type Range struct {
	Start int
	End   int
}

// Contains reports whether n lies in [Start, End].
func (r Range) Contains(n int) bool { return r.Start <= n && n <= r.End }

// Table holds the boundaries of all seven regions for one scheme and chain.
type Table [NumRegions]Range

// RegionFor returns the region whose range contains n. Ranges never overlap,
// so the first match in declaration order is the only one.
func (t Table) RegionFor(n int) (Region, bool) {
	for _, r := range Regions {
		if t[r].Contains(n) {
			return r, true
		}
	}
	return 0, false
}

var imgt = Table{
	FR1:  {1, 26},
	CDR1: {27, 38},
	FR2:  {39, 55},
	CDR2: {56, 65},
	FR3:  {66, 104},
	CDR3: {105, 117},
	FR4:  {118, 129},
}

var kabatLight = Table{
	FR1:  {1, 23},
	CDR1: {24, 34},
	FR2:  {35, 49},
	CDR2: {50, 56},
	FR3:  {57, 88},
	CDR3: {89, 97},
	FR4:  {98, 107},
}

var boundaries = [numSchemes][numChains]Table{
	IMGT: {
		Heavy: imgt,
		Light: imgt,
	},
	Kabat: {
		Heavy: {
			FR1:  {1, 30},
			CDR1: {31, 35},
			FR2:  {36, 49},
			CDR2: {50, 65},
			FR3:  {66, 94},
			CDR3: {95, 102},
			FR4:  {103, 113},
		},
		Light: kabatLight,
	},
	Chothia: {
		Heavy: {
			FR1:  {1, 25},
			CDR1: {26, 32},
			FR2:  {33, 52},
			CDR2: {53, 55},
			FR3:  {56, 94},
			CDR3: {95, 102},
			FR4:  {103, 113},
		},
		Light: kabatLight,
	},
}

// Lookup returns the boundary table for (s, c). Both values must come from
// the declared constants; ParseScheme and ParseChain guard the CLI boundary.
func Lookup(s Scheme, c Chain) Table { return boundaries[s][c] }
