// internal/scheme/scheme.go
package scheme

import (
	"fmt"
	"strings"
)

// Scheme is a residue numbering convention.
type Scheme int

const (
	IMGT Scheme = iota
	Kabat
	Chothia
	numSchemes
)

// Chain is the chain grouping a boundary table applies to.
type Chain int

const (
	Heavy Chain = iota // "H"
	Light              // "KL": kappa and lambda share one table
	numChains
)

// Region is one of the seven canonical variable-region segments.
type Region int

const (
	FR1 Region = iota
	CDR1
	FR2
	CDR2
	FR3
	CDR3
	FR4
	NumRegions
)

// Regions lists every region in declaration order.
var Regions = [NumRegions]Region{FR1, CDR1, FR2, CDR2, FR3, CDR3, FR4}

// CDRs lists the complementarity-determining regions in order.
var CDRs = [3]Region{CDR1, CDR2, CDR3}

// Chains lists the supported chain groupings in output order.
var Chains = [numChains]Chain{Heavy, Light}

var (
	schemeNames = [numSchemes]string{"imgt", "kabat", "chothia"}
	chainNames  = [numChains]string{"H", "KL"}
	regionNames = [NumRegions]string{"FR1", "CDR1", "FR2", "CDR2", "FR3", "CDR3", "FR4"}
)

func (s Scheme) String() string {
	if s < 0 || s >= numSchemes {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

func (c Chain) String() string {
	if c < 0 || c >= numChains {
		return fmt.Sprintf("Chain(%d)", int(c))
	}
	return chainNames[c]
}

func (r Region) String() string {
	if r < 0 || r >= NumRegions {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

// IsCDR reports whether r is CDR1, CDR2 or CDR3.
func (r Region) IsCDR() bool { return r == CDR1 || r == CDR2 || r == CDR3 }

// ParseScheme accepts a case-insensitive scheme name.
func ParseScheme(name string) (Scheme, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range schemeNames {
		if s == n {
			return Scheme(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported numbering scheme %q (want imgt | kabat | chothia)", name)
}

// ParseChain accepts "H" or "KL" (case-insensitive).
func ParseChain(name string) (Chain, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, c := range chainNames {
		if c == n {
			return Chain(i), nil
		}
	}
	return 0, fmt.Errorf("unsupported chain %q (want H | KL)", name)
}

// ParseRegion accepts a case-insensitive region name such as "cdr3".
func ParseRegion(name string) (Region, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, r := range regionNames {
		if r == n {
			return Region(i), true
		}
	}
	return 0, false
}

// SchemeNames returns the accepted scheme names.
func SchemeNames() []string { return append([]string(nil), schemeNames[:]...) }
