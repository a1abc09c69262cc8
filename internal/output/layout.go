// internal/output/layout.go
package output

import (
	"abnum/internal/clonotype"
	"abnum/internal/record"
	"abnum/internal/scheme"
)

// ChainColumns describes one chain's block of output columns.
type ChainColumns struct {
	Chain    scheme.Chain
	Annotate bool
}

// Layout fixes the column set of a regions table. Downstream consumers key
// on these names, so they are a contract:
//
//	{scheme}_{region}_aa_{chain}, {scheme}_{region}_nt_{chain}, cdrs_annotations_{chain}
type Layout struct {
	Scheme scheme.Scheme
	Chains []ChainColumns
}

func AAColumn(s scheme.Scheme, r scheme.Region, c scheme.Chain) string {
	return s.String() + "_" + r.String() + "_aa_" + c.String()
}

func NTColumn(s scheme.Scheme, r scheme.Region, c scheme.Chain) string {
	return s.String() + "_" + r.String() + "_nt_" + c.String()
}

func AnnotationColumn(c scheme.Chain) string { return "cdrs_annotations_" + c.String() }

// Header returns the column names, key column first.
func (l Layout) Header() []string {
	h := []string{clonotype.KeyColumn}
	for _, cc := range l.Chains {
		for _, r := range scheme.Regions {
			h = append(h, AAColumn(l.Scheme, r, cc.Chain), NTColumn(l.Scheme, r, cc.Chain))
		}
		if cc.Annotate {
			h = append(h, AnnotationColumn(cc.Chain))
		}
	}
	return h
}

// Width is the number of columns in Header.
func (l Layout) Width() int {
	n := 1
	for _, cc := range l.Chains {
		n += 2 * int(scheme.NumRegions)
		if cc.Annotate {
			n++
		}
	}
	return n
}

// Values renders row in Header order. A chain without an alignment for
// this key contributes blanks.
func (l Layout) Values(row record.Row) []string {
	v := make([]string, 0, l.Width())
	v = append(v, row.Key)
	for i, cc := range l.Chains {
		var res record.ChainResult
		if i < len(row.Chains) {
			res = row.Chains[i]
		}
		for _, r := range scheme.Regions {
			if res.Found {
				v = append(v, res.Regions.AA[r], res.Regions.NT[r])
			} else {
				v = append(v, "", "")
			}
		}
		if cc.Annotate {
			v = append(v, res.Annotation())
		}
	}
	return v
}
