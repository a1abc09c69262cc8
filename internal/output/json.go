// internal/output/json.go
package output

import (
	"abnum/internal/record"
	"abnum/internal/scheme"
	"abnum/pkg/api"
)

// ToAPIRow converts a domain Row to the stable wire schema (v1).
func (l Layout) ToAPIRow(row record.Row) api.RegionRowV1 {
	v := api.RegionRowV1{
		ClonotypeKey: row.Key,
		Scheme:       l.Scheme.String(),
		Chains:       make([]api.ChainRegionsV1, 0, len(l.Chains)),
	}
	for i, cc := range l.Chains {
		var res record.ChainResult
		if i < len(row.Chains) {
			res = row.Chains[i]
		}
		ch := api.ChainRegionsV1{Chain: cc.Chain.String(), Found: res.Found}
		if res.Found {
			ch.Regions = make([]api.RegionV1, 0, scheme.NumRegions)
			for _, r := range scheme.Regions {
				ch.Regions = append(ch.Regions, api.RegionV1{
					Region: r.String(),
					AA:     res.Regions.AA[r],
					NT:     res.Regions.NT[r],
				})
			}
		}
		if cc.Annotate {
			ch.CDRAnnotation = res.Annotation()
			for _, s := range res.Segments {
				ch.CDRSegments = append(ch.CDRSegments, api.SegmentV1{
					Code: s.Code, Region: s.Region.String(), Start: s.Start, Length: s.Length,
				})
			}
		}
		v.Chains = append(v.Chains, ch)
	}
	return v
}
