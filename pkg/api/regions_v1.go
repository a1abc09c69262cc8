// pkg/api/regions_v1.go
package api

// RegionRowV1 is the stable JSON/JSONL schema for one clonotype's regions.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RegionRowV1 struct {
	ClonotypeKey string           `json:"clonotype_key"`
	Scheme       string           `json:"scheme"` // "imgt" | "kabat" | "chothia"
	Chains       []ChainRegionsV1 `json:"chains"`
}

// ChainRegionsV1 carries one chain's regions in FR1..FR4 order.
type ChainRegionsV1 struct {
	Chain   string     `json:"chain"` // "H" | "KL"
	Found   bool       `json:"found"`
	Regions []RegionV1 `json:"regions,omitempty"`

	// CDR annotation; only present when a mapping was supplied for the chain.
	CDRAnnotation string      `json:"cdrs_annotation,omitempty"`
	CDRSegments   []SegmentV1 `json:"cdr_segments,omitempty"`
}

// RegionV1 is one region's amino-acid and nucleotide fragment.
type RegionV1 struct {
	Region string `json:"region"`
	AA     string `json:"aa"`
	NT     string `json:"nt"`
}

// SegmentV1 is a decoded CDR annotation segment (ungapped coordinates).
type SegmentV1 struct {
	Code   string `json:"code"`
	Region string `json:"region"`
	Start  int    `json:"start"`
	Length int    `json:"length"`
}
