// internal/cdrcode/encode.go
package cdrcode

import (
	"fmt"
	"sort"
	"strings"

	"abnum/internal/engine"
	"abnum/internal/scheme"
)

// Segment is one CDR location in ungapped residue coordinates.
type Segment struct {
	Code   string
	Region scheme.Region
	Start  int
	Length int
}

// String renders "code:start+length" with base-36 numbers.
func (s Segment) String() string {
	return s.Code + ":" + Base36(s.Start) + "+" + Base36(s.Length)
}

// Encode converts CDR spans over the aligned string (gaps as '-') into
// ungapped segments, sorted by start. CDRs without a code or span, or that
// are all gaps, are skipped; repeated (code, start, length) triples collapse.
func Encode(aligned string, b engine.Bounds, m Mapping) []Segment {
	if aligned == "" || m.Empty() {
		return nil
	}
	type key struct {
		code          string
		start, length int
	}
	seen := map[key]struct{}{}

	var segs []Segment
	for _, r := range scheme.CDRs {
		code, ok := m.Code(r)
		span := b.Of(r)
		if !ok || !span.OK {
			continue
		}
		start, end := clamp(span.Start, len(aligned)), clamp(span.End, len(aligned))
		gapsBefore := strings.Count(aligned[:start], "-")
		gapsIn := 0
		if end > start {
			gapsIn = strings.Count(aligned[start:end], "-")
		}
		uStart := span.Start - gapsBefore
		uLen := (span.End - span.Start) - gapsIn
		if uLen <= 0 {
			continue
		}
		k := key{code, uStart, uLen}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		segs = append(segs, Segment{Code: code, Region: r, Start: uStart, Length: uLen})
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })
	return segs
}

// Format joins segments with '|'. No segments → "".
func Format(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, "|")
}

// Annotate is Encode followed by Format.
func Annotate(aligned string, b engine.Bounds, m Mapping) string {
	return Format(Encode(aligned, b, m))
}

// ParseAnnotation splits a formatted annotation back into segments. Region
// is left zero; the code alone identifies the CDR downstream.
func ParseAnnotation(s string) ([]Segment, error) {
	if s == "" {
		return nil, nil
	}
	var out []Segment
	for _, part := range strings.Split(s, "|") {
		i := strings.LastIndexByte(part, ':')
		if i < 0 {
			return nil, fmt.Errorf("segment %q: missing ':'", part)
		}
		startS, lenS, ok := strings.Cut(part[i+1:], "+")
		if !ok {
			return nil, fmt.Errorf("segment %q: missing '+'", part)
		}
		start, err := ParseBase36(startS)
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", part, err)
		}
		length, err := ParseBase36(lenS)
		if err != nil {
			return nil, fmt.Errorf("segment %q: %w", part, err)
		}
		out = append(out, Segment{Code: part[:i], Start: start, Length: length})
	}
	return out, nil
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
