// internal/cdrcode/mapping.go
package cdrcode

import (
	"strings"

	"gopkg.in/yaml.v3"

	"abnum/internal/scheme"
)

// Mapping assigns at most one annotation code to each CDR.
type Mapping struct {
	codes [3]string
	set   [3]bool
}

// Code returns the code assigned to r, if any.
func (m Mapping) Code(r scheme.Region) (string, bool) {
	i := cdrIndex(r)
	if i < 0 || !m.set[i] {
		return "", false
	}
	return m.codes[i], true
}

// Empty reports whether no CDR has a code.
func (m Mapping) Empty() bool { return !m.set[0] && !m.set[1] && !m.set[2] }

// Set assigns code to r unless r already has one. It reports whether the
// code was taken.
func (m *Mapping) Set(r scheme.Region, code string) bool {
	i := cdrIndex(r)
	if i < 0 || m.set[i] {
		return false
	}
	m.codes[i], m.set[i] = code, true
	return true
}

// ParseMapping reads a code→region object written as JSON or YAML, e.g.
// {"a": "CDR1", "b": "cdr3"}. Entries are taken in document order and the
// first code naming a region wins.
//
// ok is false when raw is not a non-empty object; callers treat that as no
// mapping at all. An object that names no CDR is still ok and yields an
// empty Mapping.
func ParseMapping(raw []byte) (m Mapping, ok bool) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return m, false
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return m, false
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return m, false
	}
	obj := doc.Content[0]
	if obj.Kind != yaml.MappingNode || len(obj.Content) == 0 {
		return m, false
	}
	for i := 0; i+1 < len(obj.Content); i += 2 {
		k, v := obj.Content[i], obj.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			continue
		}
		r, isRegion := scheme.ParseRegion(v.Value)
		if !isRegion || !r.IsCDR() {
			continue
		}
		m.Set(r, k.Value)
	}
	return m, true
}

func cdrIndex(r scheme.Region) int {
	for i, c := range scheme.CDRs {
		if c == r {
			return i
		}
	}
	return -1
}
