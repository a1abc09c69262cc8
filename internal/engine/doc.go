// Package engine contains the region extraction core. It never imports
// pipeline, output, writers, cli, or app; keep it domain-only.
//
// External outputs must not depend on the internal shape here; use pkg/api
// for stable wire types (JSONL v1).
package engine
