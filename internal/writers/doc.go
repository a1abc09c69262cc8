// Package writers turns result rows into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSONL, FASTA).
//   • Engine stays domain-only; Pipeline stays orchestration-only.
//   • JSONL goes through pkg/api (v1) for a stable wire format.
package writers
