// Package writers turns alignments and trees into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (ClustalW blocks, Newick text).
//   - The alignment and clustering packages stay domain-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
