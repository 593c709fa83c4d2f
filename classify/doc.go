// Package classify assigns heading levels (H1 through H4) to text blocks
// using typographic and geometric evidence only.
//
// Classification runs in three steps per document:
//
//  1. Thresholds: a font-size histogram determines the body text size and
//     a descending ladder of per-level size cutoffs. The ladder is derived
//     from the sizes actually used in the document, so a deck built in
//     14pt body text and a paper in 9pt both classify sensibly.
//  2. Features: each block gets its layout context relative to its page
//     and vertical neighbours (centering, gaps, indent, caps, counts).
//  3. Scoring: each candidate level receives a weighted score from the
//     block's evidence; prefix patterns ("2.1", "Chapter 3", "(a)") add a
//     strong boost to the level they imply. The best-scoring level wins,
//     senior levels win ties, and a score that fails to clear the level's
//     confidence floor leaves the block as body text.
//
// All weights, multipliers, and floors live in Config and can be overridden
// from YAML, so tuning never requires a code change.
//
// Everything here is deterministic and free of I/O: identical blocks in
// produce identical levels out.
package classify
