// Package eq implements a three-stage equalizer signal path:
// a Butterworth low-cut cascade, an RBJ peak (bell) section and a
// Butterworth high-cut cascade, applied in that fixed order.
//
// A [Processor] owns one [Chain] per channel. At the start of every block it
// reads a [Snapshot] from its [SnapshotSource], derives the coefficients of
// all three stages and pushes them into every chain before any sample of the
// block is rendered. The per-block path never allocates, locks or logs.
package eq
