// Package genetic implements the population-based meta-heuristic that
// searches over part orderings and per-part rotation choices: a genome
// is (ordering, rotations); selection is rank-weighted, crossover is
// order-preserving (OX1), mutation resamples individual gene slots, and
// one elite individual survives each generation unchanged.
//
// Determinism is a first-class requirement here: every RNG stream is
// derived from the seed set by WithSeed via a SplitMix64 stream-derivation
// technique, so two runs with the same seed produce byte-identical
// genomes at every generation.
//
// Complexity: O(n) per mutation pass and O(n) per OX1 crossover, where n
// is the number of part slots; a generation step is O(popSize * n).
package genetic
