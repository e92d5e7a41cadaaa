/*
Package prime generates prime implicants from a set of minterms and
don't-cares, extending the classic Quine-McCluskey grouping loop with
two extra merge axes: XOR pairing and XNOR pairing, alongside the
usual adjacency (single-bit-difference) merge.

Terms are grouped by the triple (n_ones, n_xor, n_xnor) rather than
just n_ones, since a term can only combine with a term one '1' away:
by adjacency with a term carrying the same parity markers, or, for a
parity-marked term, with a term one bit over whose '^' and '~' counts
are swapped (XOR with XNOR-marked terms and vice versa), since
flipping one bit while swapping '^' and '~' preserves the covered set.

The loop repeats grouping, merging, and re-marking until a full pass
produces no merges; every term that survives a pass unmerged is
prime. When use_xor is set, a one-shot seeding pass first looks for
"simple" two-bit XOR/XNOR fusions (see package xorfuse) before the
main loop begins, since those can't otherwise be discovered by the
adjacency-based grouping alone.
*/
package prime
