/*
Package qmx minimizes fixed-width Boolean functions with an extended
Quine-McCluskey procedure that additionally recognizes XOR and XNOR
structure across bit positions, producing a sum-of-products-with-XOR
cover instead of a pure SOP.

Given the ON-set (the minterms where the function is 1) and an
optional don't-care set, Simplify and SimplifyLOS return a minimal
cover as a set of implicant strings over the alphabet {0, 1, -, ^, ~}:

    result, err := qmx.Simplify([]int{1, 2, 4, 7, 8, 11, 13, 14}, nil, nil, true)
    // result == []string{"^^^^"}   (4-input XOR: odd bit-parity)

The pipeline is: normalize inputs to fixed-width bit-strings
(internal/numin) -> generate prime implicants (package prime, which
uses package xorfuse for its XOR/XNOR seeding pass) -> select
essential implicants (package essential, using package permute to
enumerate coverage) -> pairwise-combine and drop redundant implicants
(package reduce). Package term supplies the bit-string alphabet and
the two scoring functions (complexity, rank) the later stages sort by.

The whole call graph is synchronous and allocates no state that
outlives the call: two calls with identical arguments always return
identical results, including the profile counters exposed by the
...WithProfile variants.
*/
package qmx
