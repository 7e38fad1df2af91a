package nfp

import "errors"

// ErrNFPEmpty indicates both convolution and orbital tracing produced no
// usable boundary for the given pair of polygons; the caller should treat
// the pair as unplaceable at this rotation.
var ErrNFPEmpty = errors.New("nfp: no fit polygon is empty")

// ErrNFPDegenerate names a rejection of the inputs by the degeneracy
// gate (near-zero area, a too-thin bounding box, or near-total
// collinearity). Compute does not return it: inputs that fail the gate
// go to orbital tracing, and a failure there is reported as ErrNFPEmpty.
var ErrNFPDegenerate = errors.New("nfp: inputs rejected by degeneracy gate")
