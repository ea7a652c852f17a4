// Package grad implements the backward pass of the fake-quantization ops.
//
// Forward quantization maps a real tensor onto a fixed integer grid
// defined by a bit width and a learnable (min, max) encoding range. The
// round/clip step of that map is non-differentiable, so training uses a
// straight-through estimator: the gradient w.r.t. the input passes through
// unchanged wherever the rounded value stayed inside the grid and is
// zeroed where it clipped. The gradients w.r.t. the encoding boundaries
// are computed in closed form, enabling range-learning quantization-aware
// training.
//
// Each quantize op variant has one pure gradient function; hosts dispatch
// through the OpKind table in registry.go. Every function allocates only
// local temporaries and freshly returned tensors, so concurrent backward
// passes over shared inputs are safe.
package grad
