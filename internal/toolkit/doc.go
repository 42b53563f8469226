// Package toolkit finds where a CUDA toolkit keeps libcupti.
//
// Locate builds an additive, order-significant list of candidate library
// directories from the CUDA_HOME, CUDA_PATH and CUDA_ROOT variables and the
// conventional /usr/local/cuda prefix. It never touches the filesystem: the
// linker picks the first candidate that actually holds the library, so a
// missing toolkit surfaces at link time rather than here.
//
// Probe is the precise counterpart: it checks the candidates on disk and
// returns the first directory containing the library.
package toolkit
