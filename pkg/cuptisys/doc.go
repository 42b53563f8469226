// Package cuptisys holds raw declarations for the CUPTI C API.
//
// The declarations in zz_cupti_gen.go are produced by xtask regenerate and
// must not be edited by hand. Function variables are nil until
// RegisterFunctions binds them to a loaded libcupti; package cupti does that.
package cuptisys

//go:generate go run github.com/samcharles93/cupti/cmd/xtask regenerate -o zz_cupti_gen.go /usr/local/cuda/include/cupti.h -- -I/usr/local/cuda/include
//go:generate go run github.com/samcharles93/cupti/cmd/cuptilocate -abi gnu -format cgo -tags cupti_link -o zz_link_gen.go
