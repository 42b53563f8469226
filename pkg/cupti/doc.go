// Package cupti loads libcupti at run time and exposes a small, checked
// surface over the raw declarations in package cuptisys.
//
//	lib, err := cupti.Open(cupti.Options{})
//	if err != nil {
//		return err
//	}
//	prof, err := lib.InitializeProfiler()
//	if err != nil {
//		return err
//	}
//	defer prof.Close()
package cupti
