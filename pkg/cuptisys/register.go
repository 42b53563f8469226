//go:build darwin || freebsd || linux

package cuptisys

import "github.com/ebitengine/purego"

// RegisterFunctions binds every entry of Functions that lib exports and
// returns the symbols it does not. Older libraries lack newer entry points;
// their variables stay nil.
func RegisterFunctions(lib uintptr) []string {
	var missing []string
	for _, fn := range Functions {
		sym, err := purego.Dlsym(lib, fn.Name)
		if err != nil || sym == 0 {
			missing = append(missing, fn.Name)
			continue
		}
		purego.RegisterFunc(fn.Ptr, sym)
	}
	return missing
}
