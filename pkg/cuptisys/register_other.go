//go:build !(darwin || freebsd || linux)

package cuptisys

// RegisterFunctions binds nothing on this platform.
func RegisterFunctions(lib uintptr) []string {
	missing := make([]string, 0, len(Functions))
	for _, fn := range Functions {
		missing = append(missing, fn.Name)
	}
	return missing
}
