package kconfig

import (
	"strings"
)

// FragmentDir is the directory, relative to the working directory, that
// holds generated fragments. It is never created by this package.
const FragmentDir = "frags"

// FragmentExt is appended to every fragment name.
const FragmentExt = ".config"

// FragmentPath derives the fragment path for the build description at
// inputPath: the final "/"-separated segment loses its last "."-separated
// component and is placed under FragmentDir with FragmentExt.
//
//	configs/x86_64.yaml -> frags/x86_64.config
//	a.b.yaml            -> frags/a.b.config
//	noext               -> frags/.config
//
// The result always uses forward slashes and is the value reported as frag=.
func FragmentPath(inputPath string) string {
	base := inputPath
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}

	parts := strings.Split(base, ".")
	name := strings.Join(parts[:len(parts)-1], ".")

	return FragmentDir + "/" + name + FragmentExt
}
