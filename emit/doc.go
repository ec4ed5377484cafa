// Package emit writes the results of a kernel build description: the
// version=, ktype= and frag= lines for the CI step output file, and the
// KEY=value fragment under frags/.
//
// NewModule wires loading and emitting into an Fx app; Emitter and the
// Write functions can be used on their own.
package emit
