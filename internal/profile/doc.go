// Package profile implements the remap engine.
//
// A Profile turns a raw 32-bit input word into an output word. Input
// positions are 1-based: position n is bit n-1 of the word.
//
//	out = (in & mask) | OR over active mapped inputs k of mapping[k]
//
// The mask starts with every output position set and has the bit of each
// mapped input toggled, so a mapped input never reaches its own output
// position directly; it only contributes the bits it is mapped to.
//
// A Table holds up to nine profiles. Slot 1 is the identity profile and is
// never loaded from the document; slots 2 through 9 come from the profile
// document in order. Tables are built once at boot (Boot, Bind, NewTable)
// and are read-only afterwards, which is what lets two goroutines share one
// without locking.
package profile
