package reflectcodec

import "fmt"

// Char disambiguates the CDR 8-bit "char" shape (a single ASCII byte)
// from a Go rune or int32, which would otherwise map to CDR's signed
// 32-bit integer shape. Marshal and Unmarshal special-case this type;
// package cdr re-exports it as cdr.Char.
type Char rune

// String satisfies fmt.Stringer so a Char prints as its character
// rather than its numeric value.
func (c Char) String() string { return fmt.Sprintf("%c", rune(c)) }
