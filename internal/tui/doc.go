// Package tui is the terminal front end: a parameter [Form] and a [Player]
// that animates a precomputed run, tied together by [App].
//
// # Key Bindings
//
//	Form:   ↑/↓ tab  move between fields
//	        enter    next field, or start from the last field
//	        ctrl+s   start from any field
//	        esc      quit
//	Player: q esc    close the animation and return to the form
//	        ctrl+c   quit
package tui
