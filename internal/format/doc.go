// Package format implements the filename template mini-language used by
// tagrename.
//
// A template is a flat string mixing literal text with %field references:
//
//	"%track %artist - %title"
//
// The recognized fields are album, artist, title, track and year. There
// are no conditionals, no escaping and no nesting; a template compiles
// into an ordered sequence of literal spans and field references which
// is then rendered against the metadata of each input file.
//
// # Compiling
//
//	f, err := format.Compile("%artist - %title")
//	if err != nil {
//	    // template references an unknown field
//	}
//
// A compiled Format is immutable and can be reused across any number of
// files, including concurrently.
//
// # Rendering
//
//	name, err := f.Render(record)
//	// name == "Boards of Canada - Roygbiv"
//
// Render fails fast with a MissingFieldError when the record has no
// value for a referenced field; no partial output is ever returned.
//
// # Isolated percent signs
//
// A '%' not followed by a lowercase ASCII letter is not a field
// reference and passes through as literal text, so "100% %title" and
// "%%title" are both valid templates. This rule means every template
// compiles into a full partition of its characters: nothing is skipped
// and nothing is consumed twice.
package format
