// Package slug turns free text into tokens that are safe to use as HTML element
// ids and URL fragments.
//
// Error summaries link to the input in error. For radio and checkbox groups the
// first option's id is derived from the field key and the slug of the option
// value, so both sides must agree on the same transformation:
//
//	slug.Make("Option A")                                   // "option-a"
//	slug.Make("test-----multiple-hyphens in a string!")     // "test-multiple-hyphens-in-a-string"
//	slug.Make("Crème brûlée")                               // "creme-brulee"
//	slug.Make("Hello World", slug.Separator("_"))           // "hello_world"
//
// Word characters are ASCII letters, digits and underscore. Accented Latin letters
// are folded to their base letter using Unicode decomposition from
// golang.org/x/text before the word test is applied.
package slug
