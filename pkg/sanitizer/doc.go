// Package sanitizer normalises raw form answers before they are validated and
// formats values for display in error messages.
//
// # Input normalisation
//
// Submitted answers arrive as free text. The helpers here remove presentation
// characters users commonly type:
//
//	sanitizer.StripCurrencySymbol("£1,250.00") // "1,250.00"
//	sanitizer.StripCommas("1,250.00")          // "1250.00"
//	sanitizer.ZeroPad("7")                     // "07"
//	sanitizer.RemoveSpaces("AB 12 34 56 C")    // "AB123456C"
//
// Transforms can be chained with Apply or stored as reusable pipelines with
// Compose. Named transforms (see Lookup) let serialised page definitions refer to
// them by string.
//
// # Display
//
// CurrencyDisplay renders an amount in pounds with thousands grouping, using the
// British English number printer from golang.org/x/text:
//
//	sanitizer.CurrencyDisplay(2345)       // "£2,345"
//	sanitizer.CurrencyDisplay("234443.4") // "£234,443.40"
//
// All functions are pure and safe for concurrent use.
package sanitizer
