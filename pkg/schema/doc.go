// Package schema loads page definitions from YAML or JSON documents.
//
// Documents are checked against an embedded JSON Schema (draft 7) before they
// are built into gdsvalidation pages, so misspelt properties and wrongly typed
// values are reported with their location:
//
//	pages:
//	  - key: about-you
//	    fields:
//	      - key: dob
//	        type: date
//	        name: your date of birth
//	        max: {today: {years: -16}}
//	      - key: rent
//	        type: currency
//	        name: your rent
//	        maxCurrencyFrom: income
//	        errors:
//	          currencyMaxField: "%{Name} cannot be more than %{max}"
//
// Bounds are numbers, numeric or ISO date strings, field references (a bare
// key or {field: key}) or dates relative to today. Transforms are named
// sanitizer pipelines, and includeIf takes a declarative condition built from
// equals, present and truthy tests combined with all, any and not.
//
// Lint reports definitions that load but cannot behave as intended.
package schema
