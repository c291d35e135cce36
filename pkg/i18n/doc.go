// Package i18n loads message catalogues and renders templates with named
// "%{name}" placeholders.
//
// Catalogues are maps from language code to messages and can be read from YAML
// or JSON files in any fs.FS (including embed.FS), from memory, or stacked so that
// service specific wording overrides a built-in default set:
//
//	translator, err := i18n.NewTranslator(ctx,
//	    i18n.NewLayeredAdapter(
//	        i18n.NewFSAdapter(i18n.NewYAMLParser(), builtin, "messages"),
//	        i18n.NewFSAdapter(i18n.NewYAMLParser(), os.DirFS("/etc/forms"), "."),
//	    ),
//	    i18n.WithDefaultLanguage("en"),
//	)
//
//	translator.T("en", "required", "name", "your name") // "Enter your name"
//
// Lookups fall back from the requested language to the default language, and
// then to the key itself unless WithFallbackToKey(false) is set.
//
// Middleware negotiates the request language from a "lang" query parameter or
// the Accept-Language header, using the golang.org/x/text language matcher.
package i18n
