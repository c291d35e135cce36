package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("i18n: adapter is nil")
	ErrEmptyLanguageCode    = errors.New("i18n: empty language code")
	ErrNoTranslations       = errors.New("i18n: no translations found")
	ErrUnsupportedExtension = errors.New("i18n: unsupported catalogue file extension")

	ErrParsingCancelled  = errors.New("i18n: parsing cancelled")
	ErrFailedToParseYAML = errors.New("i18n: failed to parse YAML content")
	ErrFailedToParseJSON = errors.New("i18n: failed to parse JSON content")

	ErrLoadingCancelled  = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadDir   = errors.New("i18n: failed to read catalogue directory")
	ErrFailedToReadFile  = errors.New("i18n: failed to read catalogue file")
	ErrFailedToParseFile = errors.New("i18n: failed to parse catalogue file")
)
