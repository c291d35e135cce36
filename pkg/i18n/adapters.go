package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"sort"
)

// TranslationAdapter loads translations keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations held in memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every catalogue file in dir that its parser understands.
// It works with embed.FS as well as os.DirFS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	// Directory order decides which file wins when two define the same key.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			continue
		}

		parsed, err := a.parser.Parse(ctx, content)
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}
		merge(all, parsed)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslations, a.dir)
	}
	return all, nil
}

// LayeredAdapter loads each adapter in turn; keys from later layers override
// earlier ones, so user catalogues can be stacked on built-in defaults.
type LayeredAdapter struct {
	layers []TranslationAdapter
}

func NewLayeredAdapter(layers ...TranslationAdapter) *LayeredAdapter {
	return &LayeredAdapter{layers: layers}
}

func (a *LayeredAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, layer := range a.layers {
		if layer == nil {
			continue
		}
		loaded, err := layer.Load(ctx)
		if err != nil {
			return nil, err
		}
		merge(all, loaded)
	}
	return all, nil
}

func merge(dst, src map[string]map[string]any) {
	for lang, messages := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(messages))
		}
		maps.Copy(dst[lang], messages)
	}
}
