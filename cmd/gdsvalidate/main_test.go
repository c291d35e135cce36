package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gdsvalidation "github.com/nubz/gds-validation"
)

const detailsYAML = `
pages:
  - key: details
    fields:
      - key: name
        name: your name
      - key: dob
        type: date
        name: your date of birth
        beforeToday: true
  - key: extra
    fields:
      - key: colour
        type: enum
        name: a colour
        validValues: [red, blue]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func clearEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	clearEnv(t, "GDS_SCHEMA", "GDS_LANG", "GDS_MESSAGES", "GDS_ENV", "GDS_LOG_LEVEL")
	var out, errOut bytes.Buffer
	err := newCommand(&out, &errOut).Run(context.Background(), append([]string{"gdsvalidate"}, args...))
	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "pages.yaml", detailsYAML)

	t.Run("invalid payload", func(t *testing.T) {
		payload := writeFile(t, dir, "bad.json", `{"dob": "2030-01-01"}`)
		out, err := run(t, "--schema", schemaPath, "check", "--page", "details", "--today", "2024-03-10", payload)
		require.ErrorIs(t, err, errPayloadInvalid)

		var report gdsvalidation.Report
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		require.Len(t, report.Summary, 2)
		assert.Equal(t, "Enter your name", report.Summary[0].Text)
		assert.Equal(t, "Your date of birth must be before today", report.Summary[1].Text)
	})

	t.Run("today override", func(t *testing.T) {
		payload := writeFile(t, dir, "later.yaml", "name: Ann\ndob-day: 1\ndob-month: 1\ndob-year: 2030\n")
		out, err := run(t, "--schema", schemaPath, "check", "--page", "details", "--today", "2031-01-01", payload)
		require.NoError(t, err)
		assert.Contains(t, out, `"hasErrors": false`)
	})

	t.Run("all pages", func(t *testing.T) {
		payload := writeFile(t, dir, "all.json", `{"name": "Ann", "dob": "1990-05-01", "colour": "green"}`)
		out, err := run(t, "--schema", schemaPath, "check", payload)
		require.ErrorIs(t, err, errPayloadInvalid)

		var reports map[string]gdsvalidation.Report
		require.NoError(t, json.Unmarshal([]byte(out), &reports))
		assert.False(t, reports["details"].HasErrors)
		require.True(t, reports["extra"].HasErrors)
		assert.Equal(t, "#colour-red", reports["extra"].Summary[0].Href)
	})

	t.Run("unknown page", func(t *testing.T) {
		payload := writeFile(t, dir, "empty.json", `{}`)
		_, err := run(t, "--schema", schemaPath, "check", "--page", "nope", payload)
		assert.ErrorIs(t, err, gdsvalidation.ErrPageNotFound)
	})

	t.Run("bad today", func(t *testing.T) {
		_, err := run(t, "--schema", schemaPath, "check", "--today", "10/03/2024", "x.json")
		assert.ErrorContains(t, err, "invalid --today")
	})

	t.Run("schema from environment", func(t *testing.T) {
		payload := writeFile(t, dir, "ok.json", `{"name": "Ann", "dob": "1990-05-01"}`)
		clearEnv(t, "GDS_LANG", "GDS_MESSAGES", "GDS_ENV", "GDS_LOG_LEVEL")
		t.Setenv("GDS_SCHEMA", schemaPath)
		var out bytes.Buffer
		err := newCommand(&out, &bytes.Buffer{}).Run(context.Background(),
			[]string{"gdsvalidate", "check", "--page", "details", payload})
		require.NoError(t, err)
		assert.Contains(t, out.String(), `"hasErrors": false`)
	})

	t.Run("no schema", func(t *testing.T) {
		payload := writeFile(t, dir, "none.json", `{}`)
		_, err := run(t, "check", payload)
		assert.ErrorIs(t, err, errNoSchema)
	})
}

func TestCheckWithMessages(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "pages.yaml", detailsYAML)
	payload := writeFile(t, dir, "payload.json", `{"dob": "1990-05-01"}`)

	messages := filepath.Join(dir, "messages")
	require.NoError(t, os.Mkdir(messages, 0o700))
	writeFile(t, messages, "cy.yaml", "cy:\n  required: \"Rhowch %{name}\"\n")

	out, err := run(t, "--schema", schemaPath, "--messages", messages, "--lang", "cy", "check", "--page", "details", payload)
	require.ErrorIs(t, err, errPayloadInvalid)
	assert.Contains(t, out, "Rhowch your name")
}

func TestLint(t *testing.T) {
	dir := t.TempDir()

	t.Run("clean", func(t *testing.T) {
		out, err := run(t, "--schema", writeFile(t, dir, "clean.yaml", detailsYAML), "lint")
		require.NoError(t, err)
		assert.Contains(t, out, "2 pages, no issues")
	})

	t.Run("errors", func(t *testing.T) {
		path := writeFile(t, dir, "broken.json",
			`{"pages":[{"key":"p","fields":[{"key":"c","type":"enum","name":"a colour"}]}]}`)
		out, err := run(t, "--schema", path, "lint")
		assert.ErrorIs(t, err, errLintFailed)
		assert.Contains(t, out, "error: p.c: enum without validValues rejects every answer")

		out, err = run(t, "--schema", path, "lint", "--json")
		assert.ErrorIs(t, err, errLintFailed)
		assert.JSONEq(t, `[{"page":"p","field":"c","severity":"error","message":"enum without validValues rejects every answer"}]`, out)
	})

	t.Run("definition errors", func(t *testing.T) {
		path := writeFile(t, dir, "typo.yaml", "pages:\n  - key: p\n    fields:\n      - key: a\n        maxLenght: 3\n")
		_, err := run(t, "--schema", path, "lint")
		assert.ErrorContains(t, err, "maxLenght")
	})
}

func TestDefinitionSchemaCommand(t *testing.T) {
	out, err := run(t, "definition-schema")
	require.NoError(t, err)
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Contains(t, v, "definitions")
}
