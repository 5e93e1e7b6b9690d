package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

func TestParseFile(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
name: "Test Menu"
description: "Sample menu for parser tests"
settings:
  corners: all
  animation: 100ms
components:
  - title: Colors
    rows:
      - title: Red
      - title: Green
        selected: true
  - title: Shapes
    width: 12
    rows:
      - title: Circle
`

	invalidYAML := `version: [1, 0]
name: "Broken"
components:
  - title: missing
`

	missingRequired := `version: "1.0"
name: "No Components"
`

	badVersion := `version: "beta"
name: "Bad Version"
components:
  - title: One
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Test Menu", doc.Name)
				require.Len(t, doc.Components, 2)
				require.Equal(t, "Green", doc.Components[0].Rows[1].Title)
				require.True(t, doc.Components[0].Rows[1].Selected)
				require.Equal(t, 12, doc.Components[1].Width)
				require.True(t, doc.Components[1].IsEnabled())
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				require.Nil(t, doc)
				var parseErr *dmerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "missing required fields returns validation error",
			contents: missingRequired,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var validationErr *dmerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "components")
			},
		},
		{
			name:     "version must follow major.minor",
			contents: badVersion,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var validationErr *dmerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempDocument(t, tc.contents)
			doc, err := ParseFile(path)
			tc.assert(t, doc, err)
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *dmerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func writeTempDocument(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
