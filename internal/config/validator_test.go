package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

func validDocument() *Document {
	return &Document{
		Version: "1.0",
		Name:    "Valid",
		Components: []Component{
			{Title: "Colors", Rows: []Row{{Title: "Red"}, {Title: "Blue"}}},
			{Title: "Shapes", Rows: []Row{{Title: "Square"}}},
		},
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	ptr := func(f float64) *float64 { return &f }

	cases := []struct {
		name      string
		mutate    func(d *Document)
		wantField string
	}{
		{name: "valid document", mutate: func(*Document) {}},
		{
			name:      "duplicate titles",
			mutate:    func(d *Document) { d.Components[1].Title = "Colors" },
			wantField: "components[1].title",
		},
		{
			name:      "unknown line break",
			mutate:    func(d *Document) { d.Settings.LineBreak = "ellipsis" },
			wantField: "settings.line_break",
		},
		{
			name:      "unknown alignment",
			mutate:    func(d *Document) { d.Settings.RowAlignment = "justify" },
			wantField: "settings.row_alignment",
		},
		{
			name:      "unknown corners",
			mutate:    func(d *Document) { d.Settings.Corners = "left" },
			wantField: "settings.corners",
		},
		{
			name:      "bad duration",
			mutate:    func(d *Document) { d.Settings.Animation = "soon" },
			wantField: "settings.animation",
		},
		{
			name:      "dimming out of range",
			mutate:    func(d *Document) { d.Settings.Dimming = ptr(1.5) },
			wantField: "settings.dimming",
		},
		{
			name:      "bad colour",
			mutate:    func(d *Document) { d.Settings.Colors.Background = "blue" },
			wantField: "settings.colors.background",
		},
		{
			name:      "row without title",
			mutate:    func(d *Document) { d.Components[0].Rows[1].Title = "" },
			wantField: "components[0].rows[1].title",
		},
		{
			name: "several selected rows without multiple selection",
			mutate: func(d *Document) {
				d.Components[0].Rows[0].Selected = true
				d.Components[0].Rows[1].Selected = true
			},
			wantField: "components[0].rows",
		},
		{
			name: "several selected rows with multiple selection",
			mutate: func(d *Document) {
				d.Settings.MultipleSelection = true
				d.Components[0].Rows[0].Selected = true
				d.Components[0].Rows[1].Selected = true
			},
		},
		{
			name:      "insets without full screen width",
			mutate:    func(d *Document) { d.Settings.FullScreenInsets.Left = 2 },
			wantField: "settings.full_screen_insets",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			doc := validDocument()
			tc.mutate(doc)
			err := ValidateDocument(doc)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *dmerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
		})
	}
}

func TestValidateDocumentNil(t *testing.T) {
	t.Parallel()

	var validationErr *dmerrors.ValidationError
	require.ErrorAs(t, ValidateDocument(nil), &validationErr)
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
