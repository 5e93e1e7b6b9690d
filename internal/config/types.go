package config

// Document is a menu definition file: the settings of one menu bar and the rows of each of
// its components.
type Document struct {
	Version     string      `yaml:"version" validate:"required,semver"`
	Name        string      `yaml:"name" validate:"required,min=1,max=100"`
	Description string      `yaml:"description,omitempty"`
	Settings    Settings    `yaml:"settings,omitempty"`
	Components  []Component `yaml:"components" validate:"required,min=1,max=32,dive"`
}

// Settings mirrors dropdown.Options. Unset pointer fields keep the library defaults.
type Settings struct {
	MultipleSelection    bool     `yaml:"multiple_selection,omitempty"`
	ContentAbove         bool     `yaml:"content_above,omitempty"`
	AdjustsContentOffset bool     `yaml:"adjusts_content_offset,omitempty"`
	AdjustsContentInset  *bool    `yaml:"adjusts_content_inset,omitempty"`
	DropsShadow          *bool    `yaml:"drops_shadow,omitempty"`
	ShowsBorder          bool     `yaml:"shows_border,omitempty"`
	TopSeparator         *bool    `yaml:"top_separator,omitempty"`
	BottomSeparator      *bool    `yaml:"bottom_separator,omitempty"`
	Dimming              *float64 `yaml:"dimming,omitempty" validate:"omitempty,min=-1,max=1"`
	FullScreenWidth      bool     `yaml:"full_screen_width,omitempty"`
	FullScreenInsets     Insets   `yaml:"full_screen_insets,omitempty"`
	LineBreak            string   `yaml:"line_break,omitempty" validate:"omitempty,line_break"`
	Alignment            string   `yaml:"alignment,omitempty" validate:"omitempty,alignment"`
	RowAlignment         string   `yaml:"row_alignment,omitempty" validate:"omitempty,alignment"`
	Corners              string   `yaml:"corners,omitempty" validate:"omitempty,corners"`
	CornerRadius         *int     `yaml:"corner_radius,omitempty" validate:"omitempty,min=0,max=4"`
	Animation            string   `yaml:"animation,omitempty" validate:"omitempty,duration"`
	Indicator            string   `yaml:"indicator,omitempty" validate:"omitempty,oneof=triangle arrow none"`
	Colors               Colors   `yaml:"colors,omitempty"`
}

// Insets are horizontal insets in cells.
type Insets struct {
	Left  int `yaml:"left,omitempty" validate:"min=0"`
	Right int `yaml:"right,omitempty" validate:"min=0"`
}

// Colors override the theme. Values are hex colours such as "#C7C7CC".
type Colors struct {
	ComponentSeparator string `yaml:"component_separator,omitempty" validate:"omitempty,hexcolor"`
	RowSeparator       string `yaml:"row_separator,omitempty" validate:"omitempty,hexcolor"`
	SelectedBackground string `yaml:"selected_background,omitempty" validate:"omitempty,hexcolor"`
	Background         string `yaml:"background,omitempty" validate:"omitempty,hexcolor"`
}

// Component is one segment of the bar and the rows it opens.
type Component struct {
	Title         string `yaml:"title" validate:"required,max=64"`
	SelectedTitle string `yaml:"selected_title,omitempty" validate:"max=64"`
	Width         int    `yaml:"width,omitempty" validate:"min=0"`
	FullRow       *bool  `yaml:"full_row,omitempty"`
	MaxRows       int    `yaml:"max_rows,omitempty" validate:"min=0"`
	RowHeight     int    `yaml:"row_height,omitempty" validate:"omitempty,min=1,max=8"`
	Enabled       *bool  `yaml:"enabled,omitempty"`
	Highlight     string `yaml:"highlight,omitempty" validate:"omitempty,hexcolor"`
	Rows          []Row  `yaml:"rows,omitempty" validate:"omitempty,dive"`
}

// IsEnabled reports whether the component can be opened. Components are enabled unless
// the document says otherwise.
func (c Component) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// UsesFullRow reports whether the panel spans the whole bar.
func (c Component) UsesFullRow() bool {
	return c.FullRow == nil || *c.FullRow
}

// Row is one entry of a component.
type Row struct {
	Title      string `yaml:"title" validate:"required"`
	Accessory  string `yaml:"accessory,omitempty"`
	Background string `yaml:"background,omitempty" validate:"omitempty,hexcolor"`
	Selected   bool   `yaml:"selected,omitempty"`
}
