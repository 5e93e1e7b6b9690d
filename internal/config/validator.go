package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

// ValidateDocument performs schema and cross-field validation on a menu document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return dmerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	titles := make(map[string]int, len(doc.Components))
	for i, c := range doc.Components {
		if prev, exists := titles[c.Title]; exists {
			return dmerrors.NewValidationError(fieldForComponent(i, "title"),
				fmt.Sprintf("duplicate component title %q (first used by components[%d])", c.Title, prev), nil)
		}
		titles[c.Title] = i

		if !doc.Settings.MultipleSelection && countSelected(c.Rows) > 1 {
			return dmerrors.NewValidationError(fieldForComponent(i, "rows"),
				"more than one row is selected but multiple_selection is off", nil)
		}
		if c.MaxRows > 0 && len(c.Rows) == 0 {
			return dmerrors.NewValidationError(fieldForComponent(i, "max_rows"), "max_rows is set on a component without rows", nil)
		}
	}

	insets := doc.Settings.FullScreenInsets
	if !doc.Settings.FullScreenWidth && (insets.Left != 0 || insets.Right != 0) {
		return dmerrors.NewValidationError("settings.full_screen_insets", "insets require full_screen_width", nil)
	}

	return nil
}

func countSelected(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Selected {
			n++
		}
	}
	return n
}

// convertValidationError normalizes validator errors into validation errors keyed by YAML path.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return dmerrors.NewValidationError(field, msg, err)
	}

	return dmerrors.NewValidationError("document", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving the YAML path.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
