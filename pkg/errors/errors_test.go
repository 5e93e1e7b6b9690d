package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("menu.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "menu.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: menu.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("menu.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: menu.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[1].rows", "must not be empty", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[1].rows", validationErr.Field)
	require.Contains(t, err.Error(), "must not be empty")
}

func TestContractErrorFormatting(t *testing.T) {
	t.Parallel()

	err := NewContractError(ContractPrecondition, "Menu.Open", "invalid component: %d", 7)

	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	require.True(t, contractErr.IsPrecondition())
	require.Equal(t, "contract violation (precondition) in Menu.Open: invalid component: 7", err.Error())

	internal := NewContractError(ContractInternal, "", "cell pool returned %T", 1)
	require.Equal(t, "contract violation (internal): cell pool returned int", internal.Error())
	require.False(t, internal.(*ContractError).IsPrecondition())
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var contractErr *ContractError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, contractErr.Error())
	require.False(t, contractErr.IsPrecondition())
}
