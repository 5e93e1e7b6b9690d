//go:build !release

package dropdown

import (
	"testing"

	"github.com/stretchr/testify/require"

	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

func requireContractPanic(t *testing.T, kind dmerrors.ContractKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected contract violation")
		err, ok := r.(*dmerrors.ContractError)
		require.True(t, ok, "panic value %T is not a contract error", r)
		require.Equal(t, kind, err.Kind)
	}()
	fn()
}

func TestContractsEnforcedInDebugBuilds(t *testing.T) {
	t.Parallel()

	require.True(t, ContractsEnforced())
}

func TestCustomWidthsExceedingBarViolateContract(t *testing.T) {
	t.Parallel()

	src := newFakeSource(1, 1, 1)
	src.widths = []int{80, 80, 0}
	m := New()
	m.SetDataSource(src)
	m.SetDelegate(src)
	m.SetFrame(R(0, 0, 150, 1))

	requireContractPanic(t, dmerrors.ContractPrecondition, m.Reload)
}

func TestInvalidComponentViolatesContract(t *testing.T) {
	t.Parallel()

	m := newTestMenu(newFakeSource(2, 2))

	requireContractPanic(t, dmerrors.ContractPrecondition, func() { m.Open(2, false) })
	requireContractPanic(t, dmerrors.ContractPrecondition, func() { m.SelectedRows(-1) })
	requireContractPanic(t, dmerrors.ContractPrecondition, func() { m.ReloadComponent(5) })
}

func TestInvalidIndexPathViolatesContract(t *testing.T) {
	t.Parallel()

	m := newTestMenu(newFakeSource(2, 2))

	requireContractPanic(t, dmerrors.ContractPrecondition, func() { m.Select(IndexPath{Component: 0, Row: 2}) })
	requireContractPanic(t, dmerrors.ContractPrecondition, func() { m.Deselect(IndexPath{Component: 3, Row: 0}) })
}

func TestInternalFailureAlwaysPanics(t *testing.T) {
	t.Parallel()

	requireContractPanic(t, dmerrors.ContractInternal, func() {
		internalFailure("test", "broken %s", "invariant")
	})
}
