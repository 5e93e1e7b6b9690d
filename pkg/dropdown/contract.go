package dropdown

import (
	dmerrors "github.com/alexisbeaulieu97/dropmenu/pkg/errors"
)

// precondition checks a caller-facing contract. On failure the violation is logged and
// raised through contractFailure, which panics unless the package is built with the
// release tag. The return value lets callers bail out when contracts are not enforced.
func (m *Menu) precondition(ok bool, op, format string, args ...any) bool {
	if ok {
		return true
	}
	err := dmerrors.NewContractError(dmerrors.ContractPrecondition, op, format, args...)
	m.log.Error().Err(err).Msg("contract violation")
	contractFailure(err)
	return false
}

func (m *Menu) validComponent(op string, component int) bool {
	return m.precondition(component >= 0 && component < len(m.rows), op, "invalid component: %d", component)
}

func (m *Menu) validIndexPath(op string, ip IndexPath) bool {
	ok := ip.Component >= 0 && ip.Component < len(m.rows) && ip.Row >= 0 && ip.Row < m.rows[ip.Component]
	return m.precondition(ok, op, "invalid index path: (component: %d, row: %d)", ip.Component, ip.Row)
}

// internalFailure reports a broken invariant. It always panics, whatever the build.
func internalFailure(op, format string, args ...any) {
	panic(dmerrors.NewContractError(dmerrors.ContractInternal, op, format, args...))
}

// ContractsEnforced reports whether precondition failures panic in this build.
func ContractsEnforced() bool { return contractsEnforced }

