package entities

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID      string
	Permissions []string
}

func (a Actor) Authenticated() bool {
	return a.UserID != ""
}

// Permission slugs checked by the use cases.
const (
	PermissionOrdersReadAll   = "orders.read_all"
	PermissionOrdersCancelAny = "orders.cancel_any"
	PermissionExchangesManage = "exchanges.manage"
)
