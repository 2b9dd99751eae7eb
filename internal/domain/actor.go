package domain

type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleCustomer Role = "CUSTOMER"
)

// Actor is the identity the upstream session layer resolved for a request.
// The core trusts it and never re-validates credentials.
type Actor struct {
	ID   uint64
	Role Role
}

func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleCustomer
}
