package economy

import (
	"context"

	"github.com/google/uuid"
)

// VirtualNamespace scopes the name-based ids of virtual accounts such as
// banks and shop tills.
var VirtualNamespace = uuid.MustParse("6f1c3b0e-8a4d-5b27-9e61-2c7d4a9f0b13")

// VirtualAccountID is stable for a given identifier.
func VirtualAccountID(identifier string) uuid.UUID {
	return uuid.NewSHA1(VirtualNamespace, []byte(identifier))
}

// CreateVirtualAccount creates (or reuses) the account behind identifier.
func (e *Economy) CreateVirtualAccount(ctx context.Context, identifier string) (uuid.UUID, bool) {
	if identifier == "" {
		return uuid.Nil, false
	}

	id := VirtualAccountID(identifier)
	if !e.CreateAccount(ctx, id) {
		return uuid.Nil, false
	}

	return id, true
}
