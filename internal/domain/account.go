package domain

import "time"

// Account is a named local profile owning one completion map. The name is
// the opaque credential the CLI resolves to a stable ID; there is no
// password or token layer in the local app.
type Account struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
