// Package directory is the account-directory collaborator: domains,
// mailboxes and aliases backed by the mailserver database. All mutations
// are staged inside the session transaction until explicitly committed.
package directory

// Domain is a hosted mail domain.
type Domain struct {
	ID   int64
	Name string
}

// User is a mailbox account. Quota is a byte count; 0 means unlimited.
type User struct {
	ID       int64
	DomainID int64
	Email    string
	Quota    int64
}

// Alias forwards mail from Source to Destination.
type Alias struct {
	ID          int64
	DomainID    int64
	Source      string
	Destination string
}
