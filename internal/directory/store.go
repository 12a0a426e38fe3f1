package directory

import (
	"database/sql"
	"fmt"

	"github.com/ispmail/userctl/internal/logging/events"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS virtual_domains (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS virtual_users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	domain_id INTEGER NOT NULL REFERENCES virtual_domains(id),
	email TEXT NOT NULL,
	password TEXT NOT NULL,
	quota INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS virtual_aliases (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	domain_id INTEGER NOT NULL REFERENCES virtual_domains(id),
	source TEXT NOT NULL,
	destination TEXT NOT NULL
);`

// Session owns the single directory connection for the lifetime of an
// administrative session. Every read and write goes through one open
// transaction, so mutations stay staged until Commit and vanish on Discard.
type Session struct {
	db *sql.DB
	tx *sql.Tx
}

// Open connects to the mailserver database, ensures the schema exists and
// begins the session transaction.
func Open(path string) (*Session, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("begin session transaction: %w", err)
	}
	events.Store.Open(path)
	return &Session{db: db, tx: tx}, nil
}

// Domains lists all domains sorted by name.
func (s *Session) Domains() ([]Domain, error) {
	rows, err := s.tx.Query(`SELECT id, name FROM virtual_domains ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	var domains []Domain
	for rows.Next() {
		var d Domain
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan domain: %w", err)
		}
		domains = append(domains, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	return domains, nil
}

// CreateDomain stages a new domain.
func (s *Session) CreateDomain(name string) error {
	if _, err := s.tx.Exec(`INSERT INTO virtual_domains (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("create domain %s: %w", name, err)
	}
	events.Store.Mutation("create-domain", name)
	return nil
}

// DeleteDomain stages removal of a domain.
func (s *Session) DeleteDomain(id int64) error {
	if _, err := s.tx.Exec(`DELETE FROM virtual_domains WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete domain %d: %w", id, err)
	}
	events.Store.Mutation("delete-domain", fmt.Sprint(id))
	return nil
}

// Users lists every mailbox sorted by (domain, email).
func (s *Session) Users() ([]User, error) {
	return s.queryUsers(`SELECT id, domain_id, email, quota FROM virtual_users ORDER BY domain_id, email`)
}

// UsersByDomain lists the mailboxes of one domain sorted by email.
func (s *Session) UsersByDomain(domainID int64) ([]User, error) {
	return s.queryUsers(`SELECT id, domain_id, email, quota FROM virtual_users WHERE domain_id = ? ORDER BY email`, domainID)
}

func (s *Session) queryUsers(query string, args ...interface{}) ([]User, error) {
	rows, err := s.tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.DomainID, &u.Email, &u.Quota); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateUser stages a new mailbox with a hashed password.
func (s *Session) CreateUser(domainID int64, email, password string, quota int64) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.tx.Exec(
		`INSERT INTO virtual_users (domain_id, email, password, quota) VALUES (?, ?, ?, ?)`,
		domainID, email, hashed, quota,
	); err != nil {
		return fmt.Errorf("create user %s: %w", email, err)
	}
	events.Store.Mutation("create-user", email)
	return nil
}

// UpdatePassword stages a password change.
func (s *Session) UpdatePassword(userID int64, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	if _, err := s.tx.Exec(`UPDATE virtual_users SET password = ? WHERE id = ?`, hashed, userID); err != nil {
		return fmt.Errorf("update password for user %d: %w", userID, err)
	}
	events.Store.Mutation("update-password", fmt.Sprint(userID))
	return nil
}

// UpdateQuota stages a quota change.
func (s *Session) UpdateQuota(userID int64, quota int64) error {
	if _, err := s.tx.Exec(`UPDATE virtual_users SET quota = ? WHERE id = ?`, quota, userID); err != nil {
		return fmt.Errorf("update quota for user %d: %w", userID, err)
	}
	events.Store.Mutation("update-quota", fmt.Sprint(userID))
	return nil
}

// DeleteUser stages removal of a mailbox.
func (s *Session) DeleteUser(id int64) error {
	if _, err := s.tx.Exec(`DELETE FROM virtual_users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	events.Store.Mutation("delete-user", fmt.Sprint(id))
	return nil
}

// Aliases lists every alias sorted by (source, destination).
func (s *Session) Aliases() ([]Alias, error) {
	return s.queryAliases(`SELECT id, domain_id, source, destination FROM virtual_aliases ORDER BY source, destination`)
}

// AliasesByDomain lists the aliases of one domain sorted by (source, destination).
func (s *Session) AliasesByDomain(domainID int64) ([]Alias, error) {
	return s.queryAliases(`SELECT id, domain_id, source, destination FROM virtual_aliases WHERE domain_id = ? ORDER BY source, destination`, domainID)
}

func (s *Session) queryAliases(query string, args ...interface{}) ([]Alias, error) {
	rows, err := s.tx.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	defer rows.Close()

	var aliases []Alias
	for rows.Next() {
		var a Alias
		if err := rows.Scan(&a.ID, &a.DomainID, &a.Source, &a.Destination); err != nil {
			return nil, fmt.Errorf("scan alias: %w", err)
		}
		aliases = append(aliases, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	return aliases, nil
}

// CreateAlias stages a new alias.
func (s *Session) CreateAlias(domainID int64, source, destination string) error {
	if _, err := s.tx.Exec(
		`INSERT INTO virtual_aliases (domain_id, source, destination) VALUES (?, ?, ?)`,
		domainID, source, destination,
	); err != nil {
		return fmt.Errorf("create alias %s: %w", source, err)
	}
	events.Store.Mutation("create-alias", source)
	return nil
}

// DeleteAlias stages removal of an alias.
func (s *Session) DeleteAlias(id int64) error {
	if _, err := s.tx.Exec(`DELETE FROM virtual_aliases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete alias %d: %w", id, err)
	}
	events.Store.Mutation("delete-alias", fmt.Sprint(id))
	return nil
}

// Commit makes all staged mutations durable and starts a fresh staging
// transaction so the session can continue.
func (s *Session) Commit() error {
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit changes: %w", err)
	}
	events.Store.Commit()
	return s.begin()
}

// Discard rolls back all staged mutations and starts a fresh staging
// transaction so the session can continue.
func (s *Session) Discard() error {
	if err := s.tx.Rollback(); err != nil {
		return fmt.Errorf("discard changes: %w", err)
	}
	events.Store.Discard()
	return s.begin()
}

func (s *Session) begin() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin session transaction: %w", err)
	}
	s.tx = tx
	return nil
}

// Close finalises the session, committing or rolling back the staged
// mutations, and releases the connection.
func (s *Session) Close(commit bool) error {
	var err error
	if commit {
		err = s.tx.Commit()
		events.Store.Commit()
	} else {
		err = s.tx.Rollback()
		events.Store.Discard()
	}
	if cerr := s.db.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close database: %w", cerr)
	}
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}
