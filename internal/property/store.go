// Package property stores homeowner property records keyed by the parsed
// address match key, so candidates can be fetched without scanning every row.
package property

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/tx-address/internal/address"
)

// Property is one homeowner property row
type Property struct {
	AccountNumber     string `db:"account_number" json:"account_number"`
	OwnerName         string `db:"owner_name" json:"owner_name"`
	Address           string `db:"property_address" json:"property_address"`
	Community         string `db:"community" json:"community"`
	MatchKey          string `db:"match_key" json:"match_key"`
	NormalizedAddress string `db:"normalized_address" json:"normalized_address"`
}

const columns = `account_number, owner_name, property_address, community, match_key, normalized_address`

var schema = []string{
	`CREATE TABLE IF NOT EXISTS property (
		account_number     TEXT PRIMARY KEY,
		owner_name         TEXT NOT NULL DEFAULT '',
		property_address   TEXT NOT NULL,
		community          TEXT NOT NULL DEFAULT '',
		match_key          TEXT NOT NULL DEFAULT '',
		normalized_address TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_property_match_key ON property (match_key)`,
}

// Store reads and writes property rows. Queries are written with ? and
// rebound for the driver in use.
type Store struct {
	db     *sqlx.DB
	parser *address.Parser
}

// NewStore creates a store over db, deriving match keys with parser
func NewStore(db *sqlx.DB, parser *address.Parser) *Store {
	return &Store{db: db, parser: parser}
}

// EnsureSchema creates the property table and its match key index
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// keyed fills in the derived columns from the raw address
func (s *Store) keyed(p Property) Property {
	parsed := s.parser.Parse(p.Address)
	p.MatchKey = parsed.MatchKey()
	p.NormalizedAddress = parsed.NormalizedStreet()
	return p
}

// Upsert inserts or replaces a property, recomputing its match key
func (s *Store) Upsert(ctx context.Context, p Property) error {
	if p.AccountNumber == "" {
		return fmt.Errorf("property has no account number")
	}
	p = s.keyed(p)

	query := s.db.Rebind(`
		INSERT INTO property (` + columns + `)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (account_number) DO UPDATE SET
			owner_name = excluded.owner_name,
			property_address = excluded.property_address,
			community = excluded.community,
			match_key = excluded.match_key,
			normalized_address = excluded.normalized_address`)

	_, err := s.db.ExecContext(ctx, query,
		p.AccountNumber, p.OwnerName, p.Address, p.Community, p.MatchKey, p.NormalizedAddress)
	if err != nil {
		return fmt.Errorf("failed to upsert property %s: %w", p.AccountNumber, err)
	}
	return nil
}

// ByMatchKey returns properties sharing the given match key, optionally
// restricted to one community before the limit applies
func (s *Store) ByMatchKey(ctx context.Context, key, community string, limit int) ([]Property, error) {
	if key == "" {
		return nil, nil
	}

	where := `match_key = ?`
	args := []interface{}{key}
	if community != "" {
		where += ` AND LOWER(community) = ?`
		args = append(args, strings.ToLower(community))
	}
	args = append(args, limit)

	query := s.db.Rebind(`SELECT ` + columns + ` FROM property
		WHERE ` + where + `
		ORDER BY account_number
		LIMIT ?`)

	var props []Property
	if err := s.db.SelectContext(ctx, &props, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query match key %q: %w", key, err)
	}
	return props, nil
}

// ByTerms returns properties whose address contains every term,
// case-insensitively, optionally restricted to one community
func (s *Store) ByTerms(ctx context.Context, terms []string, community string, limit int) ([]Property, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	var where []string
	var args []interface{}
	for _, term := range terms {
		where = append(where, `LOWER(property_address) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(term))+"%")
	}
	if community != "" {
		where = append(where, `LOWER(community) = ?`)
		args = append(args, strings.ToLower(community))
	}
	args = append(args, limit)

	query := s.db.Rebind(`SELECT ` + columns + ` FROM property
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY account_number
		LIMIT ?`)

	var props []Property
	if err := s.db.SelectContext(ctx, &props, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query terms %v: %w", terms, err)
	}
	return props, nil
}

// Get returns one property by account number
func (s *Store) Get(ctx context.Context, accountNumber string) (Property, error) {
	var p Property
	query := s.db.Rebind(`SELECT ` + columns + ` FROM property WHERE account_number = ?`)
	if err := s.db.GetContext(ctx, &p, query, accountNumber); err != nil {
		return Property{}, fmt.Errorf("failed to get property %s: %w", accountNumber, err)
	}
	return p, nil
}

// Reindex recomputes match keys and normalized addresses for every row,
// e.g. after rows were loaded by another system. It returns the number of
// rows whose derived columns changed.
func (s *Store) Reindex(ctx context.Context) (int, error) {
	var props []Property
	if err := s.db.SelectContext(ctx, &props, `SELECT `+columns+` FROM property`); err != nil {
		return 0, fmt.Errorf("failed to load properties: %w", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin reindex: %w", err)
	}
	defer tx.Rollback()

	update := tx.Rebind(`UPDATE property SET match_key = ?, normalized_address = ? WHERE account_number = ?`)

	changed := 0
	for _, p := range props {
		k := s.keyed(p)
		if k.MatchKey == p.MatchKey && k.NormalizedAddress == p.NormalizedAddress {
			continue
		}
		if _, err := tx.ExecContext(ctx, update, k.MatchKey, k.NormalizedAddress, k.AccountNumber); err != nil {
			return 0, fmt.Errorf("failed to reindex %s: %w", p.AccountNumber, err)
		}
		changed++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit reindex: %w", err)
	}
	return changed, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
