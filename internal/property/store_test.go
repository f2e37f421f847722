package property

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tx-address/internal/address"
)

var fixtures = []Property{
	{AccountNumber: "A-100", OwnerName: "Jane Doe", Address: "18517 Falcon Pointe Blvd, Pflugerville, TX 78660", Community: "Falcon Pointe"},
	{AccountNumber: "A-101", OwnerName: "John Roe", Address: "18517 Falcon Pointe Blvd Unit 2", Community: "Falcon Pointe"},
	{AccountNumber: "B-200", OwnerName: "Ann Poe", Address: "1481 Old Settlers Blvd Unit 1503, Round Rock, TX 78664", Community: "Settlers Park"},
	{AccountNumber: "C-300", OwnerName: "Max 100%", Address: "207 The Hills Dr", Community: "The Hills"},
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := NewStore(db, address.NewParser())
	ctx := context.Background()
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}
	// running it twice must be harmless
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("second EnsureSchema() error = %v", err)
	}

	for _, p := range fixtures {
		if err := store.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert(%s) error = %v", p.AccountNumber, err)
		}
	}
	return store
}

func accounts(props []Property) []string {
	var out []string
	for _, p := range props {
		out = append(out, p.AccountNumber)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUpsertDerivesKeys(t *testing.T) {
	store := newTestStore(t)

	p, err := store.Get(context.Background(), "B-200")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.MatchKey != "1481 old" {
		t.Errorf("MatchKey = %q, want %q", p.MatchKey, "1481 old")
	}
	if p.NormalizedAddress != "1481 old settlers blvd" {
		t.Errorf("NormalizedAddress = %q", p.NormalizedAddress)
	}
}

func TestUpsertReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Upsert(ctx, Property{AccountNumber: "C-300", OwnerName: "New Owner", Address: "209 The Hills Dr", Community: "The Hills"})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	p, err := store.Get(ctx, "C-300")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.OwnerName != "New Owner" || p.MatchKey != "209 the" {
		t.Errorf("after upsert got %+v", p)
	}

	if err := store.Upsert(ctx, Property{Address: "1 Main St"}); err == nil {
		t.Error("expected error for property without account number")
	}
}

func TestByMatchKey(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	props, err := store.ByMatchKey(ctx, "18517 falcon", "", 10)
	if err != nil {
		t.Fatalf("ByMatchKey() error = %v", err)
	}
	if got := accounts(props); !equalStrings(got, []string{"A-100", "A-101"}) {
		t.Errorf("ByMatchKey() = %v", got)
	}

	props, err = store.ByMatchKey(ctx, "18517 falcon", "", 1)
	if err != nil || len(props) != 1 {
		t.Errorf("ByMatchKey(limit 1) = %v, %v", accounts(props), err)
	}

	props, err = store.ByMatchKey(ctx, "18517 falcon", "FALCON POINTE", 10)
	if err != nil || !equalStrings(accounts(props), []string{"A-100", "A-101"}) {
		t.Errorf("ByMatchKey(community) = %v, %v", accounts(props), err)
	}

	props, err = store.ByMatchKey(ctx, "18517 falcon", "Settlers Park", 10)
	if err != nil || len(props) != 0 {
		t.Errorf("ByMatchKey(other community) = %v, %v", accounts(props), err)
	}

	props, err = store.ByMatchKey(ctx, "", "", 10)
	if err != nil || props != nil {
		t.Errorf("ByMatchKey(empty) = %v, %v", props, err)
	}
}

func TestByTerms(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		terms     []string
		community string
		want      []string
	}{
		{"number and name", []string{"1481", "Old"}, "", []string{"B-200"}},
		{"case insensitive", []string{"FALCON", "pointe"}, "", []string{"A-100", "A-101"}},
		{"community filter", []string{"18517"}, "falcon pointe", []string{"A-100", "A-101"}},
		{"community excludes", []string{"18517"}, "The Hills", nil},
		{"wildcards are literal", []string{"%"}, "", nil},
		{"no terms", nil, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := store.ByTerms(ctx, tt.terms, tt.community, 10)
			if err != nil {
				t.Fatalf("ByTerms() error = %v", err)
			}
			if got := accounts(props); !equalStrings(got, tt.want) {
				t.Errorf("ByTerms(%v, %q) = %v, want %v", tt.terms, tt.community, got, tt.want)
			}
		})
	}
}

func TestReindex(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO property (account_number, property_address) VALUES ('D-400', '12 Monarch Oaks Ln')`)
	if err != nil {
		t.Fatalf("raw insert: %v", err)
	}

	changed, err := store.Reindex(ctx)
	if err != nil {
		t.Fatalf("Reindex() error = %v", err)
	}
	if changed != 1 {
		t.Errorf("Reindex() changed %d rows, want 1", changed)
	}

	p, err := store.Get(ctx, "D-400")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.MatchKey != "12 monarch" || p.NormalizedAddress != "12 monarch oaks ln" {
		t.Errorf("reindexed row = %+v", p)
	}

	if changed, err := store.Reindex(ctx); err != nil || changed != 0 {
		t.Errorf("second Reindex() = %d, %v; want 0, nil", changed, err)
	}
}
