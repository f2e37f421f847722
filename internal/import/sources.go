package import_pkg

import (
	"fmt"
	"strings"

	"github.com/tx-address/internal/property"
)

// Header spellings seen in appraisal district and HOA roster exports
var columnAliases = map[string][]string{
	"account_number":   {"account_number", "account number", "account", "prop_id", "property id"},
	"owner_name":       {"owner_name", "owner name", "owner"},
	"property_address": {"property_address", "property address", "situs address", "situs", "address"},
	"community":        {"community", "community name", "subdivision", "hoa"},
}

// columns holds the index of each known column, -1 when absent
type columns struct {
	account, owner, address, community int
}

func mapColumns(header []string) (columns, error) {
	index := map[string]int{}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := index[key]; !seen {
			index[key] = i
		}
	}

	find := func(name string) int {
		for _, alias := range columnAliases[name] {
			if i, ok := index[alias]; ok {
				return i
			}
		}
		return -1
	}

	cols := columns{
		account:   find("account_number"),
		owner:     find("owner_name"),
		address:   find("property_address"),
		community: find("community"),
	}
	if cols.account < 0 || cols.address < 0 {
		return cols, fmt.Errorf("CSV header needs account number and property address columns, got %v", header)
	}
	return cols, nil
}

func (c columns) property(record []string) (property.Property, error) {
	p := property.Property{
		AccountNumber: field(record, c.account),
		OwnerName:     field(record, c.owner),
		Address:       field(record, c.address),
		Community:     field(record, c.community),
	}
	if p.AccountNumber == "" {
		return p, fmt.Errorf("missing account number")
	}
	if p.Address == "" {
		return p, fmt.Errorf("account %s has no property address", p.AccountNumber)
	}
	return p, nil
}
