package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hashicorp-forge/docnav/pkg/sidebar"
)

// Tree stores a sidebar as a JSON column. It works with both PostgreSQL
// and SQLite text columns.
type Tree sidebar.Sidebar

// Value implements driver.Valuer interface for database writes.
func (t Tree) Value() (driver.Value, error) {
	data, err := json.Marshal(sidebar.Sidebar(t))
	if err != nil {
		return nil, fmt.Errorf("encoding sidebar tree: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner interface for database reads.
func (t *Tree) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("failed to scan sidebar tree: unsupported type")
	}

	items, err := sidebar.UnmarshalItems(data)
	if err != nil {
		return fmt.Errorf("invalid sidebar tree in database: %w", err)
	}
	*t = items
	return nil
}

// Sidebar returns the stored tree.
func (t Tree) Sidebar() sidebar.Sidebar {
	return sidebar.Sidebar(t)
}
