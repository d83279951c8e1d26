package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

type MenuRepo struct {
	db *sql.DB
}

func NewMenuRepo(db *sql.DB) *MenuRepo {
	return &MenuRepo{db: db}
}

func (r *MenuRepo) List(ctx context.Context) ([]core.MenuItem, error) {
	query := `SELECT id, name, description, price, category FROM menu_items ORDER BY category, name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []core.MenuItem
	for rows.Next() {
		var item core.MenuItem
		var description, category sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.Price, &category); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.Description = description.String
		item.Category = category.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// FindByName matches case-insensitively on a partial name. The lowest id
// wins, which mirrors insertion order of the seeded menu.
func (r *MenuRepo) FindByName(ctx context.Context, name string) (*core.MenuItem, error) {
	query := `SELECT id, name, description, price, category FROM menu_items WHERE name LIKE ? ORDER BY id LIMIT 1`

	var item core.MenuItem
	var description, category sql.NullString
	err := r.db.QueryRowContext(ctx, query, "%"+name+"%").
		Scan(&item.ID, &item.Name, &description, &item.Price, &category)
	if err == sql.ErrNoRows {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}
	item.Description = description.String
	item.Category = category.String
	return &item, nil
}

func (r *MenuRepo) Insert(ctx context.Context, item core.MenuItem) error {
	query := `INSERT INTO menu_items (name, description, price, category) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, item.Name, item.Description, item.Price, item.Category); err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *MenuRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

func (r *MenuRepo) exists(ctx context.Context, name string) (bool, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items WHERE name = ?`, name).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
