package repo

import (
	"context"
	"fmt"

	"github.com/Shantanu039/hotel-menu-order-app/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type menuRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewMenuRepo(db *sqlx.DB) *menuRepo {
	return &menuRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *menuRepo) ListMenuItems(ctx context.Context, filter entities.MenuFilter) ([]entities.MenuItem, error) {
	q := r.qb.Select("id", "name", "img", "price", "type").
		From("menu_items").
		OrderBy("name")

	if filter.Search != "" {
		q = q.Where(sq.ILike{"name": "%" + filter.Search + "%"})
	}
	if filter.Type != "" {
		q = q.Where(sq.Eq{"type": filter.Type})
	}

	query, args := q.MustSql()

	var rows []MenuItem
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select menu items: %w", err)
	}

	items := make([]entities.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, MenuItemToEntity(row))
	}
	return items, nil
}

func (r *menuRepo) SaveMenuItem(ctx context.Context, item entities.MenuItem) error {
	query, args := r.qb.Insert("menu_items").
		Columns("id", "name", "img", "price", "type").
		Values(item.ID, item.Name, item.Img, item.Price, item.Type).
		MustSql()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save menu item: %w", err)
	}
	return nil
}

func (r *menuRepo) UpdateMenuItem(ctx context.Context, item entities.MenuItem) error {
	query, args := r.qb.Update("menu_items").
		Set("name", item.Name).
		Set("img", item.Img).
		Set("price", item.Price).
		Set("type", item.Type).
		Where(sq.Eq{"id": item.ID}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

func (r *menuRepo) DeleteMenuItem(ctx context.Context, id string) error {
	query, args := r.qb.Delete("menu_items").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return checkAffected(res.RowsAffected())
}

func (r *menuRepo) CountMenuItems(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("menu_items").MustSql()

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

func checkAffected(affected int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to check result: %w", err)
	}
	if affected == 0 {
		return entities.ErrMenuItemNotFound
	}
	return nil
}
