package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"communityhub/internal/domain"
)

type groupRepository struct {
	DB *sql.DB
}

func NewGroupRepository(db *sql.DB) domain.GroupRepository {
	return &groupRepository{DB: db}
}

func (r *groupRepository) CreateGroup(ctx context.Context, g *domain.ContactGroup) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	query := `
		INSERT INTO contact_groups (id, group_name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, g.ID, g.GroupName, g.Description, g.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.ErrDuplicateGroup
	}
	return err
}

func (r *groupRepository) GetGroup(ctx context.Context, name string) (*domain.ContactGroup, error) {
	query := `
		SELECT id, group_name, COALESCE(description, ''), created_at
		FROM contact_groups
		WHERE group_name = $1
	`
	g := &domain.ContactGroup{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&g.ID, &g.GroupName, &g.Description, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// DeleteGroup removes a group and cascades to its member contacts. Both
// deletes run in one transaction so a group is never left half-removed.
func (r *groupRepository) DeleteGroup(ctx context.Context, name string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM group_contacts WHERE group_name = $1`, name); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM contact_groups WHERE group_name = $1`, name)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *groupRepository) ListGroups(ctx context.Context) ([]*domain.ContactGroup, error) {
	query := `
		SELECT id, group_name, COALESCE(description, ''), created_at
		FROM contact_groups
		ORDER BY group_name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*domain.ContactGroup, 0)
	for rows.Next() {
		g := &domain.ContactGroup{}
		if err := rows.Scan(&g.ID, &g.GroupName, &g.Description, &g.CreatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *groupRepository) ListContacts(ctx context.Context, groupName string) ([]*domain.GroupContact, error) {
	query := `
		SELECT id, group_name, COALESCE(name, ''), email, added_at
		FROM group_contacts
		WHERE group_name = $1
		ORDER BY added_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, groupName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*domain.GroupContact, 0)
	for rows.Next() {
		c := &domain.GroupContact{}
		if err := rows.Scan(&c.ID, &c.GroupName, &c.Name, &c.Email, &c.AddedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// AddContact inserts one contact, reporting false when the (group, email)
// pair already exists. De-duplication rides on the unique index rather than a
// read-before-write check.
func (r *groupRepository) AddContact(ctx context.Context, c *domain.GroupContact) (bool, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO group_contacts (id, group_name, name, email, added_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (group_name, email) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, c.ID, c.GroupName, c.Name, c.Email, c.AddedAt)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *groupRepository) RemoveContacts(ctx context.Context, groupName string, emails []string) (int, error) {
	query := `DELETE FROM group_contacts WHERE group_name = $1 AND email = ANY($2)`
	result, err := r.DB.ExecContext(ctx, query, groupName, pq.Array(emails))
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(rows), nil
}
