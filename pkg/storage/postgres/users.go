package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aboldguess/Nichifier/pkg/domain"
	"github.com/aboldguess/Nichifier/pkg/storage"
	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	usersTable = "users"

	uniqueViolationCode = "23505"
)

// isUniqueViolation reports whether err is a postgres unique constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: no row returned")
	}

	return result.ToDomain(), nil
}

// UserByID returns a user by their ID. Returns nil when not found.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByEmail returns a user by their unique email. Returns nil when not found.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("email").Eq(email)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUser applies the non-nil fields from updates to the given user and
// returns the updated row. updated_at is always set.
func (p *PgSQL) UpdateUser(ctx context.Context,
	id domain.UserID,
	updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FullName != nil {
		rec["full_name"] = *updates.FullName
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}
	if updates.Role != nil {
		rec["role"] = string(*updates.Role)
	}
	if updates.Premium != nil {
		rec["premium"] = *updates.Premium
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgUser{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Users returns all users ordered by creation time ascending.
func (p *PgSQL) Users(ctx context.Context) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
