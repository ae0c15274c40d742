// Package staff_repo provides the PostgreSQL implementation of the staff repository.
package staff_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"aromapos/internal/core/apperror"
	"aromapos/internal/core/id"
	"aromapos/internal/domain"
	"aromapos/internal/domain/staff"
	"aromapos/internal/infrastructure/storage/postgres"
)

const staffTable = "staff_members"

// StaffRepo implements staff.Repository.
type StaffRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
	columns []string
}

// NewStaffRepo creates a new staff repository.
func NewStaffRepo(txm *postgres.TxManager) *StaffRepo {
	return &StaffRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		columns: postgres.ExtractDBColumns[staff.Member](),
	}
}

func (r *StaffRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder.Select(r.columns...).From(staffTable)
}

// Create inserts a staff account.
func (r *StaffRepo) Create(ctx context.Context, m *staff.Member) error {
	data := postgres.StructToMap(m)

	q := r.builder.Insert(staffTable).SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		if strings.Contains(err.Error(), "23505") {
			return apperror.NewDuplicate("staff", "username", m.Username)
		}
		return fmt.Errorf("insert staff: %w", err)
	}

	return nil
}

// GetByID retrieves a staff account by ID.
func (r *StaffRepo) GetByID(ctx context.Context, memberID id.ID) (*staff.Member, error) {
	q := r.baseSelect().Where(squirrel.Eq{"id": memberID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m staff.Member
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("staff", memberID.String())
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}

	return &m, nil
}

// GetByUsername retrieves a staff account by username.
func (r *StaffRepo) GetByUsername(ctx context.Context, username string) (*staff.Member, error) {
	q := r.baseSelect().Where(squirrel.Eq{"username": username}).Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m staff.Member
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("staff", username)
		}
		return nil, fmt.Errorf("get staff by username: %w", err)
	}

	return &m, nil
}

// Update updates a staff account with optimistic locking.
func (r *StaffRepo) Update(ctx context.Context, m *staff.Member) error {
	data := postgres.StructToMap(m)
	version := m.Version
	delete(data, "id")
	delete(data, "created_at")
	delete(data, "version")

	q := r.builder.Update(staffTable).
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": m.ID}).
		Where(squirrel.Eq{"version": version})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("staff", m.ID)
	}

	m.Version++
	return nil
}

// Delete removes a staff account.
func (r *StaffRepo) Delete(ctx context.Context, memberID id.ID) error {
	q := r.builder.Delete(staffTable).Where(squirrel.Eq{"id": memberID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	result, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("staff", memberID.String())
	}

	return nil
}

// List retrieves staff accounts with filtering.
func (r *StaffRepo) List(ctx context.Context, filter staff.ListFilter) (domain.ListResult[*staff.Member], error) {
	result := domain.ListResult[*staff.Member]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if filter.Role != nil {
		q = q.Where(squirrel.Eq{"role": *filter.Role})
	}
	if filter.IsActive != nil {
		q = q.Where(squirrel.Eq{"is_active": *filter.IsActive})
	}
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"username": searchPattern},
			squirrel.ILike{"full_name": searchPattern},
		})
	}

	countQ := r.builder.Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count staff: %w", err)
	}

	q = q.OrderBy("username")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list staff: %w", err)
	}

	return result, nil
}

// CountAdmins counts active admin accounts.
func (r *StaffRepo) CountAdmins(ctx context.Context) (int, error) {
	q := r.builder.Select("COUNT(*)").
		From(staffTable).
		Where(squirrel.Eq{"role": staff.RoleAdmin}).
		Where(squirrel.Eq{"is_active": true})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}

	return count, nil
}

// ExistsByUsername checks whether a username is taken.
func (r *StaffRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	sql := "SELECT EXISTS(SELECT 1 FROM " + staffTable + " WHERE username = $1)"

	var exists bool
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}

	return exists, nil
}

// Ensure interface compliance.
var _ staff.Repository = (*StaffRepo)(nil)
