package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/db"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

// PhoneLinkTable describes a parent to PhoneNumber join table
type PhoneLinkTable struct {
	Name         string
	ParentColumn string
}

// Join tables known to the registry
var (
	StudentPhoneLinkTable  = PhoneLinkTable{Name: "StudentHasPhoneNumber", ParentColumn: "StudentPk_id"}
	EmployeePhoneLinkTable = PhoneLinkTable{Name: "EmployeeHasPhoneNumber", ParentColumn: "EmployeePk_id"}
)

const phoneKeyColumn = "PhoneNumberPk_id"

// PhoneLinkRepository maintains the links of one parent type to PhoneNumber rows.
// Unlinking never deletes the PhoneNumber row itself.
type PhoneLinkRepository struct {
	table PhoneLinkTable
	sb    squirrel.StatementBuilderType
}

// NewPhoneLinkRepository creates a PhoneLinkRepository for table
func NewPhoneLinkRepository(table PhoneLinkTable) *PhoneLinkRepository {
	return &PhoneLinkRepository{
		table: table,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Link associates phoneKey with parentKey. Linking an existing pair affects no rows.
func (r *PhoneLinkRepository) Link(ctx context.Context, q db.Querier, phoneKey, parentKey int64) (bool, error) {
	sql, args, err := r.sb.Insert(r.table.Name).
		Columns(r.table.ParentColumn, phoneKeyColumn).
		Values(parentKey, phoneKey).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build link query: %w", err)
	}

	return r.exec(ctx, q, "link", sql, args, parentKey)
}

// Unlink removes the association between phoneKey and parentKey
func (r *PhoneLinkRepository) Unlink(ctx context.Context, q db.Querier, phoneKey, parentKey int64) (bool, error) {
	sql, args, err := r.sb.Delete(r.table.Name).
		Where(squirrel.Eq{r.table.ParentColumn: parentKey}).
		Where(squirrel.Eq{phoneKeyColumn: phoneKey}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build unlink query: %w", err)
	}

	return r.exec(ctx, q, "unlink", sql, args, parentKey)
}

// UnlinkAll removes every association of parentKey
func (r *PhoneLinkRepository) UnlinkAll(ctx context.Context, q db.Querier, parentKey int64) (bool, error) {
	sql, args, err := r.sb.Delete(r.table.Name).
		Where(squirrel.Eq{r.table.ParentColumn: parentKey}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build unlink all query: %w", err)
	}

	return r.exec(ctx, q, "unlink all", sql, args, parentKey)
}

func (r *PhoneLinkRepository) exec(ctx context.Context, q db.Querier, op, sql string, args []interface{}, parentKey int64) (bool, error) {
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table.Name).Int64("parentKey", parentKey).Msgf("Error executing %s", op)
		return false, fmt.Errorf("error executing %s on %s: %w: %w", op, r.table.Name, apperrors.ErrStoreUnavailable, err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetAll returns the phone numbers linked to parentKey
func (r *PhoneLinkRepository) GetAll(ctx context.Context, q db.Querier, parentKey int64) ([]models.PhoneNumber, error) {
	sql, args, err := r.sb.Select("p.PhoneNumberPk_id", "p.uuid", "p.phoneNumber", "p.phoneType").
		From("VW_PhoneNumber p").
		Join(fmt.Sprintf("%s l ON l.%s = p.PhoneNumberPk_id", r.table.Name, phoneKeyColumn)).
		Where(squirrel.Eq{"l." + r.table.ParentColumn: parentKey}).
		Where(squirrel.Eq{"p.MD_isDeleted": false}).
		OrderBy("p.PhoneNumberPk_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get phone numbers query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table.Name).Int64("parentKey", parentKey).Msg("Error querying phone numbers")
		return nil, fmt.Errorf("error querying phone numbers: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	phones := []models.PhoneNumber{}
	for rows.Next() {
		var p models.PhoneNumber
		var phoneType string
		if err := rows.Scan(&p.PkID, &p.UUID, &p.Number, &phoneType); err != nil {
			return nil, fmt.Errorf("error scanning phone number row: %w: %w", apperrors.ErrStoreUnavailable, err)
		}
		p.Type = models.PhoneType(phoneType)
		phones = append(phones, p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating phone number rows")
		return nil, fmt.Errorf("error iterating phone number rows: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	return phones, nil
}
