package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/db"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

// PhoneNumberRepository is the only write path for PhoneNumber rows.
// Rows are deduplicated on (phoneNumber, PhoneTypePk_id).
type PhoneNumberRepository struct {
	phoneTypes *LookupRepository
	sb         squirrel.StatementBuilderType
}

// NewPhoneNumberRepository creates a new PhoneNumberRepository
func NewPhoneNumberRepository(phoneTypes *LookupRepository) *PhoneNumberRepository {
	return &PhoneNumberRepository{
		phoneTypes: phoneTypes,
		sb:         squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Resolve returns the surrogate key of the row matching phone, inserting it when absent.
// An unknown phone type fails with a malformed-entity error before any insert.
func (r *PhoneNumberRepository) Resolve(ctx context.Context, q db.Querier, phone models.PhoneNumber) (int64, error) {
	typeKey, err := r.phoneTypes.GetKey(ctx, q, string(phone.Type))
	if err != nil {
		if errors.Is(err, ErrLookupNotFound) {
			return NotFoundKey, fmt.Errorf("%w: %q", apperrors.ErrInvalidPhoneType, phone.Type)
		}
		return NotFoundKey, err
	}

	key, err := r.findKey(ctx, q, phone.Number, typeKey)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return NotFoundKey, err
	}

	sql, args, err := r.sb.Insert("PhoneNumber").
		Columns("uuid", "phoneNumber", "PhoneTypePk_id").
		Values(uuid.NewString(), phone.Number, typeKey).
		Suffix("ON CONFLICT (phoneNumber, PhoneTypePk_id) DO NOTHING RETURNING pk_id").
		ToSql()
	if err != nil {
		return NotFoundKey, fmt.Errorf("failed to build insert phone number query: %w", err)
	}

	err = q.QueryRow(ctx, sql, args...).Scan(&key)
	switch {
	case err == nil:
		return key, nil
	case errors.Is(err, pgx.ErrNoRows):
		// A concurrent resolver inserted the same pair first
		key, err = r.findKey(ctx, q, phone.Number, typeKey)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return NotFoundKey, fmt.Errorf("phone number %q vanished after insert conflict: %w", phone.Number, apperrors.ErrStoreUnavailable)
			}
			return NotFoundKey, err
		}
		return key, nil
	default:
		logger.Error().Err(err).Str("phoneNumber", phone.Number).Msg("Error inserting phone number")
		return NotFoundKey, fmt.Errorf("error inserting phone number: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
}

// findKey returns pgx.ErrNoRows unwrapped when there is no match
func (r *PhoneNumberRepository) findKey(ctx context.Context, q db.Querier, number string, typeKey int64) (int64, error) {
	sql, args, err := r.sb.Select("pk_id").
		From("PhoneNumber").
		Where(squirrel.Eq{"phoneNumber": number, "PhoneTypePk_id": typeKey}).
		Limit(1).
		ToSql()
	if err != nil {
		return NotFoundKey, fmt.Errorf("failed to build find phone number query: %w", err)
	}

	var key int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFoundKey, err
		}
		logger.Error().Err(err).Str("phoneNumber", number).Msg("Error finding phone number")
		return NotFoundKey, fmt.Errorf("error finding phone number: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return key, nil
}
