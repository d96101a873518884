package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolregistry/internal/db"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

// NotFoundKey is returned by GetKey when the symbolic name has no row.
// Valid surrogate keys are never negative.
const NotFoundKey int64 = -1

// ErrLookupNotFound is returned when a symbolic name is absent from its lookup table
var ErrLookupNotFound = errors.New("lookup value not found")

// LookupTable describes a closed, pre-populated enumeration table
type LookupTable struct {
	Name       string
	NameColumn string
}

// Lookup tables known to the registry
var (
	StudentStatusTable = LookupTable{Name: "StudentStatus", NameColumn: "status"}
	EmployeeRoleTable  = LookupTable{Name: "EmployeeRole", NameColumn: "name"}
	PhoneTypeTable     = LookupTable{Name: "PhoneType", NameColumn: "phoneType"}
)

// KeyCache is a read-through cache of lookup keys
type KeyCache interface {
	GetKey(ctx context.Context, table, name string) (int64, bool)
	SetKey(ctx context.Context, table, name string, key int64)
}

// LookupRepository translates symbolic enumeration names to surrogate keys
type LookupRepository struct {
	table LookupTable
	cache KeyCache
	sb    squirrel.StatementBuilderType
}

// NewLookupRepository creates a LookupRepository for table. cache may be nil.
func NewLookupRepository(table LookupTable, cache KeyCache) *LookupRepository {
	return &LookupRepository{
		table: table,
		cache: cache,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetKey returns the surrogate key for name, or NotFoundKey with ErrLookupNotFound
func (r *LookupRepository) GetKey(ctx context.Context, q db.Querier, name string) (int64, error) {
	if r.cache != nil {
		if key, ok := r.cache.GetKey(ctx, r.table.Name, name); ok {
			return key, nil
		}
	}

	sql, args, err := r.sb.Select("pk_id").
		From(r.table.Name).
		Where(squirrel.Eq{r.table.NameColumn: name}).
		Limit(1).
		ToSql()
	if err != nil {
		return NotFoundKey, fmt.Errorf("failed to build %s lookup query: %w", r.table.Name, err)
	}

	var key int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&key); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFoundKey, fmt.Errorf("%w: %s %q", ErrLookupNotFound, r.table.Name, name)
		}
		logger.Error().Err(err).Str("table", r.table.Name).Str("name", name).Msg("Error looking up key")
		return NotFoundKey, fmt.Errorf("error looking up %s key: %w: %w", r.table.Name, apperrors.ErrStoreUnavailable, err)
	}

	if r.cache != nil {
		r.cache.SetKey(ctx, r.table.Name, name, key)
	}

	return key, nil
}
