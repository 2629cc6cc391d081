package facility

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CourtService/pkg/types"
)

// Repository репозиторий конфигурации площадок
//
// Конфигурация (EntityConfiguration) хранится в четырех таблицах:
// facilities, courts, opening_hours, pricing_rules. Агрегат собирается заново
// на каждый запрос; порядок тарифных правил хранится в колонке position и
// является частью контракта конфигурации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacilityID собирает полную конфигурацию площадки
// Возвращает ErrConfigNotFound, если площадка не настроена
func (r *Repository) GetByFacilityID(ctx context.Context, facilityID int64) (*domain.EntityConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cfg, err := r.getFacilityRow(ctx, executor, facilityID)
	if err != nil {
		return nil, err
	}

	cfg.Courts, err = r.getCourts(ctx, executor, facilityID)
	if err != nil {
		return nil, err
	}

	cfg.OpeningHours, err = r.getOpeningHours(ctx, executor, facilityID)
	if err != nil {
		return nil, err
	}

	cfg.PricingRules, err = r.getPricingRules(ctx, executor, facilityID)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r *Repository) getFacilityRow(ctx context.Context, executor DBExecutor, facilityID int64) (*domain.EntityConfiguration, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"base_price",
		"timezone",
		"default_duration_minutes",
		"advance_booking_days",
		"cancellation_window_hours",
		"created_at",
		"updated_at",
	).
		From("facilities").
		Where(squirrel.Eq{"id": facilityID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - build facility query: %v", ErrBuildQuery, err)
	}

	var cfg domain.EntityConfiguration
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.FacilityID,
		&cfg.BasePrice,
		&cfg.Timezone,
		&cfg.BookingRules.DefaultDuration,
		&cfg.BookingRules.AdvanceBookingDays,
		&cfg.BookingRules.CancellationWindowHours,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - scan facility: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

func (r *Repository) getCourts(ctx context.Context, executor DBExecutor, facilityID int64) ([]domain.Court, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"type",
		"surface",
		"is_active",
		"base_price",
	).
		From("courts").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - build courts query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - query courts: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]domain.Court, 0)

	for rows.Next() {
		var court domain.Court
		if err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Type,
			&court.Surface,
			&court.IsActive,
			&court.BasePrice,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - scan court: %v", ErrScanRow, err)
		}
		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - courts rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

func (r *Repository) getOpeningHours(ctx context.Context, executor DBExecutor, facilityID int64) ([]domain.OpeningHour, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"open_time",
		"close_time",
	).
		From("opening_hours").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - build opening hours query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - query opening hours: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.OpeningHour, 0)

	for rows.Next() {
		var (
			hour             domain.OpeningHour
			openStr, closeStr string
		)
		if err := rows.Scan(&hour.DayOfWeek, &openStr, &closeStr); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - scan opening hour: %v", ErrScanRow, err)
		}

		// БД хранит TIME ("07:00:00"); нормализуем до "HH:MM"
		if hour.OpenTime, err = types.NewTimeStringFromString(openStr); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - open_time: %v", ErrInvalidTimeValue, err)
		}
		if hour.CloseTime, err = types.NewTimeStringFromString(closeStr); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - close_time: %v", ErrInvalidTimeValue, err)
		}

		hours = append(hours, hour)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - opening hours rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

func (r *Repository) getPricingRules(ctx context.Context, executor DBExecutor, facilityID int64) ([]domain.PricingRule, error) {
	query, args, err := psqlbuilder.Select(
		"days",
		"start_time",
		"end_time",
		"price",
		"court_ids",
	).
		From("pricing_rules").
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("position ASC"). // Порядок правил задает приоритет
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - build pricing rules query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - query pricing rules: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]domain.PricingRule, 0)

	for rows.Next() {
		var (
			rule             domain.PricingRule
			days             pq.Int64Array
			courtIDs         pq.Int64Array
			startStr, endStr string
		)
		if err := rows.Scan(&days, &startStr, &endStr, &rule.Price, &courtIDs); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - scan pricing rule: %v", ErrScanRow, err)
		}

		rule.Days = make([]int, len(days))
		for i, d := range days {
			rule.Days[i] = int(d)
		}
		if len(courtIDs) > 0 {
			rule.CourtIDs = []int64(courtIDs)
		}

		if rule.StartTime, err = types.NewTimeStringFromString(startStr); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - rule start_time: %v", ErrInvalidTimeValue, err)
		}
		if rule.EndTime, err = types.NewTimeStringFromString(endStr); err != nil {
			return nil, fmt.Errorf("%w: GetByFacilityID - rule end_time: %v", ErrInvalidTimeValue, err)
		}

		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFacilityID - pricing rules rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Replace полностью заменяет конфигурацию площадки
//
// Дочерние таблицы перезаписываются целиком (delete + insert), чтобы порядок
// тарифных правил и состав кортов точно соответствовали новой конфигурации.
// Вызывается внутри serializable-транзакции (через контекст)
func (r *Repository) Replace(ctx context.Context, cfg *domain.EntityConfiguration) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if err := r.upsertFacilityRow(ctx, executor, cfg); err != nil {
		return err
	}

	for _, table := range []string{"pricing_rules", "opening_hours", "courts"} {
		if err := r.deleteChildren(ctx, executor, table, cfg.FacilityID); err != nil {
			return err
		}
	}

	if err := r.insertCourts(ctx, executor, cfg); err != nil {
		return err
	}
	if err := r.insertOpeningHours(ctx, executor, cfg); err != nil {
		return err
	}
	if err := r.insertPricingRules(ctx, executor, cfg); err != nil {
		return err
	}

	return nil
}

func (r *Repository) upsertFacilityRow(ctx context.Context, executor DBExecutor, cfg *domain.EntityConfiguration) error {
	query, args, err := psqlbuilder.Insert("facilities").
		Columns(
			"id",
			"base_price",
			"timezone",
			"default_duration_minutes",
			"advance_booking_days",
			"cancellation_window_hours",
		).
		Values(
			cfg.FacilityID,
			cfg.BasePrice,
			cfg.Timezone,
			cfg.BookingRules.DefaultDuration,
			cfg.BookingRules.AdvanceBookingDays,
			cfg.BookingRules.CancellationWindowHours,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			base_price = EXCLUDED.base_price,
			timezone = EXCLUDED.timezone,
			default_duration_minutes = EXCLUDED.default_duration_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			cancellation_window_hours = EXCLUDED.cancellation_window_hours,
			updated_at = now()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Replace - build facility upsert: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("%w: Replace - execute facility upsert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return nil
}

func (r *Repository) deleteChildren(ctx context.Context, executor DBExecutor, table string, facilityID int64) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"facility_id": facilityID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Replace - build delete from %s: %v", ErrBuildQuery, table, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - delete from %s: %v", ErrExecQuery, table, err)
	}

	return nil
}

func (r *Repository) insertCourts(ctx context.Context, executor DBExecutor, cfg *domain.EntityConfiguration) error {
	if len(cfg.Courts) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("courts").
		Columns("facility_id", "id", "name", "type", "surface", "is_active", "base_price")

	for _, court := range cfg.Courts {
		builder = builder.Values(
			cfg.FacilityID,
			court.ID,
			court.Name,
			court.Type,
			court.Surface,
			court.IsActive,
			court.BasePrice,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build courts insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - insert courts: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) insertOpeningHours(ctx context.Context, executor DBExecutor, cfg *domain.EntityConfiguration) error {
	if len(cfg.OpeningHours) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("opening_hours").
		Columns("facility_id", "day_of_week", "open_time", "close_time")

	for _, hour := range cfg.OpeningHours {
		builder = builder.Values(
			cfg.FacilityID,
			hour.DayOfWeek,
			hour.OpenTime.String(),
			hour.CloseTime.String(),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build opening hours insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - insert opening hours: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) insertPricingRules(ctx context.Context, executor DBExecutor, cfg *domain.EntityConfiguration) error {
	if len(cfg.PricingRules) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("pricing_rules").
		Columns("facility_id", "position", "days", "start_time", "end_time", "price", "court_ids")

	for position, rule := range cfg.PricingRules {
		days := make(pq.Int64Array, len(rule.Days))
		for i, d := range rule.Days {
			days[i] = int64(d)
		}

		var courtIDs interface{}
		if len(rule.CourtIDs) > 0 {
			courtIDs = pq.Int64Array(rule.CourtIDs)
		}

		builder = builder.Values(
			cfg.FacilityID,
			position, // Позиция в списке = приоритет правила
			days,
			rule.StartTime.String(),
			rule.EndTime.String(),
			rule.Price,
			courtIDs,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build pricing rules insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - insert pricing rules: %v", ErrExecQuery, err)
	}

	return nil
}
