package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
)

// Repository is the catalog's data access. Point lookups are cached
// because booking creation resolves the service on every request; the
// cache entry is dropped whenever the service is written.
type Repository struct {
	pool  *pgxpool.Pool
	cache *cache.Cache
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool:  pool,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func serviceCacheKey(id int64) string {
	return "service:" + strconv.FormatInt(id, 10)
}

func (r *Repository) GetService(ctx context.Context, id int64) (Service, error) {
	if cached, found := r.cache.Get(serviceCacheKey(id)); found {
		return cached.(Service), nil
	}

	sql := `
			SELECT s.id, s.cleaner_profile_id, cp.user_id, s.category_id, sc.name,
				s.name, COALESCE(s.description, ''), s.is_active
			FROM services s
			JOIN cleaner_profiles cp ON cp.id = s.cleaner_profile_id
			JOIN service_categories sc ON sc.id = s.category_id
			WHERE s.id = $1;
		`

	var svc Service
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&svc.ID,
		&svc.CleanerProfileID,
		&svc.CleanerID,
		&svc.CategoryID,
		&svc.CategoryName,
		&svc.Name,
		&svc.Description,
		&svc.IsActive,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Service{}, ErrServiceNotFound
	}

	if err != nil {
		return Service{}, fmt.Errorf("failed to fetch service %v: %w", id, err)
	}

	r.cache.SetDefault(serviceCacheKey(id), svc)

	return svc, nil
}

func (r *Repository) ListServicesForCleaner(ctx context.Context, cleanerUserID string) ([]Service, error) {
	sql := `
			SELECT s.id, s.cleaner_profile_id, cp.user_id, s.category_id, sc.name,
				s.name, COALESCE(s.description, ''), s.is_active
			FROM services s
			JOIN cleaner_profiles cp ON cp.id = s.cleaner_profile_id
			JOIN service_categories sc ON sc.id = s.category_id
			WHERE cp.user_id = $1
			ORDER BY s.id;
		`

	rows, err := r.pool.Query(ctx, sql, cleanerUserID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch services for cleaner '%v': %w", cleanerUserID, err)
	}

	defer rows.Close()

	var services []Service

	for rows.Next() {
		var svc Service
		err := rows.Scan(
			&svc.ID,
			&svc.CleanerProfileID,
			&svc.CleanerID,
			&svc.CategoryID,
			&svc.CategoryName,
			&svc.Name,
			&svc.Description,
			&svc.IsActive,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning service row: %w", err)
		}

		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service rows: %w", err)
	}

	return services, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM service_categories ORDER BY name;`)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch service categories: %w", err)
	}

	defer rows.Close()

	var categories []Category

	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("error scanning category row: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}

	return categories, nil
}

func (r *Repository) cleanerProfileID(ctx context.Context, cleanerUserID string) (int64, error) {
	var profileID int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM cleaner_profiles WHERE user_id = $1;`, cleanerUserID).Scan(&profileID)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrCleanerProfileNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to fetch cleaner profile for user '%v': %w", cleanerUserID, err)
	}

	return profileID, nil
}

// UpsertService creates or updates a service owned by the cleaner. An
// update scoped to another cleaner's service affects no rows and is
// reported as not found.
func (r *Repository) UpsertService(ctx context.Context, cleanerUserID string, input ServiceInput) (Service, error) {
	profileID, err := r.cleanerProfileID(ctx, cleanerUserID)

	if err != nil {
		return Service{}, err
	}

	var serviceID int64

	if input.ID != nil {
		sql := `
				UPDATE services
				SET name = $1, description = $2, category_id = $3
				WHERE id = $4 AND cleaner_profile_id = $5
				RETURNING id;
			`
		err = r.pool.QueryRow(ctx, sql, input.Name, input.Description, input.CategoryID, *input.ID, profileID).Scan(&serviceID)
	} else {
		sql := `
				INSERT INTO services(cleaner_profile_id, category_id, name, description, is_active)
				VALUES ($1, $2, $3, $4, true)
				RETURNING id;
			`
		err = r.pool.QueryRow(ctx, sql, profileID, input.CategoryID, input.Name, input.Description).Scan(&serviceID)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return Service{}, ErrServiceNotFound
	}

	if err != nil {
		return Service{}, fmt.Errorf("failed to upsert service: %w", err)
	}

	r.cache.Delete(serviceCacheKey(serviceID))

	return r.GetService(ctx, serviceID)
}

func (r *Repository) DeleteService(ctx context.Context, cleanerUserID string, id int64) error {
	profileID, err := r.cleanerProfileID(ctx, cleanerUserID)

	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1 AND cleaner_profile_id = $2;`, id, profileID)

	if err != nil {
		return fmt.Errorf("failed to delete service %v: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}

	r.cache.Delete(serviceCacheKey(id))

	return nil
}
