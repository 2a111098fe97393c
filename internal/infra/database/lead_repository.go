package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/xavierca1/leadstore/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, first_name, COALESCE(last_name, ''), email, COALESCE(gender, ''),
	COALESCE(message, ''), COALESCE(country_code, ''), COALESCE(job_title, ''),
	COALESCE(company_name, ''), created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (first_name, last_name, email, country_code, job_title, company_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.FirstName,
		nullString(lead.LastName),
		lead.Email,
		nullString(lead.CountryCode),
		nullString(lead.JobTitle),
		nullString(lead.CompanyName),
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	if err != nil {
		log.Printf("❌ [DB] insert lead failed: %v", err)
		return err
	}

	return nil
}

// CreateMany inserts the batch in a single statement, so the store either takes
// the whole batch or none of it. Ids and timestamps are written back in order.
func (r *LeadRepository) CreateMany(ctx context.Context, leads []*entity.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	firstNames := make([]string, len(leads))
	lastNames := make([]string, len(leads))
	emails := make([]string, len(leads))
	countryCodes := make([]string, len(leads))
	jobTitles := make([]string, len(leads))
	companyNames := make([]string, len(leads))

	for i, l := range leads {
		firstNames[i] = l.FirstName
		lastNames[i] = l.LastName
		emails[i] = l.Email
		countryCodes[i] = l.CountryCode
		jobTitles[i] = l.JobTitle
		companyNames[i] = l.CompanyName
	}

	query := `
		INSERT INTO leads (first_name, last_name, email, country_code, job_title, company_name, created_at, updated_at)
		SELECT f, NULLIF(l, ''), e, NULLIF(cc, ''), NULLIF(jt, ''), NULLIF(cn, ''), NOW(), NOW()
		FROM unnest($1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::text[]) AS u(f, l, e, cc, jt, cn)
		RETURNING id, created_at, updated_at
	`

	rows, err := r.DB.QueryContext(ctx, query,
		pq.Array(firstNames),
		pq.Array(lastNames),
		pq.Array(emails),
		pq.Array(countryCodes),
		pq.Array(jobTitles),
		pq.Array(companyNames),
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			log.Printf("❌ [DB] batch insert rejected (%s): %s", pqErr.Code, pqErr.Message)
		} else {
			log.Printf("❌ [DB] batch insert failed: %v", err)
		}
		return err
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(leads) {
			break
		}
		if err := rows.Scan(&leads[i].ID, &leads[i].CreatedAt, &leads[i].UpdatedAt); err != nil {
			return err
		}
		i++
	}

	return rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Gender,
		&lead.Message,
		&lead.CountryCode,
		&lead.JobTitle,
		&lead.CompanyName,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&lead.Gender,
			&lead.Message,
			&lead.CountryCode,
			&lead.JobTitle,
			&lead.CompanyName,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, id int64, update entity.LeadUpdate) (*entity.Lead, error) {
	query := `
		UPDATE leads SET
			first_name   = COALESCE($2, first_name),
			last_name    = COALESCE($3, last_name),
			email        = COALESCE($4, email),
			gender       = COALESCE($5, gender),
			message      = COALESCE($6, message),
			country_code = COALESCE($7, country_code),
			job_title    = COALESCE($8, job_title),
			company_name = COALESCE($9, company_name),
			updated_at   = NOW()
		WHERE id = $1
		RETURNING ` + leadColumns

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query,
		id,
		update.FirstName,
		update.LastName,
		update.Email,
		update.Gender,
		update.Message,
		update.CountryCode,
		update.JobTitle,
		update.CompanyName,
	).Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.Gender,
		&lead.Message,
		&lead.CountryCode,
		&lead.JobTitle,
		&lead.CompanyName,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
