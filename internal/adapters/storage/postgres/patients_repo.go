package postgres

import (
	"context"
	"database/sql"
	"strings"

	"patient-care-manager/internal/domain/patients"
)

type PatientsRepo struct {
	db *sql.DB
}

func NewPatientsRepo(db *sql.DB) *PatientsRepo {
	return &PatientsRepo{db: db}
}

// Las columnas de fecha son TEXT: conviven la forma canónica YYYY-MM-DD,
// la forma de tokens del picker y el segmento ERROR heredado. end_date
// NULL = paciente en tratamiento.
func (r *PatientsRepo) Create(ctx context.Context, p patients.Patient) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patients (
			id,
			first_name, middle_name, last_name,
			birth_date, sex,
			height, weight, risk_index,
			notes, phone, email,
			start_date, end_date,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		p.ID,
		p.FirstName,
		p.MiddleName,
		p.LastName,
		p.BirthDate,
		string(p.Sex),
		p.Height,
		p.Weight,
		p.RiskIndex,
		p.Notes,
		p.Phone,
		p.Email,
		p.StartDate,
		toNullString(p.EndDate),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PatientsRepo) Update(ctx context.Context, p patients.Patient) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE patients
		SET
			first_name = $2,
			middle_name = $3,
			last_name = $4,
			birth_date = $5,
			sex = $6,
			height = $7,
			weight = $8,
			risk_index = $9,
			notes = $10,
			phone = $11,
			email = $12,
			start_date = $13,
			end_date = $14,
			updated_at = $15
		WHERE id = $1
	`,
		p.ID,
		p.FirstName,
		p.MiddleName,
		p.LastName,
		p.BirthDate,
		string(p.Sex),
		p.Height,
		p.Weight,
		p.RiskIndex,
		p.Notes,
		p.Phone,
		p.Email,
		p.StartDate,
		toNullString(p.EndDate),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

func (r *PatientsRepo) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return patients.Patient{}, patients.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id,
			first_name, middle_name, last_name,
			birth_date, sex,
			height, weight, risk_index,
			notes, phone, email,
			start_date, end_date,
			created_at, updated_at
		FROM patients
		WHERE id = $1
	`, id)

	p, err := scanPatient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return patients.Patient{}, patients.ErrNotFound
		}
		return patients.Patient{}, err
	}
	return p, nil
}

func (r *PatientsRepo) List(ctx context.Context) ([]patients.Patient, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id,
			first_name, middle_name, last_name,
			birth_date, sex,
			height, weight, risk_index,
			notes, phone, email,
			start_date, end_date,
			created_at, updated_at
		FROM patients
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]patients.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PatientsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return patients.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner) (patients.Patient, error) {
	var p patients.Patient
	var sex string
	var end sql.NullString

	if err := row.Scan(
		&p.ID,
		&p.FirstName,
		&p.MiddleName,
		&p.LastName,
		&p.BirthDate,
		&sex,
		&p.Height,
		&p.Weight,
		&p.RiskIndex,
		&p.Notes,
		&p.Phone,
		&p.Email,
		&p.StartDate,
		&end,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return patients.Patient{}, err
	}

	p.Sex = patients.Sex(sex)
	if end.Valid {
		v := end.String
		p.EndDate = &v
	}
	return p, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}
