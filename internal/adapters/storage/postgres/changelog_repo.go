package postgres

import (
	"context"
	"database/sql"
	"strings"

	"patient-care-manager/internal/domain/changelog"
)

type ChangelogRepo struct {
	db *sql.DB
}

func NewChangelogRepo(db *sql.DB) *ChangelogRepo {
	return &ChangelogRepo{db: db}
}

func (r *ChangelogRepo) Create(ctx context.Context, c changelog.Change) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO patient_changes (
			id, patient_id,
			type, message,
			occurred_at
		) VALUES ($1,$2,$3,$4,$5)
	`,
		c.ID,
		c.PatientID,
		string(c.Type),
		c.Message,
		c.OccurredAt,
	)
	return err
}

func (r *ChangelogRepo) ListByPatient(ctx context.Context, patientID string) ([]changelog.Change, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, patient_id,
			type, message,
			occurred_at
		FROM patient_changes
		WHERE patient_id = $1
		ORDER BY occurred_at DESC
	`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]changelog.Change, 0)
	for rows.Next() {
		var c changelog.Change
		var typ string
		if err := rows.Scan(
			&c.ID,
			&c.PatientID,
			&typ,
			&c.Message,
			&c.OccurredAt,
		); err != nil {
			return nil, err
		}
		c.Type = changelog.ChangeType(typ)
		out = append(out, c)
	}

	return out, rows.Err()
}
