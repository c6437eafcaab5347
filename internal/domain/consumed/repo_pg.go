package consumed

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type consumedRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &consumedRepoPG{pool: pool}
}

func (r *consumedRepoPG) Create(ctx context.Context, c *Consumed) error {
	c.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO consumed (id, medication_id, date_time)
		VALUES ($1,$2,$3)`,
		c.ID, c.MedicationID, c.DateTime)
	return err
}

func (r *consumedRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.medication_id, c.date_time, m.table_name, m.doctor, m.timing
		FROM consumed c
		JOIN medication m ON m.id = c.medication_id
		WHERE m.patient_id = $1
		ORDER BY c.created_at, c.id`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.MedicationID, &rec.DateTime, &rec.TableName, &rec.Doctor, &rec.Timing); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
