package encounter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const encCols = `id, animal, encounter_image, encounter_name, encounter_website,
	zoo_name, zoo_website, zoo_city, zoo_state, zoo_country,
	encounter_cost, encounter_schedule, encounter_description, added_by,
	created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO encounters (
			id, animal, encounter_image, encounter_name, encounter_website,
			zoo_name, zoo_website, zoo_city, zoo_state, zoo_country,
			encounter_cost, encounter_schedule, encounter_description, added_by
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14
		)`,
		enc.ID, enc.Animal, enc.EncounterImage, enc.EncounterName, enc.EncounterWebsite,
		enc.ZooName, enc.ZooWebsite, enc.ZooCity, enc.ZooState, enc.ZooCountry,
		enc.EncounterCost, enc.EncounterSchedule, enc.EncounterDescription, enc.AddedBy,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Encounter, error) {
	enc, err := scanEnc(r.pool.QueryRow(ctx, `SELECT `+encCols+` FROM encounters WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return enc, err
}

func (r *repoPG) List(ctx context.Context) ([]*Encounter, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+encCols+` FROM encounters ORDER BY animal ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncs(rows)
}

func (r *repoPG) ListByAnimal(ctx context.Context, animal string) ([]*Encounter, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+encCols+` FROM encounters WHERE animal = $1 ORDER BY animal ASC`, animal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncs(rows)
}

func (r *repoPG) ListByZoo(ctx context.Context, zooName string) ([]*Encounter, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+encCols+` FROM encounters WHERE zoo_name = $1 ORDER BY animal ASC`, zooName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncs(rows)
}

func (r *repoPG) DistinctAnimals(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT animal FROM encounters`)
}

func (r *repoPG) DistinctZoos(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, `SELECT DISTINCT zoo_name FROM encounters`)
}

func (r *repoPG) distinct(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, patch Patch) error {
	set := ""
	args := []interface{}{id}
	add := func(col string, val *string) {
		if val == nil {
			return
		}
		args = append(args, *val)
		set += fmt.Sprintf("%s=$%d, ", col, len(args))
	}
	add("encounter_cost", patch.EncounterCost)
	add("encounter_schedule", patch.EncounterSchedule)
	add("encounter_description", patch.EncounterDescription)
	if set == "" {
		return nil
	}

	_, err := r.pool.Exec(ctx,
		`UPDATE encounters SET `+set+`updated_at=NOW() WHERE id = $1`, args...)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM encounters WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanEnc(row pgx.Row) (*Encounter, error) {
	var e Encounter
	err := row.Scan(
		&e.ID, &e.Animal, &e.EncounterImage, &e.EncounterName, &e.EncounterWebsite,
		&e.ZooName, &e.ZooWebsite, &e.ZooCity, &e.ZooState, &e.ZooCountry,
		&e.EncounterCost, &e.EncounterSchedule, &e.EncounterDescription, &e.AddedBy,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEncs(rows pgx.Rows) ([]*Encounter, error) {
	var encs []*Encounter
	for rows.Next() {
		enc, err := scanEnc(rows)
		if err != nil {
			return nil, err
		}
		encs = append(encs, enc)
	}
	return encs, rows.Err()
}
