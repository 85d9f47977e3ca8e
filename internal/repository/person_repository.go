package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quickquid/quickquid-api/internal/models"
)

// PersonRepository handles person rows in PostgreSQL.
type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Create(ctx context.Context, firstName, lastName string) (*models.Person, error) {
	query := `
		INSERT INTO person (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, first_name, last_name
	`
	var person models.Person
	err := r.db.QueryRowContext(ctx, query, firstName, lastName).Scan(
		&person.ID, &person.FirstName, &person.LastName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	return &person, nil
}

// FindByName returns the first person matching the given name. Names are not
// unique in the schema; account creation treats them as unique in practice.
func (r *PersonRepository) FindByName(ctx context.Context, firstName, lastName string) (*models.Person, error) {
	query := `
		SELECT id, first_name, last_name
		FROM person
		WHERE first_name = $1 AND last_name = $2
		ORDER BY id
		LIMIT 1
	`
	var person models.Person
	err := r.db.QueryRowContext(ctx, query, firstName, lastName).Scan(
		&person.ID, &person.FirstName, &person.LastName,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find person: %w", err)
	}
	return &person, nil
}
