package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createPerson = `
INSERT INTO people (id, name, email, twitter)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, twitter, created_at
`

type CreatePersonParams struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Twitter pgtype.Text `json:"twitter"`
}

func (s *SQLStore) CreatePerson(ctx context.Context, arg CreatePersonParams) (Person, error) {
	row := s.connPool.QueryRow(ctx, createPerson, arg.ID, arg.Name, arg.Email, arg.Twitter)

	var person Person
	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.Twitter,
		&person.CreatedAt,
	)

	return person, err
}

const getPerson = `
SELECT id, name, email, twitter, created_at
FROM people
WHERE id = $1
`

func (s *SQLStore) GetPerson(ctx context.Context, id string) (Person, error) {
	row := s.connPool.QueryRow(ctx, getPerson, id)

	var person Person
	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Email,
		&person.Twitter,
		&person.CreatedAt,
	)

	return person, err
}
