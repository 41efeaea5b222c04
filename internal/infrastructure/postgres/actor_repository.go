package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

var _ repository.ActorRepository = (*ActorRepo)(nil)

const actorColumns = `id, name, phone, email, password_hash, role, region, parent_id, status, created_at, updated_at`

// ActorRepo implementación del puerto ActorRepository sobre PostgreSQL.
type ActorRepo struct {
	q Querier
}

// NewActorRepository construye el adaptador de persistencia para actores. Pasar pool o tx (Querier).
func NewActorRepository(q Querier) *ActorRepo {
	return &ActorRepo{q: q}
}

// Create persiste un nuevo actor.
func (r *ActorRepo) Create(actor *entity.Actor) error {
	query := `
		INSERT INTO actors (` + actorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	parentID := (*string)(nil)
	if actor.ParentID != "" {
		parentID = &actor.ParentID
	}
	_, err := r.q.Exec(context.Background(), query,
		actor.ID, actor.Name, actor.Phone, actor.Email, actor.PasswordHash,
		actor.Role, actor.Region, parentID, actor.Status,
		actor.CreatedAt, actor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert actor: %w", err)
	}
	return nil
}

// GetByID obtiene un actor por ID.
func (r *ActorRepo) GetByID(id string) (*entity.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get actor by id")
}

// GetByEmail obtiene un actor por email.
func (r *ActorRepo) GetByEmail(email string) (*entity.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE email = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get actor by email")
}

// List lista actores con filtros opcionales de rol, región, padre y estado.
func (r *ActorRepo) List(filter repository.ActorFilter) ([]*entity.Actor, error) {
	query := `SELECT ` + actorColumns + ` FROM actors WHERE 1=1`
	var args []any
	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.Region != "" {
		args = append(args, filter.Region)
		query += fmt.Sprintf(" AND region = $%d", len(args))
	}
	if filter.ParentID != "" {
		args = append(args, filter.ParentID)
		query += fmt.Sprintf(" AND parent_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list actors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Actor
	for rows.Next() {
		a, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan actor: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListAll lista todos los actores.
func (r *ActorRepo) ListAll() ([]*entity.Actor, error) {
	return r.List(repository.ActorFilter{})
}

// Update actualiza los datos mutables de un actor.
func (r *ActorRepo) Update(actor *entity.Actor) error {
	query := `
		UPDATE actors SET name = $2, phone = $3, email = $4, password_hash = $5, status = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		actor.ID, actor.Name, actor.Phone, actor.Email, actor.PasswordHash, actor.Status, actor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update actor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// UpdateParent reasigna el superior directo (reasignación lateral de FO).
func (r *ActorRepo) UpdateParent(id, parentID string) error {
	query := `UPDATE actors SET parent_id = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, parentID)
	if err != nil {
		return fmt.Errorf("update actor parent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// Deactivate marca el actor como inactive (soft delete).
func (r *ActorRepo) Deactivate(id string) error {
	query := `UPDATE actors SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, entity.ActorStatusInactive)
	if err != nil {
		return fmt.Errorf("deactivate actor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

func (r *ActorRepo) scanOne(row pgx.Row, op string) (*entity.Actor, error) {
	var a entity.Actor
	var parentID *string
	err := row.Scan(
		&a.ID, &a.Name, &a.Phone, &a.Email, &a.PasswordHash,
		&a.Role, &a.Region, &parentID, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if parentID != nil {
		a.ParentID = *parentID
	}
	return &a, nil
}

func (r *ActorRepo) scanRow(rows pgx.Rows) (*entity.Actor, error) {
	var a entity.Actor
	var parentID *string
	if err := rows.Scan(
		&a.ID, &a.Name, &a.Phone, &a.Email, &a.PasswordHash,
		&a.Role, &a.Region, &parentID, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if parentID != nil {
		a.ParentID = *parentID
	}
	return &a, nil
}
