package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)
}

// DesignRepository stores evaluated girder runs so users can revisit and
// re-render them later.
type DesignRepository interface {
	SaveDesign(ctx context.Context, userID int, designation string, safe bool, payload json.RawMessage) (string, error)
	ListDesigns(ctx context.Context, userID int) ([]DesignRecord, error)
	GetDesign(ctx context.Context, id string) (DesignRecord, error)
}

type DesignRecord struct {
	ID          string          `json:"id"`
	UserID      int             `json:"user_id"`
	Designation string          `json:"designation"`
	Safe        bool            `json:"safe"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

type PostgresDesignRepository struct {
	db *sql.DB
}

func NewPostgresDesignDB(db *sql.DB) *PostgresDesignRepository {
	return &PostgresDesignRepository{db: db}
}

func (r *PostgresDesignRepository) SaveDesign(ctx context.Context, userID int, designation string, safe bool, payload json.RawMessage) (string, error) {
	id := uuid.New().String()
	query := "INSERT INTO designs (id, user_id, designation, safe, payload, created_at) VALUES ($1, $2, $3, $4, $5, $6)"
	_, err := r.db.ExecContext(ctx, query, id, userID, designation, safe, []byte(payload), time.Now())
	return id, err
}

func (r *PostgresDesignRepository) ListDesigns(ctx context.Context, userID int) ([]DesignRecord, error) {
	query := "SELECT id, user_id, designation, safe, payload, created_at FROM designs WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DesignRecord
	for rows.Next() {
		var rec DesignRecord
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Designation, &rec.Safe, &payload, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Payload = json.RawMessage(payload)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresDesignRepository) GetDesign(ctx context.Context, id string) (DesignRecord, error) {
	query := "SELECT id, user_id, designation, safe, payload, created_at FROM designs WHERE id=$1"
	var rec DesignRecord
	var payload []byte
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.UserID, &rec.Designation, &rec.Safe, &payload, &rec.CreatedAt)
	if err != nil {
		return DesignRecord{}, err
	}
	rec.Payload = json.RawMessage(payload)
	return rec, nil
}
