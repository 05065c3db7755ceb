package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/construmart/construmart-api/internal/domain/entity"
	"github.com/construmart/construmart-api/internal/domain/repository"
)

var _ repository.EncryptedCodeRepository = (*EncryptedCodeRepo)(nil)

// EncryptedCodeRepo implementación de EncryptedCodeRepository (usable con pool o tx).
type EncryptedCodeRepo struct {
	q Querier
}

// NewEncryptedCodeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEncryptedCodeRepository(q Querier) *EncryptedCodeRepo {
	return &EncryptedCodeRepo{q: q}
}

// Create persiste un código. Cero-o-uno por usuario: si ya hay uno se reemplaza.
func (r *EncryptedCodeRepo) Create(code *entity.EncryptedCode) error {
	query := `
		INSERT INTO encrypted_codes (id, user_id, salt, code_hash, expiry, purpose, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			id = EXCLUDED.id, salt = EXCLUDED.salt, code_hash = EXCLUDED.code_hash,
			expiry = EXCLUDED.expiry, purpose = EXCLUDED.purpose, created_at = EXCLUDED.created_at`
	_, err := r.q.Exec(context.Background(), query,
		code.ID, code.UserID, code.Salt, code.CodeHash, code.Expiry, code.Purpose, code.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert encrypted code: %w", err)
	}
	return nil
}

// GetByUserID devuelve el código vigente del usuario o (nil, nil).
func (r *EncryptedCodeRepo) GetByUserID(userID string) (*entity.EncryptedCode, error) {
	query := `
		SELECT id, user_id, salt, code_hash, expiry, purpose, created_at
		FROM encrypted_codes WHERE user_id = $1`
	var c entity.EncryptedCode
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&c.ID, &c.UserID, &c.Salt, &c.CodeHash, &c.Expiry, &c.Purpose, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get encrypted code: %w", err)
	}
	return &c, nil
}

// DeleteByUserID elimina el código del usuario (si existe).
func (r *EncryptedCodeRepo) DeleteByUserID(userID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM encrypted_codes WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete encrypted code: %w", err)
	}
	return nil
}
