package repository

import "github.com/construmart/construmart-api/internal/domain/entity"

// EncryptedCodeRepository define el puerto de persistencia para EncryptedCode.
type EncryptedCodeRepository interface {
	Create(code *entity.EncryptedCode) error
	// GetByUserID devuelve el código vigente del usuario o (nil, nil).
	GetByUserID(userID string) (*entity.EncryptedCode, error)
	DeleteByUserID(userID string) error
}
