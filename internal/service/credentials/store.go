// Package credentials stores per-user provider API keys encrypted at rest.
package credentials

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the read/write surface for provider API keys. Get returns
// found=false for both absent keys and keys that fail decryption; only
// storage-level failures surface as errors.
type Store interface {
	Get(ctx context.Context, userID, provider string) (key string, found bool, err error)
	Save(ctx context.Context, userID, provider, key string) error
	Delete(ctx context.Context, userID, provider string) error
}

// PostgresStore keeps keys in the user_api_keys table, sealed with AES-GCM.
// The cipher key is derived from the configured master key by SHA-256.
type PostgresStore struct {
	db     *sql.DB
	aead   cipher.AEAD
	logger *zap.Logger
}

func NewPostgresStore(db *sql.DB, masterKey string, logger *zap.Logger) (*PostgresStore, error) {
	if masterKey == "" {
		return nil, errors.New("master key is required")
	}

	derived := sha256.Sum256([]byte(masterKey))
	block, err := aes.NewCipher(derived[:])
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init GCM: %w", err)
	}

	return &PostgresStore{
		db:     db,
		aead:   aead,
		logger: logger,
	}, nil
}

func (s *PostgresStore) Get(ctx context.Context, userID, provider string) (string, bool, error) {
	var sealed []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT encrypted_key FROM user_api_keys WHERE user_id = $1 AND provider = $2`,
		userID, provider,
	).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query api key: %w", err)
	}

	key, err := s.open(sealed)
	if err != nil {
		// A key that no longer decrypts (rotated master key, corrupt row)
		// behaves like a missing key rather than an outage.
		s.logger.Warn("Stored API key failed to decrypt",
			zap.String("user", userID),
			zap.String("provider", provider),
			zap.Error(err),
		)
		return "", false, nil
	}
	return key, true, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID, provider, key string) error {
	sealed, err := s.seal(key)
	if err != nil {
		return fmt.Errorf("encrypt api key: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO user_api_keys (id, user_id, provider, encrypted_key, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, provider)
		DO UPDATE SET encrypted_key = EXCLUDED.encrypted_key, updated_at = NOW()`,
		uuid.NewString(), userID, provider, sealed,
	)
	if err != nil {
		return fmt.Errorf("save api key: %w", err)
	}

	s.logger.Info("API key saved",
		zap.String("user", userID),
		zap.String("provider", provider),
	)
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID, provider string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM user_api_keys WHERE user_id = $1 AND provider = $2`,
		userID, provider,
	)
	if err != nil {
		return fmt.Errorf("delete api key: %w", err)
	}
	return nil
}

// seal encrypts the key and prefixes the nonce to the ciphertext.
func (s *PostgresStore) seal(plaintext string) ([]byte, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return s.aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

func (s *PostgresStore) open(sealed []byte) (string, error) {
	nonceSize := s.aead.NonceSize()
	if len(sealed) < nonceSize {
		return "", errors.New("ciphertext too short")
	}
	plaintext, err := s.aead.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
