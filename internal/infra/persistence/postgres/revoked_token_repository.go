package postgres

import (
	"context"
	"time"

	"uploader/internal/domain/entity"
	domainerrors "uploader/internal/domain/errors"
	"uploader/internal/domain/repository"
	"uploader/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type revokedTokenRepository struct {
	db *gorm.DB
}

// NewRevokedTokenRepository returns the ledger backed by the revoked_tokens table.
func NewRevokedTokenRepository(db *gorm.DB) repository.RevocationRepository {
	return &revokedTokenRepository{db: db}
}

// Revoke inserts the entry in one statement; a second revocation of the same token does nothing.
func (repo *revokedTokenRepository) Revoke(ctx context.Context, token *entity.RevokedToken) error {
	tokenM := fromRevokedTokenDomain(token)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_hash"}},
			DoNothing: true,
		}).
		Create(tokenM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke token")
	}

	token.ID = tokenM.ID

	return nil
}

// IsRevoked always reads from the primary. A replica could still be missing a
// logout that has already been acknowledged to the client.
func (repo *revokedTokenRepository) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.RevokedTokenModel{}).
		Where("token_hash = ?", tokenHash).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check revoked token")
	}

	return count > 0, nil
}

// DeleteExpired removes entries for tokens that expired before the cutoff.
func (repo *revokedTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.RevokedTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to prune revoked tokens")
	}

	return result.RowsAffected, nil
}

func fromRevokedTokenDomain(data *entity.RevokedToken) *model.RevokedTokenModel {
	return &model.RevokedTokenModel{
		ID:        data.ID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		RevokedAt: data.RevokedAt,
	}
}
