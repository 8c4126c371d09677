package repository

import (
	"errors"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenRepository is the gorm-backed token ledger.
type TokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository returns a token ledger over the given database.
func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Save(t *models.Token) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *TokenRepository) SaveAll(ts []models.Token) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Save(&ts).Error
}

// FindByToken looks up a ledger row by exact token string. Returns
// (nil, nil) when no row matches.
func (r *TokenRepository) FindByToken(token string) (*models.Token, error) {
	var t models.Token
	if err := r.db.Where("token = ?", token).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TokenRepository) FindAllByUser(userID uint) ([]models.Token, error) {
	var ts []models.Token
	if err := r.db.Where("user_id = ?", userID).Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}
