package repository

import "github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"

// TokenRepositoryI defines the token ledger operations consumed by the
// authentication flows and the request gate.
type TokenRepositoryI interface {
	Save(t *models.Token) error
	SaveAll(ts []models.Token) error
	FindByToken(token string) (*models.Token, error)
	FindAllByUser(userID uint) ([]models.Token, error)
}

// UserRepositoryI defines the credential store operations.
type UserRepositoryI interface {
	Create(u *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
}
