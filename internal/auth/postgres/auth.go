package postgres

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MGhiremath0281/Apex-Money/internal/auth"
	userdm "github.com/MGhiremath0281/Apex-Money/internal/core/datamodel/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetCredentialsByUsername(username string) (string, int64, error) {
	var passwordHash string
	var userID int64

	row := r.db.Raw(
		`SELECT id, password_hash FROM users WHERE username = ? AND is_active = true`,
		username,
	).Row()
	if err := row.Scan(&userID, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, auth.ErrInvalidCredentials
		}
		return "", 0, err
	}
	return passwordHash, userID, nil
}

func (r *Repository) GetUserByID(userID int64) (*auth.User, error) {
	var row userdm.User
	err := r.db.Where("id = ?", userID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	return &auth.User{
		ID:       row.ID,
		Username: row.Username,
		Email:    row.Email,
		IsActive: row.IsActive,
	}, nil
}

func (r *Repository) CreateUser(username string, email *string, passwordHash string) (*auth.User, error) {
	now := time.Now()
	row := userdm.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := r.db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, auth.ErrUsernameTaken
		}
		return nil, err
	}

	return &auth.User{
		ID:       row.ID,
		Username: row.Username,
		Email:    row.Email,
		IsActive: row.IsActive,
	}, nil
}

// isUniqueViolation matches unique-constraint errors from both postgres
// and the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
