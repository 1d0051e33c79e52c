package services

import (
	"errors"

	"github.com/jakhongirov/lazuno/auth"
	"github.com/jakhongirov/lazuno/models"
	"gorm.io/gorm"
)

// Users implements account management and credential login for the
// admin panel. Privileged accounts are the only kind of user that exists.
type Users struct {
	db     *gorm.DB
	tokens *auth.TokenManager
}

func NewUsers(db *gorm.DB, tokens *auth.TokenManager) *Users {
	return &Users{db: db, tokens: tokens}
}

type CreateUserInput struct {
	Username string
	Password string
}

type UpdateUserInput struct {
	Username string
	Password string
}

func (s *Users) List(p PageParams) ([]models.User, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := p.apply(s.db.Model(&models.User{})).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Users) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateSuperAdmin registers a SUPER_ADMIN account and returns it with
// a freshly issued token.
func (s *Users) CreateSuperAdmin(in CreateUserInput) (*models.User, string, error) {
	return s.create(in, models.RoleSuperAdmin)
}

// CreateAdmin registers an ADMIN account and returns it with a token.
func (s *Users) CreateAdmin(in CreateUserInput) (*models.User, string, error) {
	return s.create(in, models.RoleAdmin)
}

func (s *Users) create(in CreateUserInput, role models.Role) (*models.User, string, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username: in.Username,
		Password: hash,
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and issues a token. Unknown usernames and
// wrong passwords both fail with ErrInvalidCredentials.
func (s *Users) Login(username, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Update overwrites only the provided fields. A new password is rehashed.
func (s *Users) Update(id uint, in UpdateUserInput) (*models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Users) Delete(id uint) error {
	user, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(user).Error
}
