package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"choreboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLoginTaken = errors.New("login already registered")
	ErrEmailTaken = errors.New("email already registered")
)

// LoginResult is the structured outcome of a login attempt. Failed
// attempts are business outcomes, not HTTP errors: handlers always
// serialize this with status 200.
type LoginResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
}

type AuthUserRepository interface {
	FindByLogin(login string) (models.User, error)
	FindByEmail(email string) (models.User, error)
	ExistsByLogin(login string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// HashPassword returns the hex SHA-256 digest of a password. The stored
// credential format is a bare digest, compared byte for byte.
func HashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

func (service *AuthService) Login(login string, password string) (LoginResult, error) {
	user, err := service.users.FindByLogin(login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginResult{Success: false, Message: "user not found"}, nil
	}
	if err != nil {
		return LoginResult{}, err
	}

	if user.AccountKind == models.AccountExternal {
		return LoginResult{Success: false, Message: "this user has an external account, use the external login"}, nil
	}

	if user.PasswordHash != HashPassword(password) {
		return LoginResult{Success: false, Message: "invalid password"}, nil
	}

	return LoginResult{Success: true, Message: "login successful", User: &user}, nil
}

// LoginExternal signs in by email and auto-provisions an external
// account on first sight.
func (service *AuthService) LoginExternal(email string) (LoginResult, error) {
	user, err := service.users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := models.User{
			Name:        DisplayNameFromEmail(email),
			Login:       email,
			Email:       email,
			AccountKind: models.AccountExternal,
		}
		if err := service.users.Create(&created); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{Success: true, Message: "user created and logged in", User: &created}, nil
	}
	if err != nil {
		return LoginResult{}, err
	}

	if user.AccountKind != models.AccountExternal {
		return LoginResult{Success: false, Message: "this email belongs to a simple account, use login and password"}, nil
	}

	return LoginResult{Success: true, Message: "login successful", User: &user}, nil
}

func (service *AuthService) CreateSimple(name string, login string, password string) (models.User, error) {
	taken, err := service.users.ExistsByLogin(login)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrLoginTaken
	}

	user := models.User{
		Name:         name,
		Login:        login,
		PasswordHash: HashPassword(password),
		AccountKind:  models.AccountSimple,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) CreateExternal(name string, email string) (models.User, error) {
	taken, err := service.users.ExistsByEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrEmailTaken
	}

	user := models.User{
		Name:        name,
		Login:       email,
		Email:       email,
		AccountKind: models.AccountExternal,
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DisplayNameFromEmail derives a human name from the local part of an
// email address: dots become spaces and each word is title-cased.
func DisplayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	words := strings.Split(local, ".")
	for index, word := range words {
		if word == "" {
			continue
		}
		words[index] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
