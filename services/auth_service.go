package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"qr-inventory/constants"
	"qr-inventory/models"
	"qr-inventory/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(email string, password string) error
	Login(email string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository repositories.IAuthRepository
}

func NewAuthService(repository repositories.IAuthRepository) IAuthService {
	return &AuthService{repository: repository}
}

// Signup hashes the password and creates the user. The first registered user
// becomes an admin; everyone after that gets the plain user role.
func (s *AuthService) Signup(email string, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	count, err := s.repository.CountUsers()
	if err != nil {
		return err
	}
	role := constants.RoleUser
	if count == 0 {
		role = constants.RoleAdmin
	}

	user := models.User{
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	return s.repository.CreateUser(user)
}

func (s *AuthService) Login(email string, password string) (*string, error) {
	foundUser, err := s.repository.FindUser(email)
	if err != nil {
		if err.Error() == constants.ErrUserNotFound {
			return nil, errors.New(constants.ErrInvalidCredentials)
		}
		return nil, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password))
	if err != nil {
		return nil, errors.New(constants.ErrInvalidCredentials)
	}

	token, err := CreateToken(foundUser.ID, foundUser.Email, foundUser.Role)
	if err != nil {
		return nil, err
	}

	return token, nil
}

func CreateToken(userID uint, email string, role string) (*string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("SECRET_KEY")))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("SECRET_KEY")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	exp, ok := claims["exp"].(float64)
	if !ok || float64(time.Now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return s.repository.FindUser(email)
}
