package service

import (
	"errors"
	"log/slog"

	"Folks_Community/internal/model"
	"Folks_Community/internal/pkg"
	"Folks_Community/internal/repository/mysql"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo   *mysql.UserRepository
	secret []byte
	smtp   pkg.SMTPConfig
}

func NewUserService(db *gorm.DB, secret []byte, smtp pkg.SMTPConfig) *UserService {
	return &UserService{
		repo:   &mysql.UserRepository{DB: db},
		secret: secret,
		smtp:   smtp,
	}
}

// Signup creates the user and returns it with a signed access token.
func (s *UserService) Signup(name, email, password string) (*model.User, string, error) {
	_, err := s.repo.FindByEmail(email)
	if err == nil {
		return nil, "", pkg.Exists("email", "User with this email address already exists.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:       pkg.NewID(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := pkg.EncodeIdentity(s.secret, user.ID, user.Name, user.Email, user.CreatedAt)
	if err != nil {
		return nil, "", err
	}

	s.sendWelcome(user)
	return user, token, nil
}

// Signin verifies the password hash and issues a fresh token.
func (s *UserService) Signin(email, password string) (*model.User, string, error) {
	user, err := s.repo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", pkg.InvalidCredentials("email", "User with this email address does not exist.")
	}
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", pkg.InvalidCredentials("password", "The credentials you provided are invalid.")
	}

	token, err := pkg.EncodeIdentity(s.secret, user.ID, user.Name, user.Email, user.CreatedAt)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) sendWelcome(user *model.User) {
	if !s.smtp.Configured() {
		return
	}
	cfg, to, name := s.smtp, user.Email, user.Name
	go func() {
		if err := pkg.SendEmail(cfg, to, "Welcome", pkg.WelcomeEmailHTML(name)); err != nil {
			slog.Error("send welcome email", "to", to, "err", err)
		}
	}()
}
