package service

import (
	"tryout_backend/internal/config"
	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	AdminRepo *repository.AdminRepository
	Cfg       *config.Config
}

func NewAuthService(adminRepo *repository.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		AdminRepo: adminRepo,
		Cfg:       cfg,
	}
}

type LoginResult struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	admin, err := s.AdminRepo.FindByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:       admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Email:    admin.Email,
		Token:    token,
	}, nil
}

// Register creates an admin account; kept for bootstrap tooling, the
// route is not exposed in release mode.
func (s *AuthService) Register(username, password, name, email string) (*LoginResult, error) {
	exists, err := s.AdminRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrAdminExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Username: username,
		Password: string(hashed),
		Name:     name,
		Email:    email,
	}
	if err := s.AdminRepo.Create(admin); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(admin, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:       admin.ID,
		Username: admin.Username,
		Name:     admin.Name,
		Email:    admin.Email,
		Token:    token,
	}, nil
}

func (s *AuthService) Profile(adminID uint) (*model.Admin, error) {
	admin, err := s.AdminRepo.FindByID(adminID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
