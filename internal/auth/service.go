package auth

import (
	"errors"
	"fmt"
	"time"

	"sales-crm-backend/internal/access"
	"sales-crm-backend/internal/config"
	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims represents JWT token claims
type Claims struct {
	UserID uuid.UUID   `json:"user_id"`
	Role   models.Role `json:"role"`
	Email  string      `json:"email"`
	jwt.RegisteredClaims
}

// Service provides authentication functionality
type Service struct {
	cfg       *config.Config
	userRepo  repository.UserRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewService creates a new authentication service
func NewService(cfg *config.Config, userRepo repository.UserRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *Service {
	return &Service{
		cfg:       cfg,
		userRepo:  userRepo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// SignupRequest represents the request to create an account
type SignupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	RefID           string `json:"refId" validate:"required"`
	Role            string `json:"role" validate:"required"`
	ContactNo       string `json:"contactNo,omitempty"`
	Location        string `json:"location,omitempty"`
	TeamName        string `json:"teamName,omitempty"`
}

// Signup creates a new account. The refId must match the shared secret
// configured for the requested role. A team lead signup also creates the
// lead's team in the same request. No session is issued.
func (s *Service) Signup(req *SignupRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Password != req.PasswordConfirm {
		return nil, apperrors.NewValidationError("passwordConfirm", "passwords do not match")
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	if err := s.checkRefID(role, req.RefID); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	// The team name is checked before the user row exists so a taken name
	// never leaves a team-less lead behind.
	teamName := req.TeamName
	if role == models.RoleTeamLead {
		if teamName == "" {
			teamName = req.Name + " Team"
		}
		if err := s.ensureTeamNameAvailable(teamName); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		ContactNo: req.ContactNo,
		Location:  req.Location,
		Role:      role,
		RefID:     req.RefID,
		Status:    models.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if role == models.RoleTeamLead {
		if err := s.createTeamForLead(user, teamName); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// ensureTeamNameAvailable rejects a team name that is already taken
func (s *Service) ensureTeamNameAvailable(teamName string) error {
	existing, err := s.teamRepo.GetByName(teamName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return apperrors.ErrTeamExists
	}
	return nil
}

// createTeamForLead creates the lead's team and points the lead at it
func (s *Service) createTeamForLead(lead *models.User, teamName string) error {
	team := &models.Team{
		Name:       teamName,
		TeamLeadID: lead.ID,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	return s.userRepo.UpdateFields(lead.ID, map[string]interface{}{"team_id": team.ID})
}

// checkRefID verifies the role-specific shared signup secret
func (s *Service) checkRefID(role models.Role, refID string) error {
	var want string
	switch role {
	case models.RoleSalesExecutive:
		want = s.cfg.ExecutiveRefID
	case models.RoleTeamLead:
		want = s.cfg.TeamLeadRefID
	case models.RoleManager:
		want = s.cfg.ManagerRefID
	}
	if want == "" || refID != want {
		return apperrors.ErrInvalidRefID
	}
	return nil
}

// Login verifies credentials and returns a signed token plus the user
func (s *Service) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateJWT issues a signed token carrying the user's id, role and email
func (s *Service) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpiresHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and verifies a token, returning its claims
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

// Caller builds the access-layer caller identity from token claims
func (c *Claims) Caller() access.Caller {
	return access.Caller{ID: c.UserID, Role: c.Role, Email: c.Email}
}

// CookieName returns the configured session cookie name
func (s *Service) CookieName() string {
	return s.cfg.CookieName
}

// CookieMaxAge returns the session cookie lifetime in seconds
func (s *Service) CookieMaxAge() int {
	return s.cfg.JWTExpiresHours * 3600
}

// CookieSecure reports whether the session cookie requires HTTPS
func (s *Service) CookieSecure() bool {
	return s.cfg.CookieSecure
}
