package auth

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-pos/internal/application/dto"
	"github.com/tu-usuario/inventario-pos/internal/domain"
	"github.com/tu-usuario/inventario-pos/internal/domain/entity"
	"github.com/tu-usuario/inventario-pos/internal/domain/repository"
	"github.com/tu-usuario/inventario-pos/pkg/jwt"
	"github.com/tu-usuario/inventario-pos/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, login y perfil.
type UseCase struct {
	userRepo  repository.UserRepository
	auditRepo repository.AuditLogRepository
	jwtCfg    JWTConfig
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, auditRepo repository.AuditLogRepository, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, auditRepo: auditRepo, jwtCfg: jwtCfg, log: log}
}

// Register crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *UseCase) Register(in dto.RegisterRequest) (*entity.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{"staff"}
	}
	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Roles:        roles,
		IsActive:     true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica username/password, actualiza last_login, emite JWT y deja
// un registro LOGIN en la bitácora de auditoría.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = now.Format(time.RFC3339)
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	changes, _ := json.Marshal(map[string]string{"last_login": user.LastLogin})
	auditErr := uc.auditRepo.Create(&entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     user.ID,
		Username:   user.Username,
		ActionType: "LOGIN",
		EntityType: "user",
		EntityID:   user.ID,
		Changes:    changes,
		Timestamp:  now,
		CreatedAt:  now,
	})
	if auditErr != nil {
		// El login ya es válido; un fallo en la bitácora no lo invalida.
		uc.log.Warn().
			Err(auditErr).
			Str("user_id", user.ID).
			Str("username", user.Username).
			Msg("no se pudo registrar la entrada de auditoría del login")
	}

	return &dto.LoginResponse{Token: token, User: *user}, nil
}

// Me obtiene el usuario autenticado por el ID del token.
func (uc *UseCase) Me(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
