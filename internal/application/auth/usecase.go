package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
	"github.com/jhoicas/Distribucion-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. El alta de actores es una
// operación administrativa separada (actor.UseCase): aquí solo hay login.
type AuthUseCase struct {
	actorRepo repository.ActorRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(actorRepo repository.ActorRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{actorRepo: actorRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT con rol y región, y retorna
// token + actor. Un actor desactivado no puede iniciar sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	actor, err := uc.actorRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrActorNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(actor.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !actor.IsActive() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, actor.ID, actor.Role, actor.Region, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Actor: *ToActorResponse(actor),
	}, nil
}

// ToActorResponse mapea la entidad al DTO expuesto (sin hash).
func ToActorResponse(a *entity.Actor) *dto.ActorResponse {
	if a == nil {
		return nil
	}
	return &dto.ActorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Phone:     a.Phone,
		Email:     a.Email,
		Role:      a.Role,
		Region:    a.Region,
		ParentID:  a.ParentID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
