package actor

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Distribucion-api/internal/application/auth"
	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/hierarchy"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// UseCase operaciones administrativas sobre la jerarquía de actores:
// alta, desactivación (soft) y reasignación lateral de field officers.
type UseCase struct {
	repo repository.ActorRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.ActorRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create da de alta un actor validando rol, región y padre contra la
// jerarquía. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Create(in dto.CreateActorRequest) (*dto.ActorResponse, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	capability, ok := entity.CapabilityFor(in.Role)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	if capability.NeedsRegion && in.Region == "" {
		return nil, domain.ErrInvalidInput
	}

	var parent *entity.Actor
	if in.ParentID != "" {
		var err error
		parent, err = uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
	}
	if err := hierarchy.ValidateParent(in.Role, in.Region, parent); err != nil {
		return nil, err
	}

	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	actor := &entity.Actor{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Region:       in.Region,
		ParentID:     in.ParentID,
		Status:       entity.ActorStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(actor); err != nil {
		return nil, err
	}
	return auth.ToActorResponse(actor), nil
}

// Deactivate marca el actor como inactive. Nunca se borra: las ventas y
// comisiones históricas lo siguen referenciando.
func (uc *UseCase) Deactivate(id string) error {
	actor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if actor == nil {
		return domain.ErrActorNotFound
	}
	return uc.repo.Deactivate(id)
}

// Reassign mueve un field officer bajo otro team leader de la misma región.
// Solo cambia parent_id: el historial de asignaciones, ventas y comisiones
// queda atribuido al TL vigente en cada venta.
func (uc *UseCase) Reassign(foID, newTeamLeaderID string) (*dto.ActorResponse, error) {
	fo, err := uc.repo.GetByID(foID)
	if err != nil {
		return nil, err
	}
	newTL, err := uc.repo.GetByID(newTeamLeaderID)
	if err != nil {
		return nil, err
	}
	if err := hierarchy.ValidateReassignment(fo, newTL); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateParent(fo.ID, newTL.ID); err != nil {
		return nil, err
	}
	fo.ParentID = newTL.ID
	return auth.ToActorResponse(fo), nil
}

// GetByID obtiene un actor por ID.
func (uc *UseCase) GetByID(id string) (*dto.ActorResponse, error) {
	actor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrActorNotFound
	}
	return auth.ToActorResponse(actor), nil
}

// List lista actores con filtros de rol, región y padre.
func (uc *UseCase) List(filter repository.ActorFilter) ([]*dto.ActorResponse, error) {
	actors, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActorResponse, 0, len(actors))
	for _, a := range actors {
		out = append(out, auth.ToActorResponse(a))
	}
	return out, nil
}
