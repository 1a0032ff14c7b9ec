package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VidaPetServices01/petshop-manager/internal/domain/client"
	"github.com/VidaPetServices01/petshop-manager/internal/models"
	"github.com/VidaPetServices01/petshop-manager/internal/normalize"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Duplicate finder
// --------------------------------------------------

// FindDuplicate compara as colunas *_norm persistidas com a forma
// normalizada do candidato. Campos vazios não entram no predicado.
// ORDER BY id garante resposta determinística quando mais de um
// registro colide; o campo reportado segue a ordem fixa
// nome → cpf → telefone.
func (r *ClientGormRepository) FindDuplicate(
	ctx context.Context,
	cand domain.Candidate,
	excludeID uint,
) (*domain.DuplicateMatch, error) {

	nameNorm := normalize.Name(cand.Name)
	cpfNorm := normalize.Digits(cand.CPF)
	phoneNorm := normalize.Digits(cand.Phone)

	q := r.db.WithContext(ctx).Model(&models.Client{})

	pred := r.db.Session(&gorm.Session{NewDB: true})
	empty := true
	if nameNorm != "" {
		pred = pred.Or("name_norm = ?", nameNorm)
		empty = false
	}
	if cpfNorm != "" {
		pred = pred.Or("cpf_norm = ?", cpfNorm)
		empty = false
	}
	if phoneNorm != "" {
		pred = pred.Or("phone_norm = ?", phoneNorm)
		empty = false
	}
	if empty {
		return nil, nil
	}

	q = q.Where(pred)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var existing models.Client
	err := q.Order("id ASC").First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	match := &domain.DuplicateMatch{Client: &existing}
	switch {
	case nameNorm != "" && existing.NameNorm == nameNorm:
		match.Field = "name"
	case cpfNorm != "" && existing.CPFNorm == cpfNorm:
		match.Field = "cpf"
	default:
		match.Field = "phone"
	}

	return match, nil
}

func (r *ClientGormRepository) FindByField(
	ctx context.Context,
	field string,
	value string,
) (*models.Client, error) {

	norm := normalize.Field(field, value)
	if norm == "" {
		return nil, nil
	}

	var column string
	switch field {
	case "name":
		column = "name_norm"
	case "cpf":
		column = "cpf_norm"
	case "phone":
		column = "phone_norm"
	default:
		return nil, nil
	}

	var cl models.Client
	err := r.db.WithContext(ctx).
		Where(column+" = ?", norm).
		Order("id ASC").
		First(&cl).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *ClientGormRepository) FindPetByName(
	ctx context.Context,
	clientID uint,
	name string,
) (*models.Pet, error) {

	var pet models.Pet
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND LOWER(name) = LOWER(?)", clientID, name).
		Order("id ASC").
		First(&pet).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	cl *models.Client,
) error {
	fillNormalized(cl)
	return r.db.WithContext(ctx).Create(cl).Error
}

func (r *ClientGormRepository) CreatePet(
	ctx context.Context,
	pet *models.Pet,
) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	cl *models.Client,
) error {
	fillNormalized(cl)
	return r.db.WithContext(ctx).Save(cl).Error
}

func (r *ClientGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ClientGormRepository{db: tx})
	})
}

func fillNormalized(cl *models.Client) {
	cl.NameNorm = normalize.Name(cl.Name)
	cl.CPFNorm = normalize.Digits(cl.CPF)
	cl.PhoneNorm = normalize.Digits(cl.Phone)
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
