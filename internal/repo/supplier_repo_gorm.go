package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gescon/internal/domain"
	"gescon/internal/feature/supplier"
)

type SupplierRepo struct{ db *gorm.DB }

func NewSupplierRepo(db *gorm.DB) *SupplierRepo { return &SupplierRepo{db: db} }

func (r *SupplierRepo) Create(ctx context.Context, s *domain.Supplier) error {
	m := supplier.FromDomain(*s)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	s.ID = m.ID
	return nil
}

func (r *SupplierRepo) FindByNom(ctx context.Context, nom string) (*domain.Supplier, error) {
	var m supplier.SupplierModel
	err := r.db.WithContext(ctx).First(&m, "nom = ?", nom).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s := m.ToDomain()
	return &s, nil
}
