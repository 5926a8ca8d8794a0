package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"gescon/internal/domain"
	"gescon/internal/feature/contract"
)

type ContractRepo struct{ db *gorm.DB }

func NewContractRepo(db *gorm.DB) *ContractRepo { return &ContractRepo{db: db} }

func (r *ContractRepo) List(ctx context.Context) ([]domain.Contract, error) {
	var ms []contract.ContractModel
	if err := r.db.WithContext(ctx).Order("id").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Contract, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ToDomain())
	}
	return out, nil
}

func (r *ContractRepo) FindByID(ctx context.Context, id string) (*domain.Contract, error) {
	var m contract.ContractModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c := m.ToDomain()
	return &c, nil
}

// createRetries borne les relectures du max quand deux insertions
// concurrentes calculent le même identifiant.
const createRetries = 3

// Create assigne l'identifiant GD-XXXXXX dans la transaction d'insertion
// et le reporte dans c.ID : l'id renvoyé par la couche de persistance
// fait foi, l'appelant ne fournit jamais le sien. Deux transactions
// concurrentes peuvent lire le même max sous l'isolation par défaut ;
// la contrainte de clé primaire tranche alors, et la perdante relit.
func (r *ContractRepo) Create(ctx context.Context, c *domain.Contract) error {
	var err error
	for attempt := 0; attempt < createRetries; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var last sql.NullString
			// Tri par longueur puis valeur : "GD-1000000" dépasse bien
			// "GD-999999", là où un MAX purement lexical s'inverse.
			if err := tx.Model(&contract.ContractModel{}).
				Select("id").
				Order("LENGTH(id) DESC, id DESC").
				Limit(1).
				Scan(&last).Error; err != nil {
				return err
			}
			next := 1
			if last.Valid {
				if n, err := strconv.Atoi(strings.TrimPrefix(last.String, "GD-")); err == nil {
					next = n + 1
				}
			}
			m := contract.FromDomain(*c)
			m.ID = fmt.Sprintf("GD-%06d", next)
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			c.ID = m.ID
			return nil
		})
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// UpdateStatus ne touche que etat_contrat ; tout échec fait annuler la
// transaction. Deux patchs concurrents : dernier écrit gagnant.
func (r *ContractRepo) UpdateStatus(ctx context.Context, id string, s domain.ContractStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m contract.ContractModel
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&m).Update("etat_contrat", contract.StatusColumn(s)).Error
	})
}
