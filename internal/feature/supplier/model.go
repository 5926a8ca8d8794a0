package supplier

import (
	"gescon/internal/domain"
	"gescon/internal/feature/contract"
)

// SupplierModel mappe la table fournisseurs. La suppression d'un
// fournisseur cascade sur ses contrats (relation possédante) ; aucun
// endpoint ne supprime de fournisseur, la contrainte vit dans le schéma.
type SupplierModel struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	Nom     string `gorm:"uniqueIndex;size:255;not null"`
	Contact string `gorm:"size:255;not null"`
	Adresse string `gorm:"size:255;not null"`

	Contrats []contract.ContractModel `gorm:"foreignKey:FournisseurNom;references:Nom;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (SupplierModel) TableName() string { return "fournisseurs" }

func FromDomain(s domain.Supplier) SupplierModel {
	return SupplierModel{ID: s.ID, Nom: s.Nom, Contact: s.Contact, Adresse: s.Adresse}
}

func (m SupplierModel) ToDomain() domain.Supplier {
	return domain.Supplier{ID: m.ID, Nom: m.Nom, Contact: m.Contact, Adresse: m.Adresse}
}
