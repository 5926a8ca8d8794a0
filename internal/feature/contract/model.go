package contract

import (
	"time"

	"gescon/internal/domain"
)

// ContractModel mappe la table contrats. L'état est stocké comme enum
// nullable (NULL = terminé/en cours), la variante métier vit dans domain.
type ContractModel struct {
	ID               string    `gorm:"primaryKey;type:varchar(20)"`
	Objet            string    `gorm:"size:255;not null"`
	Type             string    `gorm:"type:varchar(32);not null"`
	ModalitePaiement string    `gorm:"column:modalite_paiement;type:varchar(32);not null"`
	Montant          float64   `gorm:"type:decimal(10,2);not null"`
	FournisseurNom   string    `gorm:"column:fournisseur_nom;size:255;not null;index"`
	DateDebut        time.Time `gorm:"column:date_debut;type:date;not null"`
	DateFin          time.Time `gorm:"column:date_fin;type:date;not null;index"`
	EtatContrat      *string   `gorm:"column:etat_contrat;type:varchar(16)"`
}

func (ContractModel) TableName() string { return "contrats" }

func FromDomain(c domain.Contract) ContractModel {
	m := ContractModel{
		ID:               c.ID,
		Objet:            c.Objet,
		Type:             c.Type,
		ModalitePaiement: c.ModalitePaiement,
		Montant:          c.Montant,
		FournisseurNom:   c.FournisseurNom,
		DateDebut:        c.DateDebut,
		DateFin:          c.DateFin,
	}
	m.EtatContrat = StatusColumn(c.Etat)
	return m
}

func (m ContractModel) ToDomain() domain.Contract {
	c := domain.Contract{
		ID:               m.ID,
		Objet:            m.Objet,
		Type:             m.Type,
		ModalitePaiement: m.ModalitePaiement,
		Montant:          m.Montant,
		FournisseurNom:   m.FournisseurNom,
		DateDebut:        m.DateDebut,
		DateFin:          m.DateFin,
	}
	if m.EtatContrat != nil {
		if s, ok := domain.ParseContractStatus(*m.EtatContrat); ok {
			c.Etat = s
		}
	}
	return c
}

// StatusColumn traduit la variante métier vers la colonne nullable.
func StatusColumn(s domain.ContractStatus) *string {
	if s == domain.StatusOngoing {
		return nil
	}
	v := s.String()
	return &v
}
