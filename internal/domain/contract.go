package domain

import (
	"context"
	"time"
)

// ContractStatus est l'état métier d'un contrat. La colonne etat_contrat
// est un enum nullable ; NULL signifie terminé ou en cours, la traduction
// se fait uniquement à la frontière de persistance.
type ContractStatus int

const (
	StatusOngoing ContractStatus = iota
	StatusCancelled
	StatusSuspended
)

const (
	etatCancelled = "résilé"
	etatSuspended = "suspendu"
)

func (s ContractStatus) String() string {
	switch s {
	case StatusCancelled:
		return etatCancelled
	case StatusSuspended:
		return etatSuspended
	}
	return ""
}

// ParseContractStatus n'accepte que les deux valeurs stockables.
// "resilie" sans accent, "RÉSILÉ" etc. sont rejetés.
func ParseContractStatus(s string) (ContractStatus, bool) {
	switch s {
	case etatCancelled:
		return StatusCancelled, true
	case etatSuspended:
		return StatusSuspended, true
	}
	return StatusOngoing, false
}

// Types de contrat et modalités de paiement admis (enums de la table contrats).
var (
	ContractTypes = []string{"Maintenance", "Travaux", "Étude", "Acquisition"}

	PaymentModalities = []string{
		"Mensuel", "Bimensuel", "Trimestriel", "Semestriel",
		"Annuel", "Par avance", "Post-payé",
	}
)

func ValidContractType(t string) bool {
	for _, v := range ContractTypes {
		if v == t {
			return true
		}
	}
	return false
}

func ValidPaymentModality(m string) bool {
	for _, v := range PaymentModalities {
		if v == m {
			return true
		}
	}
	return false
}

type Contract struct {
	ID               string // "GD-XXXXXX", assigné par la couche de persistance
	Objet            string
	Type             string
	ModalitePaiement string
	Montant          float64
	FournisseurNom   string
	DateDebut        time.Time
	DateFin          time.Time
	Etat             ContractStatus
}

type ContractRepository interface {
	List(ctx context.Context) ([]Contract, error)
	FindByID(ctx context.Context, id string) (*Contract, error)
	Create(ctx context.Context, c *Contract) error
	UpdateStatus(ctx context.Context, id string, s ContractStatus) error
}
