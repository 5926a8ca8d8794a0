package domain

import "context"

// Supplier (fournisseur) : le nom sert de clé métier référencée par les
// contrats, la clé primaire reste l'id auto-incrémenté.
type Supplier struct {
	ID      uint
	Nom     string
	Contact string
	Adresse string
}

type SupplierRepository interface {
	Create(ctx context.Context, s *Supplier) error
	FindByNom(ctx context.Context, nom string) (*Supplier, error)
}
