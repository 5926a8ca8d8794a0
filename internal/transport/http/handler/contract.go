package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gescon/internal/domain"
	"gescon/internal/feature/contract"
	"gescon/internal/transport/http/httpez"
)

const dateLayout = "2006-01-02"

type contractIn struct {
	ID               string  `json:"id"` // ignoré : l'id est assigné côté persistance
	Objet            string  `json:"objet"`
	Type             string  `json:"type"`
	ModalitePaiement string  `json:"modalite_paiement"`
	Montant          float64 `json:"montant"`
	FournisseurNom   string  `json:"fournisseur_nom"`
	DateDebut        string  `json:"date_debut"`
	DateFin          string  `json:"date_fin"`
}

type contractOut struct {
	ID               string  `json:"id"`
	Objet            string  `json:"objet"`
	Type             string  `json:"type"`
	ModalitePaiement string  `json:"modalite_paiement"`
	Montant          float64 `json:"montant"`
	FournisseurNom   string  `json:"fournisseur_nom"`
	DateDebut        string  `json:"date_debut"`
	DateFin          string  `json:"date_fin"`
	EtatContrat      *string `json:"etat_contrat"`
}

func toContractOut(c domain.Contract) contractOut {
	return contractOut{
		ID:               c.ID,
		Objet:            c.Objet,
		Type:             c.Type,
		ModalitePaiement: c.ModalitePaiement,
		Montant:          c.Montant,
		FournisseurNom:   c.FournisseurNom,
		DateDebut:        c.DateDebut.Format(dateLayout),
		DateFin:          c.DateFin.Format(dateLayout),
		EtatContrat:      contract.StatusColumn(c.Etat),
	}
}

type patchIn struct {
	ID          string `json:"id"`
	EtatContrat string `json:"etat_contrat"`
}

// MountContracts : GET /contracts/ est public, POST /contracts/ et
// PATCH /patch-contract exigent un bearer token.
func MountContracts(public, protected httpez.EZ, contracts domain.ContractRepository, suppliers domain.SupplierRepository) {
	httpez.Register(public, httpez.Action[struct{}, []contractOut]{
		Method: http.MethodGet,
		Path:   "/contracts/",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]contractOut, error) {
			// Pas de pagination : scan complet à chaque appel.
			cs, err := contracts.List(c.Request.Context())
			if err != nil {
				return nil, httpez.Internal("db error", err)
			}
			out := make([]contractOut, 0, len(cs))
			for _, v := range cs {
				out = append(out, toContractOut(v))
			}
			return out, nil
		},
	})

	httpez.Register(protected, httpez.Action[contractIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/contracts/",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *contractIn) (gin.H, error) {
			// Toute la validation précède la moindre écriture.
			if in.Objet == "" || in.Type == "" || in.ModalitePaiement == "" ||
				in.Montant == 0 || in.FournisseurNom == "" ||
				in.DateDebut == "" || in.DateFin == "" {
				return nil, httpez.BadRequest("Les données sont incomplètes")
			}
			if !domain.ValidContractType(in.Type) {
				return nil, httpez.BadRequest(fmt.Sprintf("Type de contrat invalide: %s", in.Type))
			}
			if !domain.ValidPaymentModality(in.ModalitePaiement) {
				return nil, httpez.BadRequest(fmt.Sprintf("Modalité de paiement invalide: %s", in.ModalitePaiement))
			}
			debut, err := time.Parse(dateLayout, in.DateDebut)
			if err != nil {
				return nil, httpez.BadRequest("Format de date invalide (AAAA-MM-JJ attendu)")
			}
			fin, err := time.Parse(dateLayout, in.DateFin)
			if err != nil {
				return nil, httpez.BadRequest("Format de date invalide (AAAA-MM-JJ attendu)")
			}

			f, err := suppliers.FindByNom(c.Request.Context(), in.FournisseurNom)
			if err != nil {
				return nil, httpez.Internal("db error", err)
			}
			if f == nil {
				return nil, httpez.NotFound("Le fournisseur n'existe pas")
			}

			nc := domain.Contract{
				Objet:            in.Objet,
				Type:             in.Type,
				ModalitePaiement: in.ModalitePaiement,
				Montant:          in.Montant,
				FournisseurNom:   in.FournisseurNom,
				DateDebut:        debut,
				DateFin:          fin,
			}
			if err := contracts.Create(c.Request.Context(), &nc); err != nil {
				return nil, httpez.Internal(err.Error(), err)
			}
			return gin.H{"msg": "Le contrat a été ajouté avec succès", "id": nc.ID}, nil
		},
	})

	httpez.Register(protected, httpez.Action[patchIn, gin.H]{
		Method: http.MethodPatch,
		Path:   "/patch-contract",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *patchIn) (gin.H, error) {
			if in.EtatContrat == "" {
				return nil, httpez.BadRequest("Le champ 'etat_contrat' est requis")
			}
			status, ok := domain.ParseContractStatus(in.EtatContrat)
			if !ok {
				return nil, httpez.BadRequest(fmt.Sprintf(
					"Valeur de 'etat_contrat' invalide: %s. Les valeurs valides sont: 'résilé', 'suspendu'.",
					in.EtatContrat))
			}

			existing, err := contracts.FindByID(c.Request.Context(), in.ID)
			if err != nil {
				return nil, httpez.Internal("db error", err)
			}
			if existing == nil {
				return nil, httpez.NotFound("Contrat introuvable")
			}

			if err := contracts.UpdateStatus(c.Request.Context(), in.ID, status); err != nil {
				return nil, httpez.Internal(
					fmt.Sprintf("Erreur lors de la mise à jour du contrat: %s", err.Error()), err)
			}
			return gin.H{"msg": fmt.Sprintf(
				"L'état du contrat %s a été mis à jour avec succès à '%s'", in.ID, in.EtatContrat)}, nil
		},
	})
}
