package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gescon/internal/domain"
	"gescon/internal/transport/http/httpez"
)

type supplierIn struct {
	Nom     string `json:"nom"`
	Contact string `json:"contact"`
	Adresse string `json:"adresse"`
}

func MountSuppliers(protected httpez.EZ, suppliers domain.SupplierRepository) {
	httpez.Register(protected, httpez.Action[supplierIn, gin.H]{
		Method: http.MethodPost,
		Path:   "/add-fournisseurs",
		Binder: httpez.BindJSON,
		Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *supplierIn) (gin.H, error) {
			// Message par champ, comme le parseur de requête d'origine.
			if in.Nom == "" {
				return nil, httpez.BadRequest("Le nom du fournisseur est requis")
			}
			if in.Contact == "" {
				return nil, httpez.BadRequest("Le contact du fournisseur est requis")
			}
			if in.Adresse == "" {
				return nil, httpez.BadRequest("L'adresse du fournisseur est requise")
			}

			existing, err := suppliers.FindByNom(c.Request.Context(), in.Nom)
			if err != nil {
				return nil, httpez.Internal("db error", err)
			}
			if existing != nil {
				return nil, httpez.Conflict("Le fournisseur existe déjà")
			}

			s := domain.Supplier{Nom: in.Nom, Contact: in.Contact, Adresse: in.Adresse}
			if err := suppliers.Create(c.Request.Context(), &s); err != nil {
				return nil, httpez.Internal(err.Error(), err)
			}
			return gin.H{"msg": "Le fournisseur a été ajouté avec succès"}, nil
		},
	})
}
