package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gescon/internal/domain"
	"gescon/internal/feature/contract"
)

func seedSupplier(t *testing.T, db *gorm.DB, nom string) {
	t.Helper()
	s := domain.Supplier{Nom: nom, Contact: "contact@exemple.tn", Adresse: "Tunis"}
	require.NoError(t, NewSupplierRepo(db).Create(context.Background(), &s))
}

func sampleContract(nom string) domain.Contract {
	return domain.Contract{
		Objet:            "Maintenance serveurs",
		Type:             "Maintenance",
		ModalitePaiement: "Mensuel",
		Montant:          1500.50,
		FournisseurNom:   nom,
		DateDebut:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateFin:          time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestContractCreateAssignsSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "SOTUTECH")
	r := NewContractRepo(db)
	ctx := context.Background()

	c1 := sampleContract("SOTUTECH")
	require.NoError(t, r.Create(ctx, &c1))
	assert.Equal(t, "GD-000001", c1.ID)

	c2 := sampleContract("SOTUTECH")
	require.NoError(t, r.Create(ctx, &c2))
	assert.Equal(t, "GD-000002", c2.ID)
}

func TestContractCreateIDsBeyondSixDigits(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "SOTUTECH")
	r := NewContractRepo(db)
	ctx := context.Background()

	// Au-delà de GD-999999 le suffixe passe à sept chiffres ; un max
	// lexical rendrait "GD-999999" et recalculerait 1000000 à chaque
	// insertion.
	seeded := contract.FromDomain(sampleContract("SOTUTECH"))
	seeded.ID = "GD-999999"
	require.NoError(t, db.Create(&seeded).Error)

	c1 := sampleContract("SOTUTECH")
	require.NoError(t, r.Create(ctx, &c1))
	assert.Equal(t, "GD-1000000", c1.ID)

	c2 := sampleContract("SOTUTECH")
	require.NoError(t, r.Create(ctx, &c2))
	assert.Equal(t, "GD-1000001", c2.ID)
}

func TestCreateDuplicateKeyIsTranslated(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "SOTUTECH")

	// Le retry d'insertion des contrats repose sur cette sentinelle :
	// une violation de clé doit ressortir comme gorm.ErrDuplicatedKey.
	m1 := contract.FromDomain(sampleContract("SOTUTECH"))
	m1.ID = "GD-000001"
	require.NoError(t, db.Create(&m1).Error)

	m2 := contract.FromDomain(sampleContract("SOTUTECH"))
	m2.ID = "GD-000001"
	err := db.Create(&m2).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestContractFindByID(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "SOTUTECH")
	r := NewContractRepo(db)
	ctx := context.Background()

	c := sampleContract("SOTUTECH")
	require.NoError(t, r.Create(ctx, &c))

	got, err := r.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.Objet, got.Objet)
	assert.Equal(t, domain.StatusOngoing, got.Etat)
	assert.True(t, got.DateFin.Equal(c.DateFin))

	missing, err := r.FindByID(ctx, "GD-999999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContractUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "SOTUTECH")
	r := NewContractRepo(db)
	ctx := context.Background()

	c := sampleContract("SOTUTECH")
	require.NoError(t, r.Create(ctx, &c))

	require.NoError(t, r.UpdateStatus(ctx, c.ID, domain.StatusCancelled))
	got, err := r.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusCancelled, got.Etat)

	// Repasser à suspendu écrase l'état précédent.
	require.NoError(t, r.UpdateStatus(ctx, c.ID, domain.StatusSuspended))
	got, err = r.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuspended, got.Etat)
}

func TestContractUpdateStatusNotFound(t *testing.T) {
	db := newTestDB(t)
	r := NewContractRepo(db)

	err := r.UpdateStatus(context.Background(), "GD-000042", domain.StatusCancelled)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContractList(t *testing.T) {
	db := newTestDB(t)
	seedSupplier(t, db, "SOTUTECH")
	r := NewContractRepo(db)
	ctx := context.Background()

	empty, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 0; i < 3; i++ {
		c := sampleContract("SOTUTECH")
		require.NoError(t, r.Create(ctx, &c))
	}
	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "GD-000001", all[0].ID)
	assert.Equal(t, "GD-000003", all[2].ID)
}

func TestSupplierCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := NewSupplierRepo(db)
	ctx := context.Background()

	s := domain.Supplier{Nom: "TUNINFO", Contact: "info@tuninfo.tn", Adresse: "Sfax"}
	require.NoError(t, r.Create(ctx, &s))
	assert.NotZero(t, s.ID)

	got, err := r.FindByNom(ctx, "TUNINFO")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Sfax", got.Adresse)

	missing, err := r.FindByNom(ctx, "INCONNU")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserCreateAndFind(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepo(db)
	ctx := context.Background()

	u := domain.User{Username: "amine", PasswordHash: "$2a$10$hash", Role: domain.RoleAdmin}
	require.NoError(t, r.Create(ctx, &u))
	assert.NotZero(t, u.UserID)

	got, err := r.FindByUsername(ctx, "amine")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RoleAdmin, got.Role)

	missing, err := r.FindByUsername(ctx, "personne")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
