// Commande d'administration : crée un compte utilisateur directement en
// base. L'API ne propose volontairement aucun endpoint d'inscription.
//
// Usage :
//
//	seeduser -username admin -password secret [-role admin]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"gescon/internal/core/config"
	"gescon/internal/core/database"
	"gescon/internal/domain"
	"gescon/internal/feature/user"
	"gescon/internal/repo"
	"gescon/pkg/utils"
)

func main() {
	username := flag.String("username", "", "nom d'utilisateur (obligatoire)")
	password := flag.String("password", "", "mot de passe en clair (obligatoire)")
	role := flag.String("role", domain.RoleUser, "rôle : admin ou user")
	flag.Parse()

	if *username == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *role != domain.RoleAdmin && *role != domain.RoleUser {
		fmt.Fprintf(os.Stderr, "rôle invalide: %s\n", *role)
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connexion base: %v\n", err)
		os.Exit(1)
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&user.UserModel{}); err != nil {
			fmt.Fprintf(os.Stderr, "migration: %v\n", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	users := repo.NewUserRepo(db)

	if existing, err := users.FindByUsername(ctx, *username); err != nil {
		fmt.Fprintf(os.Stderr, "lecture utilisateur: %v\n", err)
		os.Exit(1)
	} else if existing != nil {
		fmt.Fprintf(os.Stderr, "l'utilisateur %q existe déjà\n", *username)
		os.Exit(1)
	}

	u := domain.User{
		Username:     *username,
		PasswordHash: utils.HashPassword(*password),
		Role:         *role,
	}
	if err := users.Create(ctx, &u); err != nil {
		fmt.Fprintf(os.Stderr, "création: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("utilisateur %q créé (id=%d, rôle=%s)\n", u.Username, u.UserID, u.Role)
}
