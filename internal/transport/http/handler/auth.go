package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gescon/internal/core/auth"
	"gescon/internal/domain"
	"gescon/internal/transport/http/httpez"
	"gescon/pkg/utils"
)

type loginIn struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginOut struct {
	AccessToken string `json:"access_token"`
}

// MountAuth enregistre POST /login sur le groupe public. Utilisateur
// inconnu et mauvais mot de passe renvoient le même message générique :
// pas d'énumération d'utilisateurs.
func MountAuth(public httpez.EZ, users domain.UserRepository, jwter *auth.JWTer) {
	httpez.Register(public, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			if in.Username == "" || in.Password == "" {
				return loginOut{}, httpez.BadRequest("Username and password are required")
			}

			u, err := users.FindByUsername(c.Request.Context(), in.Username)
			if err != nil {
				return loginOut{}, httpez.Internal("db error", err)
			}
			if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
				return loginOut{}, httpez.Unauthorized("Invalid username or password")
			}

			tok, err := jwter.Issue(u.Username, u.Role)
			if err != nil {
				return loginOut{}, httpez.Internal("issue token failed", err)
			}
			return loginOut{AccessToken: tok}, nil
		},
	})
}
