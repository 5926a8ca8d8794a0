package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gescon/internal/core/auth"
	"gescon/internal/core/cache"
	"gescon/internal/core/logger"
	"gescon/internal/repo"
	"gescon/internal/stats"
	"gescon/internal/transport/http/handler"
	"gescon/internal/transport/http/httpez"
	mdw "gescon/internal/transport/http/middleware"
)

const banner = "<h1>Centre National D'informtique API</h1>"

// App regroupe les dépendances construites une fois au démarrage et
// injectées dans les handlers : pas d'état global.
type App struct {
	Log      *zap.Logger
	DB       *gorm.DB
	JWT      *auth.JWTer
	Cache    *cache.Cache // nil : pas de cache de stats
	StatsTTL time.Duration
}

func NewAPIEngine(app App) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(app.Log, true),
		mdw.Metrics(),
		logger.AccessLog(app.Log),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(banner))
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	contracts := repo.NewContractRepo(app.DB)
	suppliers := repo.NewSupplierRepo(app.DB)
	users := repo.NewUserRepo(app.DB)

	api := r.Group("/api")
	public := httpez.New(api)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(app.JWT))
	protected := httpez.New(authed)

	handler.MountAuth(public, users, app.JWT)
	handler.MountContracts(public, protected, contracts, suppliers)
	handler.MountSuppliers(protected, suppliers)

	statsH := &handler.StatsHandler{
		Src:   stats.NewSource(app.DB),
		Cache: app.Cache,
		TTL:   app.StatsTTL,
		Log:   app.Log,
	}
	statsH.Mount(authed.Group("/stats"))

	return r
}
