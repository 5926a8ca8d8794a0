package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gescon/internal/core/cache"
	"gescon/internal/stats"
)

// StatsHandler sert les cinq endpoints de statistiques. Chaque requête
// rend son PNG dans un buffer propre (aucun canevas partagé) ; le cache
// Redis est optionnel, nil signifie rendre à chaque appel.
type StatsHandler struct {
	Src   *stats.Source
	Cache *cache.Cache
	TTL   time.Duration
	Log   *zap.Logger
}

func (h *StatsHandler) Mount(g *gin.RouterGroup) {
	g.GET("/years/:year", h.yearly)
	g.GET("/type-contrat", h.byType)
	g.GET("/type-paiment", h.byModalite)
	g.GET("/performance", h.performance)
	g.GET("/fournisseur/:nom", h.supplierStatus)
}

func (h *StatsHandler) serve(c *gin.Context, key string, load func(context.Context) ([]byte, error)) {
	ctx := c.Request.Context()
	var png []byte
	var err error
	if h.Cache != nil {
		png, err = h.Cache.GetOrLoad(ctx, key, h.TTL, load)
	} else {
		png, err = load(ctx)
	}
	if err != nil {
		h.Log.Error("stats render", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// optionalYear lit ?year= ; absent ou non numérique vaut 0 (toutes années).
func optionalYear(c *gin.Context) int {
	y, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0
	}
	return y
}

func (h *StatsHandler) yearly(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Année invalide"})
		return
	}
	h.serve(c, fmt.Sprintf("stats:years:%d", year), func(ctx context.Context) ([]byte, error) {
		dates, err := h.Src.FinishDates(ctx, year)
		if err != nil {
			return nil, err
		}
		return stats.RenderMonthlyHistogram(year, stats.MonthBuckets(dates))
	})
}

func (h *StatsHandler) byType(c *gin.Context) {
	year := optionalYear(c)
	h.serve(c, fmt.Sprintf("stats:type:%d", year), func(ctx context.Context) ([]byte, error) {
		buckets, err := h.Src.CountByType(ctx, year)
		if err != nil {
			return nil, err
		}
		return stats.RenderPie("Répartition par type de contrat", buckets, stats.PaletteTypes)
	})
}

func (h *StatsHandler) byModalite(c *gin.Context) {
	year := optionalYear(c)
	h.serve(c, fmt.Sprintf("stats:paiment:%d", year), func(ctx context.Context) ([]byte, error) {
		buckets, err := h.Src.CountByModalite(ctx, year)
		if err != nil {
			return nil, err
		}
		return stats.RenderPie("Répartition par modalité de paiement", buckets, stats.PaletteModalites)
	})
}

func (h *StatsHandler) performance(c *gin.Context) {
	year := optionalYear(c)
	h.serve(c, fmt.Sprintf("stats:perf:%d", year), func(ctx context.Context) ([]byte, error) {
		buckets, err := h.Src.CountByFournisseur(ctx, year)
		if err != nil {
			return nil, err
		}
		return stats.RenderSupplierBars(buckets)
	})
}

func (h *StatsHandler) supplierStatus(c *gin.Context) {
	nom := c.Param("nom")
	h.serve(c, "stats:fournisseur:"+nom, func(ctx context.Context) ([]byte, error) {
		rows, err := h.Src.CountByEtat(ctx, nom)
		if err != nil {
			return nil, err
		}
		return stats.RenderPie(nom, stats.CollapseStatus(rows), stats.PaletteStatuses)
	})
}
