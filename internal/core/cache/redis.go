package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Cache garde les PNG rendus des endpoints de stats. Les graphiques sont
// des fonctions pures du contenu de la table ; pas d'invalidation à
// l'écriture, un graphique peut donc retarder d'au plus le TTL sur les
// contrats insérés entre-temps (60s avec stats.cache_ttl_sec par
// défaut). Sans Redis configuré, chaque requête rend à frais nouveaux.
type Cache struct {
	RDB *redis.Client
	sf  singleflight.Group
}

func New(addr, pass string, db int) *Cache {
	return &Cache{
		RDB: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
	}
}

// GetOrLoad lit la clé, sinon rend via load en dédupliquant les rendus
// concurrents de la même clé (singleflight).
func (c *Cache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]byte, error)) ([]byte, error) {
	if b, err := c.RDB.Get(ctx, key).Bytes(); err == nil {
		return b, nil
	}
	v, err, _ := c.sf.Do(key, func() (any, error) {
		b, e := load(ctx)
		if e != nil {
			return nil, e
		}
		_ = c.RDB.Set(ctx, key, b, ttl).Err()
		return b, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
