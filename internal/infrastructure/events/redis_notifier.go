// Package events publica señales de invalidación de colecciones por
// Redis pub/sub. Cualquier consumidor (UI, caché de lectura) se suscribe
// al canal y decide cómo refrescarse; el core solo anuncia "cambió".
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appbilling "github.com/jhoicas/Facturacion-api/internal/application/billing"
	"github.com/jhoicas/Facturacion-api/pkg/config"
	"github.com/jhoicas/Facturacion-api/pkg/logger"
)

var _ appbilling.ChangeNotifier = (*RedisNotifier)(nil)

// RedisNotifier implementa billing.ChangeNotifier con PUBLISH
// <channel>.<collection>. Best-effort: un fallo al publicar se registra
// y se descarta, nunca afecta la mutación ya confirmada.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

// NewRedisNotifier conecta a Redis y verifica la conexión.
func NewRedisNotifier(cfg config.RedisConfig, log *logger.Logger) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}

	channel := cfg.Channel
	if channel == "" {
		channel = "facturacion.changed"
	}
	return &RedisNotifier{client: client, channel: channel, log: log}, nil
}

// Changed publica la señal para la colección.
func (n *RedisNotifier) Changed(ctx context.Context, collection string) {
	topic := n.channel + "." + collection
	if err := n.client.Publish(ctx, topic, "changed").Err(); err != nil {
		n.log.Warn().Str("topic", topic).Err(err).Msg("no se pudo publicar señal de cambio")
	}
}

// Close cierra la conexión a Redis.
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
