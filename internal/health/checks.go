package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/config"
	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/queue"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/redis/go-redis/v9"
)

type Endpoints struct {
	DB          *sql.DB
	RedisClient *redis.Client
	Queue       *queue.RabbitMQ
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "online-bookstore-platform",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(
			health.Config{
				Name:      "database",
				Timeout:   3 * time.Second,
				SkipOnErr: false,
				Check: postgres.New(postgres.Config{
					DSN: cfg.Database.GetDSN(),
				}),
			},
			health.Config{
				Name:      "redis",
				Timeout:   2 * time.Second,
				SkipOnErr: false,
				Check: healthRedis.New(
					healthRedis.Config{
						DSN: cfg.RedisConnect.GetDSN(),
					},
				),
			},
			health.Config{
				Name: "rabbitmq",
				// The API stays usable when the broker is down (emails are
				// best effort), so a failed check must not fail the probe.
				Timeout:   2 * time.Second,
				SkipOnErr: true,
				Check: func(ctx context.Context) error {
					if endpoints.Queue == nil {
						return fmt.Errorf("rabbitmq client is not initialized")
					}
					if err := endpoints.Queue.Ping(ctx); err != nil {
						return fmt.Errorf("failed to reach rabbitmq: %w", err)
					}
					return nil
				},
			},
		),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
