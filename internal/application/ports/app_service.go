package ports

import "context"

type (
	Status struct {
		Cache bool `json:"cache"`
		DB    bool `json:"db"`
	}
	Stats struct {
		Users int64 `json:"users"`
		Files int64 `json:"files"`
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
)

type AppService interface {
	Status(ctx context.Context) Status
	Stats(ctx context.Context) (Stats, error)
}
