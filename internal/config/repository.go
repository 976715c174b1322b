package config

import (
	"context"

	"zookeepr-api/internal/adapters/storage/file"
	"zookeepr-api/internal/adapters/storage/memory"
	pg "zookeepr-api/internal/adapters/storage/postgres"
	"zookeepr-api/internal/adapters/storage/s3"
	"zookeepr-api/internal/adapters/storage/sqlite"
	"zookeepr-api/internal/domain/animals"
	"zookeepr-api/internal/platform/logger"

	"github.com/m-mizutani/goerr/v2"
)

// OpenRepository crea el backend del snapshot según el driver.
// El closer devuelto siempre es no-nil.
func (s Store) OpenRepository(ctx context.Context, log logger.Logger) (animals.Repository, func() error, error) {
	noop := func() error { return nil }

	switch s.Driver {
	case DriverFile, "":
		repo := file.NewAnimalsRepo(s.DataFile)
		log.Info("using file store", map[string]any{"path": repo.Path()})
		return repo, noop, nil

	case DriverMemory:
		log.Warn("using in-memory store, nothing is persisted", nil)
		return memory.NewAnimalsRepo(), noop, nil

	case DriverSQLite:
		repo, err := sqlite.Open(ctx, s.SQLitePath)
		if err != nil {
			return nil, noop, goerr.Wrap(err, "failed to open sqlite store")
		}
		log.Info("using sqlite store", map[string]any{"path": s.SQLitePath})
		return repo, repo.Close, nil

	case DriverPostgres:
		db, err := pg.Open(ctx, s.PostgresDSN)
		if err != nil {
			return nil, noop, goerr.Wrap(err, "failed to open postgres store")
		}
		repo, err := pg.NewAnimalsRepo(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, goerr.Wrap(err, "failed to prepare postgres store")
		}
		log.Info("using postgres store", nil)
		return repo, db.Close, nil

	case DriverS3:
		repo, err := s3.New(ctx, s3.Config{
			Bucket:    s.S3.Bucket,
			Key:       s.S3.Key,
			Region:    s.S3.Region,
			Endpoint:  s.S3.Endpoint,
			PathStyle: s.S3.PathStyle,
		})
		if err != nil {
			return nil, noop, goerr.Wrap(err, "failed to open s3 store")
		}
		log.Info("using s3 store", map[string]any{"bucket": s.S3.Bucket, "key": s.S3.Key})
		return repo, noop, nil
	}

	return nil, noop, goerr.Wrap(ErrInvalidConfig, "unknown store driver", goerr.V("driver", s.Driver))
}
