// Package s3 guarda el snapshot de animales como un objeto en un bucket S3 compatible (AWS o MinIO).
package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"zookeepr-api/internal/domain/animals"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultKey    = "animals.json"
	defaultRegion = "us-east-1"
)

// API es el subconjunto del cliente S3 que usa el repo (permite fakes en tests).
type API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Config struct {
	Bucket    string
	Key       string // default animals.json
	Region    string // default us-east-1
	Endpoint  string // opcional (MinIO)
	PathStyle bool
}

type AnimalsRepo struct {
	client API
	bucket string
	key    string
}

// New crea el cliente con la cadena de credenciales por defecto de AWS.
func New(ctx context.Context, cfg Config) (*AnimalsRepo, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, goerr.New("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, goerr.Wrap(err, "load aws config")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewWithClient(client, cfg.Bucket, cfg.Key), nil
}

func NewWithClient(client API, bucket, key string) *AnimalsRepo {
	if key == "" {
		key = DefaultKey
	}
	return &AnimalsRepo{client: client, bucket: bucket, key: key}
}

// Load trata un objeto inexistente como colección vacía.
func (r *AnimalsRepo) Load(ctx context.Context) ([]animals.Animal, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &r.bucket, Key: &r.key})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return []animals.Animal{}, nil
		}
		return nil, goerr.Wrap(err, "get animals object", goerr.V("bucket", r.bucket), goerr.V("key", r.key))
	}
	defer out.Body.Close()

	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "read animals object", goerr.V("key", r.key))
	}
	return animals.UnmarshalSnapshot(b)
}

// Save reemplaza el objeto completo.
func (r *AnimalsRepo) Save(ctx context.Context, items []animals.Animal) error {
	b, err := animals.MarshalSnapshot(items)
	if err != nil {
		return err
	}
	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &r.bucket,
		Key:         &r.key,
		Body:        bytes.NewReader(b),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return goerr.Wrap(err, "put animals object", goerr.V("bucket", r.bucket), goerr.V("key", r.key))
	}
	return nil
}
