package deploy

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	crd "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/foliokit/foliokit/config"
)

// BucketUploader pushes a built site directory to an S3 static-site bucket.
type BucketUploader interface {
	UploadDir(ctx context.Context, dir string) (string, error)
}

type S3Uploader struct {
	client *s3.Client
	cfg    *config.S3Config
	log    *slog.Logger
}

func NewS3Uploader(cfg *config.S3Config, log *slog.Logger) (*S3Uploader, error) {
	if cfg == nil || cfg.BucketName == "" {
		return nil, fmt.Errorf("s3 deploy requires deploy.s3 settings in foliokit.yaml")
	}
	log.Info("connecting to s3...")
	ctx := context.Background()

	sdkConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithCredentialsProvider(crd.NewStaticCredentialsProvider(cfg.AwsAccessKey, cfg.AwsSecretKey, "")),
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithBaseEndpoint(cfg.AwsBaseEndpoint))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	// LocalStack does not support virtual-host bucket addressing.
	var client *s3.Client
	if cfg.AwsAccessKey == "test" {
		log.Warn("test configuration for s3")
		client = s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(sdkConfig)
	}

	return &S3Uploader{client: client, cfg: cfg, log: log}, nil
}

// UploadDir walks the site directory and uploads every file with its content
// type, returning the bucket's website endpoint.
func (u *S3Uploader) UploadDir(ctx context.Context, dir string) (string, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if u.cfg.KeyPrefix != "" {
			key = strings.TrimSuffix(u.cfg.KeyPrefix, "/") + "/" + key
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &u.cfg.BucketName,
			Key:         &key,
			Body:        bytes.NewReader(body),
			ContentType: &contentType,
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		u.log.Debug("uploaded.", slog.String("key", key), slog.Int("bytes", len(body)))
		count++
		return nil
	})
	if err != nil {
		return "", err
	}

	u.log.Info("site uploaded to s3.", slog.Int("files", count))
	return fmt.Sprintf("http://%s.s3-website-%s.amazonaws.com", u.cfg.BucketName, u.cfg.Region), nil
}
