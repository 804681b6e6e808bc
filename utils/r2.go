package utils

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	appconfig "pugorugh/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageResolver turns a dog's image_filename into a URL the client can load.
// A CDN base wins, then a presigned R2 GET, then the local /static path.
type ImageResolver struct {
	cdnBaseURL string
	prefix     string
	bucket     string
	ttl        time.Duration
	presigner  *s3.PresignClient
}

func NewImageResolver(ctx context.Context, cfg appconfig.ImageConfig) (*ImageResolver, error) {
	r := &ImageResolver{
		cdnBaseURL: cfg.CDNBaseURL,
		prefix:     cfg.Prefix,
		bucket:     cfg.Bucket,
		ttl:        cfg.URLTTL,
	}
	if r.cdnBaseURL != "" || !cfg.R2Enabled() {
		return r, nil
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.AccessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		o.UsePathStyle = true
	})
	r.presigner = s3.NewPresignClient(client)
	log.Printf("[IMAGES] Presigning R2 URLs from bucket %s (ttl %s)", cfg.Bucket, cfg.URLTTL)
	return r, nil
}

func (r *ImageResolver) key(filename string) string {
	if r.prefix == "" {
		return filename
	}
	return r.prefix + "/" + filename
}

// URL never fails: a presign error falls back to the static path.
func (r *ImageResolver) URL(ctx context.Context, filename string) string {
	filename = CleanFilename(filename)
	if filename == "" {
		return ""
	}
	key := r.key(filename)

	if r.cdnBaseURL != "" {
		return r.cdnBaseURL + "/" + (&url.URL{Path: key}).EscapedPath()
	}

	if r.presigner != nil {
		req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(r.bucket),
			Key:    aws.String(key),
		}, s3.WithPresignExpires(r.ttl))
		if err == nil {
			return req.URL
		}
		log.Printf("⚠️ [IMAGES] Presign failed for %s: %v", key, err)
	}

	return "/static/" + (&url.URL{Path: key}).EscapedPath()
}
