package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cookmate/backend/internal/models"
)

const presignExpiry = 15 * time.Minute

// Presigner issues temporary GET URLs for objects in one bucket
type Presigner interface {
	GeneratePresignedURL(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
	Bucket() string
}

// ImageResolver turns the stored image field into a URL a browser can load.
// Dataset values are cleaned; s3:// references and bare keys are presigned.
type ImageResolver struct {
	presigner Presigner
	log       *zap.Logger
}

// NewImageResolver accepts a nil presigner, in which case only URL cleanup happens.
func NewImageResolver(presigner Presigner, log *zap.Logger) *ImageResolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageResolver{presigner: presigner, log: log}
}

func (r *ImageResolver) Resolve(ctx context.Context, raw string) string {
	raw = strings.TrimSpace(raw)

	key, ok := r.objectKey(raw)
	if !ok {
		return models.CleanImageURL(raw)
	}

	url, err := r.presigner.GeneratePresignedURL(ctx, key, presignExpiry)
	if err != nil {
		r.log.Warn("presign recipe image", zap.String("key", key), zap.Error(err))
		return models.FallbackImageURL
	}
	return url
}

func (r *ImageResolver) objectKey(raw string) (string, bool) {
	if r.presigner == nil || raw == "" {
		return "", false
	}
	if rest, found := strings.CutPrefix(raw, "s3://"); found {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket != r.presigner.Bucket() || key == "" {
			return "", false
		}
		return key, true
	}
	// bare object keys look like paths, never like URLs or R vectors
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "c(") || strings.ContainsAny(raw, " ,\"") {
		return "", false
	}
	return strings.TrimPrefix(raw, "/"), true
}
