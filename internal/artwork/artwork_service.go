package artwork

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/vetrivel962969-dotcom/Paperid/internal/model"
	"github.com/vetrivel962969-dotcom/Paperid/internal/pkg/apperror"
	"go.uber.org/zap"
)

const (
	MaxSize = 5 << 20
	folder  = "paperid/artwork"
)

var allowedTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

type Service interface {
	Upload(ctx context.Context, userID, filename string, data []byte) (model.Artwork, error)
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	if store == nil {
		store = InlineStore{}
	}
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{store: store, logger: l.Named("artwork.service")}
}

// Upload sniffs the content type from the bytes; the filename only
// contributes to the public id.
func (s *service) Upload(ctx context.Context, userID, filename string, data []byte) (model.Artwork, error) {
	if len(data) == 0 {
		return model.Artwork{}, ErrFileRequired
	}
	if len(data) > MaxSize {
		return model.Artwork{}, ErrFileTooLarge
	}
	contentType := http.DetectContentType(data)
	if _, ok := allowedTypes[contentType]; !ok {
		return model.Artwork{}, ErrUnsupportedType
	}

	owner := userID
	if owner == "" {
		owner = "guest"
	}
	publicID := owner + "-" + slug(filename) + "-" + uuid.NewString()[:8]

	url, err := s.store.Put(ctx, folder, publicID, contentType, data)
	if err != nil {
		s.logger.Error("artwork upload failed",
			zap.String("public_id", publicID),
			zap.Error(err),
		)
		return model.Artwork{}, apperror.Wrap(ErrUploadFailed, err)
	}

	s.logger.Info("artwork uploaded",
		zap.String("public_id", publicID),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)),
	)

	return model.Artwork{
		URL:         url,
		PublicID:    publicID,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

func slug(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "artwork"
	}
	if len(out) > 32 {
		out = strings.TrimRight(out[:32], "-")
	}
	return out
}
