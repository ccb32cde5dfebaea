package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"curador/internal/model"
	"curador/internal/repository"
	"curador/internal/storage"
	"curador/internal/suggestion"
	"curador/internal/vision"
)

var tracer = otel.Tracer("curador/internal/service")

var allowedImageExts = []string{".png", ".jpg", ".jpeg", ".webp"}

const maxCategoryLen = 100

// ImageUpload is the picture sent with an ingestion request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// IngestRequest holds the user supplied fields of a new object plus its image.
type IngestRequest struct {
	Name        string
	Description *string
	LocationID  *int64
	Image       *ImageUpload
}

// IngestResult is the stored object together with the suggestions used to fill it.
type IngestResult struct {
	SuggestedCategory *string       `json:"sugestao_categoria"`
	SuggestedTags     []string      `json:"sugestao_tags"`
	Object            *model.Object `json:"objeto_parcial"`
}

// ObjectService defines the use cases for cataloging objects.
type ObjectService interface {
	// Ingest stores the image, asks the vision model for suggestions and creates the
	// object. When the record cannot be created the stored image is removed again.
	Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error)

	// Create stores an object without image or suggestions.
	Create(ctx context.Context, in model.ObjectCreate) (*model.Object, error)

	List(ctx context.Context, f model.ObjectFilter, limit, offset int) ([]model.Object, error)
	Get(ctx context.Context, id int64) (*model.Object, error)

	// Update applies only the fields present in in; explicit nulls clear them.
	Update(ctx context.Context, id int64, in model.ObjectUpdate) (*model.Object, error)

	// Delete removes the record, then its image on a best-effort basis.
	Delete(ctx context.Context, id int64) (*model.Object, error)

	// OpenImage streams the image stored for an object.
	OpenImage(ctx context.Context, id int64) (io.ReadCloser, storage.ObjectInfo, error)
}

// ObjectOption customizes an ObjectService.
type ObjectOption func(*objectService)

// WithSuggestionMetrics counts suggestion outcomes on m.
func WithSuggestionMetrics(m *SuggestionMetrics) ObjectOption {
	return func(s *objectService) { s.metrics = m }
}

// WithImagePrefix sets the key prefix of stored images (default "images_objetos").
func WithImagePrefix(prefix string) ObjectOption {
	return func(s *objectService) { s.imagePrefix = prefix }
}

type objectService struct {
	repo        repository.ObjectRepository
	locations   repository.LocationRepository
	store       storage.Storage
	classifier  vision.Classifier
	log         *zap.Logger
	metrics     *SuggestionMetrics
	imagePrefix string
	now         func() time.Time
}

// NewObjectService constructs a new ObjectService.
func NewObjectService(
	repo repository.ObjectRepository,
	locations repository.LocationRepository,
	store storage.Storage,
	classifier vision.Classifier,
	log *zap.Logger,
	opts ...ObjectOption,
) ObjectService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &objectService{
		repo:        repo,
		locations:   locations,
		store:       store,
		classifier:  classifier,
		log:         log.Named("objects"),
		imagePrefix: "images_objetos",
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *objectService) Ingest(ctx context.Context, req IngestRequest) (*IngestResult, error) {
	ctx, span := tracer.Start(ctx, "ObjectService.Ingest")
	defer span.End()

	ext, err := checkImage(req.Image)
	if err != nil {
		return nil, err
	}
	fields := model.ObjectCreate{Name: req.Name, Description: req.Description, LocationID: req.LocationID}
	if err := validateStruct(fields); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(req.Image.Reader)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	key := path.Join(s.imagePrefix, uuid.NewString()+ext)
	info, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: req.Image.ContentType,
		Metadata:    map[string]string{"original-filename": req.Image.Filename},
	})
	if err != nil {
		span.SetStatus(codes.Error, "store image")
		return nil, fmt.Errorf("store image: %w", err)
	}
	span.SetAttributes(attribute.String("image.key", info.Key))

	sugg := suggestion.Parse(s.classify(ctx, data, req.Image.ContentType))
	s.metrics.observe(sugg.Source)
	span.SetAttributes(attribute.String("suggestion.source", sugg.Source.String()))

	fields.Category = s.fitCategory(sugg.Category)
	fields.Tags = sugg.Tags

	obj, err := s.create(ctx, fields, &info.Key)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist object")
		s.discardImage(ctx, info.Key, err)
		return nil, err
	}

	return &IngestResult{
		SuggestedCategory: fields.Category,
		SuggestedTags:     sugg.TagList(),
		Object:            obj,
	}, nil
}

// checkImage returns the original file extension of a valid upload.
func checkImage(img *ImageUpload) (string, error) {
	if img == nil || img.Reader == nil {
		return "", ErrImageRequired
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return "", fmt.Errorf("%w: uploaded file is not an image", ErrInvalidImage)
	}
	ext := filepath.Ext(img.Filename)
	if !slices.Contains(allowedImageExts, strings.ToLower(ext)) {
		return "", fmt.Errorf("%w: unsupported image format, use PNG, JPG, JPEG or WEBP", ErrInvalidImage)
	}
	return ext, nil
}

// classify never fails; model errors degrade to an empty reply.
func (s *objectService) classify(ctx context.Context, data []byte, mimeType string) string {
	ctx, span := tracer.Start(ctx, "vision.Classify")
	defer span.End()

	raw, err := s.classifier.Classify(ctx, data, mimeType)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, vision.ErrDisabled) {
			s.log.Debug("vision_classify_skipped")
		} else {
			s.log.Warn("vision_classify_failed", zap.Error(err))
		}
		return ""
	}
	return raw
}

// fitCategory truncates a suggested category to the column size.
func (s *objectService) fitCategory(category *string) *string {
	if category == nil || utf8.RuneCountInString(*category) <= maxCategoryLen {
		return category
	}
	c := string([]rune(*category)[:maxCategoryLen])
	s.log.Info("suggested_category_truncated", zap.Int("max", maxCategoryLen))
	return &c
}

// discardImage removes an image whose record was not created. It ignores
// cancellation of ctx so an aborted request still cleans up.
func (s *objectService) discardImage(ctx context.Context, key string, cause error) {
	if err := s.store.Delete(context.WithoutCancel(ctx), key); err != nil {
		s.log.Error("image_rollback_failed",
			zap.String("key", key),
			zap.NamedError("cause", cause),
			zap.Error(err),
		)
		return
	}
	s.log.Info("image_rolled_back", zap.String("key", key), zap.NamedError("cause", cause))
}

func (s *objectService) Create(ctx context.Context, in model.ObjectCreate) (*model.Object, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	return s.create(ctx, in, nil)
}

func (s *objectService) create(ctx context.Context, in model.ObjectCreate, imagePath *string) (*model.Object, error) {
	if err := s.ensureLocation(ctx, in.LocationID); err != nil {
		return nil, err
	}

	now := s.now()
	obj, err := s.repo.Create(ctx, &model.Object{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Tags:        in.Tags,
		ImagePath:   imagePath,
		LocationID:  in.LocationID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, locationMissing(*in.LocationID)
		}
		return nil, fmt.Errorf("create object: %w", err)
	}
	return obj, nil
}

func (s *objectService) List(ctx context.Context, f model.ObjectFilter, limit, offset int) ([]model.Object, error) {
	objs, err := s.repo.List(ctx, f, page(limit, offset))
	if err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}
	return objs, nil
}

func (s *objectService) Get(ctx context.Context, id int64) (*model.Object, error) {
	obj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return obj, nil
}

func (s *objectService) Update(ctx context.Context, id int64, in model.ObjectUpdate) (*model.Object, error) {
	obj, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name.Set {
		if in.Name.Value == nil {
			return nil, nullNotAllowed("nome")
		}
		if err := validateField("nome", *in.Name.Value, nameRules); err != nil {
			return nil, err
		}
		obj.Name = *in.Name.Value
	}
	if err := applyText(&obj.Description, in.Description, "descricao", "max=500"); err != nil {
		return nil, err
	}
	if err := applyText(&obj.Category, in.Category, "categoria", "max=100"); err != nil {
		return nil, err
	}
	if in.Tags.Set {
		obj.Tags = in.Tags.Value
	}
	if in.LocationID.Set {
		if err := s.ensureLocation(ctx, in.LocationID.Value); err != nil {
			return nil, err
		}
		obj.LocationID = in.LocationID.Value
	}
	obj.UpdatedAt = s.now()

	updated, err := s.repo.Update(ctx, obj)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		case errors.Is(err, repository.ErrForeignKey):
			return nil, locationMissing(*obj.LocationID)
		}
		return nil, fmt.Errorf("update object: %w", err)
	}
	return updated, nil
}

func applyText(dst **string, v model.Optional[string], field, rules string) error {
	if !v.Set {
		return nil
	}
	if v.Value != nil {
		if err := validateField(field, *v.Value, rules); err != nil {
			return err
		}
	}
	*dst = v.Value
	return nil
}

func (s *objectService) Delete(ctx context.Context, id int64) (*model.Object, error) {
	obj, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete object: %w", err)
	}

	if obj.ImagePath != nil && *obj.ImagePath != "" {
		if err := s.store.Delete(context.WithoutCancel(ctx), *obj.ImagePath); err != nil {
			s.log.Warn("image_delete_failed",
				zap.Int64("object_id", obj.ID),
				zap.String("key", *obj.ImagePath),
				zap.Error(err),
			)
		}
	}
	return obj, nil
}

func (s *objectService) OpenImage(ctx context.Context, id int64) (io.ReadCloser, storage.ObjectInfo, error) {
	obj, err := s.Get(ctx, id)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if obj.ImagePath == nil || *obj.ImagePath == "" {
		return nil, storage.ObjectInfo{}, ErrNotFound
	}

	rc, info, err := s.store.Get(ctx, *obj.ImagePath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("open image: %w", err)
	}
	return rc, info, nil
}

// ensureLocation checks that a referenced location exists. A nil id means no location.
func (s *objectService) ensureLocation(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	if _, err := s.locations.FindByID(ctx, *id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return locationMissing(*id)
		}
		return fmt.Errorf("find location: %w", err)
	}
	return nil
}

func locationMissing(id int64) error {
	return fmt.Errorf("%w: id %d", ErrLocationReference, id)
}
