package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devsenior/property-service/internal/domain/entity"
	repo "github.com/devsenior/property-service/internal/domain/repository"
	"github.com/devsenior/property-service/pkg/helpers"
)

var ErrPropertyNotFound = errors.New("property not found")

const (
	cacheKeyAll     = "properties:all"
	cacheCityPrefix = "properties:city:"
	cacheTTL        = time.Minute
)

// Property change events published to RabbitMQ for downstream consumers.
const (
	EventPropertyCreated = "property.created"
	EventPropertyUpdated = "property.updated"
	EventPropertyDeleted = "property.deleted"
)

type PropertyEvent struct {
	Action   string      `json:"action"`
	Property PropertyDTO `json:"property"`
	At       time.Time   `json:"at"`
}

// PropertyService owns the lifecycle of listings. Redis, ES, RabbitMQ and GCS
// are optional side channels: a nil client disables the feature and a failure
// on any of them never fails the operation itself.
type PropertyService struct {
	Repo      repo.PropertyRepository
	Redis     *redis.Client
	Logger    *logrus.Logger
	ES        *elasticsearch.Client
	ESIndex   string
	Pub       *helpers.RabbitPublisher
	GCS       *storage.Client
	GCSBucket string
}

func NewPropertyService(r repo.PropertyRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, pub *helpers.RabbitPublisher, gcs *storage.Client, gcsBucket string) *PropertyService {
	return &PropertyService{
		Repo:      r,
		Redis:     rdb,
		Logger:    logger,
		ES:        es,
		ESIndex:   esIndex,
		Pub:       pub,
		GCS:       gcs,
		GCSBucket: gcsBucket,
	}
}

func cityKey(city string) string {
	return cacheCityPrefix + city
}

// FindAll returns every listing in store order. An empty store yields an
// empty slice, never an error.
func (s *PropertyService) FindAll(ctx context.Context) ([]PropertyDTO, error) {
	var cached []PropertyDTO
	if s.Redis != nil {
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, cacheKeyAll, &cached); err == nil && ok {
			return cached, nil
		}
	}

	list, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PropertyDTO, 0, len(list))
	for i := range list {
		out = append(out, toPropertyDTO(&list[i]))
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, cacheKeyAll, out, cacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("property list cache write failed")
		}
	}
	return out, nil
}

func (s *PropertyService) FindByID(ctx context.Context, id int64) (*PropertyDTO, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
		}
		return nil, err
	}
	dto := toPropertyDTO(p)
	return &dto, nil
}

// FindByCity matches the city byte-for-byte; an unknown city is an empty
// result, not an error.
func (s *PropertyService) FindByCity(ctx context.Context, city string) ([]PropertyDTO, error) {
	var cached []PropertyDTO
	if s.Redis != nil {
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, cityKey(city), &cached); err == nil && ok {
			return cached, nil
		}
	}

	list, err := s.Repo.GetByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	out := make([]PropertyDTO, 0, len(list))
	for i := range list {
		out = append(out, toPropertyDTO(&list[i]))
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, cityKey(city), out, cacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("city", city).Warn("property city cache write failed")
		}
	}
	return out, nil
}

func (s *PropertyService) Save(ctx context.Context, in CreatePropertyInput) (*PropertyDTO, error) {
	p := propertyFromCreate(in)
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"id": p.ID, "city": p.City}).Info("property created")
	}

	dto := toPropertyDTO(p)
	s.invalidateCache(ctx, p.City)
	s.indexProperty(ctx, p)
	s.publishEvent(ctx, EventPropertyCreated, dto)
	return &dto, nil
}

// Update verifies the id exists before writing so the caller always sees the
// service's not-found error rather than whatever the store would report.
// The write is a full replacement of every column except the id.
func (s *PropertyService) Update(ctx context.Context, id int64, in UpdatePropertyInput) (*PropertyDTO, error) {
	exists, err := s.Repo.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
	}

	p := propertyFromUpdate(id, in)
	if err := s.Repo.Update(ctx, p); err != nil {
		// The row can vanish between the check and the write.
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("id", id).Info("property updated")
	}

	dto := toPropertyDTO(p)
	s.invalidateCache(ctx, p.City)
	s.indexProperty(ctx, p)
	s.publishEvent(ctx, EventPropertyUpdated, dto)
	return &dto, nil
}

func (s *PropertyService) DeleteByID(ctx context.Context, id int64) error {
	// Fetch rather than a bare exists probe: the row's city is needed to
	// drop the listing's city cache entry after the delete.
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
		}
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("id", id).Info("property deleted")
	}

	s.invalidateCache(ctx, p.City)
	s.removeFromIndex(ctx, id)
	s.publishEvent(ctx, EventPropertyDeleted, PropertyDTO{ID: id})
	return nil
}

// ExistsByID is a side-effect-free probe; absence is a valid false, not an error.
func (s *PropertyService) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return s.Repo.ExistsByID(ctx, id)
}

// UploadImage stores the file in GCS and points the listing's imageUrl at it.
func (s *PropertyService) UploadImage(ctx context.Context, id int64, r io.Reader, filename, contentType string) (*PropertyDTO, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
		}
		return nil, err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, errors.New("gcs not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("properties", strconv.FormatInt(id, 10), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}

	p.ImageURL = url
	if err := s.Repo.Update(ctx, p); err != nil {
		// The listing can be deleted while the upload is in flight.
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w with id %d", ErrPropertyNotFound, id)
		}
		return nil, err
	}

	dto := toPropertyDTO(p)
	s.invalidateCache(ctx, p.City)
	s.indexProperty(ctx, p)
	return &dto, nil
}

// Search runs a multi_match query over the ES index. Without a configured
// client it degrades to an empty result.
func (s *PropertyService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"address^2", "city", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *PropertyService) invalidateCache(ctx context.Context, city string) {
	if s.Redis == nil {
		return
	}
	keys := []string{cacheKeyAll}
	if city != "" {
		keys = append(keys, cityKey(city))
	}
	if err := s.Redis.Del(ctx, keys...).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("property cache invalidation failed")
	}
}

func (s *PropertyService) indexProperty(ctx context.Context, p *entity.Property) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          p.ID,
		"address":     p.Address,
		"city":        p.City,
		"price":       p.Price,
		"bedrooms":    p.Bedrooms,
		"bathrooms":   p.Bathrooms,
		"image_url":   p.ImageURL,
		"description": p.Description,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(p.ID, 10), Body: strings.NewReader(string(b)), Refresh: "false"}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("id", p.ID).Warn("es index response error")
	}
}

func (s *PropertyService) removeFromIndex(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *PropertyService) publishEvent(ctx context.Context, action string, dto PropertyDTO) {
	if s.Pub == nil {
		return
	}
	ev := PropertyEvent{Action: action, Property: dto, At: time.Now().UTC()}
	if err := s.Pub.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", action).Warn("event publish failed")
	}
}
