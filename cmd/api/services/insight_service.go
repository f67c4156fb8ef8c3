package services

import (
	"context"

	"github.com/google/uuid"

	"gaon-interior/cmd/api/dto"
	"gaon-interior/datefmt"
	"gaon-interior/images"
	"gaon-interior/models"
	"gaon-interior/parser"
	"gaon-interior/repositories"
)

// InsightService encapsulates business logic for insight posts.
type InsightService struct {
	repo *repositories.InsightRepository
}

func NewInsightService(repo *repositories.InsightRepository) *InsightService {
	return &InsightService{repo: repo}
}

type ListInsightsInput struct {
	Page     int
	PageSize int
	Category string
}

func (s *InsightService) List(ctx context.Context, in ListInsightsInput) (dto.Pagination[dto.InsightDTO], error) {
	items, total, err := s.repo.List(ctx, in.Category, in.Page, in.PageSize)
	if err != nil {
		return dto.Pagination[dto.InsightDTO]{}, err
	}

	out := make([]dto.InsightDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toInsightDTO(it))
	}
	return dto.Pagination[dto.InsightDTO]{
		Data:     out,
		Page:     in.Page,
		PageSize: in.PageSize,
		Total:    total,
	}, nil
}

func (s *InsightService) Get(ctx context.Context, id string) (dto.InsightDTO, error) {
	in, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.InsightDTO{}, err
	}
	return toInsightDTO(*in), nil
}

func (s *InsightService) Create(ctx context.Context, req dto.UpsertInsightRequestDTO) (dto.InsightDTO, error) {
	in := BuildInsight(req)
	in.ID = uuid.NewString()
	if err := s.repo.Insert(ctx, &in); err != nil {
		return dto.InsightDTO{}, err
	}
	return toInsightDTO(in), nil
}

func (s *InsightService) Update(ctx context.Context, id string, req dto.UpsertInsightRequestDTO) (dto.InsightDTO, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.InsightDTO{}, err
	}

	in := BuildInsight(req)
	in.ID = existing.ID
	in.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, &in); err != nil {
		return dto.InsightDTO{}, err
	}
	return toInsightDTO(in), nil
}

func (s *InsightService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// BuildInsight maps an upsert request to a document: the date is normalized
// to canonical form on the way in, and when no thumbnail is supplied the
// first body image stands in. Both rules keep the migration a no-op for
// documents created through this path.
func BuildInsight(req dto.UpsertInsightRequestDTO) models.Insight {
	thumbnail := req.Thumbnail
	if thumbnail == "" {
		thumbnail = parser.FirstImageURL(req.Body, "")
	}

	return models.Insight{
		Title:     req.Title,
		Category:  req.Category,
		Body:      req.Body,
		Date:      datefmt.Normalize(req.Date),
		Thumbnail: thumbnail,
		URL:       req.URL,
	}
}

func toInsightDTO(in models.Insight) dto.InsightDTO {
	return dto.InsightDTO{
		ID:        in.ID,
		CreatedAt: in.CreatedAt,
		UpdatedAt: in.UpdatedAt,
		Title:     in.Title,
		Category:  in.Category,
		Body:      in.Body,
		Date:      in.Date,
		Thumbnail: images.Deliver(in.Thumbnail),
		URL:       in.URL,
	}
}
