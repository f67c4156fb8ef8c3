package services

import (
	"context"

	"github.com/google/uuid"

	"gaon-interior/cmd/api/dto"
	"gaon-interior/images"
	"gaon-interior/models"
	"gaon-interior/repositories"
)

// ProjectService encapsulates business logic for portfolio projects.
type ProjectService struct {
	repo *repositories.ProjectRepository
}

func NewProjectService(repo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]dto.ProjectDTO, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProjectDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toProjectDTO(p))
	}
	return out, nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (dto.ProjectDTO, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ProjectDTO{}, err
	}
	return toProjectDTO(*p), nil
}

func (s *ProjectService) Create(ctx context.Context, req dto.UpsertProjectRequestDTO) (dto.ProjectDTO, error) {
	// 새 프로젝트는 목록 끝에 붙인다.
	existing, err := s.repo.List(ctx)
	if err != nil {
		return dto.ProjectDTO{}, err
	}

	p := models.Project{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Location: req.Location,
		Area:     req.Area,
		Scope:    req.Scope,
		Cover:    req.Cover,
		Gallery:  req.Gallery,
		Order:    len(existing),
	}
	if err := s.repo.Insert(ctx, &p); err != nil {
		return dto.ProjectDTO{}, err
	}
	return toProjectDTO(p), nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req dto.UpsertProjectRequestDTO) (dto.ProjectDTO, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ProjectDTO{}, err
	}

	p := models.Project{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
		Title:     req.Title,
		Location:  req.Location,
		Area:      req.Area,
		Scope:     req.Scope,
		Cover:     req.Cover,
		Gallery:   req.Gallery,
		Order:     existing.Order,
	}
	if err := s.repo.Update(ctx, &p); err != nil {
		return dto.ProjectDTO{}, err
	}
	return toProjectDTO(p), nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProjectService) Reorder(ctx context.Context, ids []string) error {
	return s.repo.ReorderAll(ctx, ids)
}

func toProjectDTO(p models.Project) dto.ProjectDTO {
	gallery := make([]string, 0, len(p.Gallery))
	for _, g := range p.Gallery {
		gallery = append(gallery, images.Deliver(g))
	}

	return dto.ProjectDTO{
		ID:        p.ID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
		Title:     p.Title,
		Location:  p.Location,
		Area:      p.Area,
		Scope:     p.Scope,
		Cover:     images.Deliver(p.Cover),
		Gallery:   gallery,
		Order:     p.Order,
	}
}
