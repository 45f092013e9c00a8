package service

import (
	"fmt"
	"math"

	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/models"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/repository"
	"github.com/Woongicloud/MyGoogleTimeLine-visualizing/internal/trajectory"
)

// TrajectoryService handles business logic for stored trajectories
type TrajectoryService struct {
	repo *repository.TrajectoryRepository
}

// NewTrajectoryService creates a new trajectory service
func NewTrajectoryService(repo *repository.TrajectoryRepository) *TrajectoryService {
	return &TrajectoryService{repo: repo}
}

// GetPoints retrieves trajectory points with filtering and pagination
func (s *TrajectoryService) GetPoints(filter models.PointFilter) (*models.TrajectoryPointsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	points, total, err := s.repo.GetPoints(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get trajectory points: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.TrajectoryPointsResponse{
		Data:       points,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetStats computes summary statistics over the full stored trajectory
func (s *TrajectoryService) GetStats() (trajectory.Stats, error) {
	points, err := s.repo.GetAll()
	if err != nil {
		return trajectory.Stats{}, fmt.Errorf("failed to load trajectory: %w", err)
	}
	return trajectory.ComputeStats(points), nil
}
