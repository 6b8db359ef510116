package service

import (
	"context"
	"errors"

	"careercompass/internal/model"
	"careercompass/internal/repository"
)

var ErrNoAssessment = errors.New("no completed assessment for user")

// ReportService reads completed assessments and resolves downstream
// consumers: the report payload and role recommendations.
type ReportService struct {
	assessmentRepo repository.AssessmentRepo
	roleClient     *RoleClient
}

// NewReportService creates a new report service
func NewReportService(assessmentRepo repository.AssessmentRepo, roleClient *RoleClient) *ReportService {
	return &ReportService{
		assessmentRepo: assessmentRepo,
		roleClient:     roleClient,
	}
}

// GetAssessment returns the user's stored assessment.
func (s *ReportService) GetAssessment(ctx context.Context, userID string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrNoAssessment
	}
	return assessment, nil
}

// GetRoleRecommendations fetches job-role suggestions for the user's
// categorical type.
func (s *ReportService) GetRoleRecommendations(ctx context.Context, userID string) ([]RoleRecommendation, error) {
	assessment, err := s.GetAssessment(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.roleClient.RolesForType(ctx, assessment.Score.CategoricalType)
}
