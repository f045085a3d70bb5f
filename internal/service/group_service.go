package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/unilodge/rental-portal/internal/model"
	"github.com/unilodge/rental-portal/internal/repository"
)

// GroupService implements the group preference workflow: the combined
// read for the detail page and the full-row preference update.
type GroupService struct {
	groupRepo   *repository.GroupRepository
	studentRepo *repository.StudentRepository
	log         zerolog.Logger
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo *repository.GroupRepository, studentRepo *repository.StudentRepository, log zerolog.Logger) *GroupService {
	return &GroupService{
		groupRepo:   groupRepo,
		studentRepo: studentRepo,
		log:         log.With().Str("component", "group_service").Logger(),
	}
}

// FetchGroupView runs the two detail-page reads: the group row and the
// member roster. An unknown code yields a nil group and an empty roster,
// which the template renders as an empty state.
func (s *GroupService) FetchGroupView(ctx context.Context, groupCode string) (*model.GroupView, error) {
	group, err := s.groupRepo.GetByCode(ctx, groupCode)
	if err != nil {
		return nil, err
	}

	renters, err := s.studentRepo.ListByGroup(ctx, groupCode)
	if err != nil {
		return nil, err
	}

	students := make([]model.StudentRow, 0, len(renters))
	for _, r := range renters {
		students = append(students, model.StudentRow{
			ID:                     r.StudentRenterID,
			FullName:               r.DisplayName(),
			PhoneNumber:            r.PhoneNumber,
			ProgramOfStudy:         r.ProgramOfStudy,
			ExpectedGraduationYear: r.ExpectedGraduationYear,
		})
	}

	return &model.GroupView{
		GroupCode: groupCode,
		Group:     group,
		Students:  students,
	}, nil
}

// ApplyPreferenceUpdate overwrites all seven preference fields of the
// group in one statement and returns the redirect that sends the client
// back to the detail view for a fresh read. No redirect is returned on
// a failed write. A code matching no row is a silent no-op.
//
// Concurrent submissions for the same code race last-write-wins; the
// row carries no version column to detect the conflict.
func (s *GroupService) ApplyPreferenceUpdate(ctx context.Context, groupCode string, req model.UpdatePreferencesRequest) (model.Redirect, error) {
	if err := s.groupRepo.UpdatePreferences(ctx, groupCode, req); err != nil {
		return model.Redirect{}, err
	}

	s.log.Info().Str("group_code", groupCode).Msg("Group preferences updated")

	return model.Redirect{GroupCode: groupCode}, nil
}

// ListGroups retrieves all rental groups for the listing page.
func (s *GroupService) ListGroups(ctx context.Context) ([]model.RentalGroup, error) {
	return s.groupRepo.List(ctx)
}
