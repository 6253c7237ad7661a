package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"golang.org/x/sync/errgroup"
)

type rosterService struct {
	store       contract.RemoteStore
	concurrency int
}

func newRosterService(store contract.RemoteStore, concurrency int) *rosterService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &rosterService{store: store, concurrency: concurrency}
}

// LatestRoster summarizes the classes of the age group's latest academic
// year. A failed student fetch is kept on that class only.
func (s *rosterService) LatestRoster(ctx context.Context, ageGroupID string) ([]entity.ClassGroup, error) {
	if ageGroupID == "" {
		return []entity.ClassGroup{}, nil
	}

	classes, err := s.store.ReadClasses(ctx, ageGroupID)
	if err != nil {
		return nil, fmt.Errorf("failed to read classes: %w", err)
	}

	latest := latestAcademicYear(classes)
	groups := make([]entity.ClassGroup, len(latest))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, class := range latest {
		groups[i].Class = class
		g.Go(func() error {
			students, err := s.store.ReadStudents(ctx, class.ID)
			if err != nil {
				logger.Warn("failed to read students", "class", class.ID, "error", err)
				groups[i].Err = err.Error()
				return nil
			}
			groups[i].TotalStudents = len(students)
			for _, st := range students {
				if st.HasAllergy() {
					groups[i].StudentsWithAllergy++
				}
			}
			return nil
		})
	}

	_ = g.Wait()
	return groups, nil
}

// latestAcademicYear keeps the classes sharing the greatest year label, in
// their original order.
func latestAcademicYear(classes []entity.ClassInfo) []entity.ClassInfo {
	var year string
	for _, c := range classes {
		if c.AcademicYear > year {
			year = c.AcademicYear
		}
	}

	out := make([]entity.ClassInfo, 0, len(classes))
	for _, c := range classes {
		if c.AcademicYear == year {
			out = append(out, c)
		}
	}
	return out
}
