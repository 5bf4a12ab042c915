package repository

import (
	"context"
	"time"

	"devboard/internal/model"
)

// MockLatency is the fixed delay every in-memory store call simulates,
// standing in for the network round trip of a real backend.
const MockLatency = 500 * time.Millisecond

// simulateLatency blocks for the configured delay or until the context
// is cancelled, whichever comes first.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SeedProjects returns the demo projects the mock store starts with.
func SeedProjects() []model.Project {
	return []model.Project{
		{
			ID:          1,
			Name:        "Project Alpha",
			Slug:        "project-alpha",
			Description: "First project",
			ProjectURL:  "https://github.com/example/project-alpha",
		},
		{
			ID:          2,
			Name:        "Project Beta",
			Slug:        "project-beta",
			Description: "Second project",
			ProjectURL:  "https://github.com/example/project-beta",
		},
	}
}

// SeedTasks returns the demo tasks the mock store starts with.
func SeedTasks() []model.Task {
	weekly := model.RepeatWeekly
	return []model.Task{
		{
			ID:        1,
			ProjectID: 1,
			Title:     "Task 1",
			Body:      "Task 1 Description",
			Assignees: []string{"user1"},
			Labels:    []string{"bug"},
			IsActive:  true,
		},
		{
			ID:        2,
			ProjectID: 1,
			Title:     "Task XYZ",
			Body:      "Task XYZ Description",
			Assignees: []string{"user1"},
			Labels:    []string{"bug"},
			IsActive:  true,
		},
		{
			ID:        3,
			ProjectID: 1,
			Title:     "Task XY",
			Body:      "Task XY Description",
			Assignees: []string{"user1"},
			Labels:    []string{"bug"},
			IsActive:  true,
		},
		{
			ID:              4,
			ProjectID:       2,
			Title:           "Task 2",
			Body:            "Task 2 Description",
			Assignees:       []string{"user2"},
			Labels:          []string{"feature"},
			IsActive:        true,
			IsRepetitive:    true,
			RepeatFrequency: &weekly,
		},
	}
}
