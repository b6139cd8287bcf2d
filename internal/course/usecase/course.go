package usecase

import (
	"context"
	"errors"
	"fmt"

	"course-outline-planner/internal/calsync"
	"course-outline-planner/internal/course"
	"course-outline-planner/internal/course/repository"
	"course-outline-planner/internal/extraction"
	"course-outline-planner/internal/model"
)

func (uc *implUseCase) Upload(ctx context.Context, input course.UploadInput) (model.Course, error) {
	if len(input.PDF) == 0 {
		return model.Course{}, course.ErrEmptyUpload
	}

	extracted, err := uc.extractor.Extract(ctx, extraction.ExtractInput{
		FileName: input.FileName,
		PDF:      input.PDF,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: extractor.Extract: %v", LogPrefixUpload, err)
		return model.Course{}, err
	}

	stored, err := uc.repo.CreateCourse(ctx, extracted)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.CreateCourse: %v", LogPrefixUpload, err)
		return model.Course{}, fmt.Errorf("store course: %w", err)
	}

	uc.l.Infof(ctx, "%s: stored course %s (%q) with %d events", LogPrefixUpload, stored.ID, stored.Name, len(stored.Events))
	return stored, nil
}

func (uc *implUseCase) List(ctx context.Context) ([]model.Course, error) {
	return uc.repo.ListCourses(ctx)
}

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Course, error) {
	c, err := uc.repo.GetCourse(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Course{}, course.ErrCourseNotFound
		}
		return model.Course{}, err
	}
	return c, nil
}

func (uc *implUseCase) Events(ctx context.Context, id string) ([]model.Event, error) {
	c, err := uc.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Events, nil
}

func (uc *implUseCase) AllEvents(ctx context.Context) ([]model.Event, error) {
	return uc.repo.ListEvents(ctx)
}

func (uc *implUseCase) Sync(ctx context.Context, sc model.Scope, id string) (calsync.SyncOutput, error) {
	c, err := uc.Detail(ctx, id)
	if err != nil {
		return calsync.SyncOutput{}, err
	}

	out, err := uc.calSync.Sync(ctx, sc, c)
	if err != nil {
		uc.l.Errorf(ctx, "%s: calSync.Sync(%s): %v", LogPrefixSync, id, err)
		return calsync.SyncOutput{}, err
	}
	return out, nil
}
