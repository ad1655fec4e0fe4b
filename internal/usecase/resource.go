package usecase

import (
	"context"
	"errors"
	"fmt"

	"payment-api/internal/data/repository"

	"go.uber.org/zap"
)

// Store is the persistence surface a Resource needs.
type Store[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	Save(ctx context.Context, record *T) error
	Remove(ctx context.Context, record *T) error
}

// Resource implements list/create/mutate/remove for one record type.
// Every operation addressing an id goes through FindOr404.
type Resource[T any] struct {
	store    Store[T]
	notFound ProblemFactory
	log      *zap.Logger
}

func NewResource[T any](store Store[T], notFound ProblemFactory, log *zap.Logger) *Resource[T] {
	return &Resource[T]{
		store:    store,
		notFound: notFound,
		log:      log,
	}
}

func (r *Resource[T]) List(ctx context.Context) ([]*T, error) {
	records, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return records, nil
}

// FindOr404 loads the record or returns a *NotFoundError.
func (r *Resource[T]) FindOr404(ctx context.Context, id int64) (*T, error) {
	record, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find %d: %w", id, err)
	}
	if record == nil {
		return nil, r.missing(id)
	}
	return record, nil
}

// Create persists the record produced by build.
func (r *Resource[T]) Create(ctx context.Context, build func() (*T, error)) (*T, error) {
	record, err := build()
	if err != nil {
		return nil, err
	}

	if err := r.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return record, nil
}

// Mutate loads the record, applies change and saves it when change reports a modification.
func (r *Resource[T]) Mutate(ctx context.Context, id int64, change func(record *T) (bool, error)) (*T, error) {
	record, err := r.FindOr404(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := change(record)
	if err != nil {
		return nil, err
	}
	if !changed {
		return record, nil
	}

	if err := r.store.Save(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, r.missing(id)
		}
		return nil, fmt.Errorf("save %d: %w", id, err)
	}
	return record, nil
}

// Remove loads the record and deletes it, returning the removed state.
func (r *Resource[T]) Remove(ctx context.Context, id int64) (*T, error) {
	record, err := r.FindOr404(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.store.Remove(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, r.missing(id)
		}
		return nil, fmt.Errorf("remove %d: %w", id, err)
	}
	return record, nil
}

func (r *Resource[T]) missing(id int64) error {
	nf := r.notFound(id)
	r.log.Info("No "+nf.Resource+" found",
		zap.String("type", nf.Problem.Type),
		zap.String("title", nf.Problem.Title),
		zap.Int("status", nf.Problem.Status),
		zap.String("detail", nf.Problem.Detail),
		zap.String("instance", nf.Problem.Instance),
	)
	return nf
}
