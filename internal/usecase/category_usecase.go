package usecase

import (
	"context"
	"strings"

	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
)

// CategoryUseCase manages the category set and keeps product references
// consistent on deletion.
type CategoryUseCase struct {
	products   ProductRepository
	categories CategoryRepository
	snapshots  *SnapshotWriter
	logger     logger.Logger
}

func NewCategoryUC(
	products ProductRepository,
	categories CategoryRepository,
	snapshots *SnapshotWriter,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		products:   products,
		categories: categories,
		snapshots:  snapshots,
		logger:     logger,
	}
}

func (u *CategoryUseCase) ListCategories(ctx context.Context) ([]string, error) {
	const op = "CategoryUseCase.ListCategories"

	categories, err := u.categories.ListCategories(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// AddCategory appends a category name. Names collide case-sensitively.
func (u *CategoryUseCase) AddCategory(ctx context.Context, name string) error {
	const op = "CategoryUseCase.AddCategory"

	name = strings.TrimSpace(name)
	if name == "" {
		return e.Wrap(op, e.ErrCategoryNameEmpty)
	}

	exists, err := u.categories.CategoryExists(ctx, name)
	if err != nil {
		return e.Wrap(op, err)
	}
	if exists {
		return e.Wrap(op, e.ErrCategoryExists)
	}

	if err := u.categories.InsertCategory(ctx, name); err != nil {
		return e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return nil
}

// RemoveCategory deletes a category with no referencing products. When
// products still reference it, the returned ReferencedError carries the
// count and the available reassignment targets so the caller can offer
// ReassignAndRemove instead.
func (u *CategoryUseCase) RemoveCategory(ctx context.Context, name string) error {
	const op = "CategoryUseCase.RemoveCategory"

	exists, err := u.categories.CategoryExists(ctx, name)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !exists {
		return e.Wrap(op, e.ErrCategoryNotFound)
	}

	count, err := u.products.CountByCategory(ctx, name)
	if err != nil {
		return e.Wrap(op, err)
	}

	if count > 0 {
		others, err := u.otherCategories(ctx, name)
		if err != nil {
			return e.Wrap(op, err)
		}

		return &e.ReferencedError{Category: name, Count: count, OtherCategories: others}
	}

	if err := u.categories.DeleteCategory(ctx, name); err != nil {
		return e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return nil
}

// ReassignAndRemove moves every product referencing name to target and then
// deletes name. Both steps land in a single persisted state transition.
func (u *CategoryUseCase) ReassignAndRemove(ctx context.Context, name, target string) error {
	const op = "CategoryUseCase.ReassignAndRemove"

	exists, err := u.categories.CategoryExists(ctx, name)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !exists {
		return e.Wrap(op, e.ErrCategoryNotFound)
	}

	targetExists, err := u.categories.CategoryExists(ctx, target)
	if err != nil {
		return e.Wrap(op, err)
	}
	if !targetExists || target == name {
		return e.Wrap(op, e.ErrUnknownCategory)
	}

	moved, err := u.products.ReassignCategory(ctx, name, target)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := u.categories.DeleteCategory(ctx, name); err != nil {
		return e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	u.logger.Infof("category %q deleted, %d product(s) moved to %q", name, moved, target)
	return nil
}

func (u *CategoryUseCase) otherCategories(ctx context.Context, name string) ([]string, error) {
	all, err := u.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	others := make([]string, 0, len(all))
	for _, c := range all {
		if c != name {
			others = append(others, c)
		}
	}

	return others, nil
}
