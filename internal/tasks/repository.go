// Package tasks owns the durable task collection, persisted as one flat JSON
// array under the tasks key. All writes are whole-collection read/replace;
// there are no partial updates, locks or transactions at this layer.
package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/kvstore"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

const tasksKey = "tasks"

// Repository exposes user-scoped reads and collection-level writes over the
// persisted task list.
type Repository interface {
	LoadForUser(ctx context.Context, userID string) ([]models.Task, error)
	AppendOne(ctx context.Context, task models.Task) error
	ReplaceAll(ctx context.Context, tasks []models.Task) error
	ReplaceForUser(ctx context.Context, userID string, tasks []models.Task) error
	Clear(ctx context.Context) error
}

type repository struct {
	store kvstore.Store
}

// NewRepository constructs a Repository bound to the given store.
func NewRepository(store kvstore.Store) Repository {
	return &repository{store: store}
}

// all reads the full cross-user collection. An absent key is an empty list.
func (r *repository) all(ctx context.Context) ([]models.Task, error) {
	list, _, err := kvstore.GetJSON[[]models.Task](ctx, r.store, tasksKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	return list, nil
}

func (r *repository) save(ctx context.Context, list []models.Task) error {
	if list == nil {
		list = []models.Task{}
	}
	if err := kvstore.SetJSON(ctx, r.store, tasksKey, list); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// LoadForUser returns the tasks owned by userID in insertion order.
// The result is never nil.
func (r *repository) LoadForUser(ctx context.Context, userID string) ([]models.Task, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	return result, nil
}

// AppendOne appends task to the collection verbatim. Ids are not checked for
// collisions; a colliding id yields two entries sharing the identity key.
func (r *repository) AppendOne(ctx context.Context, task models.Task) error {
	all, err := r.all(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(all, task))
}

// ReplaceAll overwrites the whole collection with tasks verbatim. The input
// must be the full cross-user set; per-user callers want ReplaceForUser.
func (r *repository) ReplaceAll(ctx context.Context, tasks []models.Task) error {
	return r.save(ctx, tasks)
}

// ReplaceForUser swaps out the subset owned by userID, keeping every other
// user's tasks in their original positions. The new subset is appended in
// the order given, so per-user insertion order is preserved for readers
// (every read path filters by user).
func (r *repository) ReplaceForUser(ctx context.Context, userID string, tasks []models.Task) error {
	all, err := r.all(ctx)
	if err != nil {
		return err
	}
	merged := make([]models.Task, 0, len(all)+len(tasks))
	for _, t := range all {
		if t.UserID != userID {
			merged = append(merged, t)
		}
	}
	merged = append(merged, tasks...)
	return r.save(ctx, merged)
}

// Clear removes the tasks key entirely, resetting the medium. This is not
// the same as ReplaceAll with an empty list, which persists an explicit
// empty collection.
func (r *repository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, tasksKey); err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}
	return nil
}
