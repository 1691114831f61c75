// Package tasklist implements the reactive controller over the signed-in
// user's tasks. Every mutation writes through to the repository before the
// in-memory list is republished, so a consumer observing new state can rely
// on the store already holding it.
package tasklist

import (
	"context"
	"strings"
	"sync"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/models"
	"github.com/dmitrijs2005/taskkeeper/internal/statex"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
)

// Confirmation gates the two destructive operations behind an explicit
// confirm/cancel step.
type Confirmation int

const (
	ConfirmNone Confirmation = iota
	ConfirmDelete
	ConfirmClear
)

// Controller owns the in-memory task list of the current user plus the
// confirmation gate. Mutations are serialized by an internal mutex; the
// mutex is released before the new list is published, so a subscriber may
// read back into the controller (Tasks, Pending) from its callback.
type Controller struct {
	mu        sync.Mutex
	repo      tasks.Repository
	log       logging.Logger
	userID    string
	tasks     *statex.Cell[[]models.Task]
	pending   Confirmation
	pendingID string // task id armed for deletion when pending == ConfirmDelete
}

// NewController constructs a Controller over repo with no user loaded.
func NewController(repo tasks.Repository, log logging.Logger) *Controller {
	return &Controller{
		repo:  repo,
		log:   log,
		tasks: statex.NewCell[[]models.Task](nil),
	}
}

// Load discards the in-memory list and reloads the subset owned by userID.
// Call it on every user-identity change; an empty userID unloads the
// controller (logout).
func (c *Controller) Load(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.userID = userID
	c.pending = ConfirmNone
	c.pendingID = ""

	if userID == "" {
		c.mu.Unlock()
		c.tasks.Set(nil)
		return nil
	}
	list, err := c.repo.LoadForUser(ctx, userID)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	c.tasks.Set(list)
	c.log.Debug(ctx, "tasks loaded", "userID", userID, "count", len(list))
	return nil
}

// Tasks returns the current in-memory list.
func (c *Controller) Tasks() []models.Task {
	return c.tasks.Get()
}

// Subscribe registers a listener for list changes and returns an
// unsubscribe function.
func (c *Controller) Subscribe(fn func([]models.Task)) func() {
	return c.tasks.Subscribe(fn)
}

// Pending reports the armed confirmation, if any.
func (c *Controller) Pending() Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// mutate applies fn to the current list, writes the result through to the
// repository and then publishes it. The write completes, and the mutex is
// released, before the in-memory swap. Reports whether a write happened;
// with nobody signed in it does nothing.
func (c *Controller) mutate(ctx context.Context, fn func([]models.Task) []models.Task) (bool, error) {
	c.mu.Lock()
	if c.userID == "" {
		c.mu.Unlock()
		return false, nil
	}
	updated := fn(c.tasks.Get())
	if err := c.repo.ReplaceForUser(ctx, c.userID, updated); err != nil {
		c.mu.Unlock()
		return false, err
	}
	c.mu.Unlock()
	c.tasks.Set(updated)
	return true, nil
}

// Add creates a task owned by the current user and appends it. It is a
// no-op when nobody is signed in or when text trims to nothing.
func (c *Controller) Add(ctx context.Context, text string) error {
	c.mu.Lock()
	text = strings.TrimSpace(text)
	if c.userID == "" || text == "" {
		c.mu.Unlock()
		return nil
	}

	t := models.NewTask(c.userID, text)
	if err := c.repo.AppendOne(ctx, t); err != nil {
		c.mu.Unlock()
		return err
	}
	updated := append(c.tasks.Get(), t)
	c.mu.Unlock()
	c.tasks.Set(updated)
	c.log.Info(ctx, "task added", "id", t.ID)
	return nil
}

// Toggle flips the completed flag on the task with the given id. Every
// other task is carried over unchanged.
func (c *Controller) Toggle(ctx context.Context, id string) error {
	_, err := c.mutate(ctx, func(current []models.Task) []models.Task {
		updated := make([]models.Task, 0, len(current))
		for _, t := range current {
			if t.ID == id {
				t.Completed = !t.Completed
			}
			updated = append(updated, t)
		}
		return updated
	})
	return err
}

// Edit replaces the text of the task with the given id. It is a no-op when
// newText trims to nothing.
func (c *Controller) Edit(ctx context.Context, id, newText string) error {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return nil
	}
	_, err := c.mutate(ctx, func(current []models.Task) []models.Task {
		updated := make([]models.Task, 0, len(current))
		for _, t := range current {
			if t.ID == id {
				t.Text = newText
			}
			updated = append(updated, t)
		}
		return updated
	})
	return err
}

// RequestDelete arms the confirmation gate for deleting the task with id.
// Nothing is persisted until Confirm.
func (c *Controller) RequestDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = ConfirmDelete
	c.pendingID = id
}

// RequestClear arms the confirmation gate for clearing the current user's
// list. Nothing is persisted until Confirm.
func (c *Controller) RequestClear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = ConfirmClear
	c.pendingID = ""
}

// Confirm performs whatever destructive operation is armed and resets the
// gate. With nothing armed, or nobody signed in, it does nothing.
func (c *Controller) Confirm(ctx context.Context) error {
	c.mu.Lock()
	pending, id := c.pending, c.pendingID
	userID := c.userID
	c.pending = ConfirmNone
	c.pendingID = ""
	c.mu.Unlock()

	switch pending {
	case ConfirmDelete:
		done, err := c.mutate(ctx, func(current []models.Task) []models.Task {
			updated := make([]models.Task, 0, len(current))
			for _, t := range current {
				if t.ID != id {
					updated = append(updated, t)
				}
			}
			return updated
		})
		if err != nil {
			return err
		}
		if done {
			c.log.Info(ctx, "task deleted", "id", id)
		}
		return nil

	case ConfirmClear:
		done, err := c.mutate(ctx, func([]models.Task) []models.Task {
			return []models.Task{}
		})
		if err != nil {
			return err
		}
		if done {
			c.log.Info(ctx, "task list cleared", "userID", userID)
		}
		return nil
	}
	return nil
}

// Cancel resets the confirmation gate without touching any task.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = ConfirmNone
	c.pendingID = ""
}
