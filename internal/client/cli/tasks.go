package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dmitrijs2005/taskkeeper/internal/models"
)

// list prints the current user's tasks with 1-based indexes. Those indexes
// are what toggle/edit/delete take as their argument.
func (a *App) list(ctx context.Context) {
	tasks := a.tasks.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks yet. Use 'add' to create one.")
		return
	}

	done := 0
	for n, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
			done++
		}
		fmt.Printf("%3d. [%s] %s\n", n+1, mark, t.Text)
	}
	fmt.Printf("%d / %d completed\n", done, len(tasks))
}

// add creates a task from the rest of the command line, or prompts for the
// text when none was given. Blank text is rejected locally.
func (a *App) add(ctx context.Context, text string) {
	if text == "" {
		var err error
		text, err = getSimpleText(a.reader, "Enter task text", os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}
	if text == "" {
		fmt.Println("Nothing to add.")
		return
	}

	if err := a.tasks.Add(ctx, text); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

// taskByIndex resolves a 1-based list index to the task it refers to.
func (a *App) taskByIndex(arg string) (models.Task, bool) {
	n, err := strconv.Atoi(arg)
	tasks := a.tasks.Tasks()
	if err != nil || n < 1 || n > len(tasks) {
		fmt.Printf("No such task: %s\n", arg)
		return models.Task{}, false
	}
	return tasks[n-1], true
}

func (a *App) toggle(ctx context.Context, arg string) {
	t, ok := a.taskByIndex(arg)
	if !ok {
		return
	}
	if err := a.tasks.Toggle(ctx, t.ID); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

func (a *App) edit(ctx context.Context, arg string) {
	t, ok := a.taskByIndex(arg)
	if !ok {
		return
	}

	text, err := getSimpleText(a.reader, fmt.Sprintf("New text for %q", t.Text), os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if text == "" {
		fmt.Println("Text unchanged.")
		return
	}

	if err := a.tasks.Edit(ctx, t.ID, text); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}
