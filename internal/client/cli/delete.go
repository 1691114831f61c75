package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// askYesNo prompts the user for a yes/no answer; anything but y/yes cancels.
func (a *App) askYesNo(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" (y/n)", os.Stdout)
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// delete removes a single task after explicit confirmation.
func (a *App) delete(ctx context.Context, arg string) {
	t, ok := a.taskByIndex(arg)
	if !ok {
		return
	}

	a.tasks.RequestDelete(t.ID)
	if !a.askYesNo(fmt.Sprintf("Delete task %q? This cannot be undone.", t.Text)) {
		a.tasks.Cancel()
		return
	}

	if err := a.tasks.Confirm(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}

// clear removes every task of the current user after explicit confirmation.
func (a *App) clear(ctx context.Context) {
	a.tasks.RequestClear()
	if !a.askYesNo("Clear all tasks? This cannot be undone.") {
		a.tasks.Cancel()
		return
	}

	if err := a.tasks.Confirm(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
	}
}
