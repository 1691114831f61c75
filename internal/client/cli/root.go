package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	st := a.session.State()
	if st.User == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", st.User.Email)
}

// Root runs the interactive loop. The command set follows the session state:
// account commands while signed out, task commands while signed in. All
// input, prompts included, goes through the one buffered reader on the App.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to TaskKeeper CLI (type 'help' for commands)")

	for {
		fmt.Printf("tk %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: (l)ist, add [text], toggle <n>, edit <n>, delete <n>, clear, profile, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "l", "list":
			a.list(ctx)

		case "add":
			a.add(ctx, strings.Join(args, " "))

		case "toggle":
			if len(args) == 0 {
				fmt.Println("Usage: toggle <n>")
				continue
			}
			a.toggle(ctx, args[0])

		case "edit":
			if len(args) == 0 {
				fmt.Println("Usage: edit <n>")
				continue
			}
			a.edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				fmt.Println("Usage: delete <n>")
				continue
			}
			a.delete(ctx, args[0])

		case "clear":
			a.clear(ctx)

		case "profile":
			a.profile(os.Stdout)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
