package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.session.User(); user != nil {
		return fmt.Sprintf("(%s)", user.Name)
	}
	return ""
}

// Root runs the read-eval-print loop until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {

	fmt.Printf("Acadex CLI, server %s (type 'help' for commands)\n", a.session.BaseURL())
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("acadex %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: whoami, courses, live, downloads, buy <id>, purchases, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, courses, live, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "courses":
			_ = a.Courses(ctx)
		case "live":
			_ = a.Live(ctx)
		case "downloads":
			_ = a.Downloads(ctx)
		case "buy":
			if len(args) == 0 {
				fmt.Println("Usage: buy <course id>")
				continue
			}
			_ = a.Buy(ctx, args[0])
		case "purchases":
			_ = a.Purchases(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
