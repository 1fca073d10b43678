package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}

// Run starts the read-eval-print loop. It reads a line, parses the first
// token as the command, and dispatches. The loop exits on EOF or when the
// user types "exit" or "quit". Command errors are printed, not fatal.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the MediaLounge terminal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("lounge %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			a.printHelp()
		case "signup":
			err = a.Signup(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "music":
			if len(args) == 0 {
				printlnFn("Usage: music <search terms>")
				continue
			}
			err = a.Music(ctx, strings.Join(args, " "))
		case "tv":
			if len(args) == 0 {
				printlnFn("Usage: tv <channel name>")
				continue
			}
			err = a.TV(ctx, strings.Join(args, " "))
		case "games":
			err = a.Games(ctx)
		case "accounts":
			err = a.Accounts(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		printlnFn("Available commands: whoami, music <q>, tv <q>, games, accounts, logout, exit")
	} else {
		printlnFn("Available commands: signup, login, music <q>, tv <q>, games, exit")
	}
}
