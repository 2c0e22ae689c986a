package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, an email or phone number and a password, then
// attempts to create an account. A successful registration also signs the
// user in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	identifier, err := getSimpleText(a.reader, "Enter email or phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res := a.session.Register(ctx, name, identifier, password)
	if !res.Success {
		fmt.Println(res.Message)
		return nil
	}

	fmt.Printf("Welcome, %s!\n", a.session.User().Name)
	return nil
}

// Login prompts for an identifier plus either a password or a one-time code
// and tries to authenticate. An empty password switches to OTP entry.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter email or phone", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	var otp string
	if password == "" {
		otp, err = getSimpleText(a.reader, "Enter one-time code", os.Stdout)
		if err != nil {
			return err
		}
	}

	res := a.session.Login(ctx, identifier, password, otp)
	if !res.Success {
		fmt.Println(res.Message)
		return nil
	}

	fmt.Printf("Welcome back, %s!\n", a.session.User().Name)
	return nil
}

// Logout clears the session; safe to call while anonymous.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Logged out")
	return nil
}

// Whoami prints the current session identity.
func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("#%d %s", user.ID, user.Name)
	if user.Email != "" {
		fmt.Printf(" <%s>", user.Email)
	}
	if user.Phone != "" {
		fmt.Printf(" (%s)", user.Phone)
	}
	fmt.Println()
	return nil
}
