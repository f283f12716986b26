package cli

import (
	"errors"
	"fmt"
	"os"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minimumPasswordLength = 8

// RunHashPasswordCommand prompts for the admin password twice with terminal
// echo disabled and prints the bcrypt hash to export as ADMIN_PASSWORD_HASH.
func RunHashPasswordCommand() error {
	fmt.Print("New admin password: ")
	password, err := readPasswordNoEcho(os.Stdin)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	fmt.Println()

	if err := validatePassword(string(password)); err != nil {
		return err
	}

	fmt.Print("Confirm password: ")
	confirmation, err := readPasswordNoEcho(os.Stdin)
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	fmt.Println()

	if string(password) != string(confirmation) {
		return errors.New("passwords do not match")
	}

	passwordHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	fmt.Println("✅ Password hashed")
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", string(passwordHash))

	return nil
}

func validatePassword(password string) error {
	if len(password) < minimumPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minimumPasswordLength)
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain both letters and digits")
	}

	return nil
}
