package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/barhopapp/barhop/internal/api"
	"github.com/barhopapp/barhop/internal/session"
)

// Credentials is the result of a sign-in prompt.
type Credentials struct {
	Email    string
	Password string
}

// PromptCredentials collects email and password interactively.
func PromptCredentials() (Credentials, error) {
	var creds Credentials

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&creds.Email),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&creds.Password),
	))

	if err := form.Run(); err != nil {
		return Credentials{}, fmt.Errorf("prompt failed: %w", err)
	}

	return creds, nil
}

// PromptRegistration collects a full registration profile interactively.
// Validation happens downstream; the form only shapes the input.
func PromptRegistration(defaultType api.AccountType) (session.Profile, error) {
	var (
		profile   session.Profile
		birthDate string
	)
	accountType := string(defaultType)
	if accountType == "" {
		accountType = string(api.AccountTypeUser)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&profile.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&profile.Email),
			huh.NewInput().
				Title("Phone").
				Placeholder("+1 555 0100").
				Value(&profile.Phone),
			huh.NewInput().
				Title("Birth date").
				Placeholder("YYYY-MM-DD").
				Value(&birthDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&profile.Password),
			huh.NewSelect[string]().
				Title("Account type").
				Options(
					huh.NewOption("Personal", string(api.AccountTypeUser)),
					huh.NewOption("Business", string(api.AccountTypeBusiness)),
				).
				Value(&accountType),
		),
	)

	if err := form.Run(); err != nil {
		return session.Profile{}, fmt.Errorf("prompt failed: %w", err)
	}

	if birthDate != "" {
		parsed, err := time.Parse("2006-01-02", birthDate)
		if err != nil {
			return session.Profile{}, fmt.Errorf("invalid birth date %q, expected YYYY-MM-DD", birthDate)
		}
		profile.BirthDate = parsed
	}
	profile.AccountType = api.AccountType(accountType)

	return profile, nil
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on environment
// Prompts are disabled in CI environments or when stdin is not a terminal
func ShouldPrompt() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return IsInteractive()
}
