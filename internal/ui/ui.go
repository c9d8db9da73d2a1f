package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/models"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	// Emojis with colors
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	BranchEmoji  = Accent.Sprint("📍")
	FilesEmoji   = Info.Sprint("📝")
)

var (
	boxBorder = lipgloss.Color("8")
	boxTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// SmartSpinner wraps a spinner with success and error endings.
type SmartSpinner struct {
	spinner *spinner.Spinner
}

func NewSmartSpinner(w io.Writer, initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
		spinner.WithWriter(w),
	)
	return &SmartSpinner{spinner: s}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Suffix = " " + msg
}

func (s *SmartSpinner) Success(msg string) {
	s.spinner.Stop()
	PrintSuccess(s.spinner.Writer, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.spinner.Stop()
	PrintError(s.spinner.Writer, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

func PrintBranch(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n\n", BranchEmoji, Success.Sprint(msg))
}

// PrintStagedFiles lists the files going into the commit with their index
// state, e.g. "  modified main.go".
func PrintStagedFiles(w io.Writer, header string, files []models.FileStatus) {
	_, _ = fmt.Fprintf(w, "%s %s\n", FilesEmoji, Info.Sprint(header))
	for _, f := range files {
		_, _ = fmt.Fprintf(w, "  %s %s\n", Dim.Sprint(string(f.Index)), f.Path)
	}
	_, _ = fmt.Fprintln(w)
}

// PrintMessageBox shows the commit message in a rounded box. Without color
// support the message is printed as plain text below the title.
func PrintMessageBox(w io.Writer, title, message string) {
	if color.NoColor {
		_, _ = fmt.Fprintf(w, "\n%s\n\n%s\n\n", title, message)
		return
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(boxBorder).
		Padding(0, 1)

	_, _ = fmt.Fprintf(w, "\n%s\n\n", style.Render(boxTitle.Render(title)+"\n\n"+message))
}

// HandleAppError renders an error with its details and suggestion. If
// translations is nil, English defaults are used.
func HandleAppError(w io.Writer, err error, translations ...*i18n.Translations) {
	if err == nil {
		return
	}

	var t *i18n.Translations
	if len(translations) > 0 && translations[0] != nil {
		t = translations[0]
	}

	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprint(w, Error.Sprintf("❌ %s: %s\n", appErr.Type, appErr.Message))

		details := "Details"
		if t != nil {
			details = t.GetMessage("ui_error.details", 0, nil)
		}
		if appErr.Err != nil {
			_, _ = fmt.Fprint(w, Dim.Sprintf("   %s: %v\n", details, appErr.Err))
		}
		if stderr, ok := appErr.Context["stderr"].(string); ok && stderr != "" {
			for _, line := range strings.Split(stderr, "\n") {
				_, _ = fmt.Fprint(w, Dim.Sprintf("   %s\n", line))
			}
		}

		if appErr.Suggestion != "" {
			_, _ = fmt.Fprintln(w)
			tryPrefix := "💡 Try: "
			if t != nil {
				tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
			}
			_, _ = fmt.Fprint(w, color.New(color.FgCyan).Sprint(tryPrefix))
			lines := strings.Split(appErr.Suggestion, "\n")
			for i, line := range lines {
				if i == 0 {
					_, _ = fmt.Fprintln(w, line)
				} else {
					_, _ = fmt.Fprintf(w, "       %s\n", line)
				}
			}
		}
		_, _ = fmt.Fprintln(w)

		return
	}

	PrintError(w, err.Error())
}
