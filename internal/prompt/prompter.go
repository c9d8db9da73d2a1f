// Package prompt asks questions on a line-oriented terminal.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/i18n"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
)

var (
	marker  = color.New(color.FgGreen, color.Bold)
	label   = color.New(color.Bold)
	hint    = color.New(color.FgHiBlack)
	problem = color.New(color.FgRed)
)

// Terminal asks questions one by one, reading a line per answer. Blank
// input on a text question takes its Default, and Validate and Filter see
// that default, so a defaulted answer cannot be cleared with an empty line.
// Callers that need clearing give the question a Filter mapping a sentinel
// such as "-" to nil.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	t   *i18n.Translations
}

func NewTerminal(in io.Reader, out io.Writer, t *i18n.Translations) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		t:   t,
	}
}

// Ask asks the questions in order and returns the collected answers. A
// question whose When condition is false is skipped. Invalid input is
// reported and asked again. Closing the input aborts with ErrPromptAborted.
func (p *Terminal) Ask(ctx context.Context, questions []models.Question) (models.Answers, error) {
	answers := models.Answers{}

	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if q.When != nil && !q.When(answers) {
			logger.Debug(ctx, "question skipped", "question", q.Name)
			continue
		}

		var (
			value any
			err   error
		)
		switch q.Kind {
		case models.KindChoice:
			value, err = p.askChoice(q)
		case models.KindConfirm:
			value, err = p.askConfirm(q)
		default:
			value, err = p.askText(q)
		}
		if err != nil {
			return nil, err
		}

		answers.Set(q.Name, value)
	}

	return answers, nil
}

func (p *Terminal) askText(q models.Question) (any, error) {
	def := ""
	if q.Default != nil {
		def = fmt.Sprint(q.Default)
	}

	for {
		p.ask(q.Message, def)
		input, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if input == "" && def != "" {
			input = def
		}

		if q.Validate != nil {
			if verr := q.Validate(input); verr != nil {
				p.reject(verr.Error())
				continue
			}
		}

		if q.Filter != nil {
			return q.Filter(input), nil
		}
		return input, nil
	}
}

func (p *Terminal) askChoice(q models.Question) (any, error) {
	if len(q.Choices) == 0 {
		return nil, errors.ErrPromptRead.WithError(fmt.Errorf("question %q has no choices", q.Name))
	}

	def := ""
	for i, c := range q.Choices {
		if q.Default != nil && c.Value == q.Default {
			def = strconv.Itoa(i + 1)
		}
	}

	for {
		_, _ = fmt.Fprintf(p.out, "%s %s\n", marker.Sprint("?"), label.Sprint(q.Message))
		for i, c := range q.Choices {
			_, _ = fmt.Fprintf(p.out, "  %s %s\n", hint.Sprintf("%d)", i+1), c.Label)
		}
		p.ask(p.t.GetMessage("prompt.choose", 0, nil), def)

		input, err := p.readLine()
		if err != nil {
			return nil, err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			input = def
		}

		n, convErr := strconv.Atoi(input)
		if convErr != nil || n < 1 || n > len(q.Choices) {
			p.reject(p.t.GetMessage("prompt.invalid_choice", 0, nil))
			continue
		}
		return q.Choices[n-1].Value, nil
	}
}

func (p *Terminal) askConfirm(q models.Question) (any, error) {
	def, hasDefault := q.Default.(bool)
	options := "y/n"
	if hasDefault {
		options = "y/N"
		if def {
			options = "Y/n"
		}
	}

	for {
		p.ask(q.Message+" "+hint.Sprintf("(%s)", options), "")
		input, err := p.readLine()
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes", "д", "да":
			return true, nil
		case "n", "no", "н", "нет":
			return false, nil
		case "":
			if hasDefault {
				return def, nil
			}
		}
		p.reject(p.t.GetMessage("prompt.yes_no", 0, nil))
	}
}

func (p *Terminal) ask(message, def string) {
	_, _ = fmt.Fprintf(p.out, "%s %s ", marker.Sprint("?"), label.Sprint(message))
	if def != "" {
		_, _ = fmt.Fprintf(p.out, "%s ", hint.Sprintf("(%s)", def))
	}
}

func (p *Terminal) reject(msg string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", problem.Sprint(">>"), problem.Sprint(msg))
}

func (p *Terminal) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", errors.ErrPromptAborted
		}
		return "", errors.ErrPromptRead.WithError(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
