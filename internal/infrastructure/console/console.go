package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"

	"github.com/wortkiste/wortkiste/internal/entity"
)

// Console renders the interactive quiz transcript and reads answers from
// the terminal. It implements the quiz usecase's Prompter and Presenter.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	muted bool

	prompt  *color.Color
	good    *color.Color
	bad     *color.Color
	note    *color.Color
	summary *color.Color
}

func New(muted bool) *Console {
	return &Console{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		muted:   muted,
		prompt:  color.New(color.FgCyan),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
		note:    color.New(color.FgYellow),
		summary: color.New(color.FgYellow),
	}
}

// Start shows the opening banner and the working-set size. The banner
// pacing is skipped when muted so scripted runs stay fast.
func (c *Console) Start(total int) {
	if !c.muted {
		figure.NewFigure(" German", "doom", false).Print()
		c.pause(2 * time.Second)
		figure.NewFigure("   Quiz !!!", "doom", false).Print()
		c.pause(2 * time.Second)
	}
	c.good.Fprintf(c.out, "Translate the following words (%d words filtered)\n", total)
}

func (c *Console) ShowPrompt(text string) {
	c.prompt.Fprintf(c.out, " > %s\n", text)
}

func (c *Console) ShowCorrect(text string) {
	c.good.Fprintf(c.out, " >> %s\n", text)
}

func (c *Console) ShowWrong(text string) {
	c.bad.Fprintf(c.out, " >> %s\n", text)
}

func (c *Console) ShowExtra(text string) {
	c.note.Fprintf(c.out, " >> %s\n", text)
}

func (c *Console) ShowExample(source, target string) {
	fmt.Fprintf(c.out, " >> %s | %s\n", source, target)
}

// EndRound leaves a breathing pause between rounds.
func (c *Console) EndRound() {
	fmt.Fprintln(c.out)
	c.pause(2 * time.Second)
}

func (c *Console) Finish(record *entity.SessionRecord) {
	c.summary.Fprintln(c.out, record.Summary())
}

// Query reads one trimmed line from the terminal.
func (c *Console) Query() (string, error) {
	fmt.Fprint(c.out, "  ")
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// QueryUntil re-requests input until accept holds.
func (c *Console) QueryUntil(accept func(string) bool, retry string) (string, error) {
	for {
		answer, err := c.Query()
		if err != nil {
			return "", err
		}
		if accept(answer) {
			return answer, nil
		}
		fmt.Fprintln(c.out, retry)
	}
}

func (c *Console) pause(d time.Duration) {
	if !c.muted {
		time.Sleep(d)
	}
}
