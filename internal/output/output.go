package output

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"misakif.uk/internal/models"
)

// UI writes colored status lines and tables for the CLI.
type UI struct {
	Out    io.Writer
	ErrOut io.Writer
}

// New creates a UI with default stdout/stderr writers.
func New() *UI {
	return &UI{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

var (
	infoPrefix    = color.New(color.FgHiBlue).Sprint("i")
	successPrefix = color.New(color.FgHiGreen).Sprint("✓")
	errorPrefix   = color.New(color.FgHiRed).Sprint("✗")
	cyan          = color.New(color.FgHiCyan).SprintFunc()
	green         = color.New(color.FgHiGreen).SprintFunc()
	faint         = color.New(color.Faint).SprintFunc()
)

// LinkKindColor returns the link kind colored for table output.
func LinkKindColor(kind models.LinkKind) string {
	switch kind {
	case models.LinkExternal:
		return cyan(string(kind))
	case models.LinkInternal:
		return green(string(kind))
	default:
		return faint(string(kind))
	}
}

func (u *UI) Info(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", infoPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Success(format string, a ...any) {
	fmt.Fprintf(u.Out, "%s %s\n", successPrefix, fmt.Sprintf(format, a...))
}

func (u *UI) Error(format string, a ...any) {
	fmt.Fprintf(u.ErrOut, "%s %s\n", errorPrefix, fmt.Sprintf(format, a...))
}

// Table creates a new tablewriter configured with consistent styling.
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}

// ProjectTable renders projects in display order, one row each.
func (u *UI) ProjectTable(projects []models.Project) error {
	table := u.Table([]string{"#", "Title", "Link", "Href", "Image"})
	for i, p := range projects {
		href, img := "-", "-"
		if p.HasLink() {
			href = *p.Href
		}
		if p.HasImage() {
			img = *p.ImgSrc
		}
		if err := table.Append([]string{strconv.Itoa(i + 1), p.Title, LinkKindColor(p.LinkKind()), href, img}); err != nil {
			return fmt.Errorf("append row %d: %w", i+1, err)
		}
	}
	return table.Render()
}
