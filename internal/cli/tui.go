package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/digest"
	"github.com/matzehuels/identicon/pkg/errors"
	"github.com/matzehuels/identicon/pkg/identicon"
)

// Preview styles
var (
	previewPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewInputStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	previewDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// PreviewModel - Live identicon preview
// =============================================================================

// PreviewModel is the bubbletea model that re-renders the identicon of the
// typed identifier on every keystroke.
type PreviewModel struct {
	Input     []rune
	Algorithm digest.Algorithm
	Icon      *identicon.Identicon
	Err       error

	// Selected is set when the user confirms with enter.
	Selected string
}

// NewPreviewModel creates a preview model seeded with initial.
func NewPreviewModel(initial string, alg digest.Algorithm) PreviewModel {
	m := PreviewModel{Input: []rune(initial), Algorithm: alg}
	m.refresh()
	return m
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		if m.Icon != nil {
			m.Selected = string(m.Input)
			return m, tea.Quit
		}
		return m, nil
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
		}
	case tea.KeyCtrlU:
		m.Input = nil
	case tea.KeySpace:
		m.Input = append(m.Input, ' ')
	case tea.KeyRunes:
		m.Input = append(m.Input, key.Runes...)
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

// refresh recomputes the identicon for the current input. Empty input is
// not an error; it just clears the preview.
func (m *PreviewModel) refresh() {
	m.Icon, m.Err = nil, nil
	if strings.TrimSpace(string(m.Input)) == "" {
		return
	}
	if err := errors.ValidateIdentifier(string(m.Input)); err != nil {
		m.Err = err
		return
	}
	m.Icon, m.Err = identicon.New(string(m.Input), digest.WithAlgorithm(m.Algorithm))
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Identicon Preview"))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("type to preview  ⏎ select  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(previewPromptStyle.Render("› "))
	b.WriteString(previewInputStyle.Render(string(m.Input)))
	b.WriteString(previewDimStyle.Render("▏"))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(previewErrorStyle.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	case m.Icon == nil:
		b.WriteString(previewDimStyle.Render("start typing an identifier"))
		b.WriteString("\n")
	default:
		grid := renderGrid(m.Icon.Pattern(), m.Icon.Color())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", m.details()))
		b.WriteString("\n")
	}

	return b.String()
}

// details renders the digest and color breakdown as a table.
func (m PreviewModel) details() string {
	d := m.Icon.Digest()
	h := m.Icon.HSL()
	c := m.Icon.Color()

	keyStyle := lipgloss.NewStyle().Foreground(colorGray)
	swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(
			[]string{"Digest", d.String()},
			[]string{"Pattern", d.PatternSlice()},
			[]string{"Color", d.ColorSlice()},
			[]string{"HSL", fmt.Sprintf("%.1f°, %.1f%%, %.1f%%", h.Hue, h.Saturation, h.Luminance)},
			[]string{"RGB", fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)},
			[]string{"Hex", c.Hex() + " " + swatch},
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

// tuiCommand creates the interactive preview command.
func (c *CLI) tuiCommand() *cobra.Command {
	var algorithm string

	cmd := &cobra.Command{
		Use:   "tui [identifier]",
		Short: "Preview identicons interactively while typing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if algorithm == "" {
				algorithm = c.config().Algorithm
			}
			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}
			return runTUI(cmd.Context(), initial, algorithm)
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", "", "digest algorithm: sha256, blake3")
	return cmd
}

func runTUI(ctx context.Context, initial, algorithm string) error {
	alg, err := digest.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewPreviewModel(initial, alg), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}

	m, ok := final.(PreviewModel)
	if !ok || m.Selected == "" {
		return nil
	}
	loggerFromContext(ctx).Debug("selected identifier", "identifier", m.Selected)
	printNextStep("Render it", fmt.Sprintf("%s generate %q", appName, m.Selected))
	return nil
}
