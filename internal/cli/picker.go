package cli

import (
	"context"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/serenakung/speech-scene-generator/pkg/lexicon"
	"github.com/serenakung/speech-scene-generator/pkg/scene"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Picker steps, in order.
const (
	stepPhonemes = iota
	stepPositions
	stepMode
	stepDone
)

// PickSelection holds the result of the interactive picker.
type PickSelection struct {
	Phonemes  []string
	Positions []string
	Mode      string
}

// PickModel is the bubbletea model for interactive target selection. It walks
// through three steps: target phonemes (multi-select), word positions
// (multi-select), and page mode (single select).
type PickModel struct {
	Phonemes  []string // all phoneme tags present in the word bank
	Modes     []string
	Selected  *PickSelection
	Cancelled bool

	step    int
	cursor  int
	checked map[int]bool // per-step toggle state, reset on step change
	picks   PickSelection
}

// positionChoices is the fixed word position list offered by the picker.
var positionChoices = []string{
	string(lexicon.PositionInitial),
	string(lexicon.PositionMedial),
	string(lexicon.PositionFinal),
}

// NewPickModel creates a picker over the phoneme tags found in bank.
func NewPickModel(bank *lexicon.Bank) PickModel {
	seen := map[string]bool{}
	for _, it := range append(bank.Nouns, bank.Verbs...) {
		for _, p := range it.Phonemes {
			seen[strings.ToLower(p)] = true
		}
	}
	phonemes := make([]string, 0, len(seen))
	for p := range seen {
		phonemes = append(phonemes, p)
	}
	sort.Strings(phonemes)

	return PickModel{
		Phonemes: phonemes,
		Modes: []string{
			string(scene.ModeISpy),
			string(scene.ModeActions),
			string(scene.ModeMixed),
			string(scene.ModeSentence),
		},
		checked: map[int]bool{},
	}
}

func (m PickModel) Init() tea.Cmd {
	return nil
}

func (m PickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		m.Cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices())-1 {
			m.cursor++
		}
	case " ":
		if m.step != stepMode {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case "enter":
		return m.advance()
	}
	return m, nil
}

// advance commits the current step and moves to the next one.
func (m PickModel) advance() (tea.Model, tea.Cmd) {
	choices := m.choices()

	switch m.step {
	case stepPhonemes, stepPositions:
		var picked []string
		for i, c := range choices {
			if m.checked[i] {
				picked = append(picked, c)
			}
		}
		// Enter with nothing toggled picks the item under the cursor.
		if len(picked) == 0 && len(choices) > 0 {
			picked = []string{choices[m.cursor]}
		}
		if m.step == stepPhonemes {
			m.picks.Phonemes = picked
		} else {
			m.picks.Positions = picked
		}
	case stepMode:
		m.picks.Mode = choices[m.cursor]
		m.step = stepDone
		sel := m.picks
		m.Selected = &sel
		return m, tea.Quit
	}

	m.step++
	m.cursor = 0
	m.checked = map[int]bool{}
	return m, nil
}

// choices returns the option list for the current step.
func (m PickModel) choices() []string {
	switch m.step {
	case stepPhonemes:
		return m.Phonemes
	case stepPositions:
		return positionChoices
	default:
		return m.Modes
	}
}

// title returns the heading for the current step.
func (m PickModel) title() string {
	switch m.step {
	case stepPhonemes:
		return "Target Phonemes"
	case stepPositions:
		return "Word Positions"
	default:
		return "Page Mode"
	}
}

func (m PickModel) View() string {
	if m.step == stepDone {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title()))
	b.WriteString("\n")
	if m.step == stepMode {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	} else {
		b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  ⏎ confirm  q quit"))
	}
	b.WriteString("\n\n")

	for i, c := range m.choices() {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		check := "  "
		if m.checked[i] {
			check = styleIconSuccess.Render(iconSuccess) + " "
		}
		style := listNormalStyle
		if i == m.cursor {
			style = listSelectedStyle
		}
		b.WriteString(cursor + check + style.Render(c) + "\n")
	}
	return b.String()
}

// newPickCmd creates the pick command: an interactive picker that feeds the
// generate pipeline.
func newPickCmd(configPath *string) *cobra.Command {
	var formatsStr string
	opts := generateOpts{scale: 1.0}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively choose a target sound and generate a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.Context(), *configPath, parseFormats(formatsStr), &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "items (gallery) or sentences to request")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, pdf, json (comma-separated)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 draws one)")

	return cmd
}

func runPick(ctx context.Context, configPath string, formats []string, opts *generateOpts) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	a.close()

	model := NewPickModel(a.bank)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	picked, ok := final.(PickModel)
	if !ok || picked.Selected == nil {
		printInfo("Cancelled")
		return nil
	}

	opts.mode = picked.Selected.Mode
	opts.phonemes = picked.Selected.Phonemes
	opts.positions = picked.Selected.Positions
	return runGenerate(ctx, configPath, formats, opts)
}
