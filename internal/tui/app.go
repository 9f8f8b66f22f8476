// Package tui provides the interactive Bubble Tea dashboard for freedom.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/freedom/internal/config"
	"github.com/theirongolddev/freedom/internal/model"
	"github.com/theirongolddev/freedom/internal/planner"
	"github.com/theirongolddev/freedom/internal/store"
	"github.com/theirongolddev/freedom/internal/tui/components"
	"github.com/theirongolddev/freedom/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabOverview = iota
	tabProjection
	tabInputs
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 140
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config

	// Derived from the store on every mutation
	state model.FinancialState
	m     model.Metrics
	proj  model.Projection

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	inputs inputsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates a new TUI app model backed by an open store.
func NewApp(st *store.Store, cfg config.Config) App {
	a := App{st: st, cfg: cfg}
	a.recompute()
	a.needSetup = !a.m.HasValues
	if a.needSetup {
		a.setupForm = newSetupForm(&a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute refreshes derived metrics after any store mutation.
func (a *App) recompute() {
	a.state = a.st.State()
	a.m = planner.Compute(a.state)
	a.proj = planner.Project(a.state, planner.Options{
		ExpenseGrowthRate: a.cfg.Projection.ExpenseGrowthRate,
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := components.TabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Inputs tab text editing intercepts all keys
		if a.activeTab == tabInputs && a.inputs.editing {
			return a.updateInputsEdit(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Inputs tab navigation
		if a.activeTab == tabInputs {
			switch key {
			case "j", "down":
				if a.inputs.cursor < inputFieldCount-1 {
					a.inputs.cursor++
				}
				return a, nil
			case "k", "up":
				if a.inputs.cursor > 0 {
					a.inputs.cursor--
				}
				return a, nil
			case "enter":
				return a.inputsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
					a.activeTab = tab
				}
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  freedom needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabProjection:
		content = a.renderProjectionTab(cw)
	case tabInputs:
		content = a.renderInputsTab(cw)
	}

	status := components.RenderStatusBar(a.width, string(a.state.Currency))

	body := header + "\n" + content

	// Pin the status bar to the bottom of the terminal
	contentH := a.height - 1
	body = truncateHeight(body, contentH)
	lines := strings.Count(body, "\n") + 1
	if pad := contentH - lines; pad > 0 {
		body += strings.Repeat("\n", pad)
	}

	return body + "\n" + status
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o p i", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate input fields"},
		{"Enter", "Edit selected field"},
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// truncateHeight drops lines past maxLines.
func truncateHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n")
}
