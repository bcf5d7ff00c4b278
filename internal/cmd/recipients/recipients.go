// Package recipients applies picker actions from the command line and prints
// the resulting panels as tables.
package recipients

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	entrypoint "github.com/louisbranch/recipients/internal/platform/cmd"
	"github.com/louisbranch/recipients/internal/platform/config"
	"github.com/louisbranch/recipients/internal/recipient"
	"github.com/olekukonko/tablewriter"
)

// Config holds the recipients command configuration.
type Config struct {
	NoColor  bool
	LogLevel string `env:"RECIPIENTS_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
	Actions  []Action
}

// ActionKind names one picker interaction.
type ActionKind string

// Supported actions. Each maps to one store operation.
const (
	ActionToggle       ActionKind = "toggle"
	ActionSelectDomain ActionKind = "select-domain"
	ActionDeselect     ActionKind = "deselect"
	ActionClear        ActionKind = "clear"
	ActionSearch       ActionKind = "search"
	ActionChoose       ActionKind = "choose"
)

// Action is a parsed command-line action.
type Action struct {
	Kind ActionKind
	Arg  string
}

// ErrUnknownAction is returned for actions the command does not understand.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction parses "kind=arg" (or "clear").
func ParseAction(raw string) (Action, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(raw), "=")
	action := Action{Kind: ActionKind(kind), Arg: arg}
	switch action.Kind {
	case ActionClear:
		if hasArg {
			return Action{}, fmt.Errorf("%s takes no argument", kind)
		}
		return action, nil
	case ActionToggle, ActionSelectDomain, ActionDeselect, ActionSearch, ActionChoose:
		if !hasArg {
			return Action{}, fmt.Errorf("%s requires =value", kind)
		}
		return action, nil
	default:
		return Action{}, fmt.Errorf("%w %q", ErrUnknownAction, kind)
	}
}

// ParseConfig parses environment, flags and positional actions.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable coloured output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := config.Validate(&cfg); err != nil {
		return Config{}, err
	}
	for _, raw := range fs.Args() {
		action, err := ParseAction(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse action: %w", err)
		}
		cfg.Actions = append(cfg.Actions, action)
	}
	return cfg, nil
}

// Apply runs actions against store in order.
func Apply(store *recipient.Store, actions []Action) recipient.Snapshot {
	for _, action := range actions {
		switch action.Kind {
		case ActionToggle:
			store.ToggleSelection(action.Arg)
		case ActionSelectDomain:
			store.SelectAllInDomain(action.Arg)
		case ActionDeselect:
			store.Deselect(action.Arg)
		case ActionClear:
			store.ClearAll()
		case ActionSearch:
			store.SetSearchText(action.Arg)
		case ActionChoose:
			store.ChooseSuggestion(action.Arg)
		}
	}
	return store.Snapshot()
}

// Run applies cfg.Actions to the seed recipients and writes both panels to
// out. Diagnostics go to errOut.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}
	logger := entrypoint.NewLogger(errOut, cfg.LogLevel)
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceRecipients, entrypoint.RunOptions{Logger: logger}, func(context.Context) error {
		store := recipient.NewSeededStore(recipient.WithObserver(func(op recipient.Operation, next recipient.Snapshot) {
			logger.Debug("recipients updated", "op", string(op), "selected", next.SelectedCount())
		}))
		snap := Apply(store, cfg.Actions)
		return Render(out, recipient.Project(snap), !cfg.NoColor)
	})
}

type palette struct {
	heading  color.Style
	selected color.Style
	muted    color.Style
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{}
	}
	return palette{
		heading:  color.New(color.OpBold, color.FgCyan),
		selected: color.New(color.FgGreen),
		muted:    color.New(color.FgGray),
	}
}

func paint(style color.Style, s string) string {
	if len(style) == 0 {
		return s
	}
	return style.Sprint(s)
}

// Render writes the available panel, the suggestions and the selected panel.
func Render(out io.Writer, view recipient.View, useColor bool) error {
	p := newPalette(useColor)
	w := &errWriter{w: out}

	w.printf("%s\n", paint(p.heading, "Available Recipients"))
	if view.SearchText != "" {
		w.printf("search: %q\n", view.SearchText)
	}
	available := newTable(w, []string{"Domain", "Email", "Selected"})
	for _, group := range view.Available {
		available.Append([]string{checkbox(group.AllSelected()) + " " + group.Domain, "", ""})
		for _, r := range group.Recipients {
			mark := checkbox(r.IsSelected)
			if r.IsSelected {
				mark = paint(p.selected, mark)
			}
			available.Append([]string{"", r.Email, mark})
		}
	}
	available.Render()

	w.printf("\n%s\n", paint(p.heading, "Suggestions"))
	if len(view.Suggestions) == 0 {
		w.printf("%s\n", paint(p.muted, "(none)"))
	}
	for _, r := range view.Suggestions {
		w.printf("  %s\n", r.Email)
	}

	w.printf("\n%s\n", paint(p.heading, "Selected Recipients"))
	selected := newTable(w, []string{"Domain", "Email"})
	for _, group := range view.Selected {
		for i, r := range group.Recipients {
			domain := ""
			if i == 0 {
				domain = group.Domain
			}
			selected.Append([]string{domain, r.Email})
		}
	}
	selected.Render()
	return w.err
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(e, format, args...)
}
