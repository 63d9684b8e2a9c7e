// Package ui provides the interactive terminal front end: the classroom
// drift panel. It shows the shared generation counter and one drift trace
// per replicate, with two controls bound to keys: initialize and
// advance-one-batch. Parameters are edited inline.
//
// The model is a pure view over a session.Session; every mutation happens
// synchronously inside Update, matching the simulator's single-threaded,
// trigger-driven model.
package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"driftlab/internal/export"
	"driftlab/internal/session"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeEditParams
)

// Model is the bubbletea model for the drift panel.
type Model struct {
	params    session.Params
	sess      *session.Session
	store     *session.Store // nil disables persistence
	sessionID string
	logger    *zap.Logger

	input  textinput.Model
	mode   inputMode
	status string
	width  int
}

// New returns a panel over an uninitialized session. A nil store disables
// snapshot persistence; a nil logger disables logging.
func New(params session.Params, store *session.Store, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Prompt = "params> "
	input.Placeholder = "N seed p00 p01 p11"
	input.CharLimit = 64

	return Model{
		params: params.WithDefaults(),
		sess:   session.New(logger),
		store:  store,
		logger: logger,
		input:  input,
		status: "press i to initialize",
	}
}

// Session exposes the underlying session, for tests and for the CLI to
// inspect state after the program exits.
func (m Model) Session() *session.Session { return m.sess }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEditParams {
			return m.updateEdit(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "i":
		if err := m.sess.Initialize(m.params); err != nil {
			m.status = fmt.Sprintf("initialize failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("initialized %d replicates of N=%d", m.params.Replicates, m.params.N)
		m.persist()
		return m, nil

	case "n", " ":
		if err := m.sess.AdvanceBatch(m.params.BatchSize); err != nil {
			m.status = fmt.Sprintf("advance failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("advanced +%d generations", m.params.BatchSize)
		m.persist()
		return m, nil

	case "e":
		m.status = m.exportCSV()
		return m, nil

	case "p":
		m.mode = modeEditParams
		m.input.SetValue(fmt.Sprintf("%d %d %g %g %g",
			m.params.N, m.params.Seed, m.params.P00, m.params.P01, m.params.P11))
		m.input.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		m.status = "edit cancelled"
		return m, nil

	case "enter":
		params, err := parseParams(m.input.Value(), m.params)
		if err != nil {
			m.status = fmt.Sprintf("bad parameters: %v", err)
			return m, nil
		}
		m.params = params
		m.mode = modeNormal
		m.input.Blur()
		m.status = "parameters updated; press i to re-initialize"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseParams reads "N seed p00 p01 p11" with whitespace separation,
// keeping base's replicate count and batch size.
func parseParams(s string, base session.Params) (session.Params, error) {
	fields := strings.Fields(s)
	if len(fields) != 5 {
		return session.Params{}, fmt.Errorf("want 5 fields (N seed p00 p01 p11), got %d", len(fields))
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return session.Params{}, fmt.Errorf("N: %w", err)
	}
	seed, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return session.Params{}, fmt.Errorf("seed: %w", err)
	}
	props := make([]float64, 3)
	for i, name := range []string{"p00", "p01", "p11"} {
		props[i], err = strconv.ParseFloat(fields[2+i], 64)
		if err != nil {
			return session.Params{}, fmt.Errorf("%s: %w", name, err)
		}
	}

	out := base
	out.N = n
	out.Seed = seed
	out.P00, out.P01, out.P11 = props[0], props[1], props[2]
	if err := out.Validate(); err != nil {
		return session.Params{}, err
	}
	return out, nil
}

func (m *Model) persist() {
	if m.store == nil {
		return
	}
	saved, err := m.store.Save(m.sess.Snapshot(m.sessionID))
	if err != nil {
		m.logger.Warn("snapshot save failed", zap.Error(err))
		return
	}
	m.sessionID = saved.ID
}

func (m *Model) exportCSV() string {
	if !m.sess.Initialized() {
		return "nothing to export yet"
	}
	name := fmt.Sprintf("allele0_freq_gen%d.csv", m.sess.Generation())
	f, err := os.Create(name)
	if err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	defer f.Close()

	if err := export.Write("csv", f, m.sess.Histories()); err != nil {
		return fmt.Sprintf("export failed: %v", err)
	}
	return fmt.Sprintf("wrote %s", name)
}
