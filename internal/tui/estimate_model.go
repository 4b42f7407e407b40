package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/poolheat/internal/engine"
	"github.com/rshade/poolheat/internal/format"
)

// EstimateState represents the current state of the estimate TUI.
type EstimateState int

const (
	// EstimateStateEditing indicates the user is browsing or editing inputs.
	EstimateStateEditing EstimateState = iota
	// EstimateStateQuitting indicates the application is exiting.
	EstimateStateQuitting
	// EstimateStateError indicates a recompute failed.
	EstimateStateError
)

// Input row keys.
const (
	KeyPoolArea       = "pool_area"
	KeyDesiredTemp    = "desired_temp"
	KeySeason         = "season"
	KeyGasCost        = "gas_cost"
	KeyLocalIncentive = "local_incentive"
	KeyIncentiveKind  = "local_incentive_kind"
	KeyIncentiveValue = "local_incentive_value"
)

// InputRow is one editable estimate input.
type InputRow struct {
	Key   string
	Label string
	Value string
	Err   string
}

// RecomputeFunc produces a result for a set of inputs.
type RecomputeFunc func(context.Context, engine.Inputs) (engine.Result, error)

// estimateRecomputeMsg is sent when a recompute completes.
type estimateRecomputeMsg struct {
	seq    int
	inputs engine.Inputs
	result engine.Result
	err    error
}

// Default dimensions for estimate model.
const (
	estimateDefaultWidth  = 80
	estimateDefaultHeight = 24
	summaryTableHeight    = 17
)

// EstimateModel is the Bubble Tea model for the interactive estimator.
type EstimateModel struct {
	ctx context.Context

	inputs    engine.Inputs
	result    engine.Result
	horizon   int
	precision int

	rows       []InputRow
	focusedRow int
	editMode   bool
	editBuffer string

	showCashFlow bool
	location     string

	state   EstimateState
	loading bool
	seq     int
	err     error

	width  int
	height int

	recomputeFn RecomputeFunc
}

// NewEstimateModel creates an EstimateModel showing in and its result.
// horizon is the payback search horizon used for the "Not within N years"
// placeholder.
func NewEstimateModel(
	ctx context.Context,
	in engine.Inputs,
	result engine.Result,
	horizon int,
	recomputeFn RecomputeFunc,
) *EstimateModel {
	m := &EstimateModel{
		ctx:         ctx,
		inputs:      in,
		result:      result,
		horizon:     horizon,
		precision:   format.DefaultPrecision,
		state:       EstimateStateEditing,
		width:       estimateDefaultWidth,
		height:      estimateDefaultHeight,
		recomputeFn: recomputeFn,
	}
	m.rows = rowsFor(in)
	return m
}

// SetPrecision sets the number of decimals for therms and CO2 tons.
func (m *EstimateModel) SetPrecision(precision int) {
	m.precision = precision
}

// SetLocation sets the location label shown in the header.
func (m *EstimateModel) SetLocation(location string) {
	m.location = location
}

// rowsFor renders inputs into editable rows.
func rowsFor(in engine.Inputs) []InputRow {
	return []InputRow{
		{Key: KeyPoolArea, Label: "Pool area (sq ft)", Value: formatInput(in.PoolAreaSqft)},
		{Key: KeyDesiredTemp, Label: "Desired temp (°F)", Value: formatInput(in.DesiredTempF)},
		{Key: KeySeason, Label: "Season", Value: in.Season.String()},
		{Key: KeyGasCost, Label: "Gas cost ($/therm)", Value: formatInput(in.GasCostPerTherm)},
		{Key: KeyLocalIncentive, Label: "Local incentive", Value: yesNo(in.LocalIncentiveEnabled)},
		{Key: KeyIncentiveKind, Label: "Incentive kind", Value: in.LocalIncentiveKind.String()},
		{Key: KeyIncentiveValue, Label: "Incentive value", Value: formatInput(in.LocalIncentiveValue)},
	}
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ApplyInput sets the field named by key from its text form. It is the single
// parser for user-entered values.
func ApplyInput(in engine.Inputs, key, value string) (engine.Inputs, error) {
	value = strings.TrimSpace(value)
	switch key {
	case KeyPoolArea, KeyDesiredTemp, KeyGasCost, KeyIncentiveValue:
		v, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
		if err != nil {
			return in, fmt.Errorf("%q is not a number", value)
		}
		switch key {
		case KeyPoolArea:
			in.PoolAreaSqft = v
		case KeyDesiredTemp:
			in.DesiredTempF = v
		case KeyGasCost:
			in.GasCostPerTherm = v
		default:
			in.LocalIncentiveValue = v
		}
	case KeySeason:
		s, err := engine.ParseSeason(value)
		if err != nil {
			return in, err
		}
		in.Season = s
	case KeyIncentiveKind:
		k, err := engine.ParseIncentiveKind(value)
		if err != nil {
			return in, err
		}
		in.LocalIncentiveKind = k
	case KeyLocalIncentive:
		b, err := parseYesNo(value)
		if err != nil {
			return in, err
		}
		in.LocalIncentiveEnabled = b
	default:
		return in, fmt.Errorf("unknown input %q", key)
	}
	return in, nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "true", "on", "1":
		return true, nil
	case "n", "no", "false", "off", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%q is not yes or no", s)
	}
}

// toggle returns the next value for enumerated rows, or ok=false.
func toggle(in engine.Inputs, key string) (engine.Inputs, bool) {
	switch key {
	case KeySeason:
		if in.Season == engine.SeasonFullYear {
			in.Season = engine.SeasonMarchToThanksgiving
		} else {
			in.Season = engine.SeasonFullYear
		}
	case KeyLocalIncentive:
		in.LocalIncentiveEnabled = !in.LocalIncentiveEnabled
	case KeyIncentiveKind:
		if in.LocalIncentiveKind == engine.IncentivePercent {
			in.LocalIncentiveKind = engine.IncentiveFixedAmount
		} else {
			in.LocalIncentiveKind = engine.IncentivePercent
		}
	default:
		return in, false
	}
	return in, true
}

// Init initializes the model.
func (m *EstimateModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *EstimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case estimateRecomputeMsg:
		return m.handleRecomputeComplete(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for estimate TUI navigation.
func (m *EstimateModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editMode {
		return m.handleEditModeKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = EstimateStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = EstimateStateQuitting
			return m, tea.Quit
		case "c":
			m.showCashFlow = !m.showCashFlow
		}
		return m, nil

	case tea.KeySpace:
		if m.focusedRow < len(m.rows) {
			if updated, ok := toggle(m.inputs, m.rows[m.focusedRow].Key); ok {
				return m, m.commit(updated)
			}
		}
		return m, nil

	case tea.KeyUp:
		if m.focusedRow > 0 {
			m.focusedRow--
		}
		return m, nil

	case tea.KeyDown:
		if m.focusedRow < len(m.rows)-1 {
			m.focusedRow++
		}
		return m, nil

	case tea.KeyEnter:
		if m.focusedRow < len(m.rows) {
			m.editMode = true
			m.editBuffer = m.rows[m.focusedRow].Value
		}
		return m, nil

	case tea.KeyEsc:
		if m.state == EstimateStateError {
			m.state = EstimateStateEditing
			m.err = nil
		}
		return m, nil
	}

	return m, nil
}

// handleEditModeKey processes keyboard input while editing an input.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *EstimateModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = EstimateStateQuitting
		return m, tea.Quit

	case tea.KeyEnter:
		m.editMode = false
		row := &m.rows[m.focusedRow]

		updated, err := ApplyInput(m.inputs, row.Key, m.editBuffer)
		if err == nil {
			err = updated.Validate()
		}
		if err != nil {
			row.Err = err.Error()
			return m, nil
		}
		return m, m.commit(updated)

	case tea.KeyEsc:
		m.editMode = false
		m.editBuffer = ""
		return m, nil

	case tea.KeyBackspace:
		runes := []rune(m.editBuffer)
		if len(runes) > 0 {
			m.editBuffer = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyRunes, tea.KeySpace:
		m.editBuffer += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

// commit accepts new inputs and schedules a recompute.
func (m *EstimateModel) commit(in engine.Inputs) tea.Cmd {
	m.inputs = in
	m.rows = rowsFor(in)
	if m.recomputeFn == nil {
		return nil
	}
	return m.triggerRecompute()
}

// triggerRecompute creates a command to recompute the estimate.
func (m *EstimateModel) triggerRecompute() tea.Cmd {
	m.loading = true
	m.seq++

	// Capture values before the command runs off the update goroutine.
	ctx := m.ctx
	seq := m.seq
	in := m.inputs
	recomputeFn := m.recomputeFn

	return func() tea.Msg {
		result, err := recomputeFn(ctx, in)
		return estimateRecomputeMsg{seq: seq, inputs: in, result: result, err: err}
	}
}

// handleRecomputeComplete applies a recompute result. Results from edits
// that have since been superseded are dropped.
func (m *EstimateModel) handleRecomputeComplete(msg estimateRecomputeMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil
	}
	m.loading = false

	if msg.err != nil {
		m.err = msg.err
		m.state = EstimateStateError
		return m, nil
	}

	m.result = msg.result
	return m, nil
}

// View renders the current view.
func (m *EstimateModel) View() string {
	switch m.state {
	case EstimateStateQuitting:
		return ""

	case EstimateStateError:
		return fmt.Sprintf("Error: %v\n\nPress Esc to continue or q to quit.", m.err)

	case EstimateStateEditing:
		// Handled below
	}

	var sb strings.Builder
	sb.WriteString(RenderEstimateHeader(m.location))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderInputs())
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(RenderLoadingIndicator())
	case m.showCashFlow:
		sb.WriteString(RenderCashFlowChart(m.result.CumulativeCashFlow, m.width))
		sb.WriteString("\n")
		sb.WriteString(RenderBreakEven(m.result.CumulativeCashFlow))
	default:
		sb.WriteString(m.renderSummary())
	}

	sb.WriteString("\n\n")
	sb.WriteString(RenderEstimateHelp())
	return sb.String()
}

func (m *EstimateModel) renderInputs() string {
	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Inputs"))
	sb.WriteString("\n")

	for i, row := range m.rows {
		focused := i == m.focusedRow
		value := row.Value
		if focused && m.editMode {
			value = m.editBuffer + IconCursor
		}

		marker := "  "
		if focused {
			marker = FocusStyle.Render(IconFocus) + " "
		}
		sb.WriteString(marker)
		sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", inputLabelWidth, row.Label)))
		if focused {
			sb.WriteString(FocusStyle.Render(fmt.Sprintf("%-*s", inputValueWidth, value)))
		} else {
			sb.WriteString(ValueStyle.Render(fmt.Sprintf("%-*s", inputValueWidth, value)))
		}
		if row.Err != "" {
			sb.WriteString(" ")
			sb.WriteString(CriticalStyle.Render(row.Err))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m *EstimateModel) renderSummary() string {
	t := NewSummaryTable(m.result, m.horizon, m.precision, summaryTableHeight)
	view := t.View()
	if eq := RenderEquivalency(m.result.AnnualTreesEquivalent); eq != "" {
		view += "\n" + eq
	}
	return BoxStyle.Render(view)
}

// Inputs returns the last committed inputs.
func (m *EstimateModel) Inputs() engine.Inputs {
	return m.inputs
}

// Result returns the estimate for the last committed inputs.
func (m *EstimateModel) Result() engine.Result {
	return m.result
}

// Err returns the last recompute error, if any.
func (m *EstimateModel) Err() error {
	return m.err
}

// Rows returns the input rows as displayed.
func (m *EstimateModel) Rows() []InputRow {
	out := make([]InputRow, len(m.rows))
	copy(out, m.rows)
	return out
}

// ErrUnexpectedModel is returned by RunEstimate if the program ends on a
// model of another type.
var ErrUnexpectedModel = errors.New("unexpected final model")

// RunEstimate runs the interactive estimator until the user quits and returns
// the final model.
func RunEstimate(model *EstimateModel, opts ...tea.ProgramOption) (*EstimateModel, error) {
	p := tea.NewProgram(model, opts...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running interactive estimate: %w", err)
	}
	fm, ok := final.(*EstimateModel)
	if !ok {
		return nil, ErrUnexpectedModel
	}
	return fm, nil
}
