package ui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/courseview/internal/ingest"
	"github.com/kyaoi/courseview/internal/tree"
	"github.com/kyaoi/courseview/internal/view"
)

const (
	statusHeight      = 1
	minContentWidth   = 20
	minTreePanelWidth = 18
	defaultTreeWidth  = 28
	defaultDebounce   = 250 * time.Millisecond
)

var (
	treeBlurBorderColor  = lipgloss.Color("#3b4261")
	treeFocusBorderColor = lipgloss.Color("#7aa2f7")
	treeLineStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	treeSelectedActive   = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#7aa2f7")).
				Bold(true)
	treeSelectedInactive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c0caf5")).
				Background(lipgloss.Color("#283457"))
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
)

// Model implements the Bubble Tea program for the course viewer. It is also
// the view.Renderer that ingestion outcomes are presented to.
type Model struct {
	sectionVP          viewport.Model
	contentVP          viewport.Model
	renderer           *glamour.TermRenderer
	style              string
	rawContent         string
	renderedContent    string
	source             string
	treeVisible        bool
	treePreferredWidth int
	treeContentWidth   int
	treeFocus          bool
	showHelp           bool
	pendingKey         string
	ready              bool
	width              int
	height             int
	err                error
	logger             *slog.Logger

	outcome          ingest.Outcome
	courseName       string
	sections         []string
	sectionSelection int
	projection       view.Projection
	typeFilter       int

	reload     func(context.Context) ingest.Outcome
	generation int
	cancel     context.CancelFunc
	loading    bool

	searchInput   textinput.Model
	searchActive  bool
	searchQuery   string
	searchMatches []int
	searchIndex   int

	watchDirs     func() ([]string, error)
	watchDebounce time.Duration
	watcher       *fsnotify.Watcher
	watched       map[string]bool
	watchChan     chan tea.Msg
	rescanGen     int
}

type ingestedMsg struct {
	generation int
	outcome    ingest.Outcome
}

type rescanMsg struct {
	generation int
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

var _ view.Renderer = (*Model)(nil)

// NewModel constructs the viewer model and presents the initial outcome.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)
	contentVP.SetHorizontalStep(2)

	sectionVP := viewport.New(0, 0)
	sectionVP.Style = treePanelStyle(treeBlurBorderColor)
	sectionVP.MouseWheelEnabled = false

	logger := state.Logger
	if logger == nil {
		logger = slog.Default()
	}
	style := state.Style
	if style == "" {
		style = styles.TokyoNightStyle
	}
	debounce := state.WatchDebounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	m := &Model{
		sectionVP:          sectionVP,
		contentVP:          contentVP,
		style:              style,
		source:             state.Source,
		treeVisible:        state.TreeVisible,
		treePreferredWidth: state.TreePreferredWidth,
		logger:             logger,
		reload:             state.Reload,
		watchDirs:          state.WatchDirs,
		watchDebounce:      debounce,
		searchIndex:        -1,
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	m.applyOutcome(state.Outcome)
	m.updateTreePanelStyle()

	if state.FocusTree && m.treeVisible {
		m.focusTree()
	}

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.watchDirs == nil {
		return nil
	}
	return m.syncWatches()
}

// OnEmpty renders the awaiting-input state.
func (m *Model) OnEmpty() {
	m.courseName = ""
	m.sections = nil
	m.sectionSelection = 0
	m.projection = view.Projection{}
	m.rawContent = view.EmptyMarkdown(m.source)
	m.renderMarkdown()
	m.contentVP.GotoTop()
	m.refreshSections()
}

// OnReady renders a freshly ingested course with its initial selection.
func (m *Model) OnReady(courseName string, sectionNames []string, initial view.Projection) {
	m.courseName = courseName
	m.sections = sectionNames
	m.sectionSelection = 0
	m.OnSectionSelected(initial)
}

// OnSectionSelected switches the resource pane to another section.
func (m *Model) OnSectionSelected(p view.Projection) {
	m.projection = p
	if idx := m.indexForSection(p.Active); idx >= 0 {
		m.sectionSelection = idx
	}
	m.rawContent = m.composeContent()
	m.renderMarkdown()
	m.contentVP.GotoTop()
	m.refreshSections()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		helpContent := strings.Join([]string{
			"Help (? to close / Esc)",
			"Ctrl+h / Ctrl+l : focus sections / resources",
			"Tab             : switch focus",
			"j / k           : move selection / scroll (focused pane)",
			"Enter / l       : open the selected section",
			"Ctrl+d / Ctrl+u : half page (resources focused)",
			"Ctrl+f / Ctrl+b : half page (sections focused)",
			"gg / G          : top / bottom",
			"f / F           : cycle type filter / clear filter",
			"r               : reload the folder",
			"/               : search",
			"n / N           : next / previous match",
			"t               : toggle the section pane",
			"q / Ctrl+c      : quit",
		}, "\n")
		helpOverlay := helpBoxStyle.Render(helpContent)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}

	body := m.contentVP.View()
	if m.treeVisible && len(m.sections) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sectionVP.View(), body)
	}

	if m.err != nil {
		errLine := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b")).Render(m.err.Error())
		body = lipgloss.JoinVertical(lipgloss.Left, errLine, body)
	}

	var footer string
	switch {
	case m.searchActive:
		footer = m.searchInput.View()
	case m.searchQuery != "":
		footer = m.searchStatusLine()
	default:
		footer = m.statusLine()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, statusBarStyle.Render(footer))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ingestedMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		m.cancel = nil
		m.applyOutcome(msg.outcome)
		if m.watchDirs != nil {
			return m, m.syncWatches()
		}
		return m, nil
	case rescanMsg:
		if msg.generation != m.rescanGen {
			return m, nil
		}
		return m, m.startIngest()
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.searchInput.Value())
				m.exitSearchMode()
				if query == "" {
					m.clearSearch()
					return m, nil
				}
				m.performSearch(query, true)
				return m, nil
			case tea.KeyEsc, tea.KeyCtrlC:
				m.exitSearchMode()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		key := msg.String()
		if key != "g" {
			m.pendingKey = ""
		}

		if m.showHelp {
			m.pendingKey = ""
			switch key {
			case "q", "?", "esc":
				m.showHelp = false
			}
			return m, nil
		}

		switch key {
		case "q", "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "ctrl+h":
			if m.treeVisible {
				m.focusTree()
			}
			return m, nil
		case "ctrl+l":
			m.blurTree()
			return m, nil
		case "tab":
			if m.treeFocus {
				m.blurTree()
			} else if m.treeVisible {
				m.focusTree()
			}
			return m, nil
		case "t":
			m.treeVisible = !m.treeVisible
			if !m.treeVisible {
				m.blurTree()
			}
			m.resize(m.width, m.height)
			return m, nil
		case "r":
			return m, m.startIngest()
		case "f":
			m.cycleTypeFilter()
			return m, nil
		case "F":
			m.typeFilter = 0
			m.OnSectionSelected(m.projection)
			return m, nil
		case "/":
			return m, m.enterSearchMode()
		case "n":
			if len(m.searchMatches) > 0 {
				m.nextSearchMatch()
				return m, nil
			}
		case "N":
			if len(m.searchMatches) > 0 {
				m.previousSearchMatch()
				return m, nil
			}
		}

		if m.treeFocus && m.treeVisible {
			m.handleTreeKey(key)
			return m, nil
		}

		if m.handleContentKey(key) {
			return m, nil
		}

		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

// applyOutcome replaces the current course wholesale and presents it.
func (m *Model) applyOutcome(outcome ingest.Outcome) {
	m.outcome = outcome
	m.typeFilter = 0
	m.clearSearch()
	outcome.Present(m)
	if m.ready {
		m.resize(m.width, m.height)
	}
}

func (m *Model) startIngest() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.loading = true

	generation := m.generation
	reload := m.reload
	return func() tea.Msg {
		return ingestedMsg{generation: generation, outcome: reload(ctx)}
	}
}

func (m *Model) selectSection(name string) {
	m.OnSectionSelected(view.SelectSection(m.outcome.Course, name))
}

func (m *Model) cycleTypeFilter() {
	if m.projection.Empty() {
		return
	}
	m.typeFilter = (m.typeFilter + 1) % (len(tree.ResourceTypes) + 1)
	m.OnSectionSelected(m.projection)
}

func (m *Model) activeFilter() []tree.ResourceType {
	if m.typeFilter == 0 {
		return nil
	}
	return []tree.ResourceType{tree.ResourceTypes[m.typeFilter-1]}
}

func (m *Model) composeContent() string {
	var b strings.Builder
	if m.courseName != "" {
		fmt.Fprintf(&b, "# %s\n\n", m.courseName)
	}
	b.WriteString(view.Markdown(view.FilterByType(m.projection, m.activeFilter()...)))
	return b.String()
}

func (m *Model) statusLine() string {
	if !m.outcome.Ready() {
		if m.loading {
			return "loading…"
		}
		return "awaiting a course folder · r reload · ? help"
	}
	parts := []string{
		m.courseName,
		fmt.Sprintf("%d sections", len(m.sections)),
		fmt.Sprintf("%s resources", humanize.Comma(int64(m.outcome.Course.ResourceCount()))),
	}
	if filter := m.activeFilter(); filter != nil {
		parts = append(parts, "filter: "+filter[0].String())
	}
	if m.outcome.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", m.outcome.Skipped))
	}
	if m.loading {
		parts = append(parts, "reloading…")
	} else if !m.outcome.At.IsZero() {
		parts = append(parts, "ingested "+humanize.Time(m.outcome.At))
	}
	return strings.Join(parts, " · ")
}

func (m *Model) handleContentKey(key string) bool {
	switch key {
	case "j":
		m.contentVP.ScrollDown(1)
	case "k":
		m.contentVP.ScrollUp(1)
	case "ctrl+d":
		m.contentVP.HalfPageDown()
	case "ctrl+u":
		m.contentVP.HalfPageUp()
	case "h":
		m.contentVP.ScrollLeft(max(2, m.contentVP.Width/6))
	case "l":
		m.contentVP.ScrollRight(max(2, m.contentVP.Width/6))
	case "g":
		if m.pendingKey == "g" {
			m.contentVP.GotoTop()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.pendingKey = ""
		m.contentVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

func (m *Model) handleTreeKey(key string) {
	switch key {
	case "j", "down":
		m.moveSectionSelection(1)
	case "k", "up":
		m.moveSectionSelection(-1)
	case "ctrl+d":
		m.moveSectionSelection(max(1, m.sectionVP.Height/2))
	case "ctrl+u":
		m.moveSectionSelection(-max(1, m.sectionVP.Height/2))
	case "ctrl+j":
		m.contentVP.ScrollDown(1)
	case "ctrl+k":
		m.contentVP.ScrollUp(1)
	case "ctrl+f":
		m.contentVP.ScrollDown(max(1, m.contentVP.Height/2))
	case "ctrl+b":
		m.contentVP.ScrollUp(max(1, m.contentVP.Height/2))
	case "enter", "l", "right":
		if name, ok := m.currentSection(); ok {
			m.selectSection(name)
		}
	case "g":
		if m.pendingKey == "g" {
			m.pendingKey = ""
			m.sectionSelection = 0
			m.refreshSections()
			return
		}
		m.pendingKey = "g"
		return
	case "G":
		if len(m.sections) > 0 {
			m.sectionSelection = len(m.sections) - 1
			m.refreshSections()
		}
	}
	m.pendingKey = ""
}

func (m *Model) moveSectionSelection(delta int) {
	if len(m.sections) == 0 {
		return
	}
	m.sectionSelection = clamp(m.sectionSelection+delta, 0, len(m.sections)-1)
	m.refreshSections()
}

func (m *Model) currentSection() (string, bool) {
	if m.sectionSelection < 0 || m.sectionSelection >= len(m.sections) {
		return "", false
	}
	return m.sections[m.sectionSelection], true
}

func (m *Model) indexForSection(name string) int {
	for i, section := range m.sections {
		if section == name {
			return i
		}
	}
	return -1
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= statusHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	treeWidth := m.treeWidth(width)
	contentWidth := width - treeWidth
	if contentWidth < minContentWidth {
		contentWidth = minContentWidth
	}

	contentHeight := max(height-statusHeight, 1)
	m.contentVP.Width = contentWidth
	m.contentVP.Height = contentHeight

	wrapWidth := max(contentWidth-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	renderer, err := newRenderer(m.style, wrapWidth)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = renderer
	m.renderMarkdown()

	m.sectionVP.Width = treeWidth
	m.sectionVP.Height = contentHeight
	m.ensureSelectionVisible()
}

func (m *Model) treeWidth(totalWidth int) int {
	if !m.treeVisible || len(m.sections) == 0 {
		return 0
	}
	preferred := m.treePreferredWidth
	if preferred <= 0 {
		preferred = defaultTreeWidth
	}
	preferred = max(preferred, m.treeContentWidth)

	frame := m.sectionVP.Style.GetHorizontalFrameSize()
	minPanel := max(minTreePanelWidth-frame, 0)
	maxPanel := max(totalWidth/2-frame, minPanel)
	panelContentWidth := clamp(preferred, minPanel, maxPanel)

	width := panelContentWidth + frame
	if totalWidth-width < minContentWidth {
		width = max(totalWidth-minContentWidth, 0)
	}
	return min(width, totalWidth)
}

func (m *Model) renderMarkdown() {
	if m.renderer == nil {
		return
	}
	rendered, err := m.renderer.Render(m.rawContent)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.contentVP.SetContent(rendered)
	m.renderedContent = rendered
	m.onContentChanged()
}

func (m *Model) refreshSections() {
	var builder strings.Builder
	maxWidth := 0
	for i, name := range m.sections {
		label := m.sectionLabel(name)
		if w := lipgloss.Width(label); w > maxWidth {
			maxWidth = w
		}
		switch {
		case i == m.sectionSelection && m.treeFocus:
			builder.WriteString(treeSelectedActive.Render(label))
		case i == m.sectionSelection:
			builder.WriteString(treeSelectedInactive.Render(label))
		default:
			builder.WriteString(treeLineStyle.Render(label))
		}
		if i < len(m.sections)-1 {
			builder.WriteByte('\n')
		}
	}
	m.treeContentWidth = maxWidth
	m.sectionVP.SetContent(builder.String())
	m.ensureSelectionVisible()
}

func (m *Model) sectionLabel(name string) string {
	indicator := "  "
	if name == m.projection.Active {
		indicator = "▸ "
	}
	count := 0
	if section, ok := m.outcome.Course.Section(name); ok {
		count = len(section.Resources)
	}
	return fmt.Sprintf("%s%s (%d)", indicator, name, count)
}

func (m *Model) ensureSelectionVisible() {
	if len(m.sections) == 0 || m.sectionVP.Height == 0 {
		return
	}
	if m.sectionSelection < m.sectionVP.YOffset {
		m.sectionVP.SetYOffset(m.sectionSelection)
		return
	}
	bottom := m.sectionVP.YOffset + m.sectionVP.Height - 1
	if m.sectionSelection > bottom {
		m.sectionVP.SetYOffset(m.sectionSelection - m.sectionVP.Height + 1)
	}
}

func (m *Model) focusTree() {
	m.treeFocus = true
	m.updateTreePanelStyle()
	m.refreshSections()
}

func (m *Model) blurTree() {
	m.treeFocus = false
	m.updateTreePanelStyle()
	m.refreshSections()
}

func (m *Model) updateTreePanelStyle() {
	color := treeBlurBorderColor
	if m.treeFocus {
		color = treeFocusBorderColor
	}
	m.sectionVP.Style = treePanelStyle(color)
}

func treePanelStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(color)
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	m.pendingKey = ""
	if m.searchQuery != "" {
		m.searchInput.SetValue(m.searchQuery)
		m.searchInput.CursorEnd()
	} else {
		m.searchInput.SetValue("")
	}
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.searchMatches = nil
	m.searchIndex = -1
}

func (m *Model) searchStatusLine() string {
	total := len(m.searchMatches)
	if total == 0 || m.searchIndex < 0 {
		return fmt.Sprintf("/%s (0/0)", m.searchQuery)
	}
	return fmt.Sprintf("/%s (%d/%d)", m.searchQuery, m.searchIndex+1, total)
}

func (m *Model) performSearch(query string, resetIndex bool) {
	query = strings.TrimSpace(query)
	m.searchQuery = query
	m.searchMatches = findSearchMatches(m.renderedContent, query)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		m.err = fmt.Errorf("no match for %q", query)
		return
	}
	if resetIndex || m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) nextSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	m.searchIndex = (m.searchIndex + 1) % len(m.searchMatches)
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) previousSearchMatch() {
	if len(m.searchMatches) == 0 {
		return
	}
	if m.searchIndex <= 0 {
		m.searchIndex = len(m.searchMatches) - 1
	} else {
		m.searchIndex--
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) gotoSearchMatch() {
	if len(m.searchMatches) == 0 || m.searchIndex < 0 {
		return
	}
	totalLines := strings.Count(m.renderedContent, "\n") + 1
	targetLine := m.searchMatches[m.searchIndex]
	maxOffset := max(totalLines-m.contentVP.Height, 0)
	m.contentVP.SetYOffset(clamp(targetLine, 0, maxOffset))
}

// onContentChanged re-runs an active search against new content.
func (m *Model) onContentChanged() {
	if m.searchQuery == "" {
		return
	}
	m.searchMatches = findSearchMatches(m.renderedContent, m.searchQuery)
	if len(m.searchMatches) == 0 {
		m.searchIndex = -1
		return
	}
	if m.searchIndex < 0 || m.searchIndex >= len(m.searchMatches) {
		m.searchIndex = 0
	}
	m.gotoSearchMatch()
}

func findSearchMatches(content, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" || content == "" {
		return nil
	}

	stripped := ansi.Strip(content)
	lowerContent := strings.ToLower(stripped)
	lowerQuery := strings.ToLower(query)

	var matches []int
	offset := 0
	for {
		pos := strings.Index(lowerContent[offset:], lowerQuery)
		if pos == -1 {
			break
		}
		absolute := offset + pos
		matches = append(matches, strings.Count(lowerContent[:absolute], "\n"))
		offset = absolute + len(lowerQuery)
	}
	return matches
}

// syncWatches registers every current course directory with the watcher.
func (m *Model) syncWatches() tea.Cmd {
	dirs, err := m.watchDirs()
	if err != nil {
		m.logger.Warn("listing watch directories", "err", err)
		return nil
	}
	created, err := m.ensureWatcher()
	if err != nil {
		m.err = err
		return nil
	}

	wanted := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		dir = filepath.Clean(dir)
		wanted[dir] = true
		if m.watched[dir] {
			continue
		}
		if err := m.watcher.Add(dir); err != nil {
			m.logger.Warn("watching directory", "dir", dir, "err", err)
			continue
		}
		m.watched[dir] = true
	}
	for dir := range m.watched {
		if !wanted[dir] {
			_ = m.watcher.Remove(dir)
			delete(m.watched, dir)
		}
	}
	if !created {
		return nil
	}
	return m.waitForFileEvent()
}

// ensureWatcher starts the watcher on first use and reports whether it did.
func (m *Model) ensureWatcher() (bool, error) {
	if m.watcher != nil {
		return false, nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return false, err
	}
	m.watcher = watcher
	m.watched = make(map[string]bool)
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop(watcher, m.watchChan)
	return true, nil
}

func (m *Model) watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case out <- fileEventMsg{path: event.Name, op: event.Op}:
			default:
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			select {
			case out <- fileWatchErrMsg{err: err}:
			default:
			}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		return <-ch
	}
}

// handleFileEvent debounces filesystem changes into a single rescan.
func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	m.logger.Debug("course folder changed", "path", msg.path, "op", msg.op.String())
	m.rescanGen++
	generation := m.rescanGen
	return tea.Batch(
		tea.Tick(m.watchDebounce, func(time.Time) tea.Msg {
			return rescanMsg{generation: generation}
		}),
		m.waitForFileEvent(),
	)
}

func (m *Model) shutdown() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}
