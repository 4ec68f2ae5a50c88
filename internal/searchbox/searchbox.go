package searchbox

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/config"
	"github.com/AMRENE5435/marrakech.reviews/internal/format"
	"github.com/AMRENE5435/marrakech.reviews/internal/model"
	"github.com/AMRENE5435/marrakech.reviews/internal/query"
)

const (
	defaultDebounce    = 500 * time.Millisecond
	defaultInlineLimit = format.InlineResultLimit
)

var (
	// ErrUnknownCategory is returned by SetCategory for codes not offered
	ErrUnknownCategory = errors.New("unknown category")
	// ErrNoSuchResult is returned by Select for an index outside the inline results
	ErrNoSuchResult = errors.New("no such result")
)

// Phase is what the search box is currently showing
type Phase int

const (
	Empty Phase = iota
	Typing
	Searching
	Results
	EmptyResults
	Error
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Searching:
		return "searching"
	case Results:
		return "results"
	case EmptyResults:
		return "empty_results"
	case Error:
		return "error"
	default:
		return "empty"
	}
}

// Searcher runs a free-text location search
type Searcher interface {
	Search(ctx context.Context, query, category string, limit int) ([]model.Location, error)
}

// Opener opens a deep link outside the search box
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(url string) error

// Open calls f(url)
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// View is a render-ready snapshot of the search box
type View struct {
	Query    string
	Category string
	Phase    Phase
	Open     bool
	Results  []model.LocationView
	Total    int
	MoreURL  string
	Err      error
}

type searchArgs struct {
	Query    string
	Category string
}

// Box is the interactive search box: debounced free-text search with a
// category filter and a results popover
type Box struct {
	ctx         context.Context
	searcher    Searcher
	opener      Opener
	logger      *zap.Logger
	debouncer   *Debouncer
	results     *query.Controller[searchArgs, []model.Location]
	inlineLimit int
	categories  []Category

	// runMu orders issuing a search against clearing the results
	runMu sync.Mutex

	mu       sync.Mutex
	query    string
	category string
	open     bool
}

// NewBox creates an empty search box. ctx bounds every search it issues.
func NewBox(ctx context.Context, searcher Searcher, opener Opener, cfg config.SearchConfig, logger *zap.Logger) *Box {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	inlineLimit := cfg.InlineLimit
	if inlineLimit <= 0 {
		inlineLimit = defaultInlineLimit
	}

	b := &Box{
		ctx:         ctx,
		searcher:    searcher,
		opener:      opener,
		logger:      logger.Named("searchbox"),
		debouncer:   NewDebouncer(debounce),
		inlineLimit: inlineLimit,
		categories:  offeredCategories(cfg.Categories),
		category:    CategoryAll,
	}
	b.results = query.NewController("search", b.fetch, logger)
	b.results.Subscribe(b.onResults)
	return b
}

// Categories returns the category selector entries
func (b *Box) Categories() []Category {
	return b.categories
}

// Input handles a change of the query text
func (b *Box) Input(text string) {
	b.mu.Lock()
	b.query = text
	b.mu.Unlock()

	if isBlank(text) {
		b.reset()
		return
	}
	b.debouncer.Trigger(b.search)
}

// SetCategory changes the filter and re-runs a non-blank query immediately
func (b *Box) SetCategory(code string) error {
	if !b.offers(code) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, code)
	}

	b.mu.Lock()
	b.category = code
	text := b.query
	b.mu.Unlock()

	if !isBlank(text) {
		b.debouncer.Cancel()
		b.search()
	}
	return nil
}

// Enter submits the current query without waiting for the debounce
func (b *Box) Enter() {
	b.mu.Lock()
	text := b.query
	b.mu.Unlock()

	if isBlank(text) {
		b.reset()
		return
	}
	b.debouncer.Cancel()
	b.search()
}

// ClickOutside closes the results popover
func (b *Box) ClickOutside() {
	b.mu.Lock()
	b.open = false
	b.mu.Unlock()
}

// ClearQuery empties the query and the results
func (b *Box) ClearQuery() {
	b.mu.Lock()
	b.query = ""
	b.mu.Unlock()

	b.reset()
}

// Select opens the deep link of the i-th inline result and closes the popover.
// While a newer search loads, the rows still shown are selectable.
func (b *Box) Select(i int) error {
	state := b.results.State()
	if i < 0 || i >= min(len(state.Value), b.inlineLimit) {
		return fmt.Errorf("%w: %d", ErrNoSuchResult, i)
	}

	url := format.TripAdvisorURL(state.Value[i].LocationID)
	if err := b.opener.Open(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	b.mu.Lock()
	b.open = false
	b.mu.Unlock()
	return nil
}

// View returns the current render-ready snapshot
func (b *Box) View() View {
	b.mu.Lock()
	view := View{Query: b.query, Category: b.category, Open: b.open}
	b.mu.Unlock()

	if isBlank(view.Query) {
		view.Phase = Empty
		view.Results = []model.LocationView{}
		return view
	}

	pending := b.debouncer.Pending()
	state := b.results.State()

	switch {
	case pending, state.Status == query.Idle:
		view.Phase = Typing
	case state.Status == query.Loading:
		view.Phase = Searching
	case state.Status == query.Error:
		view.Phase = Error
		view.Err = state.Err
	case len(state.Value) == 0:
		view.Phase = EmptyResults
	default:
		view.Phase = Results
	}

	view.Total = len(state.Value)
	view.Results = format.NewLocationViews(state.Value[:min(len(state.Value), b.inlineLimit)])
	view.MoreURL = format.MoreResultsURL(view.Query, view.Total, b.inlineLimit)
	return view
}

// Wait blocks until every issued search has settled
func (b *Box) Wait() {
	b.results.Wait()
}

// Close drops any pending search
func (b *Box) Close() {
	b.debouncer.Cancel()
	b.results.Clear()
}

// search issues a request for the query and category as they are now
func (b *Box) search() {
	b.runMu.Lock()
	defer b.runMu.Unlock()

	b.mu.Lock()
	args := searchArgs{Query: strings.TrimSpace(b.query), Category: b.category}
	b.mu.Unlock()

	if args.Query == "" {
		return
	}
	if args.Category == CategoryAll {
		args.Category = ""
	}
	b.logger.Debug("searching", zap.String("query", args.Query), zap.String("category", args.Category))
	b.results.Run(b.ctx, args)
}

func (b *Box) fetch(ctx context.Context, args searchArgs) ([]model.Location, error) {
	return b.searcher.Search(ctx, args.Query, args.Category, 0)
}

// onResults opens the popover once a search settles for a non-blank query
func (b *Box) onResults(state query.State[[]model.Location]) {
	if state.Status != query.Success && state.Status != query.Error {
		return
	}
	b.mu.Lock()
	if !isBlank(b.query) {
		b.open = true
	}
	b.mu.Unlock()
}

func (b *Box) reset() {
	b.debouncer.Cancel()

	b.runMu.Lock()
	b.results.Clear()
	b.runMu.Unlock()

	b.mu.Lock()
	b.open = false
	b.mu.Unlock()
}

func (b *Box) offers(code string) bool {
	for _, c := range b.categories {
		if c.Code == code {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
