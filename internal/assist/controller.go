package assist

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/history"
	"github.com/vovakirdan/threesus/internal/model"
	"github.com/vovakirdan/threesus/internal/threes"
	"github.com/vovakirdan/threesus/internal/token"
)

// ErrIllegalRecommendation is returned when the engine recommends a swipe
// that does not move the board.
var ErrIllegalRecommendation = errors.New("assist: engine recommended an illegal swipe")

// State is a step of the turn loop.
type State int

const (
	AwaitingBoardInit State = iota
	Ready
	AwaitingReveal
	QueryingEngine
	ConfirmingSwipe
	ApplyingShift
	ResolvingInsertion
	AwaitingTileValue
	Committing
	GameOver
)

func (s State) String() string {
	switch s {
	case AwaitingBoardInit:
		return "AwaitingBoardInit"
	case Ready:
		return "Ready"
	case AwaitingReveal:
		return "AwaitingReveal"
	case QueryingEngine:
		return "QueryingEngine"
	case ConfirmingSwipe:
		return "ConfirmingSwipe"
	case ApplyingShift:
		return "ApplyingShift"
	case ResolvingInsertion:
		return "ResolvingInsertion"
	case AwaitingTileValue:
		return "AwaitingTileValue"
	case Committing:
		return "Committing"
	case GameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configures a Controller.
type Options struct {
	// ConfirmSwipe asks which way the player actually swiped, defaulting
	// to the recommendation.
	ConfirmSwipe bool

	// SessionID tags log lines and the Result.
	SessionID string

	Logger *log.Logger
}

// Result summarizes a finished session.
type Result struct {
	SessionID  string
	Turns      int
	FinalScore int
	MaxRank    threes.Rank
}

// Controller drives one game from board entry to game over.
type Controller struct {
	engine   engine.Engine
	console  *Console
	renderer *Renderer
	resolver *Resolver
	opts     Options
	logger   *log.Logger

	state   State
	history *history.History

	// Scratch state of the turn in progress; committed only at the end.
	hint  threes.Hint
	dir   threes.Direction
	work  model.Model
	cells []threes.Cell
	cell  threes.Cell
	rank  threes.Rank
}

// NewController creates a controller in AwaitingBoardInit.
func NewController(e engine.Engine, con *Console, r *Renderer, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.SessionID != "" {
		logger = logger.With("session", opts.SessionID)
	}
	return &Controller{
		engine:   e,
		console:  con,
		renderer: r,
		resolver: NewResolver(con, r),
		opts:     opts,
		logger:   logger,
		state:    AwaitingBoardInit,
	}
}

// State returns the current step of the turn loop.
func (c *Controller) State() State {
	return c.state
}

// Current returns the committed state, or the zero Snapshot before the board
// is entered.
func (c *Controller) Current() history.Snapshot {
	if c.history == nil {
		return history.Snapshot{}
	}
	return c.history.Current()
}

// Depth returns the number of committed turns.
func (c *Controller) Depth() int {
	if c.history == nil {
		return 0
	}
	return c.history.Depth()
}

// Run plays until the engine finds no legal swipe. It returns
// ErrInputClosed if the input ends first.
func (c *Controller) Run() (Result, error) {
	for {
		var err error
		prev := c.state

		switch c.state {
		case AwaitingBoardInit:
			err = c.initBoard()
		case Ready:
			c.render()
			c.state = AwaitingReveal
		case AwaitingReveal:
			err = c.awaitReveal()
		case QueryingEngine:
			err = c.queryEngine()
		case ConfirmingSwipe:
			err = c.confirmSwipe()
		case ApplyingShift:
			c.applyShift()
		case ResolvingInsertion:
			c.cell, err = c.resolver.Resolve(c.cells)
			if err == nil {
				c.state = AwaitingTileValue
			}
		case AwaitingTileValue:
			c.rank, err = ResolveRank(c.console, c.hint)
			if err == nil {
				c.state = Committing
			}
		case Committing:
			err = c.commit()
		case GameOver:
			score := c.Current().Model.TotalScore()
			c.console.Println("NO MORE MOVES.")
			c.console.Printf("FINAL SCORE IS %d.\n", score)
			c.logger.Info("game over", "turns", c.Depth(), "score", score)
			return c.result(), nil
		}

		if err != nil {
			return c.result(), err
		}
		if c.state != prev {
			c.logger.Debug("state", "from", prev, "to", c.state)
		}
	}
}

func (c *Controller) result() Result {
	cur := c.Current().Model
	return Result{
		SessionID:  c.opts.SessionID,
		Turns:      c.Depth(),
		FinalScore: cur.TotalScore(),
		MaxRank:    cur.MaxRank(),
	}
}

func (c *Controller) render() {
	m := c.history.Current().Model
	c.console.Println(c.renderer.RenderBoard(m.Board()))
	c.console.Printf("Current total score: %d\n", m.TotalScore())
}

func (c *Controller) initBoard() error {
	c.console.Println("Let's initialize the board...")
	c.console.Println("The format for each line should be four comma-delimited numbers, using a 0 for an empty space")

	m := model.New()
	for y := 0; y < threes.BoardSize; {
		line, err := c.console.Prompt(fmt.Sprintf("Enter row %d: ", y))
		if err != nil {
			return err
		}
		if err := m.SetRow(y, token.SplitRow(line)); err != nil {
			switch {
			case errors.Is(err, model.ErrRowWidth):
				c.console.Println("Invalid length of entered row.")
			default:
				c.console.Printf("Invalid row: %v\n", err)
			}
			continue
		}
		y++
	}

	c.console.Println("Board and deck successfully initialized.")
	c.history = history.New(m)
	c.logger.Debug("board initialized", "deck", m.Deck().String(), "score", m.TotalScore())
	c.state = Ready
	return nil
}

func (c *Controller) awaitReveal() error {
	answer, err := c.console.Prompt("What is the next card? ")
	if err != nil {
		return err
	}

	if token.IsUndo(answer) {
		snap, err := c.history.Undo()
		if errors.Is(err, history.ErrEmptyHistory) {
			c.console.Println("Nothing to undo.")
			return nil
		}
		c.logger.Debug("undo", "turn", snap.Turn)
		c.state = Ready
		return nil
	}

	hint, ok := token.DecodeReveal(answer)
	if !ok {
		c.console.Println("Enter 1, 2, 3, + or undo.")
		return nil
	}
	c.hint = hint
	c.state = QueryingEngine
	return nil
}

// turnModel returns the committed model ready to receive the revealed card.
// A basic rank the deck has run out of starts a new deck cycle.
func (c *Controller) turnModel() model.Model {
	m := c.history.Current().Model
	if r, basic := c.hint.Rank(); basic && m.EnsureCard(r) {
		c.logger.Debug("deck reshuffled", "rank", r)
	}
	return m
}

func (c *Controller) queryEngine() error {
	m := c.turnModel()

	c.console.Printf("Thinking...")
	dir, ok, err := c.engine.Recommend(m.Board(), m.Deck(), c.hint)
	if err != nil {
		c.console.Println()
		return fmt.Errorf("assist: engine %s: %w", c.engine.Name(), err)
	}
	if !ok {
		// The verdict continues the Thinking line
		c.state = GameOver
		return nil
	}
	c.console.Println()
	if !threes.CanShift(m.Board(), dir) {
		return fmt.Errorf("%w: %s", ErrIllegalRecommendation, dir)
	}

	c.logger.Debug("recommendation", "dir", dir, "hint", c.hint)
	c.console.Printf("SWIPE %s.\n", dir)
	c.dir = dir
	if c.opts.ConfirmSwipe {
		c.state = ConfirmingSwipe
	} else {
		c.state = ApplyingShift
	}
	return nil
}

func (c *Controller) confirmSwipe() error {
	board := c.history.Current().Model.Board()
	answer, err := c.console.Prompt("What direction did you swipe in? (l, r, u, d, or just hit enter for the suggested swipe) ")
	if err != nil {
		return err
	}

	dir, ok := token.DecodeDirection(answer, c.dir)
	if !ok {
		return nil
	}
	if !threes.CanShift(board, dir) {
		c.console.Printf("Swiping %s does not move anything.\n", dir)
		return nil
	}

	if dir != c.dir {
		c.logger.Debug("swipe overridden", "recommended", c.dir, "actual", dir)
	}
	c.dir = dir
	c.state = ApplyingShift
	return nil
}

func (c *Controller) applyShift() {
	c.work = c.turnModel()
	c.cells = c.work.Shift(c.dir)
	c.state = ResolvingInsertion
}

func (c *Controller) commit() error {
	if err := c.work.Place(c.cell, c.rank); err != nil {
		return fmt.Errorf("assist: place %d at %v: %w", c.rank, c.cell, err)
	}
	snap := c.history.Commit(c.work)
	c.logger.Debug("turn committed", "turn", snap.Turn, "score", snap.Model.TotalScore())
	c.state = Ready
	return nil
}
