// Package rps implements the Rock-Paper-Scissors badge app.
// The player picks a move with buttons A/B/C, the badge's hidden move
// slides in from the left, and the result is shown until A is pressed.
package rps

import (
	"math/rand"

	"golang.org/x/image/font"

	"github.com/vovakirdan/badge-arcade/internal/core"
	"github.com/vovakirdan/badge-arcade/internal/registry"
)

// App identity in the registry.
const (
	AppID    = "rps"
	AppTitle = "Rock Paper Scissors"
)

// Reveal animation constants. The counter runs 0..RevealFrames; the badge
// box reaches its resting place at revealSpan and the result appears one
// frame later.
const (
	RevealFrames = 11
	revealSpan   = 10
	revealStartX = -60
	revealRestX  = 10
)

// Controller is the game state machine. It is driven by the host, one
// Update per frame, and is not safe for concurrent use.
type Controller struct {
	state      State
	badgeMove  Move
	playerMove Move
	hasPlayer  bool
	reveal     int
	rounds     int

	rng     *rand.Rand
	theme   Theme
	glyph   GlyphLayout
	face    font.Face
	onRound func(Round)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand injects the random source used for the badge's moves.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithTheme sets the brush colours.
func WithTheme(t Theme) Option {
	return func(c *Controller) { c.theme = t }
}

// WithGlyphLayout selects the hidden-glyph layout policy.
func WithGlyphLayout(l GlyphLayout) Option {
	return func(c *Controller) {
		if l != nil {
			c.glyph = l
		}
	}
}

// WithFont sets the custom font face; nil keeps the surface default.
func WithFont(face font.Face) Option {
	return func(c *Controller) { c.face = face }
}

// WithRoundHook registers fn to be called once per completed showdown.
func WithRoundHook(fn func(Round)) Option {
	return func(c *Controller) { c.onRound = fn }
}

// New creates a controller on the start screen.
func New(opts ...Option) *Controller {
	c := &Controller{
		state: StateStart,
		theme: DefaultTheme(),
		glyph: MeasuredCell{
			Reference: "#",
			Fallback:  FixedCell{W: DefaultCellWidth, H: DefaultCellHeight},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		seed := core.ResolveSeed(core.DefaultConfig(), core.NewMonotonicClock())
		c.rng = rand.New(rand.NewSource(seed))
	}
	c.badgeMove = RandomMove(c.rng)
	return c
}

// ID returns the unique identifier for this app.
func (c *Controller) ID() string {
	return AppID
}

// Title returns the display name for this app.
func (c *Controller) Title() string {
	return AppTitle
}

// Init puts the controller back on the start screen with a fresh badge move.
func (c *Controller) Init() {
	c.state = StateStart
	c.badgeMove = RandomMove(c.rng)
	c.hasPlayer = false
	c.reveal = 0
}

// Update handles one frame of input and draws the frame.
func (c *Controller) Update(in core.InputFrame, dst core.Surface) {
	c.drawChrome(dst)

	switch c.state {
	case StateStart:
		c.updateStart(in, dst)
	case StateSelect:
		c.updateSelect(in, dst)
	case StateShowdown:
		c.updateShowdown(in, dst)
	}
}

func (c *Controller) updateStart(in core.InputFrame, dst core.Surface) {
	c.drawTextCenter(dst, "Press A to begin", 64, c.theme.Foreground)
	if in.Has(core.ButtonA) {
		c.enterSelect()
	}
}

func (c *Controller) updateSelect(in core.InputFrame, dst core.Surface) {
	dst.SetBrush(c.theme.Foreground)
	drawHiddenGlyph(dst, c.glyph)
	c.drawChoices(dst)

	for i, b := range core.Buttons {
		if in.Has(b) {
			c.enterShowdown(Moves[i])
			return
		}
	}
}

func (c *Controller) updateShowdown(in core.InputFrame, dst core.Surface) {
	c.drawMoveBox(dst, c.badgeMove, RevealOffset(c.reveal))
	c.drawMoveBox(dst, c.playerMove, playerBoxX)

	if c.reveal < RevealFrames {
		c.reveal++
		if c.reveal == RevealFrames {
			c.finishRound()
		}
		return
	}

	outcome := Decide(c.playerMove, c.badgeMove)
	c.drawTextCenter(dst, outcome.Text(), 100, c.theme.Accent)
	c.drawTextCenter(dst, "Press A to play again", 112, c.theme.Foreground)
	if in.Has(core.ButtonA) {
		c.enterSelect()
	}
}

// enterSelect re-rolls the badge's move and forgets the player's and the
// previous reveal.
func (c *Controller) enterSelect() {
	c.state = StateSelect
	c.badgeMove = RandomMove(c.rng)
	c.hasPlayer = false
	c.reveal = 0
}

func (c *Controller) enterShowdown(m Move) {
	c.playerMove = m
	c.hasPlayer = true
	c.state = StateShowdown
	c.reveal = 0
}

func (c *Controller) finishRound() {
	c.rounds++
	if c.onRound != nil {
		c.onRound(Round{
			Player:  c.playerMove,
			Badge:   c.badgeMove,
			Outcome: Decide(c.playerMove, c.badgeMove),
		})
	}
}

// State returns the current screen.
func (c *Controller) State() State {
	return c.state
}

// BadgeMove returns the badge's (possibly still hidden) move.
func (c *Controller) BadgeMove() Move {
	return c.badgeMove
}

// PlayerMove returns the player's move; ok is false outside the showdown.
func (c *Controller) PlayerMove() (m Move, ok bool) {
	if !c.hasPlayer {
		return 0, false
	}
	return c.playerMove, true
}

// RevealProgress returns the reveal counter (0..RevealFrames).
func (c *Controller) RevealProgress() int {
	return c.reveal
}

// Revealed reports whether the showdown animation has finished.
func (c *Controller) Revealed() bool {
	return c.state == StateShowdown && c.reveal >= RevealFrames
}

// Outcome returns the result of the current showdown; ok is false when
// the player has not chosen yet.
func (c *Controller) Outcome() (o Outcome, ok bool) {
	if !c.hasPlayer {
		return 0, false
	}
	return Decide(c.playerMove, c.badgeMove), true
}

// Rounds returns how many showdowns have completed.
func (c *Controller) Rounds() int {
	return c.rounds
}

// RevealOffset returns the badge box x position for a reveal counter value.
func RevealOffset(progress int) int {
	p := core.Clamp(progress, 0, revealSpan)
	return revealStartX + (revealRestX-revealStartX)*p/revealSpan
}

var _ registry.App = (*Controller)(nil)
