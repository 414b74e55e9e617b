// Package window runs muncher in a desktop window with real gamepads,
// using ebiten. Controllers may be plugged in and out at any time; the
// keyboard stands in for player one.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/muncher/internal/core"
	"github.com/vovakirdan/muncher/internal/games/muncher"
	"github.com/vovakirdan/muncher/internal/platform/gamepad"
	"github.com/vovakirdan/muncher/internal/storage"
)

// textScale enlarges the debug font so HUD text reads at arena resolution.
const textScale = 4

// Options configures the window frontend.
type Options struct {
	Store    *storage.Store // Optional round history
	TickRate int
	Logger   *log.Logger
	Width    int // Initial window size
	Height   int
}

// Game implements ebiten.Game around a muncher session.
type Game struct {
	session  *muncher.Session
	hub      *gamepad.Hub
	keyboard *core.Pad
	store    *storage.Store
	logger   *log.Logger
	dt       float64
	text     *ebiten.Image // Low-resolution layer for debug-font text
}

// NewGame creates the ebiten game for a session.
func NewGame(session *muncher.Session, opts Options) *Game {
	rate := opts.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session:  session,
		hub:      gamepad.NewHub(),
		keyboard: core.NewPad(0),
		store:    opts.Store,
		logger:   logger,
		dt:       1 / float64(rate),
	}
}

// Devices implements core.DeviceSource: controllers first, then the keyboard.
func (g *Game) Devices() []core.Device {
	return append(g.hub.Devices(), g.keyboard)
}

// Update polls input, re-resolves device slots and steps the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	added, removed := g.hub.Sync(gamepadIDs())
	for _, id := range added {
		g.logger.Info("gamepad connected", "id", id, "name", ebiten.GamepadName(ebiten.GamepadID(id)))
	}
	for _, id := range removed {
		g.logger.Info("gamepad disconnected", "id", id)
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		g.hub.Set(int(id), readGamepad(id))
	}
	readKeyboard(g.keyboard)

	g.session.ResolveDevices(g)
	g.session.Update(g.dt)

	for _, ev := range g.session.Events() {
		if ev.Kind == muncher.EventGameOver {
			g.saveRound()
		}
	}
	return nil
}

func (g *Game) saveRound() {
	if g.store == nil {
		return
	}
	r := g.session.Result()
	_, err := g.store.SaveRound(storage.Round{
		ModeID:     r.ModeID,
		Score:      r.TokensEaten,
		EnemyEaten: r.EnemyEaten,
		Ticks:      r.Ticks,
		Players:    r.Players,
		Frontend:   "window",
	})
	if err != nil {
		g.logger.Warn("could not save round", "mode", r.ModeID, "error", err)
	}
}

// Draw renders the current frame at arena resolution.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()

	if f.Black {
		screen.Fill(color.Black)
	} else {
		screen.Fill(background)
	}

	for _, d := range f.Sprites {
		r := d.Rect
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), paletteColor(d.Color), false)
	}

	if g.text == nil {
		g.text = ebiten.NewImage(f.Width/textScale, f.Height/textScale)
	}
	g.text.Clear()
	if f.Screen == muncher.ScreenMenu {
		g.drawMenu(f.Menu)
	} else {
		for i, line := range f.HUD {
			ebitenutil.DebugPrintAt(g.text, line, 4, 4+i*16)
		}
		if f.Overlay != "" {
			w, h := g.text.Bounds().Dx(), g.text.Bounds().Dy()
			ebitenutil.DebugPrintAt(g.text, f.Overlay, (w-len(f.Overlay)*6)/2, h/2-8)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	screen.DrawImage(g.text, op)
}

// drawMenu prints the mode picker onto the text layer.
func (g *Game) drawMenu(m muncher.MenuFrame) {
	w := g.text.Bounds().Dx()
	center := func(y int, s string) {
		ebitenutil.DebugPrintAt(g.text, s, (w-len(s)*6)/2, y)
	}

	y := 40
	center(y, m.Title)
	y += 32
	for i, item := range m.Items {
		if i == m.Selected {
			item = "> " + item + " <"
		}
		center(y, item)
		y += 16
	}
	y += 16
	center(y, m.Detail)
	center(y+32, m.Hint)
}

// Layout implements ebiten.Game. The arena is drawn at its logical size
// and scaled to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	r := g.session.Rules()
	return r.Width, r.Height
}

// Run opens the window and blocks until it is closed.
func Run(session *muncher.Session, opts Options) error {
	game := NewGame(session, opts)

	w, h := opts.Width, opts.Height
	if w <= 0 || h <= 0 {
		w, h = 1280, 720
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Muncher")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(1/game.dt + 0.5))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// background is the arena color outside the black end screen.
var background = color.RGBA{R: 24, G: 32, B: 24, A: 255}

// palette maps sprite colors to RGB.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 200, G: 200, B: 200, A: 255},
	core.ColorRed:           {R: 205, G: 49, B: 49, A: 255},
	core.ColorGreen:         {R: 13, G: 188, B: 121, A: 255},
	core.ColorYellow:        {R: 229, G: 229, B: 16, A: 255},
	core.ColorBlue:          {R: 36, G: 114, B: 200, A: 255},
	core.ColorMagenta:       {R: 188, G: 63, B: 188, A: 255},
	core.ColorCyan:          {R: 17, G: 168, B: 205, A: 255},
	core.ColorWhite:         {R: 229, G: 229, B: 229, A: 255},
	core.ColorBrightRed:     {R: 241, G: 76, B: 76, A: 255},
	core.ColorBrightGreen:   {R: 35, G: 209, B: 139, A: 255},
	core.ColorBrightYellow:  {R: 245, G: 245, B: 67, A: 255},
	core.ColorBrightBlue:    {R: 59, G: 142, B: 234, A: 255},
	core.ColorBrightMagenta: {R: 214, G: 112, B: 214, A: 255},
	core.ColorBrightCyan:    {R: 41, G: 184, B: 219, A: 255},
	core.ColorBrightWhite:   {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:        {R: 255, G: 135, B: 0, A: 255},
	core.ColorGray:          {R: 138, G: 138, B: 138, A: 255},
	core.ColorBlack:         {R: 0, G: 0, B: 0, A: 255},
}

func paletteColor(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
