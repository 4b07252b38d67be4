package ui

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/minegrid/game"
)

const (
	cellWidth     = 24
	cellPadding   = 1
	headerHeight  = 50
	minWindowWidth = 200
)

var cellColors = map[game.CellState]color.RGBA{
	game.Unrevealed:     colornames.Yellowgreen,
	game.Flag:           colornames.Yellowgreen,
	game.FlagWrong:      colornames.Lightpink,
	game.MineUnrevealed: colornames.Lightgray,
	game.MineLosing:     colornames.Red,
}

var numberColors = map[game.CellState]color.RGBA{
	game.Number1: colornames.Blue,
	game.Number2: colornames.Green,
	game.Number3: colornames.Red,
	game.Number4: colornames.Navy,
	game.Number5: colornames.Maroon,
	game.Number6: colornames.Teal,
	game.Number7: colornames.Black,
	game.Number8: colornames.Dimgray,
}

func cellColor(state game.CellState) color.RGBA {
	if c, ok := cellColors[state]; ok {
		return c
	}
	return colornames.Whitesmoke
}

// cellLabel is the glyph drawn on top of a square, and its colour
func cellLabel(state game.CellState) (string, color.RGBA) {
	switch state {
	case game.Flag:
		return "F", colornames.Darkred
	case game.FlagWrong:
		return "X", colornames.Black
	case game.MineUnrevealed, game.MineLosing:
		return "*", colornames.Black
	}
	if c, ok := numberColors[state]; ok {
		return strconv.Itoa(int(state)), c
	}
	return "", colornames.Black
}

func screenToGridCoords(pos pixel.Vec) (int, int) {
	if pos.X < 0 || pos.Y < 0 {
		return -1, -1
	}
	return int(pos.X) / cellWidth, game.Height - int(pos.Y)/cellWidth - 1
}

func gridToScreenRect(x, y int) pixel.Rect {
	minX := float64(x * cellWidth)
	minY := float64((game.Height - y - 1) * cellWidth)
	return pixel.R(minX, minY, minX+cellWidth, minY+cellWidth)
}

// logError reports an engine error; a failed move leaves the grid untouched
func logError(action game.CellAction, err error) {
	if err != nil {
		game.Log.WithField("action", action).WithError(err).Warn("move rejected")
	}
}

func Run(config game.GameConfig) error {
	grid, err := config.CreateGrid()
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title: "minegrid",
		Bounds: pixel.R(
			0, 0,
			math.Max(float64(game.Width*cellWidth), minWindowWidth),
			float64(game.Height*cellWidth+headerHeight),
		),
		VSync: true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	topLeft := win.Bounds().Vertices()[1]
	topRight := win.Bounds().Max

	scoreText := text.New(topLeft.Add(pixel.V(20, -30)), basicAtlas)
	cellPosText := text.New(topRight.Add(pixel.V(-60, -30)), basicAtlas)
	cellPosText.Color = colornames.Darkcyan
	labels := text.New(pixel.ZV, basicAtlas)
	imd := imdraw.New(nil)

	autoPlay := false
	lastAct := time.Now()

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		state := grid.State()

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "%03d", grid.MinesRemaining())
		switch state {
		case game.Won:
			scoreText.Color = colornames.Green
			fmt.Fprint(scoreText, "   WIN!")
		case game.Lost:
			scoreText.Color = colornames.Red
			fmt.Fprint(scoreText, "   LOSE :(")
		}
		scoreText.Draw(win, pixel.IM)

		var hovered *game.Square
		if win.MouseInsideWindow() {
			hovered = grid.SquareAt(screenToGridCoords(win.MousePosition()))
		}

		cellPosText.Clear()
		if hovered != nil {
			fmt.Fprintf(cellPosText, "(%d, %d)", hovered.X(), hovered.Y())
			cellPosText.Draw(win, pixel.IM)
		}

		imd.Clear()
		labels.Clear()
		for _, square := range grid.Squares() {
			view, _ := grid.SquareView(square.X(), square.Y())
			cellState := view.CellState(state)
			rect := gridToScreenRect(view.X, view.Y)

			imd.Color = cellColor(cellState)
			imd.Push(rect.Min.Add(pixel.V(cellPadding, cellPadding)), rect.Max.Sub(pixel.V(cellPadding, cellPadding)))
			imd.Rectangle(0) // 0 = filled

			if label, labelColor := cellLabel(cellState); label != "" {
				labels.Color = labelColor
				labels.Dot = rect.Center().Sub(pixel.V(labels.BoundsOf(label).W()/2, basicAtlas.LineHeight()/3))
				fmt.Fprint(labels, label)
			}
		}
		imd.Draw(win)
		labels.Draw(win, pixel.IM)

		if state != game.InProgress {
			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				grid.Restart()
				lastAct = time.Now()
			}
			continue
		}

		if config.Director != nil {
			// Toggle the director with Space
			if win.JustPressed(pixelgl.KeySpace) {
				autoPlay = !autoPlay
			}

			// Single director move with Right Arrow
			act := win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)
			if autoPlay && time.Since(lastAct) >= config.DirectorInterval {
				act = true
			}

			if act {
				lastAct = time.Now()
				if action, ok := config.Director.Act(grid); ok {
					_, err := grid.Apply(action)
					logError(action, err)
				}
			}
		}

		if hovered != nil {
			var action game.CellAction
			pressed := true
			switch {
			case win.JustPressed(pixelgl.MouseButtonLeft):
				action = game.CellAction{X: hovered.X(), Y: hovered.Y(), Type: game.Click}
			case win.JustPressed(pixelgl.MouseButtonRight):
				action = game.CellAction{X: hovered.X(), Y: hovered.Y(), Type: game.RightClick}
			case win.JustPressed(pixelgl.MouseButtonMiddle):
				action = game.CellAction{X: hovered.X(), Y: hovered.Y(), Type: game.MiddleClick}
			default:
				pressed = false
			}

			if pressed {
				_, err := grid.Apply(action)
				logError(action, err)
			}
		}
	}

	return nil
}
