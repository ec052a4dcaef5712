package coach

import (
	"context"
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"kegeltoday/internal/core/model"
	"kegeltoday/internal/core/session"
	"kegeltoday/internal/ui/animation"
	"kegeltoday/internal/ui/theme"
)

var (
	mutedText = color.NRGBA{R: 148, G: 148, B: 160, A: 255}
	readyFill = color.NRGBA{R: 148, G: 148, B: 160, A: 120}
)

// Window shows a running session and the finished screen.
type Window struct {
	window fyne.Window

	phaseLabel   *canvas.Text
	timerLabel   *canvas.Text
	repLabel     *canvas.Text
	encourage    *widget.Label
	circle       *canvas.Circle
	circleArea   *fyne.Container
	circleLayout *circleLayout
	progress     *widget.ProgressBar
	stopButton   *widget.Button
	sessionView  *fyne.Container
	benefitLabel *widget.Label
	finishedView *fyne.Container
	backButton   *widget.Button
	engine       *animation.Engine

	mu         sync.Mutex
	onStop     func()
	onBackHome func()
	lastPhase  session.Phase
}

// New creates the coach window.
func New(app fyne.App, config animation.Config) *Window {
	window := app.NewWindow("Kegel Today")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	phaseLabel := canvas.NewText("", theme.Accent)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 26

	timerLabel := canvas.NewText("", color.White)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerLabel.TextSize = 44

	repLabel := canvas.NewText("", mutedText)
	repLabel.Alignment = fyne.TextAlignCenter
	repLabel.TextSize = 14

	encourage := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	encourage.Wrapping = fyne.TextWrapWord

	circle := canvas.NewCircle(readyFill)
	layout := &circleLayout{scale: config.RestScale}
	circleArea := container.New(layout, circle, container.NewCenter(timerLabel))

	progress := widget.NewProgressBar()
	stopButton := widget.NewButton("Stop", nil)

	sessionView := container.NewBorder(
		container.NewVBox(phaseLabel, repLabel),
		container.NewVBox(encourage, progress, stopButton),
		nil, nil,
		circleArea,
	)

	finishedTitle := canvas.NewText("Awesome!", theme.Accent)
	finishedTitle.Alignment = fyne.TextAlignCenter
	finishedTitle.TextStyle = fyne.TextStyle{Bold: true}
	finishedTitle.TextSize = 32

	benefitLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	benefitLabel.Wrapping = fyne.TextWrapWord
	backButton := widget.NewButton("Back Home", nil)
	backButton.Importance = widget.HighImportance

	finishedView := container.NewVBox(
		finishedTitle,
		widget.NewLabelWithStyle("You completed your daily session", fyne.TextAlignCenter, fyne.TextStyle{}),
		benefitLabel,
		backButton,
	)
	finishedView.Hide()

	window.SetContent(container.NewPadded(container.NewStack(sessionView, container.NewCenter(finishedView))))
	window.Resize(fyne.NewSize(360, 520))

	coach := &Window{
		window:       window,
		phaseLabel:   phaseLabel,
		timerLabel:   timerLabel,
		repLabel:     repLabel,
		encourage:    encourage,
		circle:       circle,
		circleArea:   circleArea,
		circleLayout: layout,
		progress:     progress,
		stopButton:   stopButton,
		sessionView:  sessionView,
		benefitLabel: benefitLabel,
		finishedView: finishedView,
		backButton:   backButton,
	}
	coach.engine = animation.New(config, coach.SetScale)

	stopButton.OnTapped = coach.handleStop
	backButton.OnTapped = coach.handleBackHome
	window.SetCloseIntercept(func() {
		if coach.finishedView.Visible() {
			coach.handleBackHome()
			return
		}
		coach.handleStop()
	})

	return coach
}

// SetOnStop sets the handler for Stop and for closing a running session.
func (coach *Window) SetOnStop(handler func()) {
	coach.mu.Lock()
	defer coach.mu.Unlock()
	coach.onStop = handler
}

// SetOnBackHome sets the handler for leaving the finished screen.
func (coach *Window) SetOnBackHome(handler func()) {
	coach.mu.Lock()
	defer coach.mu.Unlock()
	coach.onBackHome = handler
}

// Show resets the window for a new session and brings it to the front.
func (coach *Window) Show() {
	coach.resetUnsafe()
	coach.window.Show()
	coach.window.RequestFocus()
}

// Hide closes the window and stops the animation.
func (coach *Window) Hide() {
	coach.stopAnimation()
	coach.window.Hide()
}

// Apply renders a session event. Safe to call from any goroutine.
func (coach *Window) Apply(event session.Event) {
	fyne.Do(func() {
		coach.applyUnsafe(event)
	})
}

// SetScale resizes the breathing circle. Safe to call from any goroutine.
func (coach *Window) SetScale(scale float32) {
	fyne.Do(func() {
		coach.circleLayout.scale = scale
		coach.circleArea.Refresh()
	})
}

func (coach *Window) applyUnsafe(event session.Event) {
	state := event.State
	switch event.Type {
	case session.EventFinished:
		coach.showFinishedUnsafe(event.Benefit)
		return
	case session.EventCancelled:
		coach.stopAnimation()
		return
	}

	coach.phaseLabel.Text = PhaseTitle(state.Phase)
	coach.phaseLabel.Color = phaseColor(state.Phase)
	coach.phaseLabel.Refresh()
	coach.timerLabel.Text = fmt.Sprintf("%d", state.SecondsRemaining)
	coach.timerLabel.Refresh()
	coach.repLabel.Text = RepText(state, event.Config)
	coach.repLabel.Refresh()
	coach.progress.SetValue(event.Progress())

	if state.Phase == session.PhaseRest && state.Encouragement != "" {
		coach.encourage.SetText(state.Encouragement)
	} else if state.Phase != session.PhaseRest {
		coach.encourage.SetText("")
	}

	if state.Phase != coach.lastPhase {
		coach.lastPhase = state.Phase
		coach.circle.FillColor = phaseColor(state.Phase)
		coach.circle.Refresh()
		coach.animate(state.Phase)
	}
}

func (coach *Window) showFinishedUnsafe(benefit string) {
	coach.stopAnimation()
	coach.benefitLabel.SetText(benefit)
	coach.sessionView.Hide()
	coach.finishedView.Show()
}

func (coach *Window) resetUnsafe() {
	coach.stopAnimation()
	coach.lastPhase = ""
	coach.phaseLabel.Text = PhaseTitle(session.PhaseReady)
	coach.phaseLabel.Refresh()
	coach.timerLabel.Text = ""
	coach.timerLabel.Refresh()
	coach.repLabel.Text = ""
	coach.repLabel.Refresh()
	coach.encourage.SetText("")
	coach.progress.SetValue(0)
	coach.benefitLabel.SetText("")
	coach.finishedView.Hide()
	coach.sessionView.Show()
}

func (coach *Window) animate(phase session.Phase) {
	coach.engine.AnimatePhase(context.Background(), phase)
}

func (coach *Window) stopAnimation() {
	coach.engine.Stop()
}

func (coach *Window) handleStop() {
	coach.mu.Lock()
	handler := coach.onStop
	coach.mu.Unlock()
	coach.Hide()
	if handler != nil {
		handler()
	}
}

func (coach *Window) handleBackHome() {
	coach.mu.Lock()
	handler := coach.onBackHome
	coach.mu.Unlock()
	coach.Hide()
	if handler != nil {
		handler()
	}
}

// PhaseTitle is the instruction shown for a phase.
func PhaseTitle(phase session.Phase) string {
	switch phase {
	case session.PhaseReady:
		return "Get ready"
	case session.PhaseWork:
		return "Squeeze"
	case session.PhaseRest:
		return "Relax"
	case session.PhaseFinished:
		return "Done"
	default:
		return ""
	}
}

// RepText describes the current repetition, e.g. "Rep 3 of 10".
func RepText(state session.State, config model.SessionConfig) string {
	if state.Phase == session.PhaseReady {
		return fmt.Sprintf("%d reps", config.TotalReps)
	}
	return fmt.Sprintf("Rep %d of %d", state.CurrentRep, config.TotalReps)
}

func phaseColor(phase session.Phase) color.Color {
	switch phase {
	case session.PhaseWork:
		return theme.Accent
	case session.PhaseRest:
		return theme.Relax
	default:
		return readyFill
	}
}

type circleLayout struct {
	scale float32
}

func (layout *circleLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		return
	}
	circle := objects[0]
	label := objects[1]

	side := size.Width
	if size.Height < side {
		side = size.Height
	}
	side = side * 0.8 * layout.scale
	if side < 0 {
		side = 0
	}
	circle.Resize(fyne.NewSize(side, side))
	circle.Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))

	label.Resize(size)
	label.Move(fyne.NewPos(0, 0))
}

func (layout *circleLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 2 {
		return fyne.NewSize(0, 0)
	}
	labelMin := objects[1].MinSize()
	side := float32(200)
	if labelMin.Width > side {
		side = labelMin.Width
	}
	return fyne.NewSize(side, side)
}
