package calendar

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"kegeltoday/internal/core/calendar"
	"kegeltoday/internal/ui/theme"
)

const cellSide = float32(34)

var (
	todayStroke = color.NRGBA{R: 139, G: 92, B: 246, A: 255}
	mutedText   = color.NRGBA{R: 148, G: 148, B: 160, A: 255}
	transparent = color.NRGBA{}
)

// View renders a consistency calendar month.
type View struct {
	title   *widget.Label
	summary *widget.Label
	grid    *fyne.Container
	root    *fyne.Container
	cells   map[string]*dayCell
}

type dayCell struct {
	stamp *canvas.Circle
	ring  *canvas.Rectangle
	label *canvas.Text
	root  *fyne.Container
}

// New creates an empty calendar view. Call SetMonth to fill it.
func New() *View {
	view := &View{
		title:   widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		summary: widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
		grid:    container.NewGridWithColumns(7),
		cells:   map[string]*dayCell{},
	}
	view.root = container.NewVBox(view.title, view.grid, view.summary)
	return view
}

// Object returns the canvas object to place in a window.
func (view *View) Object() fyne.CanvasObject {
	return view.root
}

// SetMonth replaces the rendered month.
func (view *View) SetMonth(month calendar.Month) {
	view.title.SetText(month.Title())
	view.summary.SetText(summaryText(month.Completed))

	objects := make([]fyne.CanvasObject, 0, 7+len(month.Weeks)*7)
	for _, weekday := range calendar.Weekdays {
		header := canvas.NewText(weekday, mutedText)
		header.Alignment = fyne.TextAlignCenter
		header.TextSize = 11
		objects = append(objects, header)
	}

	view.cells = make(map[string]*dayCell, 31)
	for _, week := range month.Weeks {
		for _, cell := range week {
			rendered := newDayCell(cell)
			if cell.Day > 0 {
				view.cells[cell.Date] = rendered
			}
			objects = append(objects, rendered.root)
		}
	}

	view.grid.Objects = objects
	view.grid.Refresh()
}

func newDayCell(cell calendar.Cell) *dayCell {
	stamp := canvas.NewCircle(transparent)
	ring := canvas.NewRectangle(transparent)
	ring.CornerRadius = cellSide / 2
	label := canvas.NewText("", mutedText)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = 13

	if cell.Day > 0 {
		label.Text = strconv.Itoa(cell.Day)
		label.Color = color.NRGBA{R: 120, G: 120, B: 130, A: 255}
	}
	if cell.Completed {
		stamp.FillColor = theme.Accent
		label.Color = color.White
		label.TextStyle = fyne.TextStyle{Bold: true}
	}
	if cell.Today {
		ring.StrokeColor = todayStroke
		ring.StrokeWidth = 2
		label.TextStyle = fyne.TextStyle{Bold: true}
	}

	spacer := canvas.NewRectangle(transparent)
	spacer.SetMinSize(fyne.NewSize(cellSide, cellSide))

	return &dayCell{
		stamp: stamp,
		ring:  ring,
		label: label,
		root:  container.NewStack(spacer, stamp, ring, container.NewCenter(label)),
	}
}

func summaryText(completed int) string {
	switch completed {
	case 0:
		return "No sessions yet this month"
	case 1:
		return "1 day completed this month"
	default:
		return strconv.Itoa(completed) + " days completed this month"
	}
}
