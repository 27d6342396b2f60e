package app

import (
	"context"
	"strconv"
	"time"

	"github.com/klabast/yearplan/internal/surface"
)

// Renderer draws one year onto a surface in a single pass
type Renderer struct {
	Year     int
	Labels   Labels
	Holidays map[string]string // YYYY-MM-DD -> name, may be nil
}

// Render draws the title, the month headers and every day cell. It returns
// the number of cells drawn. Cancellation is checked between months.
func (r *Renderer) Render(ctx context.Context, s surface.Surface) (int, error) {
	width, height := s.Size()
	g := NewGeometry(width, height, Margin)

	s.SetFillColor(surface.Black)
	s.SetStrokeColor(surface.Black)

	s.SetFont(surface.Bold, TitleSize)
	s.DrawCentredString(width/2, g.TitleBaseline(), strconv.Itoa(r.Year))

	s.SetFont(surface.Bold, MonthSize)
	for m := 1; m <= Columns; m++ {
		s.DrawCentredString(g.ColumnCenter(m), g.MonthBaseline(), r.Labels.MonthName(m))
	}

	cells := 0
	for m := time.January; m <= time.December; m++ {
		if err := ctx.Err(); err != nil {
			return cells, err
		}
		for day := range MonthDays(r.Year, m) {
			r.drawDay(s, g, day)
			cells++
		}
	}
	return cells, nil
}

func (r *Renderer) drawDay(s surface.Surface, g Geometry, day CalendarDay) {
	x, y := g.CellOrigin(day.Month, day.Day)

	style := surface.Regular
	if day.IsWeekend() {
		s.SetFillColor(surface.LightGrey)
		s.Rect(x, y, g.ColumnWidth, g.RowHeight, true, false)
		s.SetFillColor(surface.Black)
		style = surface.Bold
	}
	s.Rect(x, y, g.ColumnWidth, g.RowHeight, false, true)

	s.SetFont(style, LabelSize)
	s.DrawString(x+LabelInset, y+LabelInset, r.Labels.DayLabel(day))

	if day.IsMonday() {
		s.SetFont(surface.Bold, WeekSize)
		week := strconv.Itoa(day.ISOWeek)
		if r.Labels.Strategy == Fixed {
			s.DrawString(x+WeekLeftEdge, y+LabelInset, week)
		} else {
			s.DrawRightString(x+WeekRightEdge, y+LabelInset, week)
		}
	}

	if _, ok := r.Holidays[day.Key()]; ok {
		s.SetFont(surface.Bold, LabelSize)
		if day.IsMonday() && r.Labels.Strategy != Fixed {
			// The corner above a right-aligned week number is taken
			s.DrawRightString(x+HolidayOffset, y+LabelInset, HolidayMark)
		} else {
			s.DrawRightString(x+g.ColumnWidth-LabelInset, y+g.RowHeight-LabelSize, HolidayMark)
		}
	}
}
