package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klabast/yearplan/internal/surface"
)

func render(t *testing.T, r *Renderer) *surface.Recorder {
	t.Helper()
	rec := surface.NewRecorder(surface.A4LandscapeWidth, surface.A4LandscapeHeight)
	cells, err := r.Render(context.Background(), rec)
	require.NoError(t, err)
	require.Equal(t, DaysInYear(r.Year), cells)
	return rec
}

func cellKey(x, y float64) string {
	return fmt.Sprintf("%.3f/%.3f", x, y)
}

func geometry() Geometry {
	return NewGeometry(surface.A4LandscapeWidth, surface.A4LandscapeHeight, Margin)
}

func TestRenderOneBorderPerDay(t *testing.T) {
	for _, year := range []int{2024, 2026, 2027} {
		t.Run(fmt.Sprint(year), func(t *testing.T) {
			rec := render(t, &Renderer{Year: year, Labels: NewResolver(nil).Resolve("en")})
			g := geometry()

			borders := make(map[string]bool)
			for _, c := range rec.Rects() {
				if !c.Stroke {
					continue
				}
				assert.False(t, c.Fill)
				assert.InDelta(t, g.ColumnWidth, c.W, 1e-9)
				assert.InDelta(t, g.RowHeight, c.H, 1e-9)
				key := cellKey(c.X, c.Y)
				assert.False(t, borders[key], "cell %s drawn twice", key)
				borders[key] = true
			}
			assert.Len(t, borders, DaysInYear(year))

			for d := range YearDays(year) {
				x, y := g.CellOrigin(d.Month, d.Day)
				assert.True(t, borders[cellKey(x, y)], "missing cell for %s", d.Key())
			}
		})
	}
}

func TestRenderShadesWeekendsOnly(t *testing.T) {
	rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("en")})
	g := geometry()

	weekend := make(map[string]bool)
	for d := range YearDays(2026) {
		if d.IsWeekend() {
			x, y := g.CellOrigin(d.Month, d.Day)
			weekend[cellKey(x, y)] = true
		}
	}

	commands := rec.Commands()
	shaded := 0
	for i, c := range commands {
		if c.Op != surface.OpRect || !c.Fill {
			continue
		}
		shaded++
		assert.Equal(t, surface.LightGrey, c.FillColor)
		assert.True(t, weekend[cellKey(c.X, c.Y)], "weekday cell shaded at %s", cellKey(c.X, c.Y))

		// The border follows the fill
		next := commands[i+1:]
		for len(next) > 0 && next[0].Op != surface.OpRect {
			next = next[1:]
		}
		require.NotEmpty(t, next)
		assert.True(t, next[0].Stroke)
		assert.Equal(t, cellKey(c.X, c.Y), cellKey(next[0].X, next[0].Y))
	}
	assert.Equal(t, len(weekend), shaded)
}

func TestRenderTitleAndMonthHeaders(t *testing.T) {
	rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("de")})
	g := geometry()

	texts := rec.Texts()
	require.Greater(t, len(texts), 13)

	title := texts[0]
	assert.Equal(t, "2026", title.Text)
	assert.Equal(t, surface.AlignCenter, title.Align)
	assert.Equal(t, surface.Bold, title.Style)
	assert.Equal(t, TitleSize, title.Size)
	assert.InDelta(t, surface.A4LandscapeWidth/2, title.X, 1e-9)

	for m := 1; m <= 12; m++ {
		h := texts[m]
		assert.Equal(t, surface.AlignCenter, h.Align)
		assert.Equal(t, MonthSize, h.Size)
		assert.InDelta(t, g.ColumnCenter(m), h.X, 1e-9)
		assert.InDelta(t, g.MonthBaseline(), h.Y, 1e-9)
	}
	assert.Equal(t, "Januar", texts[1].Text)
	assert.Equal(t, "März", texts[3].Text)
}

func TestRenderLocalizedLabels(t *testing.T) {
	rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("de")})
	g := geometry()

	labels := make(map[string]surface.Command)
	for _, c := range rec.Texts() {
		if c.Size == LabelSize && c.Align == surface.AlignLeft {
			labels[cellKey(c.X-LabelInset, c.Y-LabelInset)] = c
		}
	}
	assert.Len(t, labels, 365)

	x, y := g.CellOrigin(1, 1)
	thu := labels[cellKey(x, y)]
	assert.Equal(t, "Do 1", thu.Text)
	assert.Equal(t, surface.Regular, thu.Style)

	x, y = g.CellOrigin(1, 3)
	sat := labels[cellKey(x, y)]
	assert.Equal(t, "Sa 3", sat.Text)
	assert.Equal(t, surface.Bold, sat.Style)
}

func TestRenderWeekNumbersOnMondays(t *testing.T) {
	rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("en")})
	g := geometry()

	weeks := make(map[string]surface.Command)
	for _, c := range rec.Texts() {
		if c.Size == WeekSize {
			weeks[cellKey(c.X-WeekRightEdge, c.Y-LabelInset)] = c
		}
	}

	mondays := 0
	for d := range YearDays(2026) {
		if !d.IsMonday() {
			continue
		}
		mondays++
		x, y := g.CellOrigin(d.Month, d.Day)
		w, ok := weeks[cellKey(x, y)]
		require.True(t, ok, "missing week number on %s", d.Key())
		_, want := d.Date.ISOWeek()
		assert.Equal(t, fmt.Sprint(want), w.Text)
		assert.Equal(t, surface.AlignRight, w.Align)
		assert.Equal(t, surface.Bold, w.Style)
	}
	assert.Equal(t, mondays, len(weeks))

	// 2026-01-05 is the first in-month Monday; week 1 began on 2025-12-29
	x, y := g.CellOrigin(1, 5)
	assert.Equal(t, "2", weeks[cellKey(x, y)].Text)
}

func TestRenderWeekNumberAcrossYearBoundary(t *testing.T) {
	rec := render(t, &Renderer{Year: 2024, Labels: NewResolver(nil).Resolve("en")})
	g := geometry()

	x, y := g.CellOrigin(12, 30)
	var week *surface.Command
	for _, c := range rec.Texts() {
		if c.Size == WeekSize && cellKey(c.X-WeekRightEdge, c.Y-LabelInset) == cellKey(x, y) {
			week = &c
		}
	}
	require.NotNil(t, week, "2024-12-30 is a Monday")
	assert.Equal(t, "1", week.Text)
}

func TestRenderFixedStrategy(t *testing.T) {
	rec := render(t, &Renderer{Year: 2026, Labels: FixedLabels()})
	g := geometry()

	var weeks, labels []surface.Command
	for _, c := range rec.Texts() {
		switch c.Size {
		case WeekSize:
			weeks = append(weeks, c)
		case LabelSize:
			labels = append(labels, c)
		}
	}

	require.Len(t, labels, 365)
	for _, l := range labels {
		assert.Len(t, l.Text, 2, "fixed labels carry no day number")
	}

	require.NotEmpty(t, weeks)
	x, y := g.CellOrigin(1, 5)
	first := weeks[0]
	assert.Equal(t, "2", first.Text)
	assert.Equal(t, surface.AlignLeft, first.Align)
	assert.InDelta(t, x+WeekLeftEdge, first.X, 1e-9)
	assert.InDelta(t, y+LabelInset, first.Y, 1e-9)

	assert.Equal(t, "January", rec.Texts()[1].Text)
}

func TestRenderHolidayMarkers(t *testing.T) {
	holidays := NRWHolidays(2026)
	rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("de"), Holidays: holidays})
	g := geometry()

	var marks []surface.Command
	for _, c := range rec.Texts() {
		if c.Text == HolidayMark {
			marks = append(marks, c)
		}
	}
	require.Len(t, marks, len(holidays))

	x, y := g.CellOrigin(12, 25)
	found := false
	for _, m := range marks {
		if cellKey(m.X, m.Y) == cellKey(x+g.ColumnWidth-LabelInset, y+g.RowHeight-LabelSize) {
			found = true
		}
	}
	assert.True(t, found, "Christmas should be marked")

	// Markers never shade
	shaded := 0
	for _, c := range rec.Rects() {
		if c.Fill {
			shaded++
		}
	}
	weekend := 0
	for d := range YearDays(2026) {
		if d.IsWeekend() {
			weekend++
		}
	}
	assert.Equal(t, weekend, shaded)
}

func TestRenderHolidayMarkOnMonday(t *testing.T) {
	holidays := NRWHolidays(2026)
	g := geometry()
	x, y := g.CellOrigin(4, 6) // Ostermontag

	markAt := func(rec *surface.Recorder) surface.Command {
		t.Helper()
		for _, c := range rec.Texts() {
			if c.Text != HolidayMark {
				continue
			}
			if c.X > x && c.X <= x+g.ColumnWidth && c.Y > y && c.Y < y+g.RowHeight {
				return c
			}
		}
		t.Fatal("Ostermontag is not marked")
		return surface.Command{}
	}

	t.Run("localized", func(t *testing.T) {
		rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("de"), Holidays: holidays})
		mark := markAt(rec)
		assert.InDelta(t, x+HolidayOffset, mark.X, 1e-9)
		assert.InDelta(t, y+LabelInset, mark.Y, 1e-9)
		assert.Less(t, mark.X, x+WeekRightEdge-WeekSize, "mark must clear a two-digit week number")
	})

	t.Run("fixed", func(t *testing.T) {
		rec := render(t, &Renderer{Year: 2026, Labels: FixedLabels(), Holidays: holidays})
		mark := markAt(rec)
		assert.InDelta(t, x+g.ColumnWidth-LabelInset, mark.X, 1e-9)
		assert.InDelta(t, y+g.RowHeight-LabelSize, mark.Y, 1e-9)
	})
}

func TestRenderIsRepeatable(t *testing.T) {
	labels := NewResolver(nil).Resolve("es")
	a := render(t, &Renderer{Year: 2027, Labels: labels})
	b := render(t, &Renderer{Year: 2027, Labels: NewResolver(nil).Resolve("es")})

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	c := render(t, &Renderer{Year: 2028, Labels: labels})
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestRenderStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := surface.NewRecorder(surface.A4LandscapeWidth, surface.A4LandscapeHeight)
	cells, err := (&Renderer{Year: 2026, Labels: FixedLabels()}).Render(ctx, rec)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, cells)
	assert.Empty(t, rec.Rects())
}

func TestRenderFrenchLabelsDropTrailingDot(t *testing.T) {
	rec := render(t, &Renderer{Year: 2026, Labels: NewResolver(nil).Resolve("fr")})

	for _, c := range rec.Texts() {
		if c.Size == LabelSize && c.Text != HolidayMark {
			assert.False(t, strings.HasSuffix(c.Text, "."), "label %q keeps a trailing dot", c.Text)
		}
	}
}
