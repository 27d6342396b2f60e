package app

// Geometry is the planner grid derived from the page size
type Geometry struct {
	PageWidth    float64
	PageHeight   float64
	Margin       float64
	ColumnWidth  float64
	RowHeight    float64
	HeaderBottom float64 // y of the line below the two header rows
}

// NewGeometry lays out 12 month columns and 33 rows inside the margin
func NewGeometry(width, height, margin float64) Geometry {
	row := (height - 2*margin) / Rows
	return Geometry{
		PageWidth:    width,
		PageHeight:   height,
		Margin:       margin,
		ColumnWidth:  (width - 2*margin) / Columns,
		RowHeight:    row,
		HeaderBottom: height - margin - HeaderRows*row,
	}
}

// CellOrigin returns the bottom-left corner of the cell for a month and day
func (g Geometry) CellOrigin(month, day int) (x, y float64) {
	x = g.Margin + float64(month-1)*g.ColumnWidth
	y = g.HeaderBottom - float64(day)*g.RowHeight
	return x, y
}

// ColumnCenter returns the x coordinate of the middle of a month column
func (g Geometry) ColumnCenter(month int) float64 {
	return g.Margin + (float64(month-1)+0.5)*g.ColumnWidth
}

// TitleBaseline is the baseline of the year title
func (g Geometry) TitleBaseline() float64 {
	return g.PageHeight - g.Margin
}

// MonthBaseline is the baseline of the month headers
func (g Geometry) MonthBaseline() float64 {
	return g.PageHeight - 1.5*g.Margin
}
