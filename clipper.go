package widgets

// ListClipper computes the range of fixed-height rows visible in a scrolled
// viewport, so long lists and long texts only draw what can be seen.
//
// Usage:
//
//	clip := widgets.NewListClipper(len(rows), rowH, view.H, scrollY)
//	for i := clip.StartIdx; i < clip.EndIdx; i++ {
//	    y := clip.ItemY(i, view.Y, scrollY)
//	    // draw row i at y
//	}
type ListClipper struct {
	StartIdx   int // first visible row (inclusive)
	EndIdx     int // last visible row (exclusive)
	ItemHeight float32
	TotalItems int
}

// NewListClipper returns the visible row range. Partially visible rows at
// either edge are included.
func NewListClipper(totalItems int, itemHeight, visibleHeight, scrollY float32) ListClipper {
	c := ListClipper{ItemHeight: itemHeight, TotalItems: totalItems}
	if totalItems <= 0 || itemHeight <= 0 {
		c.TotalItems = max(totalItems, 0)
		return c
	}
	c.StartIdx = min(max(int(scrollY/itemHeight), 0), totalItems)
	c.EndIdx = min(c.StartIdx+int(visibleHeight/itemHeight)+2, totalItems)
	return c
}

// ShouldRender reports whether row idx is in the visible range.
func (c ListClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemY returns the top of row idx for a list whose first row starts at
// baseY before scrolling.
func (c ListClipper) ItemY(idx int, baseY, scrollY float32) float32 {
	return baseY + float32(idx)*c.ItemHeight - scrollY
}

// VisibleCount returns the number of rows in the visible range.
func (c ListClipper) VisibleCount() int { return c.EndIdx - c.StartIdx }

// ContentHeight returns the height of all rows.
func (c ListClipper) ContentHeight() float32 {
	return float32(c.TotalItems) * c.ItemHeight
}

// MaxScroll returns the largest valid scroll offset for the viewport height.
func (c ListClipper) MaxScroll(visibleHeight float32) float32 {
	return maxf(0, c.ContentHeight()-visibleHeight)
}

// ScrollToItem returns the smallest change to currentScroll that brings row
// idx fully into view. Out-of-range rows leave the scroll unchanged.
func (c ListClipper) ScrollToItem(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.TotalItems {
		return currentScroll
	}
	top := float32(idx) * c.ItemHeight
	return revealRange(currentScroll, top, top+c.ItemHeight, visibleHeight, c.ContentHeight())
}
