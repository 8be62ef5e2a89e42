package domain

// BacklogItem is a single work item from the tracker snapshot. Size is nil
// when the tracker carried no parseable estimate; such items are routed to
// the unestimated bucket instead of silently contributing zero.
type BacklogItem struct {
	Key      string
	Title    string
	EpicKey  string
	Size     *float64
	Tags     []string
	Priority string
}

// SizedPoints returns the item size, and whether one is present.
func (b BacklogItem) SizedPoints() (float64, bool) {
	if b.Size == nil {
		return 0, false
	}
	return *b.Size, true
}

// Backlog is the ordered snapshot of work items awaiting scheduling and
// pricing.
type Backlog []BacklogItem

// TotalSize sums the sizes of all estimated items.
func (b Backlog) TotalSize() float64 {
	var total float64
	for _, item := range b {
		if pts, ok := item.SizedPoints(); ok {
			total += pts
		}
	}
	return total
}

// Unestimated returns the items lacking a parseable size.
func (b Backlog) Unestimated() []BacklogItem {
	var out []BacklogItem
	for _, item := range b {
		if item.Size == nil {
			out = append(out, item)
		}
	}
	return out
}
