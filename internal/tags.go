package internal

import (
	"fmt"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

// TagID is the id of the seq-th piece of an order, 1-based.
func TagID(orderID string, seq int) string {
	return fmt.Sprintf("%s-%02d", orderID, seq)
}

// ExpandCart turns cart lines into one item per physical piece. Sequence numbers run
// across all lines of the order, so three shirts and two trousers become -01..-05.
func ExpandCart(lines []model.CartLine, orderID string) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(lines))
	seq := 0
	for _, l := range lines {
		for n := 0; n < l.Quantity; n++ {
			seq++
			items = append(items, model.OrderItem{
				TagID:    TagID(orderID, seq),
				OrderID:  orderID,
				ItemType: l.ItemType,
				Price:    l.UnitPrice,
				Color:    l.Color,
				Pattern:  l.Pattern,
				Note:     l.Note,
				Status:   model.ItemStatusIn,
			})
		}
	}
	return items
}

func checkUniqueTags(items []model.OrderItem) error {
	seen := make(map[string]bool, len(items))
	for _, i := range items {
		if seen[i.TagID] {
			return tagError("expand cart", i.OrderID, i.TagID, ErrDuplicateTag)
		}
		seen[i.TagID] = true
	}
	return nil
}
