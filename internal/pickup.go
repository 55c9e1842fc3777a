package internal

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/DrGermanius/LaundryPOS/internal/model"
)

type IPickupGate interface {
	ConfirmPickup(ctx context.Context, req model.PickupRequest, operator model.Operator) (model.BatchResult, error)
}

// PickupGate releases cleaned items to the customer. Nothing leaves the shop while
// its order still has an amount due.
type PickupGate struct {
	repo   IRepository
	orders *OrderEngine
	logger *zap.SugaredLogger
}

func NewPickupGate(repo IRepository, orders *OrderEngine, logger *zap.SugaredLogger) *PickupGate {
	return &PickupGate{repo: repo, orders: orders, logger: logger}
}

// ConfirmPickup releases the requested items, or every item of req.OrderID still in
// the shop when no tags are given. Every refusal is reported on the item it concerns:
// items that are not Cleaned, items of a voided order, and ready items of an order that
// is not settled (ErrPaymentRequired) unless req.CollectDue asks to settle in cash first.
// Orders are handled independently, so a paid order in the batch is released even when
// another one is refused. The call fails only when nothing was released or storage fails.
func (g *PickupGate) ConfirmPickup(ctx context.Context, req model.PickupRequest, operator model.Operator) (model.BatchResult, error) {
	tagIDs, err := g.targets(ctx, req)
	if err != nil {
		return model.BatchResult{}, err
	}

	byOrder, results, err := g.orders.groupTags(ctx, tagIDs)
	if err != nil {
		return model.BatchResult{}, err
	}
	if req.OrderID != "" {
		for orderID, tags := range byOrder {
			if orderID == req.OrderID {
				continue
			}
			for _, tag := range tags {
				results[tag] = model.ItemResult{TagID: tag, OrderID: orderID, Err: tagError("pickup", req.OrderID, tag, ErrNotFound)}
			}
			delete(byOrder, orderID)
		}
	}

	orderIDs := sortedKeys(byOrder)
	for i, orderID := range orderIDs {
		if err = g.release(ctx, orderID, byOrder[orderID], results, req.CollectDue, operator); err != nil {
			g.logger.Errorf("pickup of order %s failed: %s", orderID, err.Error())
			for _, pending := range orderIDs[i:] {
				for _, tag := range byOrder[pending] {
					if results[tag].Err == nil {
						reject(results, pending, []string{tag}, err)
					}
				}
			}
			return collectResults(tagIDs, results), err
		}
	}

	res := collectResults(tagIDs, results)
	g.logger.Infow("pickup confirmed", "requested", len(tagIDs), "released", res.Succeeded(), "operator", operator.ID)

	if len(res.Items) > 0 && res.Succeeded() == 0 {
		errs := make([]error, 0, len(res.Items))
		for _, r := range res.Items {
			errs = append(errs, r.Err)
		}
		return res, errors.Join(errs...)
	}
	return res, nil
}

func (g *PickupGate) targets(ctx context.Context, req model.PickupRequest) ([]string, error) {
	if len(req.TagIDs) > 0 {
		return uniqueStrings(req.TagIDs), nil
	}
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: order id or tags required", ErrInvalidInput)
	}

	if _, err := g.repo.GetOrder(ctx, req.OrderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, orderError("pickup", req.OrderID, ErrNotFound)
		}
		return nil, err
	}
	items, err := g.repo.GetOrderItems(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, it := range items {
		if it.Status != model.ItemStatusPickedUp {
			tags = append(tags, it.TagID)
		}
	}
	if len(tags) == 0 {
		return nil, orderError("pickup", req.OrderID, fmt.Errorf("%w: every item is already picked up", ErrInvalidTransition))
	}
	return tags, nil
}

// release handles the tags of one order under the order's lock. Refusals that concern
// the whole order are reported on each of its tags; only storage failures are returned.
func (g *PickupGate) release(ctx context.Context, orderID string, tags []string, results map[string]model.ItemResult, collectDue bool, operator model.Operator) error {
	unlock := g.orders.locks.Lock(orderID)
	defer unlock()

	order, err := g.repo.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.IsVoid() {
		reject(results, orderID, tags, ErrOrderVoided)
		return nil
	}
	items, err := g.repo.GetOrderItems(ctx, orderID)
	if err != nil {
		return err
	}

	current := indexItems(items)
	var ready []string
	for _, tag := range tags {
		r := results[tag]
		it := current[tag]
		r.Status = it.Status
		switch it.Status {
		case model.ItemStatusCleaned:
			ready = append(ready, tag)
		case model.ItemStatusPickedUp:
			r.Err = tagError("pickup", orderID, tag, fmt.Errorf("%w: already picked up", ErrInvalidTransition))
		default:
			r.Err = tagError("pickup", orderID, tag, ErrItemNotReady)
		}
		results[tag] = r
	}
	if len(ready) == 0 {
		return nil
	}

	if !order.IsSettled() {
		if !collectDue {
			reject(results, orderID, ready, fmt.Errorf("%w: %s due", ErrPaymentRequired, order.Outstanding().StringFixed(2)))
			return nil
		}
		if _, err = g.orders.settleLocked(ctx, orderID, operator); err != nil {
			return err
		}
	}

	err = g.repo.RunInTx(ctx, func(ctx context.Context, tx ITx) error {
		o, err := tx.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if !o.IsSettled() {
			return orderError("pickup", orderID, ErrPaymentRequired)
		}
		items, err := tx.GetOrderItems(ctx, orderID)
		if err != nil {
			return err
		}
		current := indexItems(items)
		for _, tag := range ready {
			if current[tag].Status != model.ItemStatusCleaned {
				return tagError("pickup", orderID, tag, ErrItemNotReady)
			}
			if err = tx.UpdateItemStatus(ctx, tag, model.ItemStatusPickedUp); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, tag := range ready {
		r := results[tag]
		r.Status = model.ItemStatusPickedUp
		r.Changed = true
		results[tag] = r
	}
	return nil
}

func reject(results map[string]model.ItemResult, orderID string, tags []string, err error) {
	for _, tag := range tags {
		r := results[tag]
		r.Err = tagError("pickup", orderID, tag, err)
		results[tag] = r
	}
}
