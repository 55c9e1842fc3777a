package test

import (
	"errors"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/LaundryPOS/internal"
	"github.com/DrGermanius/LaundryPOS/internal/model"
)

var _ = Describe("Service", func() {
	var s *shop

	BeforeEach(func() {
		s = newShop(false)
	})

	Context("Top-up", func() {
		It("TopUp without error", func() {
			s.customer("C001", 0)

			res, err := s.svc.Balance.TopUp(s.ctx, "C001", decimal.NewFromInt(1000), admin)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.OldBalance.IsZero()).Should(BeTrue())
			Expect(res.NewBalance.Equal(dec("1000"))).Should(BeTrue())
			Expect(res.ReferenceID).Should(HavePrefix(model.TopUpReferencePrefix))
			Expect(s.balance("C001").Equal(dec("1000"))).Should(BeTrue())

			history, err := s.svc.Balance.GetBalanceHistory(s.ctx, "C001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(history).Should(HaveLen(1))
			Expect(history[0].Type).Should(Equal(model.BalanceChangeTopUp))
			Expect(history[0].OperatorID).Should(Equal(admin.ID))

			entries := s.entries(res.ReferenceID)
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].ID).Should(Equal(res.EntryID))
			Expect(entries[0].DebitAccount).Should(Equal(model.AccountCash))
			Expect(entries[0].CreditAccount).Should(Equal(model.AccountUnearnedRevenue))
			Expect(entries[0].Amount.Equal(dec("1000"))).Should(BeTrue())
		})
		It("TopUp with error not an admin", func() {
			s.customer("C001", 0)

			_, err := s.svc.Balance.TopUp(s.ctx, "C001", decimal.NewFromInt(100), staff)
			Expect(errors.Is(err, internal.ErrForbidden)).Should(BeTrue())
			Expect(s.balance("C001").IsZero()).Should(BeTrue())
		})
		It("TopUp with error invalid amount", func() {
			s.customer("C001", 0)

			for _, amount := range []string{"0", "-50"} {
				_, err := s.svc.Balance.TopUp(s.ctx, "C001", dec(amount), admin)
				Expect(errors.Is(err, internal.ErrInvalidAmount)).Should(BeTrue())
			}

			history, err := s.svc.Balance.GetBalanceHistory(s.ctx, "C001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(history).Should(BeEmpty())
		})
		It("TopUp with error unknown customer", func() {
			_, err := s.svc.Balance.TopUp(s.ctx, "C404", decimal.NewFromInt(100), admin)
			Expect(errors.Is(err, internal.ErrNotFound)).Should(BeTrue())

			var opErr *internal.OpError
			Expect(errors.As(err, &opErr)).Should(BeTrue())
			Expect(opErr.CustomerID).Should(Equal("C404"))
		})
	})

	Context("Checkout", func() {
		It("Checkout deducting a sufficient balance", func() {
			s.customer("C001", 1000)

			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodDeductBalance), staff)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(res.Order.ID).Should(Equal("20240301-001"))
			Expect(res.Order.PaymentStatus).Should(Equal(model.PaymentStatusPaid))
			Expect(res.Order.TotalAmount.Equal(dec("310"))).Should(BeTrue())
			Expect(res.Order.CreatedBy).Should(Equal(staff.ID))
			Expect(tags(res.Items)).Should(Equal([]string{
				"20240301-001-01", "20240301-001-02", "20240301-001-03", "20240301-001-04", "20240301-001-05",
			}))
			for _, it := range res.Items {
				Expect(it.Status).Should(Equal(model.ItemStatusIn))
			}

			r := res.Receipt.Customer
			Expect(r.OldBalance.Equal(dec("1000"))).Should(BeTrue())
			Expect(r.Deduction.Equal(dec("310"))).Should(BeTrue())
			Expect(r.NewBalance.Equal(dec("690"))).Should(BeTrue())
			Expect(r.Outstanding.IsZero()).Should(BeTrue())
			Expect(res.Receipt.Store.Items).Should(HaveLen(5))
			Expect(s.balance("C001").Equal(dec("690"))).Should(BeTrue())

			entries := s.entries(res.Order.ID)
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].DebitAccount).Should(Equal(model.AccountUnearnedRevenue))
			Expect(entries[0].CreditAccount).Should(Equal(model.AccountLaundryRevenue))
			Expect(entries[0].Amount.Equal(dec("310"))).Should(BeTrue())

			history, err := s.svc.Balance.GetBalanceHistory(s.ctx, "C001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(history).Should(HaveLen(2))
			Expect(history[1].Type).Should(Equal(model.BalanceChangeOrderPayment))
			Expect(history[1].ChangeAmount.Equal(dec("-310"))).Should(BeTrue())
		})
		It("Checkout deducting a short balance ends PartiallyPaid", func() {
			s.customer("C001", 100)

			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodDeductBalance), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Order.PaymentStatus).Should(Equal(model.PaymentStatusPartiallyPaid))
			Expect(res.Order.PaidAmount.Equal(dec("100"))).Should(BeTrue())
			Expect(res.Receipt.Customer.Outstanding.Equal(dec("210"))).Should(BeTrue())
			Expect(s.balance("C001").IsZero()).Should(BeTrue())

			entries := s.entries(res.Order.ID)
			Expect(entries).Should(HaveLen(2))
			Expect(entries[0].DebitAccount).Should(Equal(model.AccountUnearnedRevenue))
			Expect(entries[0].Amount.Equal(dec("100"))).Should(BeTrue())
			Expect(entries[1].DebitAccount).Should(Equal(model.AccountAccountsReceivable))
			Expect(entries[1].Amount.Equal(dec("210"))).Should(BeTrue())
		})
		It("Checkout deducting an empty balance ends Unpaid", func() {
			s.customer("C001", 0)

			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodDeductBalance), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Order.PaymentStatus).Should(Equal(model.PaymentStatusUnpaid))
			Expect(s.entries(res.Order.ID)).Should(BeEmpty())

			history, err := s.svc.Balance.GetBalanceHistory(s.ctx, "C001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(history).Should(BeEmpty())
		})
		It("Checkout with error insufficient balance in strict mode", func() {
			s.customer("C001", 100)

			in := shirtsAndTrousers("C001", model.PaymentMethodDeductBalance)
			in.RequireFullBalance = true
			_, err := s.svc.Orders.Checkout(s.ctx, in, staff)
			Expect(errors.Is(err, internal.ErrInsufficientBalance)).Should(BeTrue())

			Expect(s.balance("C001").Equal(dec("100"))).Should(BeTrue())
			items, err := s.svc.Orders.InProcessItems(s.ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(items).Should(BeEmpty())
		})
		It("Checkout in cash", func() {
			s.customer("C001", 0)

			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Order.PaymentStatus).Should(Equal(model.PaymentStatusPaid))
			Expect(res.Order.PaidAmount.Equal(dec("310"))).Should(BeTrue())

			entries := s.entries(res.Order.ID)
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].DebitAccount).Should(Equal(model.AccountCash))
			Expect(entries[0].Description).Should(Equal(model.DescriptionCashSale))
		})
		It("Checkout unpaid posts nothing", func() {
			s.customer("C001", 500)

			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodUnpaid), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Order.PaymentStatus).Should(Equal(model.PaymentStatusUnpaid))
			Expect(s.entries(res.Order.ID)).Should(BeEmpty())
			Expect(s.balance("C001").Equal(dec("500"))).Should(BeTrue())
		})
		It("Checkout with error empty cart", func() {
			s.customer("C001", 0)

			_, err := s.svc.Orders.Checkout(s.ctx, model.CheckoutInput{CustomerID: "C001", Method: model.PaymentMethodCash}, staff)
			Expect(errors.Is(err, internal.ErrEmptyCart)).Should(BeTrue())
		})
		It("Checkout with error invalid line", func() {
			s.customer("C001", 0)

			in := shirtsAndTrousers("C001", model.PaymentMethodCash)
			in.Lines[1].Quantity = 0
			_, err := s.svc.Orders.Checkout(s.ctx, in, staff)
			Expect(errors.Is(err, internal.ErrInvalidCartLine)).Should(BeTrue())
		})
		It("Checkout with error unknown method", func() {
			s.customer("C001", 0)

			_, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", "Card"), staff)
			Expect(errors.Is(err, internal.ErrUnknownPaymentMethod)).Should(BeTrue())
		})
		It("Checkout with error unknown customer", func() {
			_, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C404", model.PaymentMethodCash), staff)
			Expect(errors.Is(err, internal.ErrNotFound)).Should(BeTrue())

			items, err := s.svc.Orders.InProcessItems(s.ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(items).Should(BeEmpty())
		})
		It("Order ids keep counting within the day and restart the next day", func() {
			s.customer("C001", 0)

			first, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			second, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(first.Order.ID).Should(Equal("20240301-001"))
			Expect(second.Order.ID).Should(Equal("20240301-002"))

			s.clock.Set(openingDay.AddDate(0, 0, 1))
			next, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(next.Order.ID).Should(Equal("20240302-001"))
		})
	})

	Context("Mark ready", func() {
		It("MarkReady moves In to Cleaned and is idempotent", func() {
			s.customer("C001", 0)
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())

			batch, err := s.svc.Orders.MarkReady(s.ctx, tags(res.Items)[:2], staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(batch.Succeeded()).Should(Equal(2))
			Expect(batch.Items[0].Changed).Should(BeTrue())

			batch, err = s.svc.Orders.MarkReady(s.ctx, tags(res.Items)[:2], staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(batch.Succeeded()).Should(Equal(2))
			Expect(batch.Items[0].Changed).Should(BeFalse())
			Expect(batch.Items[0].Status).Should(Equal(model.ItemStatusCleaned))

			_, items, err := s.svc.Orders.GetOrder(s.ctx, res.Order.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(items[0].Status).Should(Equal(model.ItemStatusCleaned))
			Expect(items[2].Status).Should(Equal(model.ItemStatusIn))
		})
		It("MarkReady reports unknown tags per item", func() {
			s.customer("C001", 0)
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())

			batch, err := s.svc.Orders.MarkReady(s.ctx, []string{res.Items[0].TagID, "20240301-999-01"}, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(batch.Succeeded()).Should(Equal(1))
			Expect(batch.Failed()).Should(HaveLen(1))
			Expect(errors.Is(batch.Failed()[0].Err, internal.ErrNotFound)).Should(BeTrue())
		})
		It("MarkReady refuses items of a voided order", func() {
			s.customer("C001", 0)
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodUnpaid), staff)
			Expect(err).ShouldNot(HaveOccurred())
			_, err = s.svc.Orders.Void(s.ctx, res.Order.ID, admin)
			Expect(err).ShouldNot(HaveOccurred())

			batch, err := s.svc.Orders.MarkReady(s.ctx, tags(res.Items), staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(batch.Succeeded()).Should(BeZero())
			Expect(batch.Failed()).Should(HaveLen(5))
			for _, f := range batch.Failed() {
				Expect(errors.Is(f.Err, internal.ErrOrderVoided)).Should(BeTrue())
				Expect(f.Changed).Should(BeFalse())
			}

			_, items, err := s.svc.Orders.GetOrder(s.ctx, res.Order.ID)
			Expect(err).ShouldNot(HaveOccurred())
			for _, it := range items {
				Expect(it.Status).Should(Equal(model.ItemStatusIn))
			}
		})
	})

	Context("Pickup", func() {
		var order model.CheckoutResult

		checkout := func(method model.PaymentMethod) {
			var err error
			order, err = s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", method), staff)
			Expect(err).ShouldNot(HaveOccurred())
		}
		ready := func(n int) {
			_, err := s.svc.Orders.MarkReady(s.ctx, tags(order.Items)[:n], staff)
			Expect(err).ShouldNot(HaveOccurred())
		}

		BeforeEach(func() {
			s.customer("C001", 100)
		})

		It("Pickup with error item not ready", func() {
			checkout(model.PaymentMethodCash)

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{TagIDs: tags(order.Items)[:1]}, staff)
			Expect(errors.Is(err, internal.ErrItemNotReady)).Should(BeTrue())
			Expect(res.Items).Should(HaveLen(1))
			Expect(res.Items[0].Status).Should(Equal(model.ItemStatusIn))
		})
		It("Pickup with error payment required on a partially paid order", func() {
			checkout(model.PaymentMethodDeductBalance)
			ready(5)

			_, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{OrderID: order.Order.ID}, staff)
			Expect(errors.Is(err, internal.ErrPaymentRequired)).Should(BeTrue())

			_, items, err := s.svc.Orders.GetOrder(s.ctx, order.Order.ID)
			Expect(err).ShouldNot(HaveOccurred())
			for _, it := range items {
				Expect(it.Status).Should(Equal(model.ItemStatusCleaned))
			}
		})
		It("Pickup releases ready items and reports the rest", func() {
			checkout(model.PaymentMethodCash)
			ready(3)

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{OrderID: order.Order.ID}, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Succeeded()).Should(Equal(3))
			Expect(res.Failed()).Should(HaveLen(2))
			for _, f := range res.Failed() {
				Expect(errors.Is(f.Err, internal.ErrItemNotReady)).Should(BeTrue())
				Expect(f.Message).ShouldNot(BeEmpty())
			}

			remaining, err := s.svc.Orders.InProcessItems(s.ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tags(remaining)).Should(Equal(tags(order.Items)[3:]))
		})
		It("Pickup collecting the due settles first", func() {
			checkout(model.PaymentMethodDeductBalance)
			ready(5)

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{OrderID: order.Order.ID, CollectDue: true}, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Succeeded()).Should(Equal(5))

			o, _, err := s.svc.Orders.GetOrder(s.ctx, order.Order.ID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.PaymentStatus).Should(Equal(model.PaymentStatusPaid))

			entries := s.entries(order.Order.ID)
			Expect(entries).Should(HaveLen(3))
			Expect(entries[2].DebitAccount).Should(Equal(model.AccountCash))
			Expect(entries[2].CreditAccount).Should(Equal(model.AccountAccountsReceivable))
			Expect(entries[2].Amount.Equal(dec("210"))).Should(BeTrue())
			Expect(accountNet(entries)[model.AccountAccountsReceivable].IsZero()).Should(BeTrue())
		})
		It("Pickup twice releases the items once", func() {
			checkout(model.PaymentMethodCash)
			ready(5)

			_, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{TagIDs: tags(order.Items)}, staff)
			Expect(err).ShouldNot(HaveOccurred())

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{TagIDs: tags(order.Items)}, staff)
			Expect(errors.Is(err, internal.ErrInvalidTransition)).Should(BeTrue())
			Expect(res.Succeeded()).Should(BeZero())
		})
		It("Pickup of several orders releases the paid one and reports the unpaid one per item", func() {
			unpaid, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodUnpaid), staff)
			Expect(err).ShouldNot(HaveOccurred())
			paid, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			all := append(tags(unpaid.Items), tags(paid.Items)...)
			_, err = s.svc.Orders.MarkReady(s.ctx, all, staff)
			Expect(err).ShouldNot(HaveOccurred())

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{TagIDs: all}, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Items).Should(HaveLen(10))
			Expect(res.Succeeded()).Should(Equal(5))
			Expect(res.Failed()).Should(HaveLen(5))
			for _, r := range res.Items {
				if r.OrderID == unpaid.Order.ID {
					Expect(errors.Is(r.Err, internal.ErrPaymentRequired)).Should(BeTrue())
					Expect(r.Changed).Should(BeFalse())
					Expect(r.Status).Should(Equal(model.ItemStatusCleaned))
					continue
				}
				Expect(r.Err).ShouldNot(HaveOccurred())
				Expect(r.Changed).Should(BeTrue())
				Expect(r.Status).Should(Equal(model.ItemStatusPickedUp))
			}

			remaining, err := s.svc.Orders.InProcessItems(s.ctx)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(tags(remaining)).Should(ConsistOf(tags(unpaid.Items)))
			for _, it := range remaining {
				Expect(it.Status).Should(Equal(model.ItemStatusCleaned))
			}
		})
		It("Pickup of several orders reports a voided order per item", func() {
			voided, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			paid, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())
			all := append(tags(voided.Items), tags(paid.Items)...)
			_, err = s.svc.Orders.MarkReady(s.ctx, all, staff)
			Expect(err).ShouldNot(HaveOccurred())
			_, err = s.svc.Orders.Void(s.ctx, voided.Order.ID, admin)
			Expect(err).ShouldNot(HaveOccurred())

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{TagIDs: all}, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Succeeded()).Should(Equal(5))
			for _, f := range res.Failed() {
				Expect(f.OrderID).Should(Equal(voided.Order.ID))
				Expect(errors.Is(f.Err, internal.ErrOrderVoided)).Should(BeTrue())
			}
			Expect(res.Failed()).Should(HaveLen(5))
		})
		It("Pickup with error tag of another order", func() {
			checkout(model.PaymentMethodCash)
			other := order
			checkout(model.PaymentMethodCash)
			ready(5)

			res, err := s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{
				OrderID: order.Order.ID,
				TagIDs:  []string{order.Items[0].TagID, other.Items[0].TagID},
			}, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(res.Succeeded()).Should(Equal(1))
			Expect(errors.Is(res.Items[1].Err, internal.ErrNotFound)).Should(BeTrue())
		})
	})

	Context("Settle", func() {
		BeforeEach(func() {
			s.customer("C001", 0)
		})

		It("Settle an unpaid order recognises the revenue", func() {
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodUnpaid), staff)
			Expect(err).ShouldNot(HaveOccurred())

			o, err := s.svc.Orders.Settle(s.ctx, res.Order.ID, staff)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.PaymentStatus).Should(Equal(model.PaymentStatusPaid))
			Expect(o.Outstanding().IsZero()).Should(BeTrue())

			entries := s.entries(res.Order.ID)
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].DebitAccount).Should(Equal(model.AccountCash))
			Expect(entries[0].CreditAccount).Should(Equal(model.AccountLaundryRevenue))
			Expect(entries[0].Description).Should(Equal(model.DescriptionSettlement))
		})
		It("Settle with error nothing to settle", func() {
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = s.svc.Orders.Settle(s.ctx, res.Order.ID, staff)
			Expect(errors.Is(err, internal.ErrNothingToSettle)).Should(BeTrue())
		})
		It("Settle with error unknown order", func() {
			_, err := s.svc.Orders.Settle(s.ctx, "20240301-404", staff)
			Expect(errors.Is(err, internal.ErrNotFound)).Should(BeTrue())
		})
	})

	Context("Void", func() {
		BeforeEach(func() {
			s.customer("C001", 1000)
		})

		It("Void reverses the postings and refunds the balance", func() {
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodDeductBalance), staff)
			Expect(err).ShouldNot(HaveOccurred())

			o, err := s.svc.Orders.Void(s.ctx, res.Order.ID, admin)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.PaymentStatus).Should(Equal(model.PaymentStatusVoid))
			Expect(s.balance("C001").Equal(dec("1000"))).Should(BeTrue())

			entries := s.entries(res.Order.ID)
			Expect(entries).Should(HaveLen(2))
			Expect(entries[1].Description).Should(Equal(model.DescriptionVoidReversal))
			for account, net := range accountNet(entries) {
				Expect(net.IsZero()).Should(BeTrue(), account)
			}

			history, err := s.svc.Balance.GetBalanceHistory(s.ctx, "C001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(history[len(history)-1].Type).Should(Equal(model.BalanceChangeVoidRefund))
			Expect(history[len(history)-1].ChangeAmount.Equal(dec("310"))).Should(BeTrue())
		})
		It("Void of a partially paid order clears the receivable", func() {
			s.customer("C002", 100)
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C002", model.PaymentMethodDeductBalance), staff)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = s.svc.Orders.Void(s.ctx, res.Order.ID, admin)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.balance("C002").Equal(dec("100"))).Should(BeTrue())
			for account, net := range accountNet(s.entries(res.Order.ID)) {
				Expect(net.IsZero()).Should(BeTrue(), account)
			}
		})
		It("Void with error not an admin", func() {
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodCash), staff)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = s.svc.Orders.Void(s.ctx, res.Order.ID, staff)
			Expect(errors.Is(err, internal.ErrForbidden)).Should(BeTrue())
			Expect(s.entries(res.Order.ID)).Should(HaveLen(1))
		})
		It("Void is terminal", func() {
			res, err := s.svc.Orders.Checkout(s.ctx, shirtsAndTrousers("C001", model.PaymentMethodUnpaid), staff)
			Expect(err).ShouldNot(HaveOccurred())
			_, err = s.svc.Orders.MarkReady(s.ctx, tags(res.Items), staff)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = s.svc.Orders.Void(s.ctx, res.Order.ID, admin)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = s.svc.Orders.Void(s.ctx, res.Order.ID, admin)
			Expect(errors.Is(err, internal.ErrOrderVoided)).Should(BeTrue())
			_, err = s.svc.Orders.Settle(s.ctx, res.Order.ID, staff)
			Expect(errors.Is(err, internal.ErrOrderVoided)).Should(BeTrue())
			_, err = s.svc.Pickup.ConfirmPickup(s.ctx, model.PickupRequest{OrderID: res.Order.ID, CollectDue: true}, staff)
			Expect(errors.Is(err, internal.ErrOrderVoided)).Should(BeTrue())
		})
	})

	Context("Customers", func() {
		It("Create starts at zero and search finds by phone", func() {
			c, err := s.svc.Customers.Create(s.ctx, model.CustomerInput{Name: "Lily Chen", Mobile: "0912345678"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(c.ID).ShouldNot(BeEmpty())
			Expect(c.Balance.IsZero()).Should(BeTrue())

			found, err := s.svc.Customers.Search(s.ctx, "345")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(found).Should(HaveLen(1))
			Expect(found[0].ID).Should(Equal(c.ID))
		})
		It("Search finds by id regardless of case", func() {
			for id, name := range map[string]string{"C001": "Lily Chen", "C0010": "Mark Wu"} {
				_, err := s.svc.Customers.Create(s.ctx, model.CustomerInput{ID: id, Name: name})
				Expect(err).ShouldNot(HaveOccurred())
			}

			found, err := s.svc.Customers.Search(s.ctx, "c001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(found).Should(HaveLen(1))
			Expect(found[0].ID).Should(Equal("C001"))
		})
		It("Create with error duplicate id", func() {
			s.customer("C001", 0)

			_, err := s.svc.Customers.Create(s.ctx, model.CustomerInput{ID: "C001", Name: "Again"})
			Expect(errors.Is(err, internal.ErrAlreadyExists)).Should(BeTrue())
		})
		It("Create with error no name", func() {
			_, err := s.svc.Customers.Create(s.ctx, model.CustomerInput{ID: "C001"})
			Expect(errors.Is(err, internal.ErrInvalidInput)).Should(BeTrue())
		})
	})
})
