package test

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/LaundryPOS/internal"
	"github.com/DrGermanius/LaundryPOS/internal/model"
)

var _ = Describe("Repository", func() {
	var (
		ctx  context.Context
		repo internal.IRepository
		mock sqlmock.Sqlmock
	)

	customerColumns := []string{"id", "name", "mobile", "home_phone", "address", "balance", "notes"}
	itemColumns := []string{"tag_id", "order_id", "item_type", "price", "color", "pattern", "note", "status"}
	ledgerColumns := []string{"entry_id", "created_at", "account_debit", "account_credit", "amount", "description", "reference_id"}

	BeforeEach(func() {
		ctx = context.Background()

		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	Context("Repository tests", func() {
		It("GetCustomer without error", func() {
			rows := sqlmock.NewRows(customerColumns).AddRow("C001", "Lily", "0912345678", "", "Taipei", "690.5", "")
			mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id = $1")).WithArgs("C001").WillReturnRows(rows)

			c, err := repo.GetCustomer(ctx, "C001")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(c.Name).Should(Equal("Lily"))
			Expect(c.Balance.Equal(decimal.RequireFromString("690.5"))).Should(BeTrue())
		})
		It("GetCustomer with error not found", func() {
			mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id = $1")).WithArgs("C404").WillReturnRows(sqlmock.NewRows(customerColumns))

			_, err := repo.GetCustomer(ctx, "C404")
			Expect(err).Should(Equal(internal.ErrNotFound))
		})
		It("CreateCustomer with error already exists", func() {
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO customers")).
				WithArgs("C001", "Lily", "", "", "", "0", "").
				WillReturnError(&pgconn.PgError{Code: "23505"})

			err := repo.CreateCustomer(ctx, model.Customer{ID: "C001", Name: "Lily", Balance: decimal.Zero})
			Expect(err).Should(Equal(internal.ErrAlreadyExists))
		})
		It("SearchCustomers matches name, phones and id", func() {
			rows := sqlmock.NewRows(customerColumns).AddRow("C001", "Lily", "0912345678", "", "", "0", "")
			mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE name ILIKE $1 OR mobile LIKE $1 OR home_phone LIKE $1 OR upper(id) = upper($2)")).
				WithArgs("%0912%", "0912").WillReturnRows(rows)

			customers, err := repo.SearchCustomers(ctx, "0912")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(customers).Should(HaveLen(1))
		})
		It("RunInTx commits the balance update", func() {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta("FROM customers WHERE id = $1 FOR UPDATE")).WithArgs("C001").
				WillReturnRows(sqlmock.NewRows(customerColumns).AddRow("C001", "Lily", "", "", "", "1000", ""))
			mock.ExpectExec(regexp.QuoteMeta("UPDATE customers SET balance = $1 WHERE id = $2")).
				WithArgs("690", "C001").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.RunInTx(ctx, func(ctx context.Context, tx internal.ITx) error {
				c, err := tx.GetCustomer(ctx, "C001")
				if err != nil {
					return err
				}
				return tx.UpdateCustomerBalance(ctx, c.ID, c.Balance.Sub(decimal.NewFromInt(310)))
			})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("RunInTx rolls back when nothing was updated", func() {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE order_items SET status = $1 WHERE tag_id = $2")).
				WithArgs("PickedUp", "20240301-001-01").WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			err := repo.RunInTx(ctx, func(ctx context.Context, tx internal.ITx) error {
				return tx.UpdateItemStatus(ctx, "20240301-001-01", model.ItemStatusPickedUp)
			})
			Expect(err).Should(Equal(internal.ErrNotFound))
		})
		It("AddOrderItems with error duplicate tag", func() {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
				WillReturnError(&pgconn.PgError{Code: "23505"})
			mock.ExpectRollback()

			err := repo.RunInTx(ctx, func(ctx context.Context, tx internal.ITx) error {
				return tx.AddOrderItems(ctx, []model.OrderItem{{TagID: "20240301-001-01", OrderID: "20240301-001", ItemType: "Shirt", Price: decimal.NewFromInt(50), Status: model.ItemStatusIn}})
			})
			Expect(errors.Is(err, internal.ErrDuplicateTag)).Should(BeTrue())
		})
		It("UpdateOrderPayment marks a void order", func() {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET paid_amount = $1, payment_status = $2, is_void = $3 WHERE order_id = $4")).
				WithArgs("100", "Void", true, "20240301-001").WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			err := repo.RunInTx(ctx, func(ctx context.Context, tx internal.ITx) error {
				return tx.UpdateOrderPayment(ctx, "20240301-001", decimal.NewFromInt(100), model.PaymentStatusVoid)
			})
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("LastOrderSequence without error", func() {
			mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE order_id LIKE $1")).WithArgs("20240301-%").
				WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))

			seq, err := repo.LastOrderSequence(ctx, "20240301")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(seq).Should(Equal(7))
		})
		It("GetItems without error", func() {
			rows := sqlmock.NewRows(itemColumns).
				AddRow("20240301-001-01", "20240301-001", "Shirt", "50", "White", "", "", "Cleaned").
				AddRow("20240301-001-02", "20240301-001", "Shirt", "50", "White", "", "", "In")
			mock.ExpectQuery(regexp.QuoteMeta("FROM order_items WHERE tag_id IN ($1, $2) ORDER BY tag_id")).
				WithArgs("20240301-001-01", "20240301-001-02").WillReturnRows(rows)

			items, err := repo.GetItems(ctx, []string{"20240301-001-01", "20240301-001-02"})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(items).Should(HaveLen(2))
			Expect(items[0].Status).Should(Equal(model.ItemStatusCleaned))
			Expect(items[1].Price.Equal(decimal.NewFromInt(50))).Should(BeTrue())
		})
		It("GetLedgerEntriesBetween without error", func() {
			t := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
			rows := sqlmock.NewRows(ledgerColumns).
				AddRow("e1", t, model.AccountCash, model.AccountUnearnedRevenue, "1000", model.DescriptionTopUp, "TOPUP-1")
			mock.ExpectQuery(regexp.QuoteMeta("FROM ledger WHERE created_at >= $1 AND created_at < $2")).
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).WillReturnRows(rows)

			entries, err := repo.GetLedgerEntriesBetween(ctx, t.Add(-time.Hour), t.Add(time.Hour))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(entries).Should(HaveLen(1))
			Expect(entries[0].Date).Should(Equal(t))
			Expect(entries[0].Amount.Equal(decimal.NewFromInt(1000))).Should(BeTrue())
		})
	})
})
