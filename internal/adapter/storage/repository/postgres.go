package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ordermodule/internal/adapter/storage"
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/entity"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const ordersTable = "customer_orders"

var orderColumns = []string{
	"id", "number", "status", "currency", "store_id", "store_name",
	"customer_id", "customer_name", "employee_id", "comment",
	"sub_total", "discount_total", "shipping_total", "tax_total", "total",
	"created_date", "modified_date",
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	db     *storage.DB
	logger *zap.Logger
}

func NewRepository(db *storage.DB, logger *zap.Logger) (*Repository, error) {
	return &Repository{db: db, logger: logger}, nil
}

func (r *Repository) UnitOfWork(ctx context.Context, readOnly bool) (port.OrderUnitOfWork, error) {
	if readOnly {
		return &unitOfWork{db: r.db, q: r.db.Pool, readOnly: true, logger: r.logger}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &unitOfWork{
		db:      r.db,
		q:       tx,
		tx:      tx,
		tracked: make(map[string]*entity.Order),
		logger:  r.logger,
	}, nil
}

// unitOfWork collects the changes of one save or delete. A write unit keeps
// an open transaction; loaded orders are locked and written back on Commit.
type unitOfWork struct {
	db       *storage.DB
	q        querier
	tx       pgx.Tx
	readOnly bool
	done     bool

	tracked map[string]*entity.Order
	order   []string
	added   []*entity.Order
	logger  *zap.Logger
}

func (u *unitOfWork) GetByIDs(ctx context.Context, ids []string,
	group domain.ResponseGroup) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return []*entity.Order{}, nil
	}
	if !u.readOnly {
		group = domain.ResponseGroupFull
	}

	columns := append([]string{}, orderColumns...)
	collections := collectionColumns(group)
	for _, c := range collections {
		columns = append(columns, c.name)
	}

	statement := u.db.QueryBuilder.
		Select(columns...).
		From(ordersTable).
		Where(sq.Eq{"id": ids}).
		OrderBy("created_date DESC", "id")
	if !u.readOnly {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := u.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*entity.Order, 0, len(ids))
	for rows.Next() {
		o := &entity.Order{}
		raw := make([][]byte, len(collections))
		dest := []any{
			&o.ID, &o.Number, &o.Status, &o.Currency, &o.StoreID, &o.StoreName,
			&o.CustomerID, &o.CustomerName, &o.EmployeeID, &o.Comment,
			&o.SubTotal, &o.DiscountTotal, &o.ShippingTotal, &o.TaxTotal, &o.Total,
			&o.CreatedDate, &o.ModifiedDate,
		}
		for i := range raw {
			dest = append(dest, &raw[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		for i, c := range collections {
			if err := c.decode(o, raw[i]); err != nil {
				return nil, fmt.Errorf("decode %s of order %s: %w", c.name, o.ID, err)
			}
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !u.readOnly {
		for _, o := range list {
			u.track(o)
		}
	}
	return list, nil
}

func (u *unitOfWork) Search(ctx context.Context, criteria domain.OrderSearchCriteria) ([]string, int, error) {
	where := sq.And{}
	if criteria.Keyword != "" {
		pattern := "%" + criteria.Keyword + "%"
		where = append(where, sq.Or{
			sq.ILike{"number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"store_name": pattern},
			sq.ILike{"comment": pattern},
		})
	}

	sql, args, err := u.db.QueryBuilder.Select("count(*)").From(ordersTable).Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int
	if err := u.q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql, args, err = u.db.QueryBuilder.
		Select("id").
		From(ordersTable).
		Where(where).
		OrderBy("created_date DESC", "id").
		Offset(uint64(criteria.Start)).
		Limit(uint64(criteria.Count)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := u.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

func (u *unitOfWork) Add(order *entity.Order) {
	u.added = append(u.added, order)
}

func (u *unitOfWork) RemoveByIDs(ctx context.Context, ids []string) error {
	if u.readOnly {
		return errors.New("read only unit of work")
	}
	if len(ids) == 0 {
		return nil
	}

	sql, args, err := u.db.QueryBuilder.Delete(ordersTable).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return err
	}
	if _, err := u.q.Exec(ctx, sql, args...); err != nil {
		return err
	}
	for _, id := range ids {
		delete(u.tracked, id)
	}
	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.readOnly {
		return errors.New("read only unit of work")
	}
	if u.done {
		return errors.New("unit of work already finished")
	}

	for _, o := range u.added {
		if err := u.insert(ctx, o); err != nil {
			return conflict(err)
		}
	}
	for _, id := range u.order {
		o, ok := u.tracked[id]
		if !ok {
			continue
		}
		if err := u.update(ctx, o); err != nil {
			return conflict(err)
		}
	}

	if err := u.tx.Commit(ctx); err != nil {
		return err
	}
	u.done = true
	u.logger.Debug("Orders committed", zap.Int("added", len(u.added)), zap.Int("updated", len(u.tracked)))
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.readOnly || u.done {
		return nil
	}
	u.done = true
	return u.tx.Rollback(ctx)
}

func (u *unitOfWork) track(o *entity.Order) {
	if _, ok := u.tracked[o.ID]; !ok {
		u.order = append(u.order, o.ID)
	}
	u.tracked[o.ID] = o
}

func (u *unitOfWork) insert(ctx context.Context, o *entity.Order) error {
	children, err := encodeCollections(o)
	if err != nil {
		return err
	}

	columns := append(append([]string{}, orderColumns...), "items", "shipments", "in_payments", "addresses", "discounts")
	values := append(scalarValues(o), children...)

	sql, args, err := u.db.QueryBuilder.Insert(ordersTable).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return err
	}
	_, err = u.q.Exec(ctx, sql, args...)
	return err
}

func (u *unitOfWork) update(ctx context.Context, o *entity.Order) error {
	children, err := encodeCollections(o)
	if err != nil {
		return err
	}

	set := map[string]any{}
	columns := append(append([]string{}, orderColumns...), "items", "shipments", "in_payments", "addresses", "discounts")
	values := append(scalarValues(o), children...)
	for i, c := range columns {
		if c == "id" {
			continue
		}
		set[c] = values[i]
	}

	sql, args, err := u.db.QueryBuilder.Update(ordersTable).SetMap(set).Where(sq.Eq{"id": o.ID}).ToSql()
	if err != nil {
		return err
	}
	_, err = u.q.Exec(ctx, sql, args...)
	return err
}

func scalarValues(o *entity.Order) []any {
	return []any{
		o.ID, o.Number, o.Status, o.Currency, o.StoreID, o.StoreName,
		o.CustomerID, o.CustomerName, o.EmployeeID, o.Comment,
		o.SubTotal, o.DiscountTotal, o.ShippingTotal, o.TaxTotal, o.Total,
		o.CreatedDate, o.ModifiedDate,
	}
}

func encodeCollections(o *entity.Order) ([]any, error) {
	collections := []any{o.Items, o.Shipments, o.InPayments, o.Addresses, o.Discounts}
	values := make([]any, 0, len(collections))
	for _, c := range collections {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		if string(raw) == "null" {
			raw = []byte("[]")
		}
		values = append(values, raw)
	}
	return values, nil
}

type collectionColumn struct {
	name   string
	decode func(o *entity.Order, raw []byte) error
}

// collectionColumns lists the JSONB columns needed by group.
func collectionColumns(group domain.ResponseGroup) []collectionColumn {
	all := []struct {
		flag domain.ResponseGroup
		col  collectionColumn
	}{
		{domain.WithItems, collectionColumn{"items", func(o *entity.Order, raw []byte) error {
			return json.Unmarshal(raw, &o.Items)
		}}},
		{domain.WithShipments, collectionColumn{"shipments", func(o *entity.Order, raw []byte) error {
			return json.Unmarshal(raw, &o.Shipments)
		}}},
		{domain.WithInPayments, collectionColumn{"in_payments", func(o *entity.Order, raw []byte) error {
			return json.Unmarshal(raw, &o.InPayments)
		}}},
		{domain.WithAddresses, collectionColumn{"addresses", func(o *entity.Order, raw []byte) error {
			return json.Unmarshal(raw, &o.Addresses)
		}}},
		{domain.WithDiscounts, collectionColumn{"discounts", func(o *entity.Order, raw []byte) error {
			return json.Unmarshal(raw, &o.Discounts)
		}}},
	}

	cols := make([]collectionColumn, 0, len(all))
	for _, c := range all {
		if group.Has(c.flag) {
			cols = append(cols, c.col)
		}
	}
	return cols
}

func conflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrConflictingData, pgErr.ConstraintName)
	}
	return err
}
