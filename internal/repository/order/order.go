package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/order"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id::text",
	"customer_name",
	"delivery_address",
	"items_ordered",
	"order_date_time",
	"status",
	"order_confirmation",
	"assigned_to",
}

type scanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (string, error) {
	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return "", fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (id, customer_name, delivery_address, items_ordered, order_date_time, status, order_confirmation, assigned_to)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id::text`

	var id string
	err = r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.ID,
		orderModifyModel.CustomerName,
		orderModifyModel.DeliveryAddress,
		orderModifyModel.ItemsOrdered,
		orderModifyModel.OrderDateTime,
		orderModifyModel.Status,
		orderModifyModel.OrderConfirmation,
		orderModifyModel.AssignedTo,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", order.ErrConflict
		}
		return "", fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return id, nil
}

// InsertMany вставляет заказы одним запросом. Пустой список ничего не делает.
func (r *Repository) InsertMany(ctx context.Context, orders []entities.Order) error {
	if len(orders) == 0 {
		return nil
	}

	builder := qb.
		Insert("orders").
		Columns("id", "customer_name", "delivery_address", "items_ordered", "order_date_time", "status", "order_confirmation", "assigned_to")

	for i := range orders {
		orderModel, err := FromDomain(&orders[i])
		if err != nil {
			return fmt.Errorf("unexpected order repository insertmany error: %w", err)
		}
		builder = builder.Values(
			orderModel.ID,
			orderModel.CustomerName,
			orderModel.DeliveryAddress,
			orderModel.ItemsOrdered,
			orderModel.OrderDateTime,
			orderModel.Status,
			orderModel.OrderConfirmation,
			orderModel.AssignedTo,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository insertmany error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrConflict
		}
		return fmt.Errorf("unexpected order repository insertmany error: %w", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderEntity, err := ToDomain(orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}
	return orderEntity, nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns...).
		From("orders")

	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"status": statusStrings(filter.Statuses)})
	}
	if len(filter.ExcludeStatuses) > 0 {
		builder = builder.Where(sq.NotEq{"status": statusStrings(filter.ExcludeStatuses)})
	}

	// id как тай-брейкер для стабильного порядка при одинаковом времени
	if filter.SortDesc {
		builder = builder.OrderBy("order_date_time DESC", "id DESC")
	} else {
		builder = builder.OrderBy("order_date_time ASC", "id ASC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	orders, err := ToDomainList(orderModels)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	return orders, nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	if orderModifyEntity.ID == nil {
		return nil, errors.New("unexpected order repository update error: id is required")
	}

	orderModifyModel, err := FromDomainModify(&orderModifyEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.CustomerName != nil {
		builder = builder.Set("customer_name", orderModifyModel.CustomerName)
	}
	if orderModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", orderModifyModel.DeliveryAddress)
	}
	if orderModifyModel.ItemsOrdered != nil {
		builder = builder.Set("items_ordered", orderModifyModel.ItemsOrdered)
	}
	if orderModifyModel.OrderDateTime != nil {
		builder = builder.Set("order_date_time", orderModifyModel.OrderDateTime)
	}
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.AssignedTo != nil {
		builder = builder.Set("assigned_to", orderModifyModel.AssignedTo)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("order repository update: %w", order.ErrInvalidStatus)
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderEntity, err := ToDomain(orderModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}
	return orderEntity, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `SELECT status, COUNT(*) FROM orders GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	defer rows.Close()

	counts := make(map[entities.OrderStatusType]int64, len(entities.OrderStatuses))
	for _, status := range entities.OrderStatuses {
		counts[status] = 0
	}

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository countbystatus error: %w", err)
	}
	return counts, nil
}

func scanOrder(row scanner) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.CustomerName,
		&orderModel.DeliveryAddress,
		&orderModel.ItemsOrdered,
		&orderModel.OrderDateTime,
		&orderModel.Status,
		&orderModel.OrderConfirmation,
		&orderModel.AssignedTo,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}

func statusStrings(statuses []entities.OrderStatusType) []string {
	result := make([]string, len(statuses))
	for i, status := range statuses {
		result[i] = status.String()
	}
	return result
}
