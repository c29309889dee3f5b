package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
)

// OrderUseCase implements the purchase-order lifecycle. Receiving an order
// is the only path that mutates product stock from here, and it applies
// exactly once per order.
type OrderUseCase struct {
	products  ProductRepository
	orders    OrderRepository
	snapshots *SnapshotWriter
	logger    logger.Logger
}

func NewOrderUC(
	products ProductRepository,
	orders OrderRepository,
	snapshots *SnapshotWriter,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		products:  products,
		orders:    orders,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (u *OrderUseCase) ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := u.orders.ListOrders(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// CreateOrder snapshots the selected products into a pending order.
// Quantity is the suggested reorder quantity and cost the current cost
// price; later product edits do not touch the order.
func (u *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.PurchaseOrder, error) {
	const op = "OrderUseCase.CreateOrder"

	if len(req.ProductIDs) == 0 {
		return nil, e.Wrap(op, e.ErrNoProductsSelected)
	}

	seen := make(map[string]struct{}, len(req.ProductIDs))
	items := make([]domain.OrderItem, 0, len(req.ProductIDs))
	for _, id := range req.ProductIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		product, err := u.products.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, e.ErrProductNotFound) {
				continue
			}
			return nil, e.Wrap(op, err)
		}

		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    domain.SuggestedQuantity(*product),
			Cost:        product.CostPrice,
		})
	}

	if len(items) == 0 {
		return nil, e.Wrap(op, e.ErrNoProductsSelected)
	}

	order := domain.NewPurchaseOrder(newPONumber(), items, req.DeliveryDate, strings.TrimSpace(req.Notes))
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()

	if err := u.orders.InsertOrder(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	u.logger.Infof("purchase order %s created with %d item(s)", order.PONumber, len(order.Items))
	return order, nil
}

// QuickCreateOrder creates an order for a single product, used from the
// per-product reorder shortcut.
func (u *OrderUseCase) QuickCreateOrder(ctx context.Context, productID string) (*domain.PurchaseOrder, error) {
	const op = "OrderUseCase.QuickCreateOrder"

	if _, err := u.products.GetProduct(ctx, productID); err != nil {
		return nil, e.Wrap(op, err)
	}

	return u.CreateOrder(ctx, &CreateOrderReq{ProductIDs: []string{productID}})
}

// ReceiveOrder transitions a pending order to received and applies each
// item's quantity to the matching product. Items whose product was deleted
// since creation are skipped; their stock is simply not applied.
func (u *OrderUseCase) ReceiveOrder(ctx context.Context, id string) (*domain.PurchaseOrder, error) {
	const op = "OrderUseCase.ReceiveOrder"

	order, err := u.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if order.Status == domain.OrderStatusReceived {
		return nil, e.Wrap(op, e.ErrOrderAlreadyReceived)
	}

	for _, item := range order.Items {
		product, err := u.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, e.ErrProductNotFound) {
				continue
			}
			return nil, e.Wrap(op, err)
		}

		product.Stock += item.Quantity
		if err := u.products.UpdateProduct(ctx, product); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	now := time.Now()
	order.Status = domain.OrderStatusReceived
	order.ReceivedAt = &now
	if err := u.orders.UpdateOrder(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	u.logger.Infof("purchase order %s received", order.PONumber)
	return order, nil
}

// RemoveOrder deletes a pending order. Received orders are immutable
// history and cannot be removed.
func (u *OrderUseCase) RemoveOrder(ctx context.Context, id string) error {
	const op = "OrderUseCase.RemoveOrder"

	order, err := u.orders.GetOrder(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}
	if order.Status != domain.OrderStatusPending {
		return e.Wrap(op, e.ErrOrderNotPending)
	}

	if err := u.orders.DeleteOrder(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return nil
}

// newPONumber derives a human-readable order number from wall-clock time.
// Unique within a single session only; the uuid ID is the record key.
func newPONumber() string {
	return fmt.Sprintf("PO-%06d", time.Now().UnixMilli()%1_000_000)
}
