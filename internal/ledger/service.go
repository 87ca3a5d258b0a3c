package ledger

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/events"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// MaxQuantity bounds a single operation and the stock of one product, so
// every backend can store it in a 32-bit integer column.
const MaxQuantity = math.MaxInt32

// Service holds the operations that change stock. Each runs as a single
// store transaction; rows it reads for a decision stay locked until commit.
type Service struct {
	store     repo.LedgerStore
	logger    *zap.Logger
	tracer    trace.Tracer
	publisher events.Publisher
	timeout   time.Duration
	now       func() time.Time
}

func NewService(store repo.LedgerStore, opts ...Option) *Service {
	o := buildOptions(opts)
	return &Service{
		store:     store,
		logger:    o.logger.Named("inventory"),
		tracer:    o.tracer,
		publisher: o.publisher,
		timeout:   o.timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NewProduct is the input for CreateProduct. Stock always starts at zero.
type NewProduct struct {
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel int             `json:"min_stock_level"`
}

// CreateProduct adds a product to the catalog with no stock on hand.
func (s *Service) CreateProduct(ctx context.Context, np NewProduct) (models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.CreateProduct")
	defer span.End()

	np.Name = strings.TrimSpace(np.Name)
	np.Brand = strings.TrimSpace(np.Brand)
	switch {
	case np.Name == "":
		return models.Product{}, s.fail(span, "create_product", validationErr("name", "must not be empty"))
	case np.Price.IsNegative():
		return models.Product{}, s.fail(span, "create_product", validationErr("price", "must not be negative"))
	case !inCents(np.Price):
		return models.Product{}, s.fail(span, "create_product", validationErr("price", "must have at most 2 decimal places"))
	case np.MinStockLevel < 0:
		return models.Product{}, s.fail(span, "create_product", validationErr("min_stock_level", "must not be negative"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p := models.Product{Name: np.Name, Brand: np.Brand, Price: np.Price, MinStockLevel: np.MinStockLevel}
	err := s.store.WithTx(ctx, func(tx repo.LedgerTx) error {
		id, err := tx.InsertProduct(ctx, p)
		p.ID = id
		return err
	})
	if err != nil {
		return models.Product{}, s.fail(span, "create_product", err)
	}

	span.SetAttributes(attribute.Int64("product.id", p.ID))
	s.logger.Info("Product created", zap.Int64("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// UpdatePrice sets the selling price of a product. Sales already recorded
// keep the total they were made at.
func (s *Service) UpdatePrice(ctx context.Context, productID int64, price decimal.Decimal) (models.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.UpdatePrice", trace.WithAttributes(
		attribute.Int64("product.id", productID),
	))
	defer span.End()

	switch {
	case productID <= 0:
		return models.Product{}, s.fail(span, "update_price", validationErr("product_id", "must reference a product"))
	case price.IsNegative():
		return models.Product{}, s.fail(span, "update_price", validationErr("price", "must not be negative"))
	case !inCents(price):
		return models.Product{}, s.fail(span, "update_price", validationErr("price", "must have at most 2 decimal places"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var p models.Product
	err := s.store.WithTx(ctx, func(tx repo.LedgerTx) error {
		var err error
		p, err = tx.UpdatePrice(ctx, productID, price)
		return mapStoreErr(err)
	})
	if err != nil {
		return models.Product{}, s.fail(span, "update_price", err)
	}

	s.logger.Info("Price updated", zap.Int64("product_id", productID), zap.String("price", price.StringFixed(2)))
	return p, nil
}

// ReceiveStock books a delivery that is already on the shelf: the quantity
// is added to stock and the delivery is recorded as Received.
func (s *Service) ReceiveStock(ctx context.Context, productID int64, qty int, handler string, unitCost decimal.Decimal) error {
	ctx, span := s.tracer.Start(ctx, "ledger.ReceiveStock", trace.WithAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("delivery.quantity", qty),
	))
	defer span.End()

	if err := validateDelivery(productID, qty, handler, unitCost); err != nil {
		return s.fail(span, "receive_stock", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	d := models.Delivery{
		ProductID:   productID,
		Quantity:    qty,
		CostPrice:   unitCost,
		DeliveredAt: s.now(),
		Handler:     handler,
		Status:      models.DeliveryReceived,
	}
	err := s.store.WithTx(ctx, func(tx repo.LedgerTx) error {
		p, err := tx.ProductForUpdate(ctx, productID)
		if err != nil {
			return mapStoreErr(err)
		}
		if err := checkStockLimit(p, qty); err != nil {
			return err
		}
		if _, err := tx.AdjustQuantity(ctx, productID, qty); err != nil {
			return err
		}
		id, err := tx.InsertDelivery(ctx, d)
		d.ID = id
		return err
	})
	if err != nil {
		return s.fail(span, "receive_stock", err)
	}

	s.logger.Info("Stock received",
		zap.Int64("product_id", productID),
		zap.Int64("delivery_id", d.ID),
		zap.Int("quantity", qty),
		zap.String("handler", handler),
	)
	s.publish(ctx, events.Event{
		Type:       events.TypeStockReceived,
		ProductID:  productID,
		DeliveryID: d.ID,
		Quantity:   qty,
		Amount:     d.TotalCost(),
		Actor:      handler,
		OccurredAt: d.DeliveredAt,
	})
	return nil
}

// ScheduleDelivery records a committed future delivery. Stock is untouched
// until the delivery is confirmed.
func (s *Service) ScheduleDelivery(ctx context.Context, productID int64, qty int, scheduler string, unitCost decimal.Decimal) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.ScheduleDelivery", trace.WithAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("delivery.quantity", qty),
	))
	defer span.End()

	if err := validateDelivery(productID, qty, scheduler, unitCost); err != nil {
		return 0, s.fail(span, "schedule_delivery", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	d := models.Delivery{
		ProductID:   productID,
		Quantity:    qty,
		CostPrice:   unitCost,
		DeliveredAt: s.now(),
		Handler:     scheduler,
		Status:      models.DeliveryScheduled,
	}
	err := s.store.WithTx(ctx, func(tx repo.LedgerTx) error {
		if _, err := tx.ProductForUpdate(ctx, productID); err != nil {
			return mapStoreErr(err)
		}
		id, err := tx.InsertDelivery(ctx, d)
		d.ID = id
		return err
	})
	if err != nil {
		return 0, s.fail(span, "schedule_delivery", err)
	}

	span.SetAttributes(attribute.Int64("delivery.id", d.ID))
	s.logger.Info("Delivery scheduled",
		zap.Int64("product_id", productID),
		zap.Int64("delivery_id", d.ID),
		zap.Int("quantity", qty),
		zap.String("scheduler", scheduler),
	)
	s.publish(ctx, events.Event{
		Type:       events.TypeDeliveryScheduled,
		ProductID:  productID,
		DeliveryID: d.ID,
		Quantity:   qty,
		Amount:     d.TotalCost(),
		Actor:      scheduler,
		OccurredAt: d.DeliveredAt,
	})
	return d.ID, nil
}

// ConfirmDelivery moves a Scheduled delivery to Received and adds its
// quantity to stock, both in the same transaction. A delivery can be
// confirmed once; any later attempt fails with ErrDeliveryNotFound.
func (s *Service) ConfirmDelivery(ctx context.Context, deliveryID int64, confirmer string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.ConfirmDelivery", trace.WithAttributes(
		attribute.Int64("delivery.id", deliveryID),
	))
	defer span.End()

	if strings.TrimSpace(confirmer) == "" {
		return s.outcome(span, "confirm_delivery", validationErr("confirmer", "must not be empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var d models.Delivery
	err := s.store.WithTx(ctx, func(tx repo.LedgerTx) error {
		var err error
		d, err = tx.DeliveryForUpdate(ctx, deliveryID)
		if err != nil {
			return mapStoreErr(err)
		}
		if d.Status != models.DeliveryScheduled {
			return ErrDeliveryNotFound
		}
		p, err := tx.ProductForUpdate(ctx, d.ProductID)
		if err != nil {
			return mapStoreErr(err)
		}
		if err := checkStockLimit(p, d.Quantity); err != nil {
			return err
		}
		if err := tx.MarkDeliveryReceived(ctx, deliveryID, confirmer); err != nil {
			return mapStoreErr(err)
		}
		_, err = tx.AdjustQuantity(ctx, d.ProductID, d.Quantity)
		return err
	})
	if err != nil {
		return s.outcome(span, "confirm_delivery", err)
	}

	s.logger.Info("Delivery confirmed",
		zap.Int64("delivery_id", deliveryID),
		zap.Int64("product_id", d.ProductID),
		zap.Int("quantity", d.Quantity),
		zap.String("confirmer", confirmer),
	)
	s.publish(ctx, events.Event{
		Type:       events.TypeDeliveryConfirmed,
		ProductID:  d.ProductID,
		DeliveryID: deliveryID,
		Quantity:   d.Quantity,
		Amount:     d.TotalCost(),
		Actor:      confirmer,
		OccurredAt: s.now(),
	})
	return Result{OK: true, Message: "Delivery confirmed and stock updated."}, nil
}

// RecordSale takes qty units off the shelf at the current price. A sale
// that would overdraw stock is rejected whole.
func (s *Service) RecordSale(ctx context.Context, productID int64, qty int, attendant string) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.RecordSale", trace.WithAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("sale.quantity", qty),
	))
	defer span.End()

	switch {
	case productID <= 0:
		return s.outcome(span, "record_sale", validationErr("product_id", "must reference a product"))
	case qty <= 0:
		return s.outcome(span, "record_sale", validationErr("quantity", "must be a positive integer"))
	case qty > MaxQuantity:
		return s.outcome(span, "record_sale", validationErr("quantity", "must not exceed 2147483647"))
	case strings.TrimSpace(attendant) == "":
		return s.outcome(span, "record_sale", validationErr("attendant", "must not be empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	sale := models.Sale{ProductID: productID, Quantity: qty, SoldAt: s.now(), AttendeeName: attendant}
	err := s.store.WithTx(ctx, func(tx repo.LedgerTx) error {
		p, err := tx.ProductForUpdate(ctx, productID)
		if err != nil {
			return mapStoreErr(err)
		}
		if p.Quantity < qty {
			return &InsufficientStockError{ProductID: productID, Available: p.Quantity, Requested: qty}
		}
		if _, err := tx.AdjustQuantity(ctx, productID, -qty); err != nil {
			if errors.Is(err, repo.ErrInvalidQuantityChange) {
				return &InsufficientStockError{ProductID: productID, Available: p.Quantity, Requested: qty}
			}
			return err
		}
		sale.TotalPrice = p.Price.Mul(decimal.NewFromInt(int64(qty)))
		id, err := tx.InsertSale(ctx, sale)
		sale.ID = id
		return err
	})
	if err != nil {
		return s.outcome(span, "record_sale", err)
	}

	s.logger.Info("Sale recorded",
		zap.Int64("sale_id", sale.ID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", qty),
		zap.String("total", sale.TotalPrice.StringFixed(2)),
		zap.String("attendant", attendant),
	)
	s.publish(ctx, events.Event{
		Type:       events.TypeSaleRecorded,
		ProductID:  productID,
		SaleID:     sale.ID,
		Quantity:   qty,
		Amount:     sale.TotalPrice,
		Actor:      attendant,
		OccurredAt: sale.SoldAt,
	})
	return Result{OK: true, Message: "Sale recorded successfully"}, nil
}

func validateDelivery(productID int64, qty int, handler string, unitCost decimal.Decimal) error {
	switch {
	case productID <= 0:
		return validationErr("product_id", "must reference a product")
	case qty <= 0:
		return validationErr("quantity", "must be a positive integer")
	case qty > MaxQuantity:
		return validationErr("quantity", "must not exceed 2147483647")
	case unitCost.IsNegative():
		return validationErr("unit_cost", "must not be negative")
	case !inCents(unitCost):
		return validationErr("unit_cost", "must have at most 2 decimal places")
	case strings.TrimSpace(handler) == "":
		return validationErr("handler", "must not be empty")
	}
	return nil
}

func checkStockLimit(p models.Product, incoming int) error {
	if p.Quantity > MaxQuantity-incoming {
		return validationErr("quantity", "would take stock above 2147483647")
	}
	return nil
}

// inCents reports whether d is a whole number of cents.
func inCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// mapStoreErr turns the store's not-found sentinels into ledger errors.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		return ErrProductNotFound
	case errors.Is(err, repo.ErrDeliveryNotFound):
		return ErrDeliveryNotFound
	}
	return err
}

// fail records err on the span and returns it, wrapped in a StoreError
// unless it is a business outcome.
func (s *Service) fail(span trace.Span, op string, err error) error {
	if IsBusiness(err) {
		span.SetAttributes(attribute.String("ledger.rejected", err.Error()))
		s.logger.Info("Operation rejected", zap.String("op", op), zap.Error(err))
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, op+" failed")
	s.logger.Error("Store failure", zap.String("op", op), zap.Error(err))
	return &StoreError{Op: op, Err: err}
}

// outcome is fail for operations that report business failures as a Result.
func (s *Service) outcome(span trace.Span, op string, err error) (Result, error) {
	err = s.fail(span, op, err)
	var serr *StoreError
	if errors.As(err, &serr) {
		return Result{Message: Message(err), Reason: err}, err
	}
	return Result{Message: Message(err), Reason: err}, nil
}

// publish announces a committed change. Delivery is best effort.
func (s *Service) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn("Failed to publish ledger event", zap.String("type", e.Type), zap.Error(err))
	}
}
