package handlers

import (
	"net/http"
	"strings"

	"github.com/rogerio-castellano/pharmalink/internal/cart"
	"go.uber.org/zap"
)

const idempotencyHeader = "Idempotency-Key"

func toCartResponse(c *cart.Cart) CartResponse {
	lines := make([]CartLine, 0, len(c.Items))
	for _, it := range c.Items {
		lines = append(lines, CartLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Brand:     it.Brand,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal(),
		})
	}
	return CartResponse{ID: c.ID.String(), Items: lines, Total: c.Total()}
}

// GetCartHandler godoc
// @Summary Current cart of the caller
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CartResponse
// @Failure 500 {string} string "Internal error"
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}
	c, err := cartStore.Get(r.Context(), claims.Subject)
	if err != nil {
		logger.Error("Failed to load cart", zap.String("owner", claims.Subject), zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, toCartResponse(c))
}

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description The unit price shown is the current catalog price. The sale is priced again at checkout.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body CartItemRequest true "Item"
// @Success 200 {object} CartResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Router /cart/items [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req.Quantity); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	product, err := findProduct(r, req.ProductID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	c, err := cartStore.Get(r.Context(), claims.Subject)
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	if err := c.Add(cart.Item{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Quantity:  req.Quantity,
		UnitPrice: product.Price,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := cartStore.Save(r.Context(), c); err != nil {
		logger.Error("Failed to save cart", zap.String("owner", claims.Subject), zap.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, toCartResponse(c))
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Success 204
// @Failure 500 {string} string "Internal error"
// @Router /cart [delete]
func ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}
	if err := cartStore.Delete(r.Context(), claims.Subject); err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CheckoutHandler godoc
// @Summary Sell every item in the cart
// @Description Each line is its own sale. Failed lines stay in the cart and sold lines are removed.
// @Description A repeated Idempotency-Key is rejected without selling anything.
// @Description The key is released again when every line failed on the store, so the checkout can be retried.
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Client generated key for this checkout"
// @Success 200 {object} cart.CheckoutResult
// @Failure 400 {string} string "Cart is empty"
// @Failure 409 {string} string "Checkout already submitted"
// @Failure 500 {string} string "Internal error"
// @Router /cart/checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	c, err := cartStore.Get(r.Context(), claims.Subject)
	if err != nil {
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	if c.Empty() {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	var claimedKey string
	if key := strings.TrimSpace(r.Header.Get(idempotencyHeader)); key != "" {
		claimedKey = claims.Subject + ":" + key
		claimed, err := claimer.Claim(r.Context(), claimedKey)
		if err != nil {
			logger.Error("Failed to claim checkout key", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		if !claimed {
			http.Error(w, "Checkout already submitted", http.StatusConflict)
			return
		}
	}

	result := cart.Checkout(r.Context(), ledgerSvc, c, claims.Name)
	if claimedKey != "" && result.Retryable() {
		if err := claimer.Release(r.Context(), claimedKey); err != nil {
			logger.Error("Failed to release checkout key", zap.Error(err))
		}
	}

	remaining := c.Items[:0]
	for _, line := range result.Lines {
		if !line.OK {
			remaining = append(remaining, line.Item)
		}
	}
	c.Items = remaining
	if c.Empty() {
		err = cartStore.Delete(r.Context(), claims.Subject)
	} else {
		err = cartStore.Save(r.Context(), c)
	}
	if err != nil {
		logger.Error("Failed to update cart after checkout", zap.String("owner", claims.Subject), zap.Error(err))
	}

	logger.Info("Checkout",
		zap.String("cart_id", result.CartID),
		zap.String("attendant", claims.Name),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
	)
	respond(w, http.StatusOK, result)
}
