package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"foodcourt/internal/domain"
	"foodcourt/internal/repository"
	"foodcourt/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const homepageFoodsPerKitchen = 5

type Handler struct {
	auth    *services.AuthService
	catalog *services.CatalogService
	orders  *services.OrderService
	rdb     *redis.Client
}

func NewHandler(auth *services.AuthService, catalog *services.CatalogService, orders *services.OrderService, rdb *redis.Client) *Handler {
	return &Handler{auth: auth, catalog: catalog, orders: orders, rdb: rdb}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/users/:id", h.Profile)

	r.GET("/homepage", h.Homepage)
	r.GET("/kitchens", h.ListKitchens)
	r.GET("/kitchens/:id", h.GetKitchen)
	r.POST("/kitchens/:id/rate", h.RateKitchen)
	r.GET("/foods", h.ListFoods)
	r.GET("/foods/:id", h.GetFood)

	authed := r.Group("/", h.Authenticate())
	authed.POST("/kitchens", h.CreateKitchen)
	authed.DELETE("/kitchens/:id", h.DeleteKitchen)
	authed.POST("/foods", h.CreateFood)
	authed.DELETE("/foods/:id", h.DeleteFood)
	authed.POST("/orders", h.CreateOrder)
	authed.GET("/orders/list", h.ListMyOrders)
	authed.GET("/orders/seller", h.ListSellerOrders)
	authed.PATCH("/orders/:id/status", h.UpdateOrderStatus)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *Handler) Profile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Homepage(c *gin.Context) {
	page, pageSize := pageParams(c)
	cacheKey := fmt.Sprintf("homepage:p%d:s%d", page, pageSize)

	ctx := c.Request.Context()
	if b, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
		var cached []services.KitchenWithFoods
		if json.Unmarshal([]byte(b), &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	out, err := h.catalog.Homepage(ctx, page, pageSize, homepageFoodsPerKitchen)
	if err != nil {
		writeError(c, err)
		return
	}

	if data, err := json.Marshal(out); err == nil {
		h.rdb.Set(context.Background(), cacheKey, data, 10*time.Second)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) ListKitchens(c *gin.Context) {
	page, pageSize := pageParams(c)
	kitchens, err := h.catalog.ListKitchens(c.Request.Context(), repository.KitchenQuery{
		Search:   c.Query("search"),
		OrderBy:  c.Query("ordering"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, kitchens)
}

func (h *Handler) GetKitchen(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	kitchen, err := h.catalog.GetKitchen(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, kitchen)
}

func (h *Handler) CreateKitchen(c *gin.Context) {
	var req CreateKitchenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kitchen, err := h.catalog.CreateKitchen(c.Request.Context(), currentUser(c), req.Name, req.ImageURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, kitchen)
}

func (h *Handler) RateKitchen(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating required"})
		return
	}

	newRating, err := h.catalog.RateKitchen(c.Request.Context(), id, req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted", "newRating": newRating})
}

func (h *Handler) ListFoods(c *gin.Context) {
	page, pageSize := pageParams(c)
	foods, err := h.catalog.ListFoods(c.Request.Context(), repository.FoodQuery{
		Search:   c.Query("search"),
		Status:   domain.OrderStatus(c.Query("status")),
		OrderBy:  c.Query("ordering"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *Handler) GetFood(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	food, err := h.catalog.GetFood(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *Handler) CreateFood(c *gin.Context) {
	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.catalog.CreateFood(c.Request.Context(), currentUser(c), &domain.Food{
		Name:         req.Name,
		KitchenID:    req.Kitchen,
		Price:        req.Price,
		Description:  req.Description,
		Quantity:     req.Quantity,
		DeliveryTime: req.DeliveryTime,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *Handler) DeleteFood(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteFood(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err)
		return
	}

	// drop the read-through cache entry so stale foods cannot be ordered
	h.rdb.Del(context.Background(), fmt.Sprintf("food:%d", id))

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteKitchen(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteKitchen(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), currentUser(c), req.Food, quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newOrderView(*order))
}

func (h *Handler) ListMyOrders(c *gin.Context) {
	orders, err := h.orders.ListUserOrders(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderViews(orders))
}

func (h *Handler) ListSellerOrders(c *gin.Context) {
	orders, err := h.orders.ListSellerOrders(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderViews(orders))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), currentUser(c), id, domain.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderView(*order))
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.Query("pageSize"))
	return page, pageSize
}

func writeError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrKitchenNotFound),
		errors.Is(err, services.ErrFoodNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrOwnFood):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidCreds),
		errors.Is(err, services.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrRatingRequired),
		errors.Is(err, services.ErrRatingOutOfRange),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrIllegalStatusHop),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidDelivery):
		status = http.StatusBadRequest
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
