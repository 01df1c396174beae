package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"complaints_backend_echo/internal/middleware"
	"complaints_backend_echo/internal/models"
	"complaints_backend_echo/internal/services"
)

// PaymentHandler exposes payment submission and the reviewer surface
type PaymentHandler struct {
	payments *services.PaymentService
	engine   *services.SubscriptionService
	receipts *services.ReceiptStore
}

func NewPaymentHandler(payments *services.PaymentService, engine *services.SubscriptionService, receipts *services.ReceiptStore) *PaymentHandler {
	return &PaymentHandler{payments: payments, engine: engine, receipts: receipts}
}

// Submit accepts a multipart payment proof from a trader
func (h *PaymentHandler) Submit(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	fileHeader, err := c.FormFile("receipt_image")
	if err != nil {
		return services.ValidationError("receipt image is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	stored, err := h.receipts.Save(fileHeader.Filename, src)
	if err != nil {
		return err
	}

	methodID, _ := strconv.ParseUint(c.FormValue("method_id"), 10, 32)
	amount, err := strconv.ParseFloat(c.FormValue("amount"), 64)
	if err != nil && c.FormValue("amount") != "" {
		return services.ValidationError("amount must be a number")
	}

	payment, err := h.payments.Submit(user.ID, services.SubmitPaymentInput{
		MethodID:             uint(methodID),
		SenderName:           c.FormValue("sender_name"),
		SenderPhone:          c.FormValue("sender_phone"),
		Amount:               amount,
		TransactionReference: c.FormValue("transaction_reference"),
		PaymentDate:          c.FormValue("payment_date"),
		ReceiptPath:          stored,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Payment proof submitted, it will be reviewed shortly",
		"payment": payment,
	})
}

// GetReceipt serves a stored receipt to its owner or a reviewer
func (h *PaymentHandler) GetReceipt(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	filename := c.Param("filename")
	payment, err := h.payments.GetByReceipt(filename)
	if err != nil {
		return err
	}

	isReviewer := services.Allowed(user.Role.Name, services.ActionReviewPayments)
	if payment.UserID != user.ID && !isReviewer {
		return echo.NewHTTPError(http.StatusForbidden, "You don't have access to this receipt")
	}

	path, err := h.receipts.Path(payment.ReceiptPath)
	if err != nil {
		return err
	}
	return c.File(path)
}

// AdminList returns payments filtered by review status, newest first
func (h *PaymentHandler) AdminList(c echo.Context) error {
	status := models.PaymentStatus(c.QueryParam("status"))
	if status == "" {
		status = models.PaymentStatusPending
	}

	payments, err := h.payments.ListByStatus(status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"payments": payments})
}

// ReviewRequest is the approve/reject request body
type ReviewRequest struct {
	Notes  string `json:"notes"`
	Reason string `json:"reason"`
}

// Approve approves a pending payment and returns the new subscription
func (h *PaymentHandler) Approve(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return services.NotFoundError("payment")
	}

	var req ReviewRequest
	_ = c.Bind(&req) // notes are optional

	subscription, err := h.engine.Approve(uint(paymentID), user.ID, req.Notes)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":      "Payment approved",
		"subscription": subscription,
	})
}

// Reject rejects a pending payment with a required reason
func (h *PaymentHandler) Reject(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return services.NotFoundError("payment")
	}

	var req ReviewRequest
	_ = c.Bind(&req)

	if err := h.engine.Reject(uint(paymentID), user.ID, req.Reason); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Payment rejected"})
}
