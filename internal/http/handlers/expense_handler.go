// README: Expense endpoints for trip budget tracking (auth required).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"andariego/internal/http/middleware"
	"andariego/internal/modules/expense"
)

type ExpenseHandler struct {
	expenses *expense.Service
}

func NewExpenseHandler(expSvc *expense.Service) *ExpenseHandler {
	return &ExpenseHandler{expenses: expSvc}
}

type recordExpenseReq struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	SpentAt     time.Time `json:"spentAt"`
}

// Record handles POST /api/trips/:id/expenses.
func (h *ExpenseHandler) Record(c *gin.Context) {
	var req recordExpenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	e, err := h.expenses.Record(c.Request.Context(), expense.Expense{
		TripID:      c.Param("id"),
		UserID:      middleware.CallerUID(c),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Currency:    req.Currency,
		SpentAt:     req.SpentAt,
	})
	if err != nil {
		writeExpenseError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, e)
}

// List handles GET /api/trips/:id/expenses. The response carries both the raw
// expense rows and the per-category summary for the budget screen.
func (h *ExpenseHandler) List(c *gin.Context) {
	list, err := h.expenses.ListByTrip(c.Request.Context(), middleware.CallerUID(c), c.Param("id"))
	if err != nil {
		writeExpenseError(c, err)
		return
	}
	if list == nil {
		list = []expense.Expense{}
	}
	writeJSON(c, http.StatusOK, gin.H{
		"expenses": list,
		"summary":  expense.Summarize(list),
	})
}
