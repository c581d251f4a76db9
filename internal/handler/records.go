package handler

import (
	"net/http"
	"strconv"

	"jokipro/internal/logger"
	"jokipro/internal/model"
	"jokipro/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordHandler covers the create/delete endpoints for tasks, clients and
// expenses.
type RecordHandler struct {
	tasks    *service.TaskService
	clients  *service.ClientService
	expenses *service.ExpenseService
}

func NewRecordHandler(tasks *service.TaskService, clients *service.ClientService, expenses *service.ExpenseService) *RecordHandler {
	return &RecordHandler{tasks: tasks, clients: clients, expenses: expenses}
}

// POST /api/tasks
func (h *RecordHandler) CreateTask(c *gin.Context) {
	var req model.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("task.created", "id", t.ID, "status", t.Status, "uid", c.GetInt("user_id"))
	c.JSON(http.StatusCreated, t)
}

// DELETE /api/tasks/:id
func (h *RecordHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	logger.Info("task.deleted", "id", id)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// POST /api/clients
func (h *RecordHandler) CreateClient(c *gin.Context) {
	var req model.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	cl, err := h.clients.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("client.created", "id", cl.ID)
	c.JSON(http.StatusCreated, cl)
}

// POST /api/expenses
func (h *RecordHandler) CreateExpense(c *gin.Context) {
	var req model.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	x, err := h.expenses.Create(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	logger.Info("expense.created", "id", x.ID)
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Expense added successfully", "expense": x})
}
