package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"taskmanager/internal/http/middleware"
	"taskmanager/internal/logger"
	"taskmanager/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Tasks.List(c.Request.Context())
	middleware.CountTaskOp("list", err)
	if err != nil {
		logger.Error("list tasks failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

func (h *Handler) AddTask(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task, err := h.Tasks.Add(c.Request.Context(), req.Title, req.Description)
	middleware.CountTaskOp("add", err)
	if err != nil {
		if errors.Is(err, repository.ErrTitleRequired) || errors.Is(err, repository.ErrTitleTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("add task failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add task: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	// deleting an id that is already gone is still success
	deleted, err := h.Tasks.Delete(c.Request.Context(), id)
	middleware.CountTaskOp("delete", err)
	if err != nil {
		logger.Error("delete task failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted, "id": id})
}
