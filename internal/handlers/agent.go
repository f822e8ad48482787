package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customers-console/internal/model"
	"github.com/umalmyha/customers-console/internal/service"
	"net/http"
)

type question struct {
	Question string `json:"question" validate:"required"`
}

// AgentHTTPHandler is http handler for agent endpoint
type AgentHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewAgentHTTPHandler builds new AgentHTTPHandler
func NewAgentHTTPHandler(customerSvc service.CustomerService) *AgentHTTPHandler {
	return &AgentHTTPHandler{customerSvc: customerSvc}
}

// Ask forwards question to the agent
// @Summary     Ask agent
// @Description Forwards free text question to the customers agent and returns its answer as is
// @Tags        agent
// @Accept      json
// @Produce     json
// @Param       question body     question true "Question"
// @Success     200      {object} model.AgentAnswer
// @Failure     400      {object} echo.HTTPError
// @Failure     502      {object} echo.HTTPError
// @Router      /api/agent/ask [post]
func (h *AgentHTTPHandler) Ask(c echo.Context) error {
	var q question
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	answer, err := h.customerSvc.AskAgent(c.Request().Context(), q.Question)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &model.AgentAnswer{Answer: answer.Answer, Timestamp: answer.Timestamp})
}
