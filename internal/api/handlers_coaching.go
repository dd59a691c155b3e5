package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/kinwise-app/kinwise/internal/coaching"
)

// RunCoachingSlot is the scheduler-facing trigger: run one slot's drivers
// over all candidate members and report the tally.
func (handler *Handler) RunCoachingSlot(c *fiber.Ctx) error {
	slot, err := coaching.ParseSlot(c.Params("slot"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	report, err := handler.runner.RunSlot(c.Context(), slot)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(report)
}

type triggerRequest struct {
	MemberID uint   `json:"member_id"`
	Type     string `json:"type"`
}

// TriggerCoaching runs the full pipeline for one member and one type.
func (handler *Handler) TriggerCoaching(c *fiber.Ctx) error {
	var request triggerRequest
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if request.MemberID == 0 {
		return apiError(c, fiber.StatusBadRequest, "member_id is required")
	}
	typ, err := coaching.ParseNotificationType(request.Type)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	outcome := handler.runner.RunSingle(c.Context(), request.MemberID, typ)
	return c.JSON(outcome)
}

// PreviewCoaching shows the decision, snapshot, and composed message for one
// member without dispatching anything.
func (handler *Handler) PreviewCoaching(c *fiber.Ctx) error {
	memberID, err := strconv.ParseUint(c.Params("memberID"), 10, 64)
	if err != nil || memberID == 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid member id")
	}
	typ, err := coaching.ParseNotificationType(c.Query("type", string(coaching.TypeMorning)))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	preview, err := handler.runner.Preview(c.Context(), uint(memberID), typ)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(preview)
}
