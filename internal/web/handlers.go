package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"network-ping/internal/models"
)

// maxHours caps the lookback window at one year.
const maxHours = 24 * 365

// parseHours reads the hours query parameter, defaulting to 24.
func parseHours(c *fiber.Ctx) (int, error) {
	hours := c.QueryInt("hours", 24)
	if hours < 1 || hours > maxHours {
		return 0, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("hours must be between 1 and %d", maxHours))
	}
	return hours, nil
}

// handleRecent handles /api/recent requests
func (s *Server) handleRecent(c *fiber.Ctx) error {
	hours, err := parseHours(c)
	if err != nil {
		return err
	}

	results, err := s.store.GetRecent(hours)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if results == nil {
		results = []models.OutcomeRecord{}
	}

	return c.JSON(results)
}

// handleStats handles /api/stats requests
func (s *Server) handleStats(c *fiber.Ctx) error {
	hours, err := parseHours(c)
	if err != nil {
		return err
	}

	stats, err := s.store.GetStats(hours)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if stats == nil {
		stats = []models.Stats{}
	}

	return c.JSON(stats)
}
