package tui

import (
	"network-ping/internal/app"
	"network-ping/internal/models"
)

// resultMsg is sent when a ping invocation finishes
type resultMsg struct {
	Request models.Request
	Result  app.ResultArrived
}
