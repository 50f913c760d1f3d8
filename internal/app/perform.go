package app

import (
	"context"

	"network-ping/internal/models"
)

// Perform runs one Invoke effect to completion and converts every failure
// path into a Failure outcome.
func Perform(ctx context.Context, inv models.Invoker, interp models.Interpreter, eff Invoke) ResultArrived {
	capture, err := inv.Invoke(ctx, eff.Request)
	if err != nil {
		return ResultArrived{Seq: eff.Request.Seq, Outcome: models.Failure(err)}
	}
	return ResultArrived{Seq: eff.Request.Seq, Outcome: interp.Interpret(capture)}
}
