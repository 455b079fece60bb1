package scratchpad

import (
	"context"
	"time"

	"github.com/GriffinCanCode/Scratchpad/backend/internal/types"
)

// UtilityOps handles non-path utility operations
type UtilityOps struct {
	*ScratchOps
}

// GetTools returns utility tool definitions
func (u *UtilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "scratchpad.get_time",
			Name:        "Current Time",
			Description: "Get current date and time",
			Parameters:  []types.Parameter{},
			Returns:     "string",
		},
	}
}

// GetTime returns the current local time as a spoken-word friendly string.
func (u *UtilityOps) GetTime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	now := time.Now().Format(timeFormat)
	return Success(map[string]interface{}{
		"message": now,
		"time":    now,
	})
}
