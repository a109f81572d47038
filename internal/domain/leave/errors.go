package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrLeaveAlreadyProcessed = errors.New("leave request already approved or rejected")
	ErrLeaveOverlaps         = errors.New("leave request overlaps an existing request")
)
