package board

import "errors"

// ErrDeviceAttachFailed indicates PrepareAddDevice could not attach one of
// the device's pads (an empty or duplicate pad ID). No handle is issued and
// nothing is reserved, so there is nothing to commit or roll back.
var ErrDeviceAttachFailed = errors.New("board: device attach failed")

// ErrUnknownHandle indicates CommitAddDevice/RollbackAddDevice was called
// with a handle that PrepareAddDevice did not issue (or already resolved).
var ErrUnknownHandle = errors.New("board: unknown add-device handle")
