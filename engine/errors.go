package engine

import "errors"

var (
	// ErrResourceAcquisition marks a render surface or device that could not be acquired
	ErrResourceAcquisition = errors.New("resource acquisition failed")

	// ErrEntityUpdate marks an isolated per-entity failure during a frame
	ErrEntityUpdate = errors.New("entity update failed")

	// ErrMissingResource is returned by entities whose backing resource was released mid-frame
	ErrMissingResource = errors.New("backing resource missing")
)
