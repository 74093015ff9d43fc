package panelarea

import "github.com/google/uuid"

// NewRegionID returns a fresh random identity for regions and areas that
// were not given one. IDs are used to diff layouts across renders and to
// address regions in outward events.
func NewRegionID() string {
	return uuid.NewString()
}
