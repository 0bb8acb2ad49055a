package colorfield

import "errors"

// ErrRenderingUnavailable wraps every failure of a rendering backend. Hosts
// stop their frame loop when they see it.
var ErrRenderingUnavailable = errors.New("rendering unavailable")
