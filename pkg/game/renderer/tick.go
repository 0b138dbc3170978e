package renderer

import "time"

// RunFixedTick calls step every delay until it returns true. Backends
// without their own frame clock use it for Run.
func RunFixedTick(step func() bool, delay time.Duration) error {
	if delay <= 0 {
		delay = time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		if step() {
			return nil
		}
		<-ticker.C
	}
}
