package main

import (
	"fmt"
	"math"

	"fortio.org/safecast"

	radint "github.com/shabbyrobe/go-radint"
)

// checkRadix validates a radix given by a flag or config key.
func checkRadix(name string, radix int) error {
	r, err := safecast.Conv[uint8](radix)
	if err != nil || r < radint.MinRadix || r > radint.MaxRadix {
		return fmt.Errorf("%s must be in [%d, %d], found %d", name, radint.MinRadix, radint.MaxRadix, radix)
	}
	return nil
}

// checkJobs validates a concurrency limit given by a flag or config key.
func checkJobs(name string, jobs int) error {
	n, err := safecast.Conv[uint16](jobs)
	if err != nil || n == 0 {
		return fmt.Errorf("%s must be in [1, %d], found %d", name, math.MaxUint16, jobs)
	}
	return nil
}
