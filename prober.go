package fibloop

import (
	"time"
)

type Prober interface {
	GetUsage() (Usage, error)
	CollectUsage(collectionInterval time.Duration) (<-chan Usage, chan<- struct{})
}

type ConcreteProber struct{}

func (c *ConcreteProber) GetUsage() (Usage, error) {
	var u Usage
	err := u.Get()
	return u, err
}

// CollectUsage samples the process every collectionInterval. The first
// value is absolute, every later one is the delta since the previous
// sample. Samples the consumer has not read are dropped, and so are
// samples that could not be read.
func (c *ConcreteProber) CollectUsage(collectionInterval time.Duration) (<-chan Usage, chan<- struct{}) {
	return collectUsage(c.GetUsage, collectionInterval)
}

func collectUsage(get func() (Usage, error), collectionInterval time.Duration) (<-chan Usage, chan<- struct{}) {
	// buffered so the first sample is available right away
	samplesCh := make(chan Usage, 1)

	stopCh := make(chan struct{})

	go func() {
		// the first successful read is sent whole, later ones as deltas
		usage, err := get()
		haveUsage := err == nil
		if haveUsage {
			samplesCh <- usage
		}

		ticker := time.NewTicker(collectionInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				current, err := get()
				if err != nil {
					continue
				}

				sample := current
				if haveUsage {
					sample = current.Delta(usage)
				}
				usage = current
				haveUsage = true

				select {
				case samplesCh <- sample:
				default:
				}

			case <-stopCh:
				return
			}
		}
	}()

	return samplesCh, stopCh
}
