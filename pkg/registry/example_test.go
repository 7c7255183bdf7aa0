package registry_test

import (
	"fmt"

	"eventd/pkg/registry"
)

// Downloader becomes observable by holding a registry and forwarding to it,
// no inheritance involved.
type Downloader struct {
	events *registry.Registry[int]
}

func NewDownloader() *Downloader {
	return &Downloader{events: registry.New[int]()}
}

func (d *Downloader) OnProgress(o registry.Observer[int]) *Downloader {
	d.events.Register("progress", o)
	return d
}

func (d *Downloader) fetch() {
	for _, pct := range []int{50, 100} {
		d.events.Fire("progress", pct)
	}
}

func Example_composition() {
	d := NewDownloader()
	d.OnProgress(registry.Fn(func(pct int) {
		fmt.Printf("progress: %d%%\n", pct)
	}))
	d.fetch()
	// Output:
	// progress: 50%
	// progress: 100%
}
