package commands

import (
	"log"
	"os"
	"os/signal"
)

type cleanup struct {
	work []func()
}

// newCleanup runs the registered work and exits if the process is
// interrupted.
func newCleanup() *cleanup {
	clean := &cleanup{}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\ncleaning up...")
		clean.exit(1)
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.work = append(c.work, fn)
}

// run does the registered work once, most recent first.
func (c *cleanup) run() {
	for i := len(c.work) - 1; i >= 0; i-- {
		c.work[i]()
	}
	c.work = nil
}

func (c *cleanup) exit(status int) {
	c.run()
	os.Exit(status)
}
