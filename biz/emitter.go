// Package biz wires input plugins to output plugins: every record read from
// an input runs through the filter chain and the rate limiter, then goes to
// all outputs.
package biz

import (
	"io"
	"sync"

	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/filter"
)

// Emitter represents the pump between input and output plugins.
type Emitter struct {
	sync.WaitGroup
	plugins     *InOutPlugins
	filterChain filter.Filter
	limiter     Limiter
}

// NewEmitter creates and initializes a new Emitter object.
func NewEmitter(f filter.Filter, lim Limiter) *Emitter {
	var e Emitter
	e.filterChain = f
	e.limiter = lim
	return &e
}

// Start spawns one goroutine per input plugin. Each goroutine drains its
// input and stops on io.EOF; use Wait to block until all inputs are drained.
func (e *Emitter) Start(plugins *InOutPlugins) {
	e.plugins = plugins
	for _, in := range plugins.Inputs {
		e.Add(1)
		go func(in PluginReader) {
			defer e.Done()
			if err := e.CopyMulty(in, plugins.Outputs...); err != nil {
				slog.Debug("[EMITTER] copy done: %v", err)
			}
		}(in)
	}
}

// Close closes all the plugins and waits for the copy goroutines to finish.
func (e *Emitter) Close() {
	for _, p := range e.plugins.All {
		if cp, ok := p.(io.Closer); ok {
			cp.Close()
		}
	}
	if len(e.plugins.All) > 0 {
		e.Wait()
	}
	e.plugins.All = nil // avoid Close to make changes again
}

// CopyMulty copies records from one reader to multiple writers. io.EOF from
// the reader ends the copy; any other read error is logged and the loop
// moves on to the next record, so one bad record never stops an input.
func (e *Emitter) CopyMulty(src PluginReader, writers ...PluginWriter) error {
	for {
		record, err := src.Read()
		if err == io.EOF {
			return io.EOF
		}
		if err != nil {
			slog.Error("src.Read:%v", err)
			continue
		}

		record, ok := e.filterChain.Filter(record)
		if !ok {
			continue
		}

		if e.limiter != nil && !e.limiter.Allow() {
			continue
		}

		for _, dst := range writers {
			if err = dst.Write(record); err != nil {
				slog.Error("dst.Write:%v", err)
			}
		}
	}
}
