package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// FanOutWriter copies every write to all of its sinks. A failing sink does not
// stop the others, and the write only fails when no sink took the bytes.
type FanOutWriter struct {
	sinks []io.Writer
}

func NewFanOutWriter(sinks ...io.Writer) *FanOutWriter {
	fw := &FanOutWriter{}
	for _, s := range sinks {
		if s != nil {
			fw.sinks = append(fw.sinks, s)
		}
	}
	return fw
}

func (fw *FanOutWriter) Sinks() int {
	return len(fw.sinks)
}

func (fw *FanOutWriter) Write(p []byte) (int, error) {
	var (
		err error
		ok  bool
	)
	for _, s := range fw.sinks {
		if _, werr := s.Write(p); werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		ok = true
	}
	if !ok && err != nil {
		return 0, err
	}
	return len(p), nil
}
