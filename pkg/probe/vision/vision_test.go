package vision

import (
	"errors"
	"testing"

	"github.com/teslashibe/go-arfocus/pkg/focus"
)

type failingSource struct{}

func (failingSource) CaptureJPEG() ([]byte, error) {
	return nil, errors.New("camera offline")
}

func TestProber_CaptureFailureIsAMiss(t *testing.T) {
	p := New(failingSource{}, DefaultConfig())

	if hits := p.Probe(focus.CenterPoint()); hits != nil {
		t.Errorf("Capture failure should probe as a miss, got %v", hits)
	}
}

func TestProber_NilSource(t *testing.T) {
	p := New(nil, DefaultConfig())

	if hits := p.Probe(focus.CenterPoint()); hits != nil {
		t.Errorf("Nil source should probe as a miss, got %v", hits)
	}
}
