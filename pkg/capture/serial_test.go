package capture

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePort returns data in fixed chunks, interleaving empty reads the way a
// serial port does when its read timeout expires.
type fakePort struct {
	written bytes.Buffer
	data    []byte
	chunk   int
	idle    bool
}

func (p *fakePort) Write(b []byte) (int, error) { return p.written.Write(b) }

func (p *fakePort) Read(b []byte) (int, error) {
	p.idle = !p.idle
	if p.idle {
		return 0, nil
	}
	if len(p.data) == 0 {
		return 0, io.EOF
	}
	n := min(p.chunk, len(b), len(p.data))
	copy(b, p.data[:n])
	p.data = p.data[n:]
	return n, nil
}

func TestReadFrame(t *testing.T) {
	frame := bytes.Repeat([]byte{1, 2, 3, 4, 5}, 20)
	port := &fakePort{data: append(bytes.Clone(frame), 9, 9, 9), chunk: 7}

	got, err := ReadFrame(context.Background(), port, []byte("capture\n"), len(frame))
	require.NoError(t, err)
	assert.Equal(t, frame, got)
	assert.Equal(t, "capture\n", port.written.String())
}

func TestReadFrameWithoutTrigger(t *testing.T) {
	port := &fakePort{data: []byte{1, 2, 3, 4}, chunk: 4}
	got, err := ReadFrame(context.Background(), port, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
	assert.Zero(t, port.written.Len())
}

func TestReadFrameShortStream(t *testing.T) {
	port := &fakePort{data: []byte{1, 2, 3}, chunk: 2}
	_, err := ReadFrame(context.Background(), port, nil, 4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestReadFrameCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	port := &fakePort{data: []byte{1, 2, 3, 4}, chunk: 1}
	_, err := ReadFrame(ctx, port, nil, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadFrameInvalidSize(t *testing.T) {
	_, err := ReadFrame(context.Background(), &fakePort{}, nil, 0)
	assert.Error(t, err)
}
