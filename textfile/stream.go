package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/guiguan/caster"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// ErrStreamStarted is returned when a stream is run twice.
var ErrStreamStarted = errors.New("text file stream has already been started")

// Fragment is a converted piece of a text file.
type Fragment struct {
	Index int    // sequence number of this fragment, starting at 0
	Pos   int64  // start position of the fragment within the file
	Text  string // converted text
}

// Stream represents an OS file which will be converted in fragments.
type Stream struct {
	path      string         // file name
	info      os.FileInfo    // result from Stat(path)
	file      *os.File       // file handle
	fragSize  int64          // recommended fragment length
	cast      *caster.Caster // broadcaster for converted fragments
	once      sync.Once      // a stream runs once
	lastError error          // remember last I/O error
}

// Open opens a file, which must be a text file, for conversion.
// Clients may indicate a recommended fragment length. It may be 0, letting Open
// use a sensible default depending on the file size.
func Open(name string, fragSize int64) (*Stream, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file: %s", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	s := &Stream{
		path:     name,
		info:     fi,
		file:     file,
		fragSize: fragmentSize(fi.Size(), fragSize),
		cast:     caster.New(nil), // we will broadcast messages when fragments are converted
	}
	tracer().Debugf("text file %s opened, size=%d, fragment size=%d", name, fi.Size(), s.fragSize)
	return s, nil
}

func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	if size < 64 {
		fragSize = max(size, 1)
	} else if size < 1024 {
		fragSize = 64
	} else if size < tenKb {
		fragSize = 256
	} else if size < hundredKb {
		fragSize = 512
	} else if size < oneMb {
		fragSize = twoKb
	} else {
		fragSize = sixKb
	}
	return fragSize
}

// Subscribe returns a channel of converted fragments. It has to be called before
// Run. The channel is closed after the last fragment, or when ctx is done.
func (s *Stream) Subscribe(ctx context.Context, capacity uint) <-chan Fragment {
	out := make(chan Fragment, capacity)
	sub, ok := s.cast.Sub(ctx, capacity)
	if !ok {
		tracer().Errorf("text file %s: cannot subscribe to closed stream", s.path)
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			frag, ok := msg.(Fragment)
			if !ok {
				continue
			}
			select {
			case out <- frag:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Run reads the file in newline-aligned fragments, converts each fragment with
// convert and publishes the result to all subscribers. Run blocks until the
// complete file has been processed and closes the stream afterwards.
//
// If convert is nil, fragments are published unchanged.
func (s *Stream) Run(convert func(string) string) error {
	started := false
	s.once.Do(func() { started = true })
	if !started {
		return ErrStreamStarted
	}
	defer s.cast.Close()
	if convert == nil {
		convert = func(t string) string { return t }
	}
	r := bufio.NewReader(s.file)
	var frag strings.Builder
	index, pos, start := 0, int64(0), int64(0)
	publish := func() {
		if frag.Len() == 0 {
			return
		}
		s.cast.Pub(Fragment{Index: index, Pos: start, Text: convert(frag.String())})
		index++
		start = pos
		frag.Reset()
	}
	for {
		line, err := r.ReadString('\n')
		frag.WriteString(line)
		pos += int64(len(line))
		if int64(frag.Len()) >= s.fragSize {
			publish()
		}
		if err == io.EOF {
			break
		} else if err != nil {
			s.lastError = fmt.Errorf("error reading text fragment: %w", err)
			tracer().Errorf("text file %s: %v", s.path, s.lastError)
			return s.lastError
		}
	}
	publish()
	tracer().Debugf("text file %s: published %d fragments", s.path, index)
	return nil
}

// LastError returns the last I/O error of the stream, if any.
func (s *Stream) LastError() error {
	return s.lastError
}

// Close closes the underlying file. Subscriber channels are closed as well.
func (s *Stream) Close() error {
	s.cast.Close()
	return s.file.Close()
}

// Convert converts the text file at path fragment by fragment and writes the
// result to w.
func Convert(ctx context.Context, path string, w io.Writer, convert func(string) string) error {
	s, err := Open(path, 0)
	if err != nil {
		return err
	}
	defer s.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	frags := s.Subscribe(ctx, 16)
	errch := make(chan error, 1)
	go func() {
		errch <- s.Run(convert)
	}()
	var werr error
	for frag := range frags {
		if werr != nil {
			continue // drain
		}
		if _, werr = io.WriteString(w, frag.Text); werr != nil {
			cancel()
		}
	}
	if err = <-errch; err != nil {
		return err
	}
	return werr
}
