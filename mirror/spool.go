package mirror

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"math"
	"os"
	"sync"
)

// Spool file layout: a crc32 of every frame byte ever appended, a skip-ahead
// offset pointing past the last ejected frame, then length prefixed frames.
// Ejecting only advances the skip-ahead, so the checksum stays valid across
// restarts.
const (
	crcOffset       int64 = 0
	crcSize         int64 = 4
	skipAheadOffset       = crcOffset + crcSize
	skipAheadSize   int64 = 8
	dataOffset            = skipAheadOffset + skipAheadSize
	headSize              = crcSize + skipAheadSize
	frameMetaSize         = 2
)

var ErrInvalidSpool = errors.New("mirror: invalid spool file")

var scratchPool = &sync.Pool{
	New: func() interface{} {
		return make([]byte, headSize)
	},
}

// OpenSpool opens or creates the spool at path. A spool that fails its
// checksum is truncated and restarted; its unread frames were already
// unrecoverable.
func OpenSpool(path string) (*Spool, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}

	s := &Spool{
		file:  file,
		order: binary.BigEndian,
		sum:   crc32.NewIEEE(),
	}
	if err := s.check(); err != nil {
		if !errors.Is(err, ErrInvalidSpool) {
			_ = file.Close()
			return nil, err
		}
		if err := s.reset(); err != nil {
			_ = file.Close()
			return nil, err
		}
	}
	return s, nil
}

// Spool is a crash safe overflow queue of encoded rows.
type Spool struct {
	file  *os.File
	order binary.ByteOrder
	mx    sync.Mutex

	sum   hash.Hash32
	count int
	mw    io.Writer
}

func (s *Spool) Len() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.count
}

func (s *Spool) Close() error {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.file.Close()
}

// reset truncates the file back to an empty, valid spool.
func (s *Spool) reset() error {
	if err := s.file.Truncate(0); err != nil {
		return err
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	s.sum = crc32.NewIEEE()
	s.mw = io.MultiWriter(s.file, s.sum)
	s.count = 0

	buf := make([]byte, headSize)
	s.order.PutUint32(buf[crcOffset:crcSize], 0)
	s.order.PutUint64(buf[skipAheadOffset:skipAheadOffset+skipAheadSize], uint64(dataOffset))
	_, err := s.file.Write(buf)
	return err
}

// check replays the data section, recomputing the checksum and counting the
// frames past the skip-ahead mark. It leaves the file positioned at the end
// so pushes append.
func (s *Spool) check() error {
	s.mw = io.MultiWriter(s.file, s.sum)

	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	buf := make([]byte, headSize)

	n, err := s.file.Read(buf)
	if err != nil {
		if errors.Is(err, io.EOF) && n == 0 {
			s.order.PutUint32(buf[crcOffset:crcSize], 0)
			s.order.PutUint64(buf[skipAheadOffset:skipAheadOffset+skipAheadSize], uint64(dataOffset))
			_, err := s.file.Write(buf)
			return err
		}
		return err
	}
	if n < int(headSize) {
		return ErrInvalidSpool
	}

	fileSum := s.order.Uint32(buf[crcOffset:crcSize])
	skipAhead := int64(s.order.Uint64(buf[skipAheadOffset : skipAheadOffset+skipAheadSize]))
	currOffset := dataOffset

	if _, err := s.file.Seek(dataOffset, io.SeekStart); err != nil {
		return err
	}

	tr := io.TeeReader(s.file, s.sum)

	for {
		size, err := s.readMeta(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		currOffset += frameMetaSize

		if len(buf) < size {
			buf = make([]byte, size)
		}

		if _, err := io.ReadFull(tr, buf[:size]); err != nil {
			return ErrInvalidSpool
		}

		currOffset += int64(size)

		if currOffset > skipAhead {
			s.count++
		}
	}

	if s.sum.Sum32() != fileSum {
		return ErrInvalidSpool
	}

	return nil
}

func (s *Spool) readMeta(bs []byte) (size int, err error) {
	metaBuf := bs[0:frameMetaSize]

	if _, err := io.ReadFull(s.file, metaBuf); err != nil {
		return 0, err
	}

	return int(s.order.Uint16(metaBuf)), nil
}

func (s *Spool) writeMeta(bs []byte, size int) error {
	metaBuf := bs[0:frameMetaSize]

	s.order.PutUint16(metaBuf, uint16(size))

	_, err := s.file.Write(metaBuf)
	return err
}

func (s *Spool) updateSum(bs []byte) error {
	crcBuf := bs[0:crcSize]

	s.order.PutUint32(crcBuf, s.sum.Sum32())
	_, err := s.file.WriteAt(crcBuf, crcOffset)
	return err
}

func (s *Spool) Push(frame []byte) error {
	size := len(frame)

	if size > math.MaxUint16 {
		return fmt.Errorf("mirror: frame too large: %d over %d", size, math.MaxUint16)
	}

	bs := scratchPool.Get().([]byte)
	defer scratchPool.Put(bs)

	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.writeMeta(bs, size); err != nil {
		return err
	}

	if _, err := s.mw.Write(frame); err != nil {
		return err
	}

	s.count++

	return s.updateSum(bs)
}

// Eject removes and returns up to limit frames in arrival order; limit < 0
// means all of them.
func (s *Spool) Eject(limit int) ([][]byte, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if limit > s.count || limit < 0 {
		limit = s.count
	}

	if limit == 0 {
		return nil, nil
	}

	frames := make([][]byte, 0, limit)

	buf := make([]byte, headSize)
	skipAheadBuf := buf[0:skipAheadSize]

	if _, err := s.file.ReadAt(skipAheadBuf, skipAheadOffset); err != nil {
		return nil, err
	}

	skipAhead := int64(s.order.Uint64(skipAheadBuf))

	if _, err := s.file.Seek(skipAhead, io.SeekStart); err != nil {
		return nil, err
	}

	for i := 0; i < limit; i++ {
		size, err := s.readMeta(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return frames, err
		}

		skipAhead += frameMetaSize

		frame := make([]byte, size)
		if _, err := io.ReadFull(s.file, frame); err != nil {
			return frames, err
		}
		s.count--

		skipAhead += int64(size)

		frames = append(frames, frame)
	}

	s.order.PutUint64(skipAheadBuf, uint64(skipAhead))
	if _, err := s.file.WriteAt(skipAheadBuf, skipAheadOffset); err != nil {
		return frames, err
	}

	if _, err := s.file.Seek(0, io.SeekEnd); err != nil {
		return frames, err
	}

	return frames, nil
}
