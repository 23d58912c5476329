package storage

import (
	"apple-chase/internal/domain"
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

const (
	MagicHeader string = `APRL` // 4 байта
	Version1    uint32 = 1

	FileExt = ".aprl"

	maxConnLen    = 255
	maxPayloadLen = 65535
)

var (
	ErrInvalidMagic       = errors.New("invalid journal magic")
	ErrUnsupportedVersion = errors.New("unsupported journal version")
	ErrRecordTooLarge     = errors.New("journal record too large")
	ErrCorrupt            = errors.New("corrupt journal")
)

// JournalFileHeader - заголовок файла. Только числа и массивы,
// поэтому binary.Write пишет его целиком.
type JournalFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	StartedAt   int64   // 8 байт
	RecordCount int32   // 4 байта
}

// RecordHeader - заголовок каждой записи, за ним ConnID и Payload
type RecordHeader struct {
	Seq        int32  // 4
	Action     uint8  // 1
	ConnLen    uint8  // 1
	PayloadLen uint16 // 2
}

// JournalService сохраняет ленту событий релея в каталог SaveDir
type JournalService struct {
	SaveDir string
}

func NewJournalService(dir string) (*JournalService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}
	return &JournalService{SaveDir: dir}, nil
}

// Save пишет журнал в новый файл и возвращает его путь
func (s *JournalService) Save(j *domain.Journal) (string, error) {
	name := fmt.Sprintf("journal_%d_%d%s", j.StartedAt, time.Now().Unix(), FileExt)
	path := filepath.Join(s.SaveDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteJournal(w, j); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, f.Sync()
}

// WriteJournal кодирует журнал в бинарный формат APRL (little-endian)
func WriteJournal(w io.Writer, j *domain.Journal) error {
	header := JournalFileHeader{
		Version:     Version1,
		StartedAt:   j.StartedAt,
		RecordCount: int32(len(j.Records)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, rec := range j.Records {
		conn := []byte(rec.ConnID)
		if len(conn) > maxConnLen {
			return fmt.Errorf("%w: conn id %d bytes", ErrRecordTooLarge, len(conn))
		}
		if len(rec.Payload) > maxPayloadLen {
			return fmt.Errorf("%w: payload %d bytes", ErrRecordTooLarge, len(rec.Payload))
		}

		rh := RecordHeader{
			Seq:        int32(rec.Seq),
			Action:     uint8(rec.Action),
			ConnLen:    uint8(len(conn)),
			PayloadLen: uint16(len(rec.Payload)),
		}
		if err := binary.Write(w, binary.LittleEndian, &rh); err != nil {
			return err
		}
		if _, err := w.Write(conn); err != nil {
			return err
		}
		if len(rec.Payload) > 0 {
			if _, err := w.Write(rec.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
