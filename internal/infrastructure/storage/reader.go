package storage

import (
	"apple-chase/internal/domain"
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load читает журнал из файла
func (s *JournalService) Load(path string) (*domain.Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadJournal(bufio.NewReader(f))
}

// ReadJournal декодирует формат APRL и проверяет заголовок и длины
func ReadJournal(r io.Reader) (*domain.Journal, error) {
	var header JournalFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, Version1)
	}
	if header.RecordCount < 0 {
		return nil, fmt.Errorf("%w: negative record count %d", ErrCorrupt, header.RecordCount)
	}

	// Счетчику из файла не доверяем при выделении памяти
	capacity := int(header.RecordCount)
	if capacity > 1024 {
		capacity = 1024
	}
	j := &domain.Journal{
		StartedAt: header.StartedAt,
		Records:   make([]domain.JournalRecord, 0, capacity),
	}

	for i := 0; i < int(header.RecordCount); i++ {
		var rh RecordHeader
		if err := binary.Read(r, binary.LittleEndian, &rh); err != nil {
			return nil, fmt.Errorf("%w: record %d header: %v", ErrCorrupt, i, err)
		}

		action := domain.ActionType(rh.Action)
		if !action.Known() {
			return nil, fmt.Errorf("%w: record %d has unknown action %d", ErrCorrupt, i, rh.Action)
		}

		conn := make([]byte, rh.ConnLen)
		if _, err := io.ReadFull(r, conn); err != nil {
			return nil, fmt.Errorf("%w: record %d conn id: %v", ErrCorrupt, i, err)
		}

		rec := domain.JournalRecord{
			Seq:    int(rh.Seq),
			ConnID: string(conn),
			Action: action,
		}
		if rh.PayloadLen > 0 {
			rec.Payload = make(json.RawMessage, rh.PayloadLen)
			if _, err := io.ReadFull(r, rec.Payload); err != nil {
				return nil, fmt.Errorf("%w: record %d payload: %v", ErrCorrupt, i, err)
			}
		}

		j.Records = append(j.Records, rec)
	}

	return j, nil
}
