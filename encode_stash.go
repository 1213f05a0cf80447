package stash

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog/log"
)

// stashDoc is the persisted form of a Stash.
type stashDoc struct {
	MaxLotID uint64         `json:"max_lot_id"`
	Lots     map[uint64]Lot `json:"lots"`
}

// MarshalJSON writes the stash with its lots in ascending id order.
func (s *Stash) MarshalJSON() ([]byte, error) {
	var lots jsonObjectWriter
	for id, lot := range s.All() {
		lots.Append(strconv.FormatUint(id, 10), lot)
	}
	var w jsonObjectWriter
	w.Append("max_lot_id", s.maxLotID)
	w.Append("lots", &lots)
	return w.MarshalJSON()
}

// UnmarshalJSON reads a stash document.
//
// A lot id above max_lot_id raises max_lot_id, so that a hand edited document
// can never lead to an id being allocated twice.
func (s *Stash) UnmarshalJSON(data []byte) error {
	var doc stashDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	s.maxLotID = doc.MaxLotID
	s.lots = make(map[uint64]Lot, len(doc.Lots))
	for id, lot := range doc.Lots {
		if id > s.maxLotID {
			log.Warn().Uint64("id", id).Uint64("max_lot_id", s.maxLotID).Msg("lot id above max_lot_id, raising max_lot_id")
			s.maxLotID = id
		}
		lot.Asset = ParseSymbol(string(lot.Asset))
		s.lots[id] = lot
	}
	return nil
}

// DecodeStash reads a stash document from r. An empty input is an empty
// stash.
func DecodeStash(r io.Reader) (*Stash, error) {
	s := NewStash()
	if err := json.NewDecoder(r).Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		return nil, fmt.Errorf("could not decode stash: %w", err)
	}
	return s, nil
}

// EncodeStash writes the stash as an indented JSON document.
func EncodeStash(w io.Writer, s *Stash) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode stash: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ReadStashFile reads the stash stored in file. A missing file is an empty
// stash, any other error is returned.
func ReadStashFile(file string) (*Stash, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("file", file).Msg("stash file does not exist, starting with an empty stash")
		return NewStash(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open stash file %q: %w", file, err)
	}
	defer f.Close()

	s, err := DecodeStash(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read stash file %q: %w", file, err)
	}
	return s, nil
}

// WriteStashFile replaces the content of file with the stash.
//
// The stash is first written to a temporary file in the same folder, then
// renamed over file, so that an interrupted write leaves the previous version
// intact.
func WriteStashFile(file string, s *Stash) (err error) {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create stash folder %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(file)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary stash file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if err := EncodeStash(tmp, s); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write stash file %q: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write stash file %q: %w", file, err)
	}
	if err := os.Rename(tmp.Name(), file); err != nil {
		return fmt.Errorf("cannot replace stash file %q: %w", file, err)
	}
	log.Debug().Str("file", file).Int("lots", s.Len()).Msg("stash written")
	return nil
}
