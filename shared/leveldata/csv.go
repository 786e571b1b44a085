package leveldata

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// Border map tokens. A token that parses as an integer is a zone id; any
// other token is open floor.
const (
	TokenBarrier = "X"
	TokenKey     = "K"
	TokenExit    = "E"
)

// LoadCSV parses a border table and an optional tile table. Tiles whose id
// is listed in floating force their cell open, overriding the border map.
func LoadCSV(fsys fs.FS, borderPath, tilePath string, floating []int) (*MapData, error) {
	border, err := readTable(fsys, borderPath)
	if err != nil {
		return nil, err
	}
	size := len(border)
	if err := checkSquare(border, size, borderPath); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(path.Base(borderPath), path.Ext(borderPath))
	m := newMapData(name, size)
	for row, record := range border {
		for col, raw := range record {
			m.Cells[row][col] = parseCell(strings.TrimSpace(raw))
		}
	}

	if tilePath != "" {
		tiles, err := readTable(fsys, tilePath)
		if err != nil {
			return nil, err
		}
		if err := checkSquare(tiles, size, tilePath); err != nil {
			return nil, err
		}
		for row, record := range tiles {
			for col, raw := range record {
				raw = strings.TrimSpace(raw)
				if raw == "" {
					continue
				}
				id, err := strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("%s row %d col %d: tile %q: %w", tilePath, row, col, raw, ErrMalformedMap)
				}
				m.Tiles[row][col] = id
			}
		}
	}

	m.ApplyFloating(floating)
	return m, nil
}

func parseCell(token string) Cell {
	switch strings.ToUpper(token) {
	case TokenBarrier:
		return Cell{Barrier: true}
	case TokenKey:
		return Cell{Key: true}
	case TokenExit:
		return Cell{Exit: true}
	}
	if zone, err := strconv.Atoi(token); err == nil {
		return Cell{Zone: zone}
	}
	return Cell{}
}

func readTable(fsys fs.FS, name string) ([][]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", name, err, ErrMalformedMap)
	}
	return records, nil
}

func checkSquare(records [][]string, size int, name string) error {
	if size == 0 {
		return fmt.Errorf("%s: empty table: %w", name, ErrMalformedMap)
	}
	if len(records) != size {
		return fmt.Errorf("%s: %d rows, want %d: %w", name, len(records), size, ErrMalformedMap)
	}
	for row, record := range records {
		if len(record) != size {
			return fmt.Errorf("%s row %d: %d columns, want %d: %w", name, row, len(record), size, ErrMalformedMap)
		}
	}
	return nil
}
