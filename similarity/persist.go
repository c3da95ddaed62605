package similarity

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/avallon/claimlens/core"
	"github.com/avallon/claimlens/storage"
)

// Durable format. Each file starts with a magic marker and a record
// count; the two counts must agree or the pair is rejected as corrupt.
const (
	vectorsMagic uint32 = 0x434c5631 // "CLV1"
	metaMagic    uint32 = 0x434c4d31 // "CLM1"
)

// writePair persists the index state as a matched file pair. Both
// files are fully written to temporary names first and renamed into
// place only on success, so an interrupted build never leaves a
// half-written file behind.
func writePair(vectorsPath, metaPath string, state *indexState) error {
	vectorsTmp := vectorsPath + ".tmp"
	metaTmp := metaPath + ".tmp"

	if err := os.WriteFile(vectorsTmp, encodeVectors(state), 0o644); err != nil {
		return fmt.Errorf("writing vectors file: %w", err)
	}
	if err := os.WriteFile(metaTmp, encodeEntries(state.entries), 0o644); err != nil {
		os.Remove(vectorsTmp)
		return fmt.Errorf("writing metadata file: %w", err)
	}

	if err := os.Rename(vectorsTmp, vectorsPath); err != nil {
		os.Remove(vectorsTmp)
		os.Remove(metaTmp)
		return fmt.Errorf("swapping vectors file: %w", err)
	}
	if err := os.Rename(metaTmp, metaPath); err != nil {
		os.Remove(metaTmp)
		return fmt.Errorf("swapping metadata file: %w", err)
	}
	return nil
}

// readPair loads and validates the durable pair as a unit.
// Returns (nil, nil) when neither file exists. A pair with only one
// file present, an unreadable file, or mismatched record counts
// returns core.ErrIndexCorrupt.
func readPair(vectorsPath, metaPath string) (*indexState, error) {
	vectorData, vectorsErr := os.ReadFile(vectorsPath)
	metaData, metaErr := os.ReadFile(metaPath)

	vectorsMissing := os.IsNotExist(vectorsErr)
	metaMissing := os.IsNotExist(metaErr)
	if vectorsMissing && metaMissing {
		return nil, nil
	}
	if vectorsMissing || metaMissing {
		return nil, fmt.Errorf("%w: index pair is incomplete", core.ErrIndexCorrupt)
	}
	if vectorsErr != nil {
		return nil, fmt.Errorf("reading vectors file: %w", vectorsErr)
	}
	if metaErr != nil {
		return nil, fmt.Errorf("reading metadata file: %w", metaErr)
	}

	dim, vectors, err := decodeVectors(vectorData)
	if err != nil {
		return nil, err
	}
	entries, err := decodeEntries(metaData)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(entries) {
		return nil, fmt.Errorf("%w: %d vectors but %d metadata entries",
			core.ErrIndexCorrupt, len(vectors), len(entries))
	}

	return &indexState{dim: dim, vectors: vectors, entries: entries}, nil
}

func encodeVectors(state *indexState) []byte {
	count := len(state.vectors)
	buf := make([]byte, 12+count*state.dim*4)
	binary.LittleEndian.PutUint32(buf[0:4], vectorsMagic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(count))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(state.dim))

	offset := 12
	for _, vector := range state.vectors {
		for _, value := range vector {
			binary.LittleEndian.PutUint32(buf[offset:offset+4], math.Float32bits(value))
			offset += 4
		}
	}
	return buf
}

func decodeVectors(data []byte) (int, [][]float32, error) {
	if len(data) < 12 {
		return 0, nil, fmt.Errorf("%w: vectors file truncated", core.ErrIndexCorrupt)
	}
	if binary.LittleEndian.Uint32(data[0:4]) != vectorsMagic {
		return 0, nil, fmt.Errorf("%w: vectors file has wrong magic", core.ErrIndexCorrupt)
	}
	count := int(binary.LittleEndian.Uint32(data[4:8]))
	dim := int(binary.LittleEndian.Uint32(data[8:12]))
	if len(data) != 12+count*dim*4 {
		return 0, nil, fmt.Errorf("%w: vectors file size does not match header", core.ErrIndexCorrupt)
	}

	vectors := make([][]float32, count)
	offset := 12
	for i := range vectors {
		vector := make([]float32, dim)
		for j := range vector {
			vector[j] = math.Float32frombits(binary.LittleEndian.Uint32(data[offset : offset+4]))
			offset += 4
		}
		vectors[i] = vector
	}
	return dim, vectors, nil
}

func encodeEntries(entries []core.IndexEntry) []byte {
	buf := make([]byte, 8, 8+len(entries)*64)
	binary.LittleEndian.PutUint32(buf[0:4], metaMagic)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(entries)))

	var frame [4]byte
	for i := range entries {
		encoded := storage.MarshalIndexEntry(&entries[i])
		binary.LittleEndian.PutUint32(frame[:], uint32(len(encoded)))
		buf = append(buf, frame[:]...)
		buf = append(buf, encoded...)
	}
	return buf
}

func decodeEntries(data []byte) ([]core.IndexEntry, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: metadata file truncated", core.ErrIndexCorrupt)
	}
	if binary.LittleEndian.Uint32(data[0:4]) != metaMagic {
		return nil, fmt.Errorf("%w: metadata file has wrong magic", core.ErrIndexCorrupt)
	}
	count := int(binary.LittleEndian.Uint32(data[4:8]))

	entries := make([]core.IndexEntry, 0, count)
	offset := 8
	for i := 0; i < count; i++ {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("%w: metadata entry %d truncated", core.ErrIndexCorrupt, i)
		}
		size := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		offset += 4
		if offset+size > len(data) {
			return nil, fmt.Errorf("%w: metadata entry %d truncated", core.ErrIndexCorrupt, i)
		}
		entry, err := storage.UnmarshalIndexEntry(data[offset : offset+size])
		if err != nil {
			return nil, fmt.Errorf("%w: metadata entry %d: %v", core.ErrIndexCorrupt, i, err)
		}
		entries = append(entries, *entry)
		offset += size
	}
	if offset != len(data) {
		return nil, fmt.Errorf("%w: metadata file has trailing bytes", core.ErrIndexCorrupt)
	}
	return entries, nil
}
