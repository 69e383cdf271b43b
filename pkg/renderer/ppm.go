package renderer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// WritePPM writes the buffer as a plain-text P3 image: the header
// "P3\n<w> <h>\n255\n" followed by one "<r> <g> <b>\n" line per pixel in
// scan order.
func WritePPM(w io.Writer, pb *PixelBuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", pb.Width, pb.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	line := make([]byte, 0, 12)
	for _, p := range pb.Pixels {
		line = line[:0]
		line = strconv.AppendUint(line, uint64(p.R), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(p.G), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(p.B), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("failed to write PPM pixel data: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// SavePPM writes the buffer to filename, creating parent directories
func SavePPM(filename string, pb *PixelBuffer) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if err := WritePPM(file, pb); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
