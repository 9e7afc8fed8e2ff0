package catalogue

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Default markers delimiting the catalogue block.
const (
	DefaultOpenMarker  = "<JSON>"
	DefaultCloseMarker = "</JSON>"
)

type blockState int

const (
	outsideBlock blockState = iota
	insideBlock
)

// ExtractBlock returns the lines of r found between a line containing open
// and a line containing close. Marker lines are never captured, and a line
// containing open is treated as an open marker even if it also contains
// close. Captured lines keep their line endings. Multiple blocks are
// concatenated.
func ExtractBlock(r io.Reader, open, close string) (string, error) {
	var (
		sb    strings.Builder
		state = outsideBlock
		br    = bufio.NewReader(r)
	)

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			switch {
			case strings.Contains(line, open):
				state = insideBlock
			case strings.Contains(line, close):
				state = outsideBlock
			case state == insideBlock:
				sb.WriteString(line)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}
