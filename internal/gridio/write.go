package gridio

import (
	"bufio"
	"io"
	"os"

	"halo-life/pkg/core"
)

// Format writes g in the format Parse reads.
func Format(w io.Writer, g *core.Grid) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, g.Cols()+1)
	line[len(line)-1] = '\n'
	for r := 0; r < g.Rows(); r++ {
		for c, v := range g.Row(r) {
			line[c] = '0'
			if v == core.Alive {
				line[c] = '1'
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes g to path, replacing any existing file.
func Save(path string, g *core.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Format(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
