package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrNoData = errors.New("no point data")

// Zone is one curve of a point file, e.g. the upper or lower surface.
type Zone struct {
	Name string
	X, Y []float64
}

func (z Zone) Len() int { return len(z.X) }

// ReadPointsFile reads a plain text file of "x y" rows. Zones are separated
// by blank lines or by lines starting with "zone", whose remainder names the
// zone. Lines starting with '#' are comments.
func ReadPointsFile(fileName string) (zones []Zone, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(fileName); err != nil {
		return
	}
	defer file.Close()
	if zones, err = ReadPoints(bufio.NewReader(file)); err != nil {
		err = fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func ReadPoints(r io.Reader) (zones []Zone, err error) {
	var (
		scanner = bufio.NewScanner(r)
		cur     Zone
		lineNo  int
	)
	flush := func() {
		if cur.Len() > 0 {
			zones = append(zones, cur)
			cur = Zone{}
		}
	}
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case len(line) == 0:
			flush()
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(strings.ToLower(line), "zone"):
			flush()
			cur.Name = strings.Trim(strings.TrimSpace(line[4:]), `"=`)
			continue
		}
		var x, y float64
		if _, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			err = fmt.Errorf("line %d: unable to read coordinates %q: %w", lineNo, line, err)
			return
		}
		cur.X = append(cur.X, x)
		cur.Y = append(cur.Y, y)
	}
	if err = scanner.Err(); err != nil {
		return
	}
	flush()
	if len(zones) == 0 {
		err = ErrNoData
	}
	return
}

// WritePoints writes zones in the format ReadPoints reads.
func WritePoints(w io.Writer, zones ...Zone) (err error) {
	bw := bufio.NewWriter(w)
	for _, z := range zones {
		if len(z.X) != len(z.Y) {
			return fmt.Errorf("zone %s has %d x and %d y values", z.Name, len(z.X), len(z.Y))
		}
		fmt.Fprintf(bw, "zone %s\n", z.Name)
		for i := range z.X {
			fmt.Fprintf(bw, "%.10f %.10f\n", z.X[i], z.Y[i])
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
