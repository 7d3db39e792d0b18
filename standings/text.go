package standings

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokenReader hands out whitespace-separated tokens and remembers where the
// last one came from for error messages.
type tokenReader struct {
	sc    *bufio.Scanner
	count int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("standings: read: %w", err)
		}

		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrMalformedSchedule, what)
	}
	t.count++

	return t.sc.Text(), nil
}

func (t *tokenReader) int(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer (token %d)", ErrMalformedSchedule, what, tok, t.count)
	}

	return v, nil
}

// maxTextCompetitors bounds the declared count of a text table.
const maxTextCompetitors = 1 << 16

// Read parses the text format: a competitor count n, then n rows of
// "name wins losses remaining" followed by n games-remaining entries, one per
// competitor in row order. The diagonal is ignored and the off-diagonal part
// must be symmetric. A count above 65536 is rejected as malformed.
func Read(r io.Reader, opts ...Option) (*Standings, error) {
	tr := newTokenReader(r)
	n, err := tr.int("competitor count")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative competitor count %d", ErrMalformedSchedule, n)
	}
	if n > maxTextCompetitors {
		return nil, fmt.Errorf("%w: competitor count %d exceeds %d", ErrMalformedSchedule, n, maxTextCompetitors)
	}

	// rows grow with the input, never with the declared count
	var teams []Team
	var matrix [][]int
	for row := 0; row < n; row++ {
		name, err := tr.next(fmt.Sprintf("row %d name", row))
		if err != nil {
			return nil, err
		}
		t := Team{Name: name}
		for _, f := range []struct {
			label string
			dst   *int
		}{
			{"wins", &t.Wins},
			{"losses", &t.Losses},
			{"remaining", &t.Remaining},
		} {
			if *f.dst, err = tr.int(fmt.Sprintf("row %d (%s) %s", row, name, f.label)); err != nil {
				return nil, err
			}
		}
		teams = append(teams, t)

		var cells []int
		for col := 0; col < n; col++ {
			c, err := tr.int(fmt.Sprintf("row %d (%s) column %d", row, name, col))
			if err != nil {
				return nil, err
			}
			cells = append(cells, c)
		}
		matrix = append(matrix, cells)
	}
	if tok, err := tr.next("trailing input"); err == nil {
		return nil, fmt.Errorf("%w: unexpected trailing token %q", ErrMalformedSchedule, tok)
	}

	games := make(map[Pair]int)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if matrix[i][j] != matrix[j][i] {
				return nil, fmt.Errorf("%w: asymmetric entry at row %d column %d (%d vs %d)",
					ErrMalformedSchedule, i, j, matrix[i][j], matrix[j][i])
			}
			if matrix[i][j] != 0 {
				games[Pair{A: i, B: j}] = matrix[i][j]
			}
		}
	}

	return New(teams, games, opts...)
}
