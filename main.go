package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"dots-and-boxes/internal/config"
	"dots-and-boxes/internal/game"
)

// Hot-seat driver: both players share one terminal and type wall coordinates.
func main() {
	cfg := config.Get()
	width, height := cfg.Board.Width, cfg.Board.Height
	if len(os.Args) == 3 {
		width, _ = strconv.Atoi(os.Args[1])
		height, _ = strconv.Atoi(os.Args[2])
	}

	st, err := game.NewGame(width, height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	final, err := run(st, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	winner, _ := game.Winner(final)
	fmt.Printf("\nGame over! Congratulations %s\n", winner)
	js, _ := json.MarshalIndent(final, "", "  ")
	fmt.Println(string(js))
}

// run reads "row cell" lines until the game is finished. Rejected claims are
// reported and the same player is asked again.
func run(st game.State, in io.Reader, out io.Writer) (game.State, error) {
	reader := bufio.NewReader(in)
	for !st.Finished() {
		fmt.Fprintf(out, "\nTurn: %s  score %v\n", st.CurrentPlayer(), st.Scores())
		printBoard(out, st)
		fmt.Fprintln(out, "Enter a wall: row cell (e.g. 0 1)")
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return st, fmt.Errorf("read move: %w", err)
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(out, "Bad format, try again.")
			continue
		}
		row, err1 := strconv.Atoi(parts[0])
		cell, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			fmt.Fprintln(out, "Bad format, try again.")
			continue
		}

		next, err := game.ApplyMove(st, row, cell)
		if err != nil {
			fmt.Fprintln(out, "Invalid move:", err)
			continue
		}
		st = next
	}
	return st, nil
}

// printBoard draws dots joined by claimed walls; owned squares show the
// owner's number.
func printBoard(out io.Writer, st game.State) {
	for row := 0; row <= 2*st.Height(); row++ {
		var b strings.Builder
		if row%2 == 0 {
			for cell := 0; cell < st.Width(); cell++ {
				b.WriteString("+")
				if st.Wall(row, cell) {
					b.WriteString("---")
				} else {
					b.WriteString("   ")
				}
			}
			b.WriteString("+")
		} else {
			for cell := 0; cell <= st.Width(); cell++ {
				if st.Wall(row, cell) {
					b.WriteString("|")
				} else {
					b.WriteString(" ")
				}
				if cell == st.Width() {
					break
				}
				if p, ok := st.Square((row-1)/2, cell).Player(); ok {
					fmt.Fprintf(&b, " %d ", p)
				} else {
					b.WriteString("   ")
				}
			}
		}
		fmt.Fprintln(out, b.String())
	}
}
