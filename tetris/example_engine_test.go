package tetris_test

import (
	"fmt"
	"time"

	"github.com/Reith19/Gaming/tetris"
)

func ExampleEngine() {
	board, _ := tetris.NewBoard(20, 10)
	for x := range 10 {
		if x < 3 || x > 6 {
			board.Set(x, 19, tetris.L)
		}
	}

	game, err := tetris.New(tetris.DefaultConfig(),
		tetris.WithRand(always(idxI)),
		tetris.WithBoard(board),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	game.Subscribe(func(e tetris.Event) {
		fmt.Println("event:", e.Kind)
	}, tetris.EventLinesCleared, tetris.EventScoreChanged)

	game.Tick(1500 * time.Millisecond)
	game.HardDrop()

	s := game.Snapshot()
	fmt.Println("lines:", s.Lines, "score:", s.Score, "state:", s.State)
	// Output:
	// event: lines-cleared
	// event: score-changed
	// lines: 1 score: 100 state: falling
}

func ExampleRotate() {
	t := tetris.BaseShape(tetris.T)
	fmt.Println(t)
	fmt.Println()
	fmt.Println(tetris.Rotate(t, tetris.Clockwise))
	// Output:
	// .#.
	// ###
	//
	// #.
	// ##
	// #.
}
