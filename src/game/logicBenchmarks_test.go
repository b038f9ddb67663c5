package game

import "testing"

const (
	benchWidth  = 200
	benchHeight = 200
)

func benchBoard(b *testing.B) *Board {
	board, err := NewBoard(benchWidth, benchHeight)
	if err != nil {
		b.Fatal(err)
	}
	board.SettleRandom()
	return board
}

func Benchmark_Advance(b *testing.B) {
	board := benchBoard(b)
	log := LifeLog{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Advance(board, log)
	}
}

func Benchmark_AdvanceNoLog(b *testing.B) {
	board := benchBoard(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Advance(board, nil)
	}
}

func Benchmark_Resize(b *testing.B) {
	board := benchBoard(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Resize(board, benchWidth/2, benchHeight/2); err != nil {
			b.Fatal(err)
		}
	}
}
