package procgen

import (
	"slices"
	"testing"
)

func TestSpawnRoomsProperties(t *testing.T) {
	size := NewSize(4, 4, 10, 10)
	g := New().
		WithSize(40, 10).
		WithSeed(0).
		SpawnRooms(1, 5, size)
	if err := g.Err(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	rooms := g.Rooms()
	if len(rooms) > 5 {
		t.Fatalf("placed %d rooms, requested only 5", len(rooms))
	}

	for i, room := range rooms {
		if room.X < 0 || room.Y < 0 || room.X2 > 40 || room.Y2 > 10 {
			t.Fatalf("room %d (%+v) escapes the 40x10 grid", i, room)
		}
		if room.W < 4 || room.W >= 10 || room.H < 4 || room.H >= 10 {
			t.Fatalf("room %d size %dx%d outside [4, 10)", i, room.W, room.H)
		}
		for j := i + 1; j < len(rooms); j++ {
			if room.Intersects(rooms[j]) {
				t.Fatalf("rooms %d and %d overlap: %+v vs %+v", i, j, room, rooms[j])
			}
		}
	}

	// Every accepted room must be stamped in full.
	painted := 0
	for _, v := range g.Grid().Cells() {
		if v == 1 {
			painted++
		}
	}
	expected := 0
	for _, room := range rooms {
		expected += room.W * room.H
	}
	if painted != expected {
		t.Fatalf("painted %d cells, rooms cover %d", painted, expected)
	}
}

func TestSpawnRoomsDeterministic(t *testing.T) {
	size := NewSize(4, 4, 10, 10)
	build := func() *Generator {
		return New().WithSize(40, 10).WithSeed(0).SpawnRooms(1, 5, size)
	}
	first := build()
	second := build()
	if !slices.Equal(first.Grid().Cells(), second.Grid().Cells()) {
		t.Fatal("same seed must reproduce identical room layouts")
	}
	if len(first.Rooms()) != len(second.Rooms()) {
		t.Fatal("same seed must accept the same rooms")
	}
}

func TestRoomHistoryAccumulates(t *testing.T) {
	size := NewSize(3, 3, 6, 6)
	g := New().
		WithSize(60, 40).
		WithSeed(9).
		SpawnRooms(1, 10, size).
		SpawnRooms(2, 10, size)
	if err := g.Err(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	rooms := g.Rooms()
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Intersects(rooms[j]) {
				t.Fatalf("rooms %d and %d overlap across placement calls", i, j)
			}
		}
	}
}

func TestIntersectsIsInclusive(t *testing.T) {
	a := newRoom(0, 0, 4, 4)
	touching := newRoom(4, 0, 4, 4)
	if !a.Intersects(touching) {
		t.Fatal("rooms sharing an edge must count as overlapping")
	}
	apart := newRoom(6, 0, 4, 4)
	if a.Intersects(apart) {
		t.Fatal("rooms with a gap must not count as overlapping")
	}
}

func TestSpawnRoomsValidation(t *testing.T) {
	if err := New().WithSize(40, 10).SpawnRooms(1, 5, NewSize(10, 10, 4, 4)).Err(); err == nil {
		t.Fatal("min >= max should fail")
	}
	if err := New().WithSize(40, 10).SpawnRooms(1, 5, NewSize(4, 4, 10, 12)).Err(); err == nil {
		t.Fatal("rooms taller than the grid should fail")
	}
	if err := New().WithSize(40, 10).SpawnRooms(1, 5, NewSize(0, 4, 10, 10)).Err(); err == nil {
		t.Fatal("zero minimum size should fail")
	}
	if err := New().SpawnRooms(1, 5, NewSize(4, 4, 10, 10)).Err(); err == nil {
		t.Fatal("SpawnRooms without WithSize should fail")
	}
}
