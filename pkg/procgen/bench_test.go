package procgen

import "testing"

func BenchmarkSpawnPerlin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New().WithSize(1000, 1000).SpawnPerlin(bandClassifier)
	}
}

func BenchmarkSpawnRooms(b *testing.B) {
	size := NewSize(10, 10, 100, 100)
	for i := 0; i < b.N; i++ {
		New().WithSize(1000, 1000).SpawnRooms(1, 1000, size)
	}
}

func BenchmarkSpawnBlobs(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New().WithSize(1000, 1000).SpawnBlobs(1, 100)
	}
}
