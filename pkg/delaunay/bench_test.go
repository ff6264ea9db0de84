package delaunay

import "testing"

func BenchmarkAddPoint_Random(b *testing.B) {
	pts := randomPoints(42, 2000, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New()
		for _, p := range pts {
			_ = tr.AddPoint(p)
		}
	}
}

func BenchmarkRemovePoint_Random(b *testing.B) {
	pts := randomPoints(43, 1000, 1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		tr := New()
		for _, p := range pts {
			_ = tr.AddPoint(p)
		}
		b.StartTimer()
		for _, p := range pts {
			_ = tr.RemovePoint(p)
		}
	}
}
